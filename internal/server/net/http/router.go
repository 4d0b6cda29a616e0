// Package http реализует маршрутизацию HTTP-слоя сервера linkbuzz.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT-токенов сессии;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/api"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты signup/login/logout;
//   - middleware логирования для всех запросов;
//   - группу защищённых кукой эндпоинтов (/links, /profile);
//   - публичную страницу пользователя GET /{username} (в самом конце,
//     чтобы не перехватывать остальные маршруты).
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	// защищены пути
	r.Group(func(r chi.Router) {
		// проверка токена сессии
		r.Use(h.Verifier.AuthMiddleware())
		// CRUD запросы для ссылок
		r.Route("/links", func(r chi.Router) {
			r.Post("/", h.CreateLink)        // Создание ссылки
			r.Get("/", h.ListLinks)          // Все ссылки пользователя (дашборд)
			r.Put("/{id}", h.UpdateLink)     // обновляем, передаём id в параметрах и title/url в теле
			r.Delete("/{id}", h.DeleteLink)  // удаляем ссылку по id
		})
		// профиль: смена username или пароля
		r.Put("/profile", h.UpdateProfile)
	})
	// публичная страница пользователя
	r.Get("/{username}", h.PublicProfile)

	return r
}
