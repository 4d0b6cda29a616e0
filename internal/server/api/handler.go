// Package api реализует HTTP-слой сервера linkbuzz.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - установку и сброс сессионной куки auth_token.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/config"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/middleware"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/service"
	"github.com/IvanChernomyrdin/linkbuzz/internal/shared/logger"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации;
//   - параметры сессионной куки (имя, срок жизни, Secure).
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier

	CookieName   string
	CookieTTL    time.Duration
	SecureCookie bool

	// MaxBodyBytes ограничивает размер тела запроса, 0 — без лимита.
	MaxBodyBytes int64
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации,
// cfg — конфиг (откуда берутся параметры куки).
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier, cfg *config.Config) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,

		CookieName:   cfg.Auth.Cookie.Name,
		CookieTTL:    cfg.Auth.AccessTTL,
		SecureCookie: cfg.IsProd(),

		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}
}

// decodeBody разбирает JSON-тело запроса с учётом лимита server.max_body_bytes.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body := r.Body
	if h.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	}
	return json.NewDecoder(body).Decode(dst)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}
