package models

import "time"

// Link — плоская модель ссылки, используемая в HTTP API.
//
// Одна запись публичной страницы пользователя: заголовок и URL.
// Владелец определяется по UserID и не передаётся клиенту в публичном ответе.
//
// Поля:
//   - ID: уникальный идентификатор ссылки (UUID в виде строки)
//   - Title: отображаемый заголовок
//   - URL: абсолютный http(s) адрес
//   - UserID: идентификатор владельца
//   - CreatedAt/UpdatedAt: серверные отметки времени
type Link struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLinkRequest — запрос на создание ссылки.
//
// Используется в:
//	POST /links
//
// Оба поля обязательны, URL должен быть абсолютным http(s) адресом.
type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// UpdateLinkRequest — запрос на обновление ссылки по ID.
//
// Используется в:
//	PUT /links/{id}
//
// Обновление всегда полное: передаются оба поля, частичный патч не поддерживается.
type UpdateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LinksResponse — ответ эндпоинта получения всех ссылок пользователя.
//
// Используется в:
//	GET /links
type LinksResponse struct {
	Links []Link `json:"links"`
}

// PublicProfileResponse — публичный ответ GET /{username}.
//
// Содержит имя пользователя и его ссылки. Email и служебные поля
// пользователя наружу не отдаются.
type PublicProfileResponse struct {
	Username string `json:"username"`
	Links    []Link `json:"links"`
}
