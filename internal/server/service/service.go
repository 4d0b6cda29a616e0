// Package service содержит бизнес-логику приложения (linkbuzz).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/config"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Links LinksRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth    *AuthService
	Links   *LinksService
	Profile *ProfileService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и подписи токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.Users, cfg),
		Links:   NewLinksService(repos.Links, repos.Users),
		Profile: NewProfileService(repos.Users, repos.Links, cfg),
	}
}

// UsersRepo — репозиторий пользователей (нужен для signup/login/profile).
type UsersRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// LinksRepo — репозиторий ссылок (CRUD + выборка по владельцу).
type LinksRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title, url string) (models.Link, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Link, error)
	Update(ctx context.Context, id uuid.UUID, title, url string) (models.Link, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Link, error)
}
