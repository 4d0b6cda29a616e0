package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/config"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/crypto"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// ProfileService реализует бизнес-логику профиля пользователя:
//   - смена username (с конфликтом на занятое имя)
//   - смена пароля (с проверкой текущего и политики сложности)
//   - публичная страница пользователя (username + ссылки)
type ProfileService struct {
	users UsersRepo
	links LinksRepo

	pass crypto.Argon2Params
}

// NewProfileService создаёт новый ProfileService.
func NewProfileService(users UsersRepo, links LinksRepo, cfg *config.Config) *ProfileService {
	return &ProfileService{
		users: users,
		links: links,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
	}
}

// UpdateUsername меняет имя пользователя.
//
// Ошибки:
//   - ErrInvalidInput — имя короче 3 символов или с запрещёнными символами
//   - ErrUnauthorized — пользователь токена не существует
//   - ErrAlreadyExists — имя занято (409)
func (s *ProfileService) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if !crypto.ValidUsername(username) {
		return models.User{}, fmt.Errorf("%w: username must be at least 3 characters (letters, digits, - and _)", serr.ErrInvalidInput)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, serr.ErrUnauthorized
		}
		return models.User{}, err
	}

	return s.users.UpdateUsername(ctx, userID, username)
}

// UpdatePassword меняет пароль пользователя.
//
// Порядок:
//   - новый пароль проходит политику сложности;
//   - текущий пароль сверяется с хэшем в базе;
//   - новый пароль хэшируется и сохраняется.
//
// Ошибки:
//   - ErrWeakPassword — новый пароль не проходит политику (400)
//   - ErrInvalidInput — текущий пароль неверен (400)
//   - ErrUnauthorized — пользователь токена не существует (401)
func (s *ProfileService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return serr.ErrInvalidInput
	}
	if err := crypto.CheckPasswordPolicy(newPassword); err != nil {
		return fmt.Errorf("%w: %s", serr.ErrWeakPassword, err.Error())
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return serr.ErrUnauthorized
		}
		return err
	}

	ok, err := crypto.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return serr.ErrInternal
	}
	if !ok {
		return fmt.Errorf("%w: current password is incorrect", serr.ErrInvalidInput)
	}

	hash, err := crypto.HashPassword(newPassword, s.pass)
	if err != nil {
		return serr.ErrInternal
	}

	return s.users.UpdatePassword(ctx, userID, hash)
}

// PublicProfile возвращает публичные данные страницы пользователя:
// username и его ссылки. Email и хэш наружу не отдаются.
//
// Ошибки:
//   - ErrNotFound — нет пользователя с таким username (404)
func (s *ProfileService) PublicProfile(ctx context.Context, username string) (models.User, []models.Link, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return models.User{}, nil, err
	}

	links, err := s.links.ListByUser(ctx, user.ID)
	if err != nil {
		return models.User{}, nil, err
	}

	return user, links, nil
}
