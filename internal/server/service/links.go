package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// LinksService реализует бизнес-логику работы со ссылками пользователя.
// Сервис:
//   - валидирует входные данные (title, url);
//   - проверяет владение ссылкой перед update/delete (Authorize);
//   - не знает о HTTP и БД напрямую.
type LinksService struct {
	repo  LinksRepo
	users UsersRepo
}

// NewLinksService создаёт новый LinksService.
func NewLinksService(repo LinksRepo, users UsersRepo) *LinksService {
	return &LinksService{
		repo:  repo,
		users: users,
	}
}

// validateLink проверяет title и url новой/обновляемой ссылки.
// URL должен быть абсолютным http(s) адресом.
func validateLink(title, rawURL string) error {
	if strings.TrimSpace(title) == "" {
		return serr.ErrTitleEmpty
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return serr.ErrInvalidURL
	}
	return nil
}

// requireUser проверяет, что subject токена всё ещё существует в базе.
// Токен, переживший удаление пользователя, к мутациям не допускается.
func (s *LinksService) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return serr.ErrUnauthorized
		}
		return err
	}
	return nil
}

// Create создаёт новую ссылку.
//
// Владелец всегда равен subject токена.
//
// Ошибки:
//   - ErrTitleEmpty / ErrInvalidURL — невалидные данные (400)
//   - ErrUnauthorized — пользователь токена не существует (401)
//   - ErrInternal — ошибка хранилища
func (s *LinksService) Create(ctx context.Context, userID uuid.UUID, title, rawURL string) (models.Link, error) {
	if err := validateLink(title, rawURL); err != nil {
		return models.Link{}, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return models.Link{}, err
	}
	return s.repo.Create(ctx, userID, strings.TrimSpace(title), strings.TrimSpace(rawURL))
}

// Update полностью заменяет title и url ссылки.
//
// Перед мутацией:
//   - ссылка читается из хранилища; отсутствующая (в т.ч. уже удалённая)
//     ссылка отдаётся как ErrForbidden, не раскрывая существование чужих id;
//   - выполняется проверка владения (Authorize).
//
// Ошибки:
//   - ErrTitleEmpty / ErrInvalidURL (400)
//   - ErrUnauthorized (401)
//   - ErrForbidden — не владелец или ссылки нет (403)
func (s *LinksService) Update(ctx context.Context, userID, linkID uuid.UUID, title, rawURL string) (models.Link, error) {
	if err := validateLink(title, rawURL); err != nil {
		return models.Link{}, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return models.Link{}, err
	}

	link, err := s.repo.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Link{}, serr.ErrForbidden
		}
		return models.Link{}, err
	}
	if err := Authorize(userID, link.UserID); err != nil {
		return models.Link{}, err
	}

	return s.repo.Update(ctx, linkID, strings.TrimSpace(title), strings.TrimSpace(rawURL))
}

// Delete удаляет ссылку после проверки владения.
//
// Удаление уже удалённой или чужой ссылки — ErrForbidden,
// хранилище при этом не меняется.
func (s *LinksService) Delete(ctx context.Context, userID, linkID uuid.UUID) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	link, err := s.repo.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return serr.ErrForbidden
		}
		return err
	}
	if err := Authorize(userID, link.UserID); err != nil {
		return err
	}

	err = s.repo.Delete(ctx, linkID)
	if errors.Is(err, serr.ErrNotFound) {
		// гонка: ссылку удалили между GetByID и Delete
		return serr.ErrForbidden
	}
	return err
}

// List возвращает все ссылки пользователя (дашборд и CLI).
func (s *LinksService) List(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	return s.repo.ListByUser(ctx, userID)
}
