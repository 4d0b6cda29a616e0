package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// LinksRepository реализует доступ к хранилищу ссылок (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
// Проверка владельца делается в service слое по UserID из GetByID.
type LinksRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewLinksRepository создаёт новый экземпляр LinksRepository.
// queryTimeout ограничивает длительность каждого запроса к БД, 0 — без лимита.
func NewLinksRepository(db *sql.DB, queryTimeout time.Duration) *LinksRepository {
	return &LinksRepository{db: db, queryTimeout: queryTimeout}
}

// Create сохраняет новую ссылку пользователя.
//
// Владелец всегда берётся из аргумента userID (subject токена),
// клиент не может назначить чужого владельца.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *LinksRepository) Create(ctx context.Context, userID uuid.UUID, title, url string) (models.Link, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	l := models.Link{
		Title:  title,
		URL:    url,
		UserID: userID,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO links (title, url, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`,
		title, url, userID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return models.Link{}, serr.ErrInternal
	}

	return l, nil
}

// GetByID возвращает ссылку по идентификатору, включая UserID владельца.
//
// Ошибки:
//   - ErrNotFound — ссылки нет (в т.ч. уже удалена)
//   - ErrInternal — ошибка базы данных
func (r *LinksRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Link, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var l models.Link

	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, url, user_id, created_at, updated_at
		FROM links WHERE id=$1
	`, id).Scan(&l.ID, &l.Title, &l.URL, &l.UserID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Link{}, serr.ErrNotFound
		}
		return models.Link{}, serr.ErrInternal
	}

	return l, nil
}

// Update полностью заменяет title и url ссылки.
func (r *LinksRepository) Update(ctx context.Context, id uuid.UUID, title, url string) (models.Link, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var l models.Link

	err := r.db.QueryRowContext(ctx, `
		UPDATE links SET title=$2, url=$3, updated_at=now()
		WHERE id=$1
		RETURNING id, title, url, user_id, created_at, updated_at
	`, id, title, url).Scan(&l.ID, &l.Title, &l.URL, &l.UserID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Link{}, serr.ErrNotFound
		}
		return models.Link{}, serr.ErrInternal
	}

	return l, nil
}

// Delete удаляет ссылку по идентификатору.
//
// Ошибки:
//   - ErrNotFound — ссылка уже удалена
//   - ErrInternal — ошибка базы данных
func (r *LinksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE id=$1`, id)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}

	return nil
}

// ListByUser возвращает все ссылки пользователя в порядке создания.
func (r *LinksRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, url, user_id, created_at, updated_at
		FROM links WHERE user_id=$1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		var l models.Link
		if err := rows.Scan(&l.ID, &l.Title, &l.URL, &l.UserID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return links, nil
}
