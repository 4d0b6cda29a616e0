package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

type UsersRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// queryTimeout ограничивает длительность каждого запроса к БД (db.query_timeout).
// Нулевое значение отключает лимит.
func NewUsersRepository(db *sql.DB, queryTimeout time.Duration) *UsersRepository {
	return &UsersRepository{db: db, queryTimeout: queryTimeout}
}

// withTimeout навешивает дедлайн запроса к БД поверх контекста запроса.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// asConflict переводит unique_violation в ErrAlreadyExists.
// По имени нарушенного констрейнта уточняем, что именно занято —
// username или email, чтобы клиент получил внятный 409.
func asConflict(err error) (error, bool) {
	pgErr, ok := err.(*pgconn.PgError)
	if !ok || pgErr.Code != "23505" { // unique_violation
		return nil, false
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return fmt.Errorf("%w: username already taken", serr.ErrAlreadyExists), true
	case strings.Contains(pgErr.ConstraintName, "email"):
		return fmt.Errorf("%w: email already taken", serr.ErrAlreadyExists), true
	default:
		return serr.ErrAlreadyExists, true
	}
}

func (r *UsersRepository) Create(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var id uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1,$2,$3)
		 RETURNING id`,
		username, email, passwordHash,
	).Scan(&id)

	if err != nil {
		if conflict, ok := asConflict(err); ok {
			return uuid.Nil, conflict
		}
		return uuid.Nil, serr.ErrInternal
	}

	return id, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var (
		id   uuid.UUID
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&id, &hash)

	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, "", serr.ErrNotFound
		}
		return uuid.Nil, "", serr.ErrInternal
	}

	return id, hash, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE username=$1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (models.User, error) {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	var u models.User

	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET username=$2 WHERE id=$1
		 RETURNING id, username, email, password_hash, created_at`,
		id, username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if conflict, ok := asConflict(err); ok {
			return models.User{}, conflict
		}
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash=$2 WHERE id=$1`,
		id, passwordHash,
	)
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
