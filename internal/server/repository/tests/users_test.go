package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/repository"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("gopher", "test@mail.com", "hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id"}).AddRow(id),
		)

	got, err := repo.Create(context.Background(), "gopher", "test@mail.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("expected %v, got %v", id, got)
	}
}

// Username уже занят
func TestUsersRepository_Create_UsernameTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	pgErr := &pgconn.PgError{
		Code:           "23505", // unique_violation
		ConstraintName: "users_username_key",
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "gopher", "test@mail.com", "hash")

	if !errors.Is(err, serr.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if got := err.Error(); !containsStr(got, "username") {
		t.Fatalf("expected username conflict detail, got %q", got)
	}
}

// Email уже занят
func TestUsersRepository_Create_EmailTaken(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_email_key",
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "gopher", "test@mail.com", "hash")

	if !errors.Is(err, serr.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if got := err.Error(); !containsStr(got, "email") {
		t.Fatalf("expected email conflict detail, got %q", got)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "gopher", "test@mail.com", "hash")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	id := uuid.New()
	hash := "hash"

	mock.ExpectQuery(`SELECT id, password_hash FROM users`).
		WithArgs("test@mail.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "password_hash"}).
				AddRow(id, hash),
		)

	gotID, gotHash, err := repo.GetByEmail(context.Background(), "test@mail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != id || gotHash != hash {
		t.Fatalf("unexpected result")
	}
}

// не найден по email
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT id, password_hash FROM users`).
		WithArgs("test@mail.com").
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.GetByEmail(context.Background(), "test@mail.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// поиск по username (публичная страница)
func TestUsersRepository_GetByUsername_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	id := uuid.New()
	created := time.Now()

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("gopher").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
				AddRow(id, "gopher", "test@mail.com", "hash", created),
		)

	u, err := repo.GetByUsername(context.Background(), "gopher")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != id || u.Username != "gopher" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUsersRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "nobody")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// смена username: конфликт уникальности
func TestUsersRepository_UpdateUsername_Conflict(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_username_key",
	}

	mock.ExpectQuery(`UPDATE users SET username`).
		WillReturnError(pgErr)

	_, err := repo.UpdateUsername(context.Background(), uuid.New(), "taken")

	if !errors.Is(err, serr.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// смена пароля: пользователь исчез
func TestUsersRepository_UpdatePassword_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	mock.ExpectExec(`UPDATE users SET password_hash`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), uuid.New(), "new-hash")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUsersRepository_UpdatePassword_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db, 0)

	id := uuid.New()

	mock.ExpectExec(`UPDATE users SET password_hash`).
		WithArgs(id, "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePassword(context.Background(), id, "new-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func containsStr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
