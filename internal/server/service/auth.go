package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/config"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/crypto"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// AuthService реализует бизнес-логику регистрации и входа.
//
// Ответственность:
//   - регистрация пользователей (валидация username/email/политики пароля)
//   - аутентификация (логин)
//   - выпуск JWT-токена сессии
//
// Refresh-токенов и отзыва сессий нет: токен живёт 24 часа,
// по истечении пользователь логинится заново.
type AuthService struct {
	users UsersRepo

	pass crypto.Argon2Params
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Register регистрирует нового пользователя.
//
// Валидация:
//   - username обязателен: >= 3 символов, латиница/цифры/дефис/подчёркивание
//   - email обязателен и должен быть валидным
//   - пароль проходит политику сложности (см. crypto.CheckPasswordPolicy)
//
// Возвращает сохранённого пользователя (id + нормализованные username/email,
// хэш наружу не отдаётся) либо ошибку:
//   - ErrInvalidInput / ErrWeakPassword при некорректных данных
//   - ErrAlreadyExists если username или email уже занят
func (s *AuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" || email == "" || password == "" {
		return models.User{}, serr.ErrInvalidInput
	}
	if !crypto.ValidUsername(username) {
		return models.User{}, fmt.Errorf("%w: username must be at least 3 characters (letters, digits, - and _)", serr.ErrInvalidInput)
	}
	if !emailRe.MatchString(email) {
		return models.User{}, fmt.Errorf("%w: invalid email", serr.ErrInvalidInput)
	}
	if err := crypto.CheckPasswordPolicy(password); err != nil {
		return models.User{}, fmt.Errorf("%w: %s", serr.ErrWeakPassword, err.Error())
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	id, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return models.User{}, err
	}

	return models.User{ID: id, Username: username, Email: email}, nil
}

// Login аутентифицирует пользователя и выдаёт JWT-токен сессии.
//
// Поведение:
//   - не раскрывает факт существования email (всегда invalid credentials)
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, uuid.UUID, error) {
	// пароль не нормализуем: сверяется ровно та строка, что была захеширована
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", uuid.Nil, serr.ErrInvalidInput
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", uuid.Nil, serr.ErrInvalidCredentials
		}
		return "", uuid.Nil, err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		return "", uuid.Nil, serr.ErrInternal
	}
	if !ok {
		return "", uuid.Nil, serr.ErrInvalidCredentials
	}
	// выпускаем токен сессии
	token, err := crypto.NewAccessToken(userID.String(), s.jwt)
	if err != nil {
		return "", uuid.Nil, serr.ErrInternal
	}

	return token, userID, nil
}
