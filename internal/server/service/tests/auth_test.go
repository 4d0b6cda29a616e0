package tests

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/config"
	crypt "github.com/IvanChernomyrdin/linkbuzz/internal/server/crypto"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/service"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// конфиг для тестов: лёгкий argon2, длинный ключ подписи
func testConfig() *config.Config {
	return &config.Config{
		Env: "dev",
		Auth: config.AuthConfig{
			Issuer:    "linkbuzz",
			Audience:  "linkbuzz-web",
			AccessTTL: 24 * time.Hour,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456",
			},
			Cookie: config.CookieConfig{Name: "auth_token"},
		},
		Password: config.PasswordConfig{
			Hasher: "argon2id",
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 32 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
	}
}

func testArgon2Params() crypt.Argon2Params {
	cfg := testConfig()
	return crypt.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}
}

// создаём сервис
func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	svc := service.NewAuthService(users, testConfig())
	return svc, users
}

// Успех регистрации
func TestAuthService_Register_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	wantID := uuid.New()

	users.EXPECT().
		Create(ctx, "gopher", "test@mail.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, hash string) (uuid.UUID, error) {
			// в базу уходит хэш, а не пароль
			require.NotEqual(t, "Valid123!", hash)
			ok, err := crypt.VerifyPassword("Valid123!", hash)
			require.NoError(t, err)
			require.True(t, ok)
			return wantID, nil
		})

	user, err := svc.Register(ctx, "gopher", "test@mail.com", "Valid123!")

	require.NoError(t, err)
	require.Equal(t, wantID, user.ID)
	require.Equal(t, "gopher", user.Username)
	require.Equal(t, "test@mail.com", user.Email)
}

// Register возвращает нормализованные username/email (то, что легло в базу)
func TestAuthService_Register_ReturnsNormalized(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, "gopher", "test@mail.com", gomock.Any()).
		Return(uuid.New(), nil)

	user, err := svc.Register(ctx, "  gopher  ", "Test@Mail.COM", "Valid123!")

	require.NoError(t, err)
	require.Equal(t, "gopher", user.Username)
	require.Equal(t, "test@mail.com", user.Email)
}

// Слабый пароль: репозиторий не вызывается
func TestAuthService_Register_WeakPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "gopher", "test@mail.com", "short1!")

	require.ErrorIs(t, err, serr.ErrWeakPassword)
}

// Пароль с пробелами не проходит политику и не попадает в базу
func TestAuthService_Register_WhitespacePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "gopher", "test@mail.com", "Valid123! ")

	require.ErrorIs(t, err, serr.ErrWeakPassword)
}

// Короткий username
func TestAuthService_Register_ShortUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "ab", "test@mail.com", "Valid123!")

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Невалидный email
func TestAuthService_Register_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "gopher", "not-an-email", "Valid123!")

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Email/username уже занят — конфликт пробрасывается наружу
func TestAuthService_Register_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, "gopher", "test@mail.com", gomock.Any()).
		Return(uuid.Nil, serr.ErrAlreadyExists)

	_, err := svc.Register(ctx, "gopher", "test@mail.com", "Valid123!")

	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Регистрация + логин с теми же учётными данными всегда успешны:
// пароль сверяется ровно в том виде, в каком был захеширован
func TestAuthService_RegisterThenLogin_SameCredentials(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	userID := uuid.New()
	password := "Valid123!"

	var storedHash string
	users.EXPECT().
		Create(ctx, "gopher", "test@mail.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, hash string) (uuid.UUID, error) {
			storedHash = hash
			return userID, nil
		})

	_, err := svc.Register(ctx, "gopher", "test@mail.com", password)
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		DoAndReturn(func(context.Context, string) (uuid.UUID, string, error) {
			return userID, storedHash, nil
		})

	_, gotID, err := svc.Login(ctx, "test@mail.com", password)

	require.NoError(t, err)
	require.Equal(t, userID, gotID)
}

// Успех логина: sub токена равен id пользователя
func TestAuthService_Login_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	userID := uuid.New()
	password := "Valid123!"

	hash, err := crypt.HashPassword(password, testArgon2Params())
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(userID, hash, nil)

	token, gotID, err := svc.Login(ctx, "test@mail.com", password)

	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, userID, gotID)

	// разбираем токен и проверяем subject
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return []byte(testConfig().Auth.JWT.SigningKey), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(*jwt.RegisteredClaims)
	require.Equal(t, userID.String(), claims.Subject)
}

// Неверный пароль
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	userID := uuid.New()

	// хешируем ПРАВИЛЬНЫЙ пароль
	hash, err := crypt.HashPassword("Correct123!", testArgon2Params())
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(userID, hash, nil)

	// пробуем войти с НЕПРАВИЛЬНЫМ паролем
	_, _, err = svc.Login(ctx, "test@mail.com", "Wrong123!")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Email не существует: та же ошибка, что и при неверном пароле
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		GetByEmail(ctx, "nobody@mail.com").
		Return(uuid.Nil, "", serr.ErrNotFound)

	_, _, err := svc.Login(ctx, "nobody@mail.com", "Valid123!")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Пустые поля
func TestAuthService_Login_EmptyInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(ctx, "", "")

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}
