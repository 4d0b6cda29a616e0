package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/api"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/config"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/crypto"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/middleware"
	srvmodels "github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
	"github.com/IvanChernomyrdin/linkbuzz/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/linkbuzz/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/linkbuzz/internal/shared/logger"
)

func routerTestConfig() *config.Config {
	return &config.Config{
		Env: "dev",
		Auth: config.AuthConfig{
			Issuer:    "linkbuzz",
			Audience:  "linkbuzz-web",
			AccessTTL: 24 * time.Hour,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
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

// собираем роутер с настоящими сервисами поверх мок-репозиториев
func newTestRouter(t *testing.T) (http.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockLinksRepo, *config.Config) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	usersRepo := svcmocks.NewMockUsersRepo(ctrl)
	linksRepo := svcmocks.NewMockLinksRepo(ctrl)

	cfg := routerTestConfig()

	svc := service.NewServices(service.Repositories{Users: usersRepo, Links: linksRepo}, cfg)
	verifier := middleware.NewJWTVerifier(
		cfg.Auth.JWT.SigningKey,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
		cfg.Auth.Cookie.Name,
	)
	httpLogger := logger.NewHTTPLogger()

	h := api.NewHandler(svc, httpLogger, verifier, cfg)
	return NewRouter(h), usersRepo, linksRepo, cfg
}

func TestRouter_Login_OK(t *testing.T) {
	router, usersRepo, _, cfg := newTestRouter(t)

	email := "test@example.com"
	password := "Valid123!"
	userID := uuid.New()

	// HashPassword должен совпасть по формату с VerifyPassword внутри сервиса.
	hash, err := crypto.HashPassword(password, crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	})
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	usersRepo.
		EXPECT().
		GetByEmail(gomock.Any(), email).
		DoAndReturn(func(ctx context.Context, gotEmail string) (uuid.UUID, string, error) {
			// Важно: сервис нормализует email: strings.ToLower+TrimSpace
			if gotEmail != email {
				t.Fatalf("expected email %q, got %q", email, gotEmail)
			}
			return userID, hash, nil
		})

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.AccessToken == "" {
		t.Fatalf("expected non-empty access_token")
	}

	// Мини-проверка, что токен похож на JWT (три части через точку)
	if parts := strings.Count(resp.AccessToken, "."); parts < 2 {
		t.Fatalf("access_token does not look like JWT: %q", resp.AccessToken)
	}

	// Сессионная кука установлена
	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cfg.Auth.Cookie.Name {
			session = c
		}
	}
	if session == nil || session.Value != resp.AccessToken {
		t.Fatal("expected auth_token cookie matching the body token")
	}
}

// Защищённый маршрут без токена: 401
func TestRouter_Links_NoToken(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/links", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// Полный проход: токен из куки пускает к /links
func TestRouter_Links_WithCookie(t *testing.T) {
	router, _, linksRepo, cfg := newTestRouter(t)

	userID := uuid.New()

	token, err := crypto.NewAccessToken(userID.String(), crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	linksRepo.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return([]srvmodels.Link{
			{ID: uuid.New(), Title: "blog", URL: "https://example.com", UserID: userID},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/links", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Auth.Cookie.Name, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%q", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "https://example.com") {
		t.Fatalf("expected link in body, got %q", rec.Body.String())
	}
}

// Пользователь B пытается удалить ссылку пользователя A: 403, не 401
func TestRouter_DeleteLink_OtherUsersLink(t *testing.T) {
	router, usersRepo, linksRepo, cfg := newTestRouter(t)

	userA := uuid.New()
	userB := uuid.New()
	linkID := uuid.New()

	tokenB, err := crypto.NewAccessToken(userB.String(), crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	usersRepo.EXPECT().
		GetByID(gomock.Any(), userB).
		Return(srvmodels.User{ID: userB, Username: "bob"}, nil)

	linksRepo.EXPECT().
		GetByID(gomock.Any(), linkID).
		Return(srvmodels.Link{ID: linkID, UserID: userA}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/links/"+linkID.String(), nil)
	req.AddCookie(&http.Cookie{Name: cfg.Auth.Cookie.Name, Value: tokenB})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d, body=%q", rec.Code, rec.Body.String())
	}
}

// Публичная страница доступна без токена
func TestRouter_PublicProfile_NoAuth(t *testing.T) {
	router, usersRepo, linksRepo, _ := newTestRouter(t)

	userID := uuid.New()

	usersRepo.EXPECT().
		GetByUsername(gomock.Any(), "gopher").
		Return(srvmodels.User{ID: userID, Username: "gopher"}, nil)

	linksRepo.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/gopher", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// GET /logout сбрасывает куку и отдаёт редирект
func TestRouter_Logout(t *testing.T) {
	router, _, _, cfg := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Auth.Cookie.Name, Value: "token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}
