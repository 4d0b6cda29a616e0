// HTTP-хендлеры регистрации, логина и логаута
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// SignupRequest описывает тело запроса регистрации пользователя.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse описывает успешный ответ регистрации.
// Хэш пароля наружу не отдаётся никогда.
type SignupResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа пользователя.
//
// Основной носитель сессии — кука auth_token; токен дублируется в теле
// для CLI-клиента, которому кука не нужна.
type LoginResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Signup обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: неверный JSON, невалидные данные или слабый пароль;
//   - 409 Conflict: username или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Registers a new user. Password must pass the strength policy.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup request"
// @Success      201 {object} SignupResponse
// @Failure      400 {object} ErrorResponse "Invalid input or weak password"
// @Failure      409 {object} ErrorResponse "Username or email already exists"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput), errors.Is(err, serr.ErrWeakPassword):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, err)
		default:
			h.Log.Logger.Sugar().Error("signup failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	// отдаём нормализованные значения из сервиса, а не сырые из запроса
	json.NewEncoder(w).Encode(SignupResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	})
}

// Login обрабатывает вход пользователя и установку сессионной куки.
//
// Ответы:
//   - 200 OK: успешный вход, кука auth_token установлена;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Log in
// @Description  Authenticates the user and sets the auth_token session cookie (24h).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, userID, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, err)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.CookieTTL / time.Second),
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(LoginResponse{
		UserID:      userID.String(),
		AccessToken: token,
	})
}

// Logout сбрасывает сессионную куку и редиректит на /login.
//
// Отзыва токена на сервере нет: удалённый из куки токен остаётся валидным
// до истечения exp.
//
// @Summary      Log out
// @Description  Clears the auth_token cookie and redirects to /login.
// @Tags         auth
// @Success      307 {string} string "Redirect to /login"
// @Router       /logout [get]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
}
