// Хендлеры профиля: смена username/пароля и публичная страница
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/middleware"
	"github.com/IvanChernomyrdin/linkbuzz/internal/shared/models"

	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// UpdateProfileRequest описывает тело запроса PUT /profile.
//
// Допустимы два режима:
//   - смена username: передаётся только username;
//   - смена пароля: передаются currentPassword и newPassword.
//
// Если не передан ни один режим — 400.
type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

// UpdateProfileResponse описывает успешный ответ PUT /profile.
type UpdateProfileResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateProfile обрабатывает смену username или пароля текущего пользователя.
//
// Ответы:
//   - 200 OK: профиль обновлён;
//   - 400 Bad Request: невалидные данные, слабый новый пароль
//     или неверный текущий пароль;
//   - 401 Unauthorized: нет/невалидный токен или пользователь удалён;
//   - 409 Conflict: новый username занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Update profile
// @Description  Changes the username OR the password (currentPassword + newPassword).
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body UpdateProfileRequest true "Update profile request"
// @Success      200 {object} UpdateProfileResponse
// @Failure      400 {object} ErrorResponse "Invalid input, weak or wrong password"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      409 {object} ErrorResponse "Username already taken"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	// смена username
	if req.Username != nil {
		user, err := h.Svc.Profile.UpdateUsername(r.Context(), userID, *req.Username)
		if err != nil {
			switch {
			case errors.Is(err, serr.ErrInvalidInput):
				WriteError(w, http.StatusBadRequest, err)
			case errors.Is(err, serr.ErrUnauthorized):
				WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
			case errors.Is(err, serr.ErrAlreadyExists):
				WriteError(w, http.StatusConflict, err)
			default:
				h.Log.Logger.Sugar().Errorw(
					"update username failed",
					"error", err,
					"user_id", userID.String(),
				)
				WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
			}
			return
		}

		w.Header().Set(ContentType, JsonContentType)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateProfileResponse{
			UserID:   user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		})
		return
	}

	// смена пароля
	if req.CurrentPassword != nil && req.NewPassword != nil {
		err := h.Svc.Profile.UpdatePassword(r.Context(), userID, *req.CurrentPassword, *req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, serr.ErrInvalidInput), errors.Is(err, serr.ErrWeakPassword):
				WriteError(w, http.StatusBadRequest, err)
			case errors.Is(err, serr.ErrUnauthorized):
				WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
			default:
				h.Log.Logger.Sugar().Errorw(
					"update password failed",
					"error", err,
					"user_id", userID.String(),
				)
				WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
			}
			return
		}

		w.Header().Set(ContentType, JsonContentType)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "password updated"})
		return
	}

	WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
}

// PublicProfile отдаёт публичную страницу пользователя: username и ссылки.
//
// Аутентификация не требуется. Email и прочие данные наружу не отдаются.
//
// Ответы:
//   - 200 OK;
//   - 404 Not Found: нет пользователя с таким username.
//
// @Summary      Public profile
// @Description  Returns the public profile (username + links) for a username.
// @Tags         profile
// @Produce      json
// @Param        username path string true "Username"
// @Success      200 {object} models.PublicProfileResponse
// @Failure      404 {object} ErrorResponse "Unknown username"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /{username} [get]
func (h *Handler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, links, err := h.Svc.Profile.PublicProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
			return
		}
		h.Log.Logger.Sugar().Errorw(
			"public profile failed",
			"error", err,
			"username", username,
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	resp := models.PublicProfileResponse{
		Username: user.Username,
		Links:    make([]models.Link, 0, len(links)),
	}
	for _, l := range links {
		resp.Links = append(resp.Links, toAPILink(l))
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
