package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/middleware"
	srvmodels "github.com/IvanChernomyrdin/linkbuzz/internal/server/models"
	"github.com/IvanChernomyrdin/linkbuzz/internal/shared/models"

	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// toAPILink переводит серверную модель в плоскую модель API.
func toAPILink(l srvmodels.Link) models.Link {
	return models.Link{
		ID:        l.ID.String(),
		Title:     l.Title,
		URL:       l.URL,
		UserID:    l.UserID.String(),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// writeLinksError — общий маппинг ошибок сервиса ссылок в HTTP-статусы.
func (h *Handler) writeLinksError(w http.ResponseWriter, err error, op string, userID uuid.UUID) {
	switch {
	case errors.Is(err, serr.ErrTitleEmpty), errors.Is(err, serr.ErrInvalidURL), errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, serr.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
	case errors.Is(err, serr.ErrForbidden):
		WriteError(w, http.StatusForbidden, serr.ErrForbidden)
	default:
		h.Log.Logger.Sugar().Errorw(
			op+" failed",
			"error", err,
			"user_id", userID.String(),
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}

// CreateLink создаёт новую ссылку для аутентифицированного пользователя.
//
// Владелец ссылки всегда равен subject токена.
//
// @Summary      Create link
// @Description  Creates a new link owned by the authenticated user.
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body models.CreateLinkRequest true "Create link request"
// @Success      201 {object} models.Link
// @Failure      400 {object} ErrorResponse "Empty title or invalid url"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /links [post]
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLinkRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	link, err := h.Svc.Links.Create(r.Context(), userID, req.Title, req.URL)
	if err != nil {
		h.writeLinksError(w, err, "create link", userID)
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toAPILink(link))
}

// ListLinks возвращает все ссылки текущего пользователя (дашборд).
//
// @Summary      List links
// @Description  Returns all links belonging to the authenticated user.
// @Tags         links
// @Produce      json
// @Security     CookieAuth
// @Success      200 {object} models.LinksResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /links [get]
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	links, err := h.Svc.Links.List(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	resp := models.LinksResponse{Links: make([]models.Link, 0, len(links))}
	for _, l := range links {
		resp.Links = append(resp.Links, toAPILink(l))
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// UpdateLink полностью заменяет title и url ссылки.
//
// Требует владения ссылкой: чужая или несуществующая ссылка — 403.
//
// @Summary      Update link
// @Description  Full replace of title and url. Owner only.
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Link ID"
// @Param        request body models.UpdateLinkRequest true "Update link request"
// @Success      200 {object} models.Link
// @Failure      400 {object} ErrorResponse "Empty title or invalid url"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      403 {object} ErrorResponse "Forbidden"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /links/{id} [put]
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	linkID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// некорректный id неотличим от чужого — не раскрываем
		WriteError(w, http.StatusForbidden, serr.ErrForbidden)
		return
	}

	var req models.UpdateLinkRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	link, err := h.Svc.Links.Update(r.Context(), userID, linkID, req.Title, req.URL)
	if err != nil {
		h.writeLinksError(w, err, "update link", userID)
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(toAPILink(link))
}

// DeleteLink удаляет ссылку по id.
//
// Повторное удаление и удаление чужой ссылки — 403, хранилище не меняется.
//
// @Summary      Delete link
// @Description  Deletes a link. Owner only; repeated delete is 403.
// @Tags         links
// @Produce      json
// @Security     CookieAuth
// @Param        id path string true "Link ID"
// @Success      200 {object} map[string]string
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      403 {object} ErrorResponse "Forbidden"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /links/{id} [delete]
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	linkID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusForbidden, serr.ErrForbidden)
		return
	}

	if err := h.Svc.Links.Delete(r.Context(), userID, linkID); err != nil {
		h.writeLinksError(w, err, "delete link", userID)
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "link deleted"})
}
