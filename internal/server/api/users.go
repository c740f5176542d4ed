// HTTP-хендлер публичного профиля
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

// GetUser возвращает публичный профиль пользователя по id.
//
// Отдаётся только проекция {name, email, city} — ни хэша пароля,
// ни служебных полей в ответе нет.
//
// Требует JWT-аутентификацию.
//
// @Summary      Get user profile
// @Description  Returns the public projection (name, email, city) of a user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} models.Profile
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /user/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	// кривой uuid не отличим от несуществующего пользователя
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		return
	}

	profile, err := h.Svc.Users.GetProfile(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get user failed", "error", err, "user_id", id.String())
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(profile)
}
