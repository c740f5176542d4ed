// HTTP-хендлер регистрации
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

// maxCoordinateDecimals — максимум знаков после запятой в координате.
const maxCoordinateDecimals = 10

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Координаты принимаются как json.Number: до конвертации во float64
// проверяется число знаков после запятой (<= 10), как в оригинальном API.
type SignupRequest struct {
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Password  string      `json:"password"`
	Latitude  json.Number `json:"latitude" swaggertype:"number"`
	Longitude json.Number `json:"longitude" swaggertype:"number"`
}

// SignupResponse описывает успешный ответ регистрации.
type SignupResponse struct {
	AccessToken string `json:"access_token"`
}

// Signup обрабатывает регистрацию пользователя.
//
// Регистрация проходит только если координаты точно совпадают
// с посеянным городом разрешённой страны (Egypt в эталоне).
//
// @Summary      Sign up
// @Description  Creates a user if the reported coordinates match a seeded city of the allowed country and returns an access token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup request"
// @Success      201 {object} SignupResponse
// @Failure      400 {object} ErrorResponse "Invalid input or email already in use"
// @Failure      403 {object} ErrorResponse "Location not allowed"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /user/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req SignupRequest
	if err := dec.Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	lat, ok := parseCoordinate(req.Latitude)
	if !ok {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}
	lon, ok := parseCoordinate(req.Longitude)
	if !ok {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	token, err := h.Svc.Auth.Signup(r.Context(), toSignupInput(req, lat, lon))
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrLocationNotAllowed):
			WriteError(w, http.StatusForbidden, serr.ErrLocationNotAllowed)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Errorw("signup failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SignupResponse{AccessToken: token})
}

// toSignupInput собирает вход сервисного слоя из DTO и уже
// провалидированных координат.
func toSignupInput(req SignupRequest, lat, lon float64) service.SignupInput {
	return service.SignupInput{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Latitude:  lat,
		Longitude: lon,
	}
}

// parseCoordinate валидирует координату из JSON и приводит её к float64.
//
// Отклоняется:
//   - пустое значение (поле не прислали)
//   - экспоненциальная запись (1e5 и т.п.)
//   - больше maxCoordinateDecimals знаков после запятой
func parseCoordinate(n json.Number) (float64, bool) {
	s := n.String()
	if s == "" {
		return 0, false
	}
	if strings.ContainsAny(s, "eE") {
		return 0, false
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if len(s)-i-1 > maxCoordinateDecimals {
			return 0, false
		}
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}
