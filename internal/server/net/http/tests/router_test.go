package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/api"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/config"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/models"
	router "github.com/IvanChernomyrdin/go-funapp/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/service"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-funapp/internal/shared/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "funapp",
			Audience:  "funapp-web",
			AccessTTL: 15 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456",
			},
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
		Geo: config.GeoConfig{Country: "Egypt"},
	}
}

// собираем весь стек сервера на моках репозиториев
func newTestServer(t *testing.T) (http.Handler, *mocks.MockUsersRepo, *mocks.MockCitiesRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUsersRepo(ctrl)
	cities := mocks.NewMockCitiesRepo(ctrl)

	cfg := testConfig()
	svc := service.NewServices(service.Repositories{Users: users, Cities: cities}, cfg)
	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience, users)

	h := api.NewHandler(svc, logger.NewHTTPLogger(), verifier)
	return router.NewRouter(h), users, cities
}

// Полный путь: регистрация, потом чтение профиля с полученным токеном
func TestRouter_SignupThenGetProfile(t *testing.T) {
	srv, users, cities := newTestServer(t)

	userID := uuid.New()

	cities.EXPECT().
		FindByCoordinates(gomock.Any(), 30.0444, 31.2357, "Egypt").
		Return(models.City{
			ID:        uuid.New(),
			Name:      "Cairo",
			Country:   "Egypt",
			Latitude:  30.0444,
			Longitude: 31.2357,
		}, nil)

	users.EXPECT().
		Create(gomock.Any(), "Ahmed", "test@mail.com", gomock.Any(), "Cairo").
		Return(userID, nil)

	// middleware перечитывает пользователя, затем хендлер читает профиль
	users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(models.User{
			ID:           userID,
			Name:         "Ahmed",
			Email:        "test@mail.com",
			PasswordHash: "argon2id$v=19$m=32768,t=1,p=1$salt$hash",
			City:         "Cairo",
		}, nil).
		Times(2)

	body := []byte(`{"email":"test@mail.com","name":"Ahmed","password":"strongpassword","latitude":30.0444,"longitude":31.2357}`)
	req := httptest.NewRequest(http.MethodPost, "/user/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var signup api.SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	require.NotEmpty(t, signup.AccessToken)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/user/%s", userID), nil)
	req.Header.Set("Authorization", "Bearer "+signup.AccessToken)
	rec = httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Equal(t, models.Profile{Name: "Ahmed", Email: "test@mail.com", City: "Cairo"}, profile)
}

// Профиль без токена закрыт
func TestRouter_GetProfile_Unauthorized(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/user/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Регистрация не из Египта
func TestRouter_Signup_Forbidden(t *testing.T) {
	srv, _, cities := newTestServer(t)

	cities.EXPECT().
		FindByCoordinates(gomock.Any(), 51.5074, -0.1278, "Egypt").
		Return(models.City{}, serr.ErrNotFound)

	body := []byte(`{"email":"test@mail.com","name":"Ahmed","password":"strongpassword","latitude":51.5074,"longitude":-0.1278}`)
	req := httptest.NewRequest(http.MethodPost, "/user/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}
