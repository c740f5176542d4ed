package tests

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/config"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/service"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/service/mocks"
)

// testConfig — минимальная валидная конфигурация для сервисов.
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "funapp",
			Audience:  "funapp-web",
			AccessTTL: 15 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
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

// создаём сервис регистрации с моками
func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo, *mocks.MockCitiesRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUsersRepo(ctrl)
	cities := mocks.NewMockCitiesRepo(ctrl)

	svc := service.NewAuthService(users, cities, testConfig())
	return svc, users, cities
}
