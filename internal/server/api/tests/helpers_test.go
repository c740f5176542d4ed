package tests

import (
	"time"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/config"
)

// testConfig — минимальная валидная конфигурация для HTTP-тестов.
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
