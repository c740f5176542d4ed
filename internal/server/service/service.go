// Package service содержит бизнес-логику приложения (fun app).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/config"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users  UsersRepo
	Cities CitiesRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля, JWT, страна geo-гейта).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, repos.Cities, cfg),
		Users: NewUsersService(repos.Users),
	}
}

// UsersRepo — репозиторий пользователей (нужен для signup и профиля).
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash, city string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// CitiesRepo — репозиторий городов (geo-гейт регистрации).
type CitiesRepo interface {
	FindByCoordinates(ctx context.Context, latitude, longitude float64, country string) (models.City, error)
}
