package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

// UsersService отдаёт публичные данные пользователей.
type UsersService struct {
	users UsersRepo
}

func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

// GetProfile возвращает проекцию {name, email, city} по id пользователя.
//
// Больше ничего из записи наружу не уходит — ни хэш, ни таймстемпы.
//
// Ошибки:
//   - ErrUserNotFound — нет пользователя с таким id
func (s *UsersService) GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Profile{}, serr.ErrUserNotFound
		}
		return models.Profile{}, err
	}

	return models.Profile{
		Name:  u.Name,
		Email: u.Email,
		City:  u.City,
	}, nil
}
