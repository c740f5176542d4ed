// Package repository реализует доступ к данным через database/sql.
//
// Слой переводит ошибки драйвера в доменные ошибки:
//   - 23505 (unique_violation) -> ErrAlreadyExists
//   - sql.ErrNoRows            -> ErrNotFound
//
// Всё остальное наружу уходит как ErrInternal, детали драйвера
// за пределы пакета не протекают.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create создаёт пользователя и возвращает его id.
//
// city — каноничное имя города из geo-гейта, а не то что прислал клиент.
// Конфликт по email (unique constraint) возвращается как ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, name, email, passwordHash, city string) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash, city)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id`,
		name, email, passwordHash, city,
	).Scan(&id)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return uuid.Nil, serr.ErrAlreadyExists
			}
		}
		return uuid.Nil, serr.ErrInternal
	}

	return id, nil
}

// GetByID возвращает запись пользователя целиком (включая password_hash).
// Очистка хэша перед отдачей наружу — забота вызывающего слоя.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, city, created_at, updated_at
		 FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.City, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
