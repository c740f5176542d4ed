// Серверные модели предметной области fun app.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — запись пользователя в БД.
//
// PasswordHash никогда не отдаётся наружу: middleware очищает поле
// перед тем как положить пользователя в контекст запроса.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	City         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile — публичная проекция пользователя для GET /user/{id}.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	City  string `json:"city"`
}
