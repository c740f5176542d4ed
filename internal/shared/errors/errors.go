// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Email уже занят другим пользователем
	ErrAlreadyExists = errors.New("email address is already in use")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для geo-гейта и профиля
var (
	// Регистрация из локации, которой нет среди разрешённых городов
	ErrLocationNotAllowed = errors.New("signup from this location is not allowed")
	// Профиль не найден, текст отдаётся клиенту как есть
	ErrUserNotFound = errors.New("User not found")
)
