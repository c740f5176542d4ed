package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/config"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

// AuthService реализует бизнес-логику регистрации.
//
// Ответственность:
//   - валидация входных данных signup
//   - хэширование пароля (argon2id)
//   - geo-гейт: координаты должны точно совпасть с посеянным городом
//     разрешённой страны
//   - создание пользователя
//   - выпуск access-токена
type AuthService struct {
	users  UsersRepo
	cities CitiesRepo

	pass crypto.Argon2Params
	jwt  crypto.JWTConfig

	country string
}

// SignupInput — входные данные регистрации.
type SignupInput struct {
	Email     string
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cities CitiesRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users:  users,
		cities: cities,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},

		country: cfg.Geo.Country,
	}
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Signup регистрирует нового пользователя.
//
// Порядок шагов фиксированный:
//  1. валидация полей;
//  2. хэширование пароля — ДО geo-проверки, пароль в открытом виде
//     дальше этого метода не живёт;
//  3. поиск города по координатам в пределах разрешённой страны;
//  4. создание пользователя с каноничным именем города;
//  5. выпуск access-токена (sub = id, email).
//
// Возвращает подписанный access-токен.
//
// Ошибки:
//   - ErrInvalidInput — пустые поля, кривой email, координаты вне диапазона
//   - ErrLocationNotAllowed — координаты не совпали ни с одним городом
//   - ErrAlreadyExists — email уже занят
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if in.Email == "" || in.Name == "" || in.Password == "" || !emailRe.MatchString(in.Email) {
		return "", serr.ErrInvalidInput
	}
	if in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180 {
		return "", serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(in.Password, s.pass)
	if err != nil {
		return "", serr.ErrInternal
	}

	city, err := s.cities.FindByCoordinates(ctx, in.Latitude, in.Longitude, s.country)
	if err != nil {
		// город не найден — это отказ гейта, а не сбой
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrLocationNotAllowed
		}
		return "", err
	}

	// сохраняем имя города из базы, а не присланные координаты
	id, err := s.users.Create(ctx, in.Name, in.Email, hash, city.Name)
	if err != nil {
		return "", err
	}

	token, err := crypto.NewAccessToken(id.String(), in.Email, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return token, nil
}
