// Package http реализует маршрутизацию HTTP-слоя сервера fun app.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT access-токенов;
package http

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/api"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования для всех запросов;
//   - публичный эндпоинт регистрации POST /user/signup;
//   - защищённый JWT эндпоинт профиля GET /user/{id}.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/user", func(r chi.Router) {
		// регистрация публичная
		r.Post("/signup", h.Signup)

		// профиль только с валидным access-токеном
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/{id}", h.GetUser)
		})
	})

	return r
}
