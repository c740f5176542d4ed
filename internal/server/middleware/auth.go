// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-funapp/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// currentUserKey — ключ контекста, под которым хранится аутентифицированный пользователь.
const currentUserKey ctxKey = "current_user"

// UserLoader — минимум, который middleware нужен от репозитория пользователей.
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// JWTVerifier инкапсулирует проверку JWT access-токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи токена (только HS256)
//   - валидации issuer и audience
//   - извлечения userID из claims.Subject
//   - перечитывания пользователя из базы на каждый запрос
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)

	users UserLoader
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string, users UserLoader) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience, users: users}
}

// CurrentUser извлекает аутентифицированного пользователя из контекста.
//
// PasswordHash у него всегда пустой — middleware очищает поле до записи
// в контекст.
//
// Возвращает:
//   - пользователя
//   - false, если запрос не аутентифицирован
func CurrentUser(ctx context.Context) (models.User, bool) {
	v := ctx.Value(currentUserKey)
	u, ok := v.(models.User)
	return u, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - извлекает userID из claims.Subject
//   - перечитывает пользователя из базы; если записи уже нет — запрос
//     отклоняется как неавторизованный, а не падает дальше по стеку
//   - кладёт пользователя (без password_hash) в context.Context
//
// В случае ошибки возвращает HTTP 401 Unauthorized.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims := &crypto.AccessClaims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})

			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					http.Error(w, "token expired", http.StatusUnauthorized)
					return
				}
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if v.Issuer != "" && claims.Issuer != v.Issuer {
				http.Error(w, "invalid token issuer", http.StatusUnauthorized)
				return
			}

			if v.Audience != "" {
				ok := false
				for _, aud := range claims.Audience {
					if aud == v.Audience {
						ok = true
						break
					}
				}
				if !ok {
					http.Error(w, "invalid token audience", http.StatusUnauthorized)
					return
				}
			}

			userID, err := uuid.Parse(strings.TrimSpace(claims.Subject))
			if err != nil {
				http.Error(w, "invalid token subject", http.StatusUnauthorized)
				return
			}

			// токен может пережить пользователя — перечитываем запись
			user, err := v.users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, serr.ErrNotFound) {
					http.Error(w, serr.ErrUnauthorized.Error(), http.StatusUnauthorized)
					return
				}
				http.Error(w, serr.ErrInternal.Error(), http.StatusInternalServerError)
				return
			}

			// хэш дальше middleware не уходит
			user.PasswordHash = ""

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
