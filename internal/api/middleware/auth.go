// Package middleware - HTTP middleware роутера
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/haruyasu/booking-service/internal/api/handlers"
)

// userIDKey ключ контекста для ID аутентифицированного пользователя
type userIDKey struct{}

// Auth требует заголовок X-User-ID и кладет ID пользователя в контекст
// Проверка подлинности выполняется на внешнем шлюзе, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
