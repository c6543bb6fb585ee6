// internal/auth/context.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/VitaminP8/bloggery/internal/apperr"
)

type contextKey string

const userIDKey = contextKey("userID")

// Сохраняет userID в контексте
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Достает userID из контекста
func GetUserIDFromContext(ctx context.Context) (uint, error) {
	val := ctx.Value(userIDKey)
	id, ok := val.(uint)
	if !ok {
		return 0, errors.New("user ID not found in context")
	}
	return id, nil
}

// Check - контракт authCheck для резолверов: 401, если запрос неаутентифицирован
func Check(ctx context.Context) (uint, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return 0, apperr.Unauthenticated("Not authenticated!")
	}
	return userID, nil
}

// AuthMiddleware - "мягкий" шлюз: извлекает JWT из заголовка, валидирует и кладет userID в context.
// Отсутствующий или невалидный токен запрос не отклоняет - публичные операции
// (login, createUser) должны оставаться доступными; 401 поднимают сами резолверы
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractTokenFromHeader(r.Header.Get("Authorization"))
		if tokenStr == "" {
			next.ServeHTTP(w, r) // неавторизованный доступ — пропускаем
			return
		}

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			http.Error(w, "JWT secret not set", http.StatusInternalServerError)
			return
		}

		userID, err := ParseToken(tokenStr, secret)
		if err != nil {
			next.ServeHTTP(w, r) // если невалидный токен — пропускаем
			return
		}

		ctx := WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractTokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
