package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/PGS-QueueService/internal/api/handlers"
)

// HeaderStaffID заголовок идентификации сотрудника
// Аутентификацию выполняет вышестоящий шлюз; сервис доверяет заголовку
const HeaderStaffID = "X-Staff-ID"

const msgMissingStaffID = "отсутствует идентификатор сотрудника"

type contextKey string

const staffIDKey contextKey = "staffID"

// Auth проверяет наличие идентификатора сотрудника в заголовке
// и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffIDStr := r.Header.Get(HeaderStaffID)
		if staffIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID извлекает идентификатор сотрудника из контекста
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
