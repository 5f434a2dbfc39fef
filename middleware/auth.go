// --- middleware/auth.go ---
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/emmanuel20-pro/Actividad-3/auth"
)

// ContextKey is a custom type to avoid context key collisions.
type ContextKey string

// UserKey is the key under which the authenticated identity is stored
// in the request context.
const UserKey ContextKey = "usuario"

// Authenticate rejects requests that do not carry a valid token before
// they reach a handler. The clients send the raw token string in the
// Authorization header, with no "Bearer " prefix, so the header value
// is used as-is.
func Authenticate(tokens *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				writeMessage(w, http.StatusUnauthorized, "Acceso denegado")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				// Expired, malformed and badly signed tokens all get
				// the same response, so callers cannot probe token state.
				writeMessage(w, http.StatusBadRequest, "Token inválido")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, claims.Usuario)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeMessage(w http.ResponseWriter, code int, mensaje string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"mensaje": mensaje})
}
