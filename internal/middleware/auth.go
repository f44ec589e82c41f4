package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/clipstream/backend/internal/auth"
	"github.com/clipstream/backend/internal/logging"
)

type authCtxKey string

const userIDKey authCtxKey = "userID"

// SessionVerifier resolves a bearer token to the user id it was issued for.
type SessionVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth guards a handler behind session-token authentication. The bearer
// credential is read from the Authorization header; on success the resolved
// user id is stored on the request context for UserIDFromContext. All failures
// are terminal 401s - the wrapped handler is never invoked.
func RequireAuth(sessions SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.FromContext(ctx)

			token, err := bearerToken(r)
			if err != nil {
				logger.Warn("request missing bearer token", "error", err)
				writeAuthError(w, "Authorization token is required", "missing_token")
				return
			}

			userID, err := sessions.Verify(token)
			if err != nil {
				code := "invalid_token"
				if errors.Is(err, auth.ErrExpiredToken) {
					code = "expired_token"
				}
				logger.Warn("session token rejected", "error", err)
				writeAuthError(w, "Token is invalid or expired", code)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

// WithUserID stores an authenticated user id on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil || userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id injected by RequireAuth.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. A missing header, a foreign scheme, or an empty token all fail.
func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", auth.ErrMissingToken
	}

	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", auth.ErrMissingToken
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", auth.ErrMissingToken
	}
	return token, nil
}

func writeAuthError(w http.ResponseWriter, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}
