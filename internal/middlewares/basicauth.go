package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkova/courses-api/internal/logger"
	"github.com/avolkova/courses-api/internal/models"
)

// UserAuthenticator defines the minimal interface needed by the middleware.
type UserAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.UserDB, error)
}

// BasicAuthMiddleware returns a middleware that authenticates requests with
// HTTP Basic credentials. On success the resolved user is bound to the request
// context; on any failure the response is 401 with a generic body and the
// specific reason is only logged.
func BasicAuthMiddleware(auth UserAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email, password, ok := r.BasicAuth()
			if !ok {
				logger.Log.Warnw("authentication failed", "reason", "authorization header not found")
				writeAccessDenied(w)
				return
			}

			user, err := auth.Authenticate(ctx, email, password)
			if err != nil {
				logger.Log.Warnw("authentication failed", "email", email, "reason", err)
				writeAccessDenied(w)
				return
			}

			logger.Log.Infow("authentication success", "email", user.EmailAddress)

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeAccessDenied(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Access Denied"})
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext binds an authenticated user to the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
