package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/akosarev/notekeeper/internal/server/auth"
)

type ctxKey string

const userKey ctxKey = "user"

// requireAuth checks the Authorization header for a bearer token, verifies
// it and puts the embedded owner identity into the request context. A
// missing, malformed, invalid or expired token yields a bare 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if authHeader == "" || !found {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		user, err := auth.GetUserFromToken(tokenString, s.jwtSecret)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the identity stored by requireAuth, or nil when
// the request skipped the middleware.
func userFromContext(ctx context.Context) *auth.UserClaim {
	user, _ := ctx.Value(userKey).(*auth.UserClaim)
	return user
}

// logRequests tags every request with a generated id and logs it.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		s.logger.Info(r.Context(), "request", "request_id", requestID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
