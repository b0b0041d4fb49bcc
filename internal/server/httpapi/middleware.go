package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/rentboard/internal/server/auth"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type ctxKey int

const currentUserKey ctxKey = iota

// currentUser resolves the Authorization header to a live user record and
// stores it in the request context. Any failure, missing header included,
// yields the same generic 401 so callers cannot probe for valid usernames.
func (s *Server) currentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, prefix) {
			s.writeUnauthorized(w)
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, prefix), s.jwtSecret)
		if err != nil {
			s.logger.Debug(r.Context(), "token rejected", "error", err.Error())
			s.writeUnauthorized(w)
			return
		}

		// Authorization decisions use the current record, not the
		// claims snapshot, so role changes take effect immediately.
		user, err := s.users.GetByUsername(r.Context(), claims.Subject)
		if err != nil {
			s.writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*models.User)
	return user, ok
}
