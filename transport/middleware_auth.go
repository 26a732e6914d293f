package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/fashion-directory/application/session"
	"github.com/muhammadheryan/fashion-directory/constant"
	utilsContext "github.com/muhammadheryan/fashion-directory/utils/context"
	"github.com/muhammadheryan/fashion-directory/utils/errors"
)

// AuthMiddleware returns a middleware that validates bearer tokens using
// SessionApp. Reads and the auth endpoints are public; logout and designer
// mutations need the token of the current session user.
func AuthMiddleware(sessionApp session.SessionApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := sessionApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute defines which requests need no token
func isPublicRoute(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/logout" {
		return false
	}
	if path == "/designers/filters" {
		return true
	}
	if path == "/designers" || strings.HasPrefix(path, "/designers/") {
		return method == http.MethodGet
	}

	return true
}
