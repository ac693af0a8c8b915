package server

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// requireAuth guards a handler with the configured API token. An empty hash
// in config disables auth. The hash is read per request so `token set`
// takes effect through the config watcher without a restart.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash := s.Manager.Get().Server.AuthTokenHash
		if hash == "" {
			next(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or missing token"})
			return
		}
		next(w, r)
	})
}

// bearerToken extracts the API token from the Authorization header, falling
// back to the token query parameter because browser WebSocket clients cannot
// set headers.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return r.URL.Query().Get("token")
}
