package handler

import (
	"crypto/subtle"
	"log"
	"net/http"
	"pulsovital-golang/internal/model/response"
)

// RequireAPIKey rejects requests whose X-API-Key header does not match key.
// An empty key disables the check entirely.
func RequireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" {
				provided := r.Header.Get("X-API-Key")
				if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
					log.Printf("rejected request to %s: missing or invalid API key", r.URL.Path)
					response.WriteJSON(w, http.StatusUnauthorized, response.Error("Unauthorized"))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
