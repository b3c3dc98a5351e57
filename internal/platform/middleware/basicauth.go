package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"roster/pkg/secrets"
)

// RequireBasicAuth guards journey-facing endpoints with the HTTP basic
// credentials the orchestration engine is configured to present on REST
// profile calls. The password is verified against a bcrypt hash so plaintext
// credentials never live in configuration.
func RequireBasicAuth(username, passwordHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			user, password, ok := r.BasicAuth()
			if !ok {
				logger.WarnContext(ctx, "unauthorized journey call - missing basic credentials",
					"request_id", requestID,
				)
				writeBasicUnauthorized(w)
				return
			}

			// Constant-time username comparison; bcrypt handles the password.
			if subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 {
				logger.WarnContext(ctx, "unauthorized journey call - unknown user",
					"request_id", requestID,
				)
				writeBasicUnauthorized(w)
				return
			}

			if err := secrets.Verify(password, passwordHash); err != nil {
				logger.WarnContext(ctx, "unauthorized journey call - invalid secret",
					"request_id", requestID,
				)
				writeBasicUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeBasicUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="roster"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Missing or invalid basic credentials"}`))
}
