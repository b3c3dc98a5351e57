package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// AdminClaims represents the claims we expect from a validated admin token.
type AdminClaims struct {
	Subject string
	Role    string
}

// TokenValidator defines the interface for validating admin bearer tokens.
type TokenValidator interface {
	ValidateAdminToken(tokenString string) (*AdminClaims, error)
}

// RoleAdmin is the role required for directory administration endpoints.
const RoleAdmin = "admin"

type contextKeyAdminSubject struct{}

// GetAdminSubject retrieves the authenticated admin subject from the context.
func GetAdminSubject(ctx context.Context) string {
	subject, ok := ctx.Value(contextKeyAdminSubject{}).(string)
	if !ok {
		return ""
	}
	return subject
}

// RequireAdmin guards directory administration endpoints with a bearer JWT
// carrying the admin role.
func RequireAdmin(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized admin access - missing token",
					"request_id", requestID,
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateAdminToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized admin access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			if claims.Role != RoleAdmin {
				logger.WarnContext(ctx, "forbidden admin access - missing admin role",
					"subject", claims.Subject,
					"role", claims.Role,
					"request_id", requestID,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"forbidden","error_description":"Admin role required"}`))
				return
			}

			ctx = context.WithValue(ctx, contextKeyAdminSubject{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
