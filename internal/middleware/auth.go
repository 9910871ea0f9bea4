package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"makom-backend/pkg/logger"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// AdminSubjectContextKey is the key for the authenticated admin subject
	AdminSubjectContextKey ContextKey = "admin_subject"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// AdminAuth gates the back-office routes behind a Supabase-issued HS256 JWT.
// The public site never calls these routes; its client-side admin toggle is
// presentation only and carries no weight here.
func AdminAuth(jwtSecret string, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, "Authorization header is required", logger)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, "Invalid authorization header format", logger)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				writeAuthError(w, "Token is required", logger)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				logger.WithError(err).Warn("Admin token validation failed")
				writeAuthError(w, "Invalid or expired token", logger)
				return
			}

			subject, _ := claims.GetSubject()
			ctx := context.WithValue(r.Context(), AdminSubjectContextKey, subject)
			logger.WithField("subject", subject).Debug("Admin authenticated")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestID creates a middleware that adds a unique request ID to each request
func RequestID(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// generateRequestID generates a simple request ID
func generateRequestID() string {
	return fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
}

// writeAuthError writes the standard failure envelope with a 401 status
func writeAuthError(w http.ResponseWriter, message string, logger *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	response := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Failed to encode auth error response")
	}
}
