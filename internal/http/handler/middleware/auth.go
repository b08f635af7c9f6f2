package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	UserIDKey    contextKey = "user_id"
	APIKeyHeader            = "X-API-Key"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	ValidateToken(token string) (string, error)
	ResolveAPIKey(ctx context.Context, rawKey string) (string, error)
}

type AuthMiddleware struct {
	logs *zap.SugaredLogger
	auth Authenticator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		logs: logger,
		auth: auth,
	}
}

// Authenticate accepts either "Authorization: Bearer <jwt>" or an X-API-Key
// header.
func (m *AuthMiddleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateSocket also accepts a "token" query parameter, since browsers
// cannot set headers on a websocket handshake. Use it only on websocket
// routes.
func (m *AuthMiddleware) AuthenticateSocket(next http.HandlerFunc) http.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next http.HandlerFunc, allowQuery bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		userID, err := m.resolve(r, allowQuery)
		if err != nil {
			m.logs.Errorw("request not authenticated",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			unauthorized(w, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) resolve(r *http.Request, allowQuery bool) (string, error) {
	if apiKey := strings.TrimSpace(r.Header.Get(APIKeyHeader)); apiKey != "" {
		return m.auth.ResolveAPIKey(r.Context(), apiKey)
	}

	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", errMalformedAuthorization
		}
		return m.auth.ValidateToken(strings.TrimSpace(parts[1]))
	}

	if token := r.URL.Query().Get("token"); allowQuery && token != "" {
		return m.auth.ValidateToken(token)
	}

	return "", errMissingCredentials
}

func UserIDFrom(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   detail,
	})
}
