package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyAuth guards the token-issuing endpoint. The configured value is a
// bcrypt hash so a leaked environment dump does not expose the key itself.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" || m.InternalConfig.Admin.APIKeyHash == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminAPIKeyMismatch(fmt.Errorf("missing api key")))
			return
		}

		err := bcrypt.CompareHashAndPassword([]byte(m.InternalConfig.Admin.APIKeyHash), []byte(apiKey))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminAPIKeyMismatch(err))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminAuth verifies the dashboard bearer token and stores its subject on
// the context.
func (m *Middlewares) AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminTokenInvalid(fmt.Errorf("missing bearer token")))
			return
		}

		subject, err := m.JWTManager.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_SUB_KEY, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
