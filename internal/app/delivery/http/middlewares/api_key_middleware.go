package middlewares

import (
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/utils"
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

const HeaderAPIKey = "x-api-key"

// RequireAPIKey guards the API with the key from APP_API_KEY. When no key is
// configured every request passes.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := m.InternalConfig.App.APIKey
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(errors.New("missing api key header")))
			return
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			m.Log.Warn("API key authentication failed",
				zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
