package middlewares

import (
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit allows MaxRequests per IP within the configured window and
// answers with the usual error envelope once the budget is spent.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil, r.RemoteAddr))
		}),
	)
}
