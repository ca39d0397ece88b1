package middlewares

import (
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/utils"
	"net/http"
)

// BodyLimit caps the request body at RequestBodyLimitInMegabyte. Handlers see
// a read error once the cap is crossed.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestTooLarge(nil, limit))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
