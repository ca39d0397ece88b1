package middlewares

import (
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%v", x)
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerPanic(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
