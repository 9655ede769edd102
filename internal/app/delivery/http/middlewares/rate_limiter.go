package middlewares

import (
	"net/http"
	"storyai-service/internal/pkg/exceptions"
	"storyai-service/internal/pkg/utils"

	"golang.org/x/time/rate"
)

// ThrottleAutoSlot bounds the auto-slot endpoint. Slot resolution walks the
// whole day per requested weekday, so it gets a tighter budget than the
// per-IP limit on the rest of the API.
func (m *Middlewares) ThrottleAutoSlot() func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(m.InternalConfig.App.MaxRequests), m.InternalConfig.App.MaxRequests)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
