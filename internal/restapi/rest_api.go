package restapi

import (
	"time"

	"obliquity.pulsartiming.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Shutdown releases resources owned by the API, stopping the rate
// limiter's cleanup goroutine. Safe to call more than once.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
