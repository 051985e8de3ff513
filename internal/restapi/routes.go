package restapi

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func (api *RestAPI) withAPIKey(finalHandler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	}
}

// Router builds the full handler chain: routing, API key validation,
// compression, security headers, rate limiting and request logging.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/reference/obliquity.json", api.withAPIKey(api.obliquityHandler))
	router.HandlerFunc(http.MethodGet, "/api/reference/obliquity/:id", api.withAPIKey(api.obliquityHandler))
	router.HandlerFunc(http.MethodGet, "/api/reference/obliquity-labels.json", api.withAPIKey(api.obliquityLabelsHandler))
	router.HandlerFunc(http.MethodGet, "/api/reference/obliquity-table.json", api.withAPIKey(api.obliquityTableHandler))
	router.HandlerFunc(http.MethodGet, "/api/reference/current-time.json", api.withAPIKey(api.currentTimeHandler))

	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}

	logger := api.Logger
	if logger == nil {
		logger = slog.Default()
	}
	handler = NewRequestLoggingMiddleware(logger)(handler)

	return handler
}
