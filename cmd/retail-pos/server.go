package main

import (
	"net/http"

	"github.com/aaravmahajanofficial/retail-pos/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	"github.com/aaravmahajanofficial/retail-pos/internal/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// newServerHandler wraps the router, innermost first. Logging sits outside
// the limiter and CORS so their log lines carry the correlation id.
func newServerHandler(cfg *config.Config, routerMux http.Handler) http.Handler {

	handler := routerMux
	if cfg.APIRateLimit.Enabled {
		handler = middleware.NewRateLimiter(&cfg.APIRateLimit).Limit(handler)
	}
	handler = middleware.CORS(&cfg.CORS)(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "retail-pos")

	return handler
}
