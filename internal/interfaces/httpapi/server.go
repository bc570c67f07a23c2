package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sportsline-dashboard/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	Metrics            *Metrics
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled, opts.Metrics)
	registerPublicRoutes(mux, handler)
	registerRosterAPIRoutes(mux, handler)

	var h http.Handler = recoverPanic(logger, mux)
	h = opts.Metrics.Instrument(mux, h)
	h = RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, h)
	h = CORS(opts.CORSAllowedOrigins, h)
	h = RequestLogging(logger, h)
	h = RequestID(h)
	return RequestTracing(h)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
