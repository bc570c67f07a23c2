package display

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/platform/cache"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/resilience"
	"github.com/valyala/fasthttp"
)

// PhotoPlaceholder is served when a player has no usable photo.
const PhotoPlaceholder = "/images/noimage.png"

// ResolvePhoto substitutes PhotoPlaceholder for an empty URL.
func ResolvePhoto(url string) string {
	if strings.TrimSpace(url) == "" {
		return PhotoPlaceholder
	}
	return strings.TrimSpace(url)
}

// PhotoProber checks whether a photo URL can be loaded.
type PhotoProber interface {
	Probe(ctx context.Context, url string) error
}

// PhotoResolver degrades photo URLs that fail to load to the placeholder.
// Probe outcomes are cached per URL. A nil prober only applies ResolvePhoto.
type PhotoResolver struct {
	prober  PhotoProber
	results *cache.Store
	logger  *logging.Logger
}

func NewPhotoResolver(prober PhotoProber, ttl time.Duration, logger *logging.Logger) *PhotoResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &PhotoResolver{
		prober:  prober,
		results: cache.NewStore(ttl),
		logger:  logger,
	}
}

func (r *PhotoResolver) Resolve(ctx context.Context, url string) string {
	resolved := ResolvePhoto(url)
	if r == nil || r.prober == nil || resolved == PhotoPlaceholder || strings.HasPrefix(resolved, "/") {
		return resolved
	}

	ok, err := cache.Load(ctx, r.results, resolved, func(ctx context.Context) (bool, error) {
		if probeErr := r.prober.Probe(ctx, resolved); probeErr != nil {
			r.logger.WarnContext(ctx, "player photo unavailable, using placeholder",
				"url", resolved,
				"error", probeErr,
			)
			return false, nil
		}
		return true, nil
	})
	if err != nil || !ok {
		return PhotoPlaceholder
	}
	return resolved
}

// HTTPPhotoProber issues HEAD requests through fasthttp behind a circuit
// breaker. While the breaker is open every probe fails fast.
type HTTPPhotoProber struct {
	client  *fasthttp.Client
	timeout time.Duration
	breaker *resilience.CircuitBreaker
}

func NewHTTPPhotoProber(timeout time.Duration, breakerCfg resilience.CircuitBreakerConfig) *HTTPPhotoProber {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HTTPPhotoProber{
		client: &fasthttp.Client{
			Name:                     "sportsline-photo-probe",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxConnsPerHost:          16,
			NoDefaultUserAgentHeader: true,
		},
		timeout: timeout,
		breaker: resilience.NewCircuitBreakerFromConfig(breakerCfg),
	}
}

// OnBreakerStateChange forwards breaker transitions to fn. It is a no-op
// when the breaker is disabled.
func (p *HTTPPhotoProber) OnBreakerStateChange(fn func(from, to resilience.CircuitState)) {
	p.breaker.OnStateChange(fn)
}

func (p *HTTPPhotoProber) Probe(ctx context.Context, url string) error {
	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return context.DeadlineExceeded
	}

	return p.breaker.Execute(func() error {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(url)
		req.Header.SetMethod(fasthttp.MethodHead)

		if err := p.client.DoTimeout(req, resp, timeout); err != nil {
			return fmt.Errorf("probe photo: %w", err)
		}
		if status := resp.StatusCode(); status < 200 || status >= 400 {
			return fmt.Errorf("probe photo: status %d", status)
		}
		return nil
	})
}
