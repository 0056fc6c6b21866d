package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/akerstrom/insurance-platform-showcase/internal/platform/metrics"
	dErrors "github.com/akerstrom/insurance-platform-showcase/pkg/domain-errors"
	"github.com/akerstrom/insurance-platform-showcase/pkg/platform/httputil"
)

// maxTrackedClients bounds the limiter map. When reached, all buckets are
// dropped and clients start fresh.
const maxTrackedClients = 10000

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	limiters sync.Map
	tracked  atomic.Int64
	rate     rate.Limit
	burst    int
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewIPRateLimiter returns nil when rps is zero, which RateLimit treats as
// "disabled". A zero burst defaults to one request.
func NewIPRateLimiter(rps float64, burst int, logger *slog.Logger, m *metrics.Metrics) *IPRateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		rate:    rate.Limit(rps),
		burst:   burst,
		logger:  logger,
		metrics: m,
	}
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	if v, ok := l.limiters.Load(ip); ok {
		return v.(*rate.Limiter)
	}
	if l.tracked.Load() >= maxTrackedClients {
		l.limiters.Clear()
		l.tracked.Store(0)
	}
	v, loaded := l.limiters.LoadOrStore(ip, rate.NewLimiter(l.rate, l.burst))
	if !loaded {
		l.tracked.Add(1)
	}
	return v.(*rate.Limiter)
}

// RateLimit rejects requests over the client's budget with 429.
func (l *IPRateLimiter) RateLimit(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.limiter(ip).Allow() {
			l.metrics.IncrementRateLimited()
			l.logger.WarnContext(r.Context(), "rate limit exceeded",
				"request_id", GetRequestID(r.Context()),
				"client_ip", ip,
				"path", r.URL.Path,
			)
			w.Header().Set("Retry-After", "1")
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "Too many requests. Please slow down."))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP expects chi's RealIP to have normalized RemoteAddr already.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
