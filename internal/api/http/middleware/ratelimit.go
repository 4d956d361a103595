package middleware

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleTTL is how long an unused client bucket is kept.
const idleTTL = 10 * time.Minute

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key (the client IP).
type RateLimiter struct {
	limit     rate.Limit
	burst     int
	perMinute int

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perMinute requests per client, refilled evenly,
// with up to burst requests at once. burst <= 0 means burst = perMinute.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if burst <= 0 {
		burst = perMinute
	}
	return &RateLimiter{
		limit:     rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		perMinute: perMinute,
		clients:   make(map[string]*clientBucket),
		now:       time.Now,
	}
}

// Allow takes one token for key. When none is available it reports how long
// until the next one.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Minute
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// sweep drops idle buckets at most once per idleTTL. Callers hold l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < idleTTL {
		return
	}
	l.lastSweep = now
	for k, b := range l.clients {
		if now.Sub(b.lastSeen) >= idleTTL {
			delete(l.clients, k)
		}
	}
}

// Middleware rejects requests over the limit with a 429 failure envelope.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.perMinute))

		ok, retryAfter := l.Allow(c.ClientIP())
		if !ok {
			abortRateLimited(c, retryAfter)
			return
		}
		c.Next()
	}
}

// PathPrefix limits only requests whose path starts with prefix and passes
// the rest through. Used on NoRoute, where API and page misses share one chain.
func (l *RateLimiter) PathPrefix(prefix string) gin.HandlerFunc {
	limit := l.Middleware()
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}
		limit(c)
	}
}
