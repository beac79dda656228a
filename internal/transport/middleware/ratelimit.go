package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Buckets idle longer than this are dropped on the next cleanup tick.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter applies a per-client token bucket. Clients are keyed by IP,
// honoring the first X-Forwarded-For hop when a proxy sits in front.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	stop    chan struct{}
}

// bucket accrues refillPerSec tokens up to burst; each request spends one.
type bucket struct {
	mu           sync.Mutex
	tokens       float64
	burst        float64
	refillPerSec float64
	touched      time.Time
}

// NewRateLimiter creates a rate limiter whose idle buckets are reaped every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go rl.reapIdle(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware allowing maxPerMinute requests per client, with
// bursts up to the full minute budget. Rejections carry a Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(clientKey(r), maxPerMinute)
			if !b.take() {
				secondsPerToken := 60.0 / float64(maxPerMinute)
				w.Header().Set("Retry-After", strconv.Itoa(int(secondsPerToken)+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller: first X-Forwarded-For hop if present,
// otherwise the connection's remote IP without the port.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		budget := float64(maxPerMinute)
		b = &bucket{
			tokens:       budget,
			burst:        budget,
			refillPerSec: budget / 60.0,
			touched:      time.Now(),
		}
		rl.buckets[key] = b
	}
	return b
}

func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.touched).Seconds() * b.refillPerSec
	if b.tokens > b.burst {
		b.tokens = b.burst
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) reapIdle(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.mu.Lock()
			for key, b := range rl.buckets {
				b.mu.Lock()
				idle := now.Sub(b.touched)
				b.mu.Unlock()
				if idle > bucketIdleTTL {
					delete(rl.buckets, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
