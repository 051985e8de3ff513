package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware provides per-API-key rate limiting
type RateLimitMiddleware struct {
	limiters    map[string]*rate.Limiter
	mu          sync.RWMutex
	rateLimit   rate.Limit
	burstSize   int
	cleanupTick *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
// ratePerSecond is the number of requests allowed per interval per API key;
// zero blocks all requests and a negative value disables limiting.
// Callers that own the middleware should call Stop on shutdown.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration) *RateLimitMiddleware {
	var rateLimit rate.Limit
	switch {
	case ratePerSecond < 0:
		rateLimit = rate.Inf
	case ratePerSecond == 0:
		rateLimit = 0
	default:
		rateLimit = rate.Every(interval / time.Duration(ratePerSecond))
	}

	middleware := &RateLimitMiddleware{
		limiters:    make(map[string]*rate.Limiter),
		rateLimit:   rateLimit,
		burstSize:   ratePerSecond,
		cleanupTick: time.NewTicker(5 * time.Minute),
		done:        make(chan struct{}),
	}

	go middleware.cleanup()

	return middleware
}

// getLimiter gets or creates a rate limiter for the given API key
func (rl *RateLimitMiddleware) getLimiter(apiKey string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[apiKey]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := rl.limiters[apiKey]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[apiKey] = limiter

	return limiter
}

// Handler is the HTTP middleware function
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.URL.Query().Get("key")
		if apiKey == "" {
			apiKey = "__no_key__"
		}

		limiter := rl.getLimiter(apiKey)

		if !limiter.Allow() {
			rl.sendRateLimitExceeded(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	var retryAfter time.Duration
	switch {
	case rl.rateLimit == 0:
		retryAfter = time.Hour
	case rl.rateLimit == rate.Inf:
		retryAfter = time.Second
	default:
		retryAfter = time.Duration(float64(time.Second) / float64(rl.rateLimit))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	errorResponse := map[string]interface{}{
		"code": http.StatusTooManyRequests,
		"text": "Rate limit exceeded. Please try again later.",
		"data": map[string]interface{}{
			"entry": nil,
			"references": map[string]interface{}{
				"sources": []interface{}{},
			},
		},
		"currentTime": time.Now().UnixMilli(),
		"version":     2,
	}

	_ = json.NewEncoder(w).Encode(errorResponse)
}

// cleanup periodically removes idle limiters to prevent unbounded growth
func (rl *RateLimitMiddleware) cleanup() {
	for {
		select {
		case <-rl.done:
			return
		case <-rl.cleanupTick.C:
			rl.mu.Lock()
			for key, limiter := range rl.limiters {
				// A limiter with available tokens has been idle long enough to
				// refill; drop it and let it be recreated on demand.
				if limiter.Tokens() > 0 {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
}
