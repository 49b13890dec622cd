package middleware

import (
	"sync"
	"time"

	appErrors "Cofrinho/internal/errors"

	"github.com/gin-gonic/gin"
	"k8s.io/utils/clock"
)

// RateLimiter e uma janela deslizante por chave (usuario ou IP).
type RateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	limit    int
	window   time.Duration
	clock    clock.PassiveClock
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return newRateLimiter(limit, window, clock.RealClock{})
}

func newRateLimiter(limit int, window time.Duration, clk clock.PassiveClock) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		clock:    clk,
		stop:     make(chan struct{}),
	}
}

// Start dispara a limpeza periodica das chaves ociosas ate Stop ser chamado.
func (rl *RateLimiter) Start() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stop:
				return
			}
		}
	}()
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	windowStart := rl.clock.Now().Add(-rl.window)
	for key, timestamps := range rl.requests {
		valid := pruneBefore(timestamps, windowStart)
		if len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	valid := pruneBefore(rl.requests[key], now.Add(-rl.window))

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

func (rl *RateLimiter) keys() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.requests)
}

func pruneBefore(timestamps []time.Time, windowStart time.Time) []time.Time {
	var valid []time.Time
	for _, t := range timestamps {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	return valid
}

// RateLimitByUser limita pelo usuario autenticado e, sem ele, pelo IP.
func RateLimitByUser(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID := c.GetString(UserIDKey); userID != "" {
			key = userID
		}

		if !limiter.Allow(key) {
			abortWithError(c, appErrors.ErrRateLimited)
			return
		}

		c.Next()
	}
}
