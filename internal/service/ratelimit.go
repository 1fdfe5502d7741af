package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Login throttling defaults: a burst of 5 attempts, refilling at 5 per
// minute, tracked per email. Brute-force protection only; legitimate
// users retrying a typo never notice it.
const (
	loginAttemptsPerWindow = 5
	loginWindow            = time.Minute
	loginBurst             = 5
)

// loginLimiter tracks a token-bucket limiter per key (the attempted
// email). Keys are ephemeral, so idle limiters are swept periodically to
// keep the map bounded.
type loginLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	limit    rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func newLoginLimiter(perWindow int, window time.Duration, burst int) *loginLimiter {
	return &loginLimiter{
		limit:       rate.Limit(float64(perWindow) / window.Seconds()),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

// Allow reports whether another attempt for key may proceed, consuming a
// token if so.
func (rl *loginLimiter) Allow(key string) bool {
	return rl.get(key).Allow()
}

func (rl *loginLimiter) get(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)

	rl.maybeCleanup()
	return actual.(*rate.Limiter)
}

// maybeCleanup drops limiters whose buckets are full again; a full bucket
// means the key has been idle for at least a whole window.
func (rl *loginLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}
