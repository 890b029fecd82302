package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"cpu-scheduling-simulator/config"
)

const minClientIdle = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idle are dropped; by then they would have refilled anyway.
type RateLimiter struct {
	clients   map[string]*clientLimiter
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter returns a limiter that admits every request when
// RequestsPerSecond is not positive.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	limit := rate.Inf
	burst := max(cfg.Burst, 1)
	idle := minClientIdle
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		refill := time.Duration(float64(burst) / cfg.RequestsPerSecond * float64(time.Second))
		idle = max(idle, refill)
	}
	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		limit:     limit,
		burst:     burst,
		idle:      idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !rl.limiter(ctx.IP()).Allow() {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return ctx.Next()
	}
}

func (rl *RateLimiter) limiter(clientIP string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idle {
		rl.sweep(now)
	}
	client, ok := rl.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = client
	}
	client.lastSeen = now
	return client.limiter
}

// sweep drops the clients not seen for rl.idle. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for ip, client := range rl.clients {
		if now.Sub(client.lastSeen) >= rl.idle {
			delete(rl.clients, ip)
		}
	}
	rl.lastSweep = now
}

func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}
