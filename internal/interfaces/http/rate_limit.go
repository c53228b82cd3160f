package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/integraprice-api/internal/domain"
	"github.com/jhoicas/integraprice-api/pkg/logger"
)

// limiterTTL tiempo sin solicitudes tras el cual se olvida el limitador de una IP.
const limiterTTL = 5 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket por IP de cliente.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	limiters map[string]*ipLimiter
	lastGC   time.Time
}

// NewRateLimiter construye el limitador (rps solicitudes por segundo, ráfaga burst).
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		limiters: make(map[string]*ipLimiter),
	}
}

// Allow consume un token de la IP.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastGC) > limiterTTL {
		for k, l := range rl.limiters {
			if now.Sub(l.lastSeen) > limiterTTL {
				delete(rl.limiters, k)
			}
		}
		rl.lastGC = now
	}

	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastSeen = now
	return l.limiter.AllowN(now, 1)
}

// RateLimit middleware que responde 429 cuando la IP agota su cupo.
func RateLimit(rl *RateLimiter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !rl.Allow(ip) {
			log.Warn().Str("ip", ip).Str("path", c.Path()).Msg("rate limit excedido")
			c.Set(fiber.HeaderRetryAfter, "1")
			return writeError(c, domain.ErrRateLimited)
		}
		return c.Next()
	}
}
