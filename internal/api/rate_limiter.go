package api

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleExpiry is how long a client entry survives without traffic before it is
// pruned. Keeps the limiter map bounded under churning client identities.
const idleExpiry = 10 * time.Minute

// RateLimiter enforces a per-client request rate. It is an explicit injected
// component rather than process-global state, so tests and multiple servers
// can hold independent instances.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastPrune time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter allowing rps requests per second with
// the given burst per client.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Limit(rps),
		burst:     burst,
		lastPrune: time.Now(),
	}
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastPrune) > idleExpiry {
		rl.prune(now)
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.Allow()
}

// prune drops idle client entries. Caller holds the lock.
func (rl *RateLimiter) prune(now time.Time) {
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleExpiry {
			delete(rl.clients, key)
		}
	}
	rl.lastPrune = now
}
