package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostelops/washline/internal/app/models/dto"
)

// sweepInterval caps how often the idle-bucket sweep runs
const sweepInterval = time.Minute

// TokenBucket is an in-memory per-IP rate limiter. State lives in process
// memory, so limits apply per instance. Buckets idle long enough to be full
// again are swept so the map does not grow with every client IP ever seen.
type TokenBucket struct {
	capacity  int
	rate      int
	idleTTL   time.Duration
	mu        sync.Mutex
	state     map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	tokens int
	last   time.Time
}

// NewTokenBucket creates a limiter holding capacity tokens refilled at
// perMinute tokens per minute
func NewTokenBucket(capacity, perMinute int) *TokenBucket {
	if capacity <= 0 {
		capacity = perMinute
	}
	// A bucket idle past a full refill behaves like a fresh one, so it can
	// be dropped once that much time has passed.
	idleTTL := time.Duration(float64(capacity) / float64(perMinute) * float64(time.Minute))
	if idleTTL < sweepInterval {
		idleTTL = sweepInterval
	}
	return &TokenBucket{
		capacity:  capacity,
		rate:      perMinute,
		idleTTL:   idleTTL,
		state:     make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// Middleware enforces the per-IP limit
func (l *TokenBucket) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.allow(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.APIResponse{
				Error:     dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many requests"),
				Timestamp: time.Now(),
			})
			return
		}
		c.Next()
	}
}

func (l *TokenBucket) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweep(now)
	}

	b, ok := l.state[key]
	if !ok {
		l.state[key] = &bucket{tokens: l.capacity - 1, last: now}
		return true
	}

	refill := int(now.Sub(b.last).Minutes() * float64(l.rate))
	if refill > 0 {
		b.tokens += refill
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets idle past idleTTL. Caller holds the lock.
func (l *TokenBucket) sweep(now time.Time) {
	for key, b := range l.state {
		if now.Sub(b.last) >= l.idleTTL {
			delete(l.state, key)
		}
	}
	l.lastSweep = now
}
