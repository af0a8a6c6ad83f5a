package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(capacity, perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewTokenBucket(capacity, perMinute).Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestTokenBucketAllowsWithinBurst(t *testing.T) {
	router := limitedRouter(3, 60)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestTokenBucketRejectsBeyondBurst(t *testing.T) {
	router := limitedRouter(2, 60)

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestTokenBucketTracksClientsSeparately(t *testing.T) {
	router := limitedRouter(1, 60)

	first := httptest.NewRecorder()
	reqA := httptest.NewRequest("GET", "/ping", nil)
	reqA.RemoteAddr = "10.0.0.3:1234"
	router.ServeHTTP(first, reqA)
	assert.Equal(t, http.StatusOK, first.Code)

	// A different client still has its own budget
	second := httptest.NewRecorder()
	reqB := httptest.NewRequest("GET", "/ping", nil)
	reqB.RemoteAddr = "10.0.0.4:1234"
	router.ServeHTTP(second, reqB)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestTokenBucketEvictsIdleClients(t *testing.T) {
	limiter := NewTokenBucket(3, 60)

	assert.True(t, limiter.allow("10.0.0.5"))
	assert.True(t, limiter.allow("10.0.0.6"))
	assert.Len(t, limiter.state, 2)

	// Age one bucket past a full refill and make the next call sweep
	limiter.mu.Lock()
	limiter.state["10.0.0.5"].last = time.Now().Add(-time.Hour)
	limiter.lastSweep = time.Now().Add(-2 * sweepInterval)
	limiter.mu.Unlock()

	assert.True(t, limiter.allow("10.0.0.7"))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.state, "10.0.0.5")
	assert.Contains(t, limiter.state, "10.0.0.6")
	assert.Contains(t, limiter.state, "10.0.0.7")
}

func TestTokenBucketSweepKeepsActiveClientBudget(t *testing.T) {
	limiter := NewTokenBucket(1, 60)

	assert.True(t, limiter.allow("10.0.0.8"))

	// An immediate sweep must not reset a bucket that is merely drained
	limiter.mu.Lock()
	limiter.lastSweep = time.Now().Add(-2 * sweepInterval)
	limiter.mu.Unlock()

	assert.False(t, limiter.allow("10.0.0.8"))
}
