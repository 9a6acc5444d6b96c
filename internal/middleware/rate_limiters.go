package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/cookiemice-api/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterInfo is a struct that holds a rate limiter and the last time it was seen.
type limiterInfo struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

func (l *limiterInfo) touch() {
	l.mu.Lock()
	l.lastSeen = time.Now()
	l.mu.Unlock()
}

func (l *limiterInfo) idleFor() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return time.Since(l.lastSeen)
}

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	rps      int
	limiters sync.Map
}

// NewIPRateLimiter allows rps requests per second per IP with a burst of rps.
// Buckets idle for longer than expiration are dropped every cleanupInterval
// until stop is closed.
func NewIPRateLimiter(rps int, cleanupInterval, expiration time.Duration, stop <-chan struct{}) *IPRateLimiter {
	l := &IPRateLimiter{rps: rps}
	go l.cleanup(cleanupInterval, expiration, stop)
	return l
}

func (l *IPRateLimiter) cleanup(interval, expiration time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.limiters.Range(func(key, value interface{}) bool {
				if value.(*limiterInfo).idleFor() > expiration {
					l.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

// Allow reports whether ip may make another request now.
func (l *IPRateLimiter) Allow(ip string) bool {
	actual, _ := l.limiters.LoadOrStore(ip, &limiterInfo{
		limiter:  rate.NewLimiter(rate.Limit(l.rps), l.rps),
		lastSeen: time.Now(),
	})

	info := actual.(*limiterInfo)
	info.touch()
	return info.limiter.Allow()
}

// RateLimitByIP rejects requests beyond the limiter's budget with 429.
// A nil limiter disables limiting.
func RateLimitByIP(l *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		logger.For(c).Warn("rate limit exceeded", zap.String("ip", c.ClientIP()))
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	}
}
