package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	visitorCleanupInterval = time.Minute
	visitorIdleTimeout     = 3 * time.Minute
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	ips  map[string]*visitor
	mu   sync.Mutex
	r    rate.Limit
	b    int
	stop chan struct{}
	once sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter starts a background sweeper; call Stop when done.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		ips:  make(map[string]*visitor),
		r:    r,
		b:    b,
		stop: make(chan struct{}),
	}
	go i.cleanupVisitors()
	return i
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	v, exists := i.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(i.r, i.b)
		i.ips[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (i *IPRateLimiter) Stop() {
	i.once.Do(func() { close(i.stop) })
}

func (i *IPRateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-i.stop:
			return
		case <-ticker.C:
			i.evictIdle(time.Now())
		}
	}
}

func (i *IPRateLimiter) evictIdle(now time.Time) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(i.ips, ip)
		}
	}
}

func (i *IPRateLimiter) visitors() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

func RateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, slow down.",
			})
			return
		}
		c.Next()
	}
}
