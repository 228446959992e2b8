package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests once the shared token bucket is empty.
func RateLimit(limiter *rate.Limiter, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Warnf("rate limit exceeded: %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": http.StatusText(http.StatusTooManyRequests)})
			return
		}
		c.Next()
	}
}
