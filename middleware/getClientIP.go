package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP picks the caller address used for rate limiting and access logs.
// The first parseable X-Forwarded-For hop wins, then X-Real-IP, then gin's view.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		for _, hop := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(hop)); ip != nil {
				return ip.String()
			}
		}
	}
	if ip := net.ParseIP(strings.TrimSpace(c.GetHeader("X-Real-IP"))); ip != nil {
		return ip.String()
	}
	return c.ClientIP()
}
