package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// corsMiddleware lets pages on other origins embed the widget API.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	policy := newOriginPolicy(allowed)
	return func(c *gin.Context) {
		headers := c.Writer.Header()
		origin := policy.allowOrigin(c.GetHeader("Origin"))
		headers.Set("Access-Control-Allow-Origin", origin)
		headers.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		headers.Set("Access-Control-Allow-Headers", "Content-Type")
		if origin != "*" {
			headers.Set("Access-Control-Allow-Credentials", "true")
			headers.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originPolicy is the configured origin list, indexed case-insensitively.
// An empty list or a "*" entry allows any origin.
type originPolicy struct {
	any     bool
	primary string
	byLower map[string]string
}

func newOriginPolicy(allowed []string) originPolicy {
	policy := originPolicy{any: len(allowed) == 0, byLower: make(map[string]string, len(allowed))}
	for _, origin := range allowed {
		if origin == "*" {
			policy.any = true
			continue
		}
		if policy.primary == "" {
			policy.primary = origin
		}
		policy.byLower[strings.ToLower(origin)] = origin
	}
	return policy
}

// allowOrigin echoes a listed request origin. Unlisted origins get the first
// configured one, which browsers will reject.
func (p originPolicy) allowOrigin(requestOrigin string) string {
	if p.any {
		return "*"
	}
	if _, ok := p.byLower[strings.ToLower(requestOrigin)]; ok && requestOrigin != "" {
		return requestOrigin
	}
	return p.primary
}
