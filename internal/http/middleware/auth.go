// Identity middleware.
//
// Resolves the request's bearer token into a caller identity and stores it
// in the Gin context for handlers to read. Resolution never rejects a
// request: a missing, malformed, expired, or revoked token simply yields
// the anonymous caller, and each endpoint decides for itself whether
// anonymity is acceptable. This keeps public reads (ad lists, profiles)
// and authenticated writes on the same route tree with one middleware.
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gorodok/go-market-backend/internal/domain"
)

// callerKey is the Gin context key under which the resolved caller is stored.
const callerKey = "caller"

// IdentityResolver turns a raw bearer token into a caller identity.
// Implementations must not fail: unusable tokens resolve to anonymous.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, raw string) domain.Caller
}

// Identity returns middleware that resolves the Authorization header into
// a domain.Caller and stores it in the request context.
func Identity(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		c.Set(callerKey, resolver.ResolveIdentity(c.Request.Context(), raw))
		c.Next()
	}
}

// CallerFrom returns the caller stored by Identity, or the anonymous
// caller when the middleware did not run.
func CallerFrom(c *gin.Context) domain.Caller {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(domain.Caller); ok {
			return caller
		}
	}
	return domain.Anonymous
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
// Returns "" for any other shape.
func bearerToken(h string) string {
	h = strings.TrimSpace(h)
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
