package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tasklane/tasklane/internal/app/auth"
	"github.com/tasklane/tasklane/internal/domain/model"
)

const (
	identityKey = "tasklane.identity"
	tokenKey    = "tasklane.token"
)

// Auth gates a route group behind bearer-token authentication. A missing or
// malformed Authorization header, and any token the resolver rejects, stops
// the request with 401 before any handler runs. The response body never
// says which check failed.
func Auth(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		identity, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		c.Set(identityKey, identity)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CurrentIdentity returns the identity the Auth middleware resolved for
// this request.
func CurrentIdentity(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return model.Identity{}, false
	}
	id, ok := v.(model.Identity)
	return id, ok
}

// CurrentToken returns the raw bearer token the Auth middleware accepted.
func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
