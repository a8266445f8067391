package petcareserver

import (
	"github.com/gin-gonic/gin"

	authapp "github.com/petcare/petcare-api/internal/domains/auth/application"
)

// Authenticate runs the interceptor chain against the matched route.
// Unmatched routes pass through so the router answers 404.
func Authenticate(chain *authapp.Chain) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			c.Next()
			return
		}
		req := &authapp.Request{
			Method: c.Request.Method,
			Route:  route,
			Header: c.Request.Header,
		}
		identity, err := chain.Authorize(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		if identity != nil {
			c.Request = c.Request.WithContext(authapp.ContextWithIdentity(c.Request.Context(), *identity))
		}
		c.Next()
	}
}
