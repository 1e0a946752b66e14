package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/model"
	"smart-todo/pkg/response"
)

const (
	HeaderProviderToken        = "X-Provider-Token"
	HeaderProviderRefreshToken = "X-Provider-Refresh-Token"

	scopeKey = "scope"
)

// Auth verifies the session token from the Authorization header or the session cookie
// and stores the caller's model.Scope in both the gin and the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && m.cookieConfig.Name != "" {
			token, _ = c.Cookie(m.cookieConfig.Name)
		}
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth Verify: %v", err)
			response.Unauthorized(c)
			return
		}

		sc := model.NewScope(payload)
		sc.ProviderToken = strings.TrimSpace(c.GetHeader(HeaderProviderToken))
		sc.ProviderRefreshToken = strings.TrimSpace(c.GetHeader(HeaderProviderRefreshToken))

		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// GetScope returns the Scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.GetScopeFromContext(c.Request.Context())
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.UserID != ""
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
