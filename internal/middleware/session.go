package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/medidash/clinic-api/internal/service/session"
	"github.com/medidash/clinic-api/pkg/auth"
)

const (
	ContextUserEmail = "user_email"

	tokenCacheTTL     = 5 * time.Minute
	tokenCacheCleanup = 15 * time.Minute
)

// SessionMiddleware gates every protected route behind the session gate: the
// request must carry a valid session token AND the gate must still hold that
// identity (logout revokes access even for unexpired tokens).
type SessionMiddleware struct {
	tokens  auth.TokenService
	service session.SessionService
	cache   *cache.Cache
}

func NewSessionMiddleware(tokens auth.TokenService, service session.SessionService) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:  tokens,
		service: service,
		cache:   cache.New(tokenCacheTTL, tokenCacheCleanup),
	}
}

func (m *SessionMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing authorization header",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid authorization format",
			})
			return
		}

		claims, err := m.validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid token",
			})
			return
		}

		current := m.service.Current(c.Request.Context())
		if current == nil || current.Email != claims.Email {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "no active session",
			})
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

// validate parses a token, caching the claims so repeated requests on the
// same session skip the signature check.
func (m *SessionMiddleware) validate(token string) (*auth.Claims, error) {
	if cached, found := m.cache.Get(token); found {
		return cached.(*auth.Claims), nil
	}

	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	m.cache.Set(token, claims, cache.DefaultExpiration)
	return claims, nil
}
