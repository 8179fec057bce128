// internal/middleware/auth_middleware.go
package middleware

import (
	"fieldserve/internal/pkg/response"
	"fieldserve/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "user_id"
	ctxCompanyID = "company_id"
	ctxRole      = "role"
	ctxToken     = "session_token"
)

type AuthMiddleware struct {
	sessions *session.Manager
	cookie   string
}

func NewAuthMiddleware(sessions *session.Manager, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		cookie:   cookieName,
	}
}

// Auth resolves the session cookie to its payload and puts the request's
// identity on the context. Missing or expired sessions end the request
// with 401; nothing downstream ever sees an unauthenticated context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookie)
		if err != nil || token == "" {
			response.Unauthorized(c, "authentication required")
			return
		}

		data, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired session")
			return
		}

		c.Set(ctxUserID, data.UserID)
		c.Set(ctxCompanyID, data.CompanyID)
		c.Set(ctxRole, data.Role)
		c.Set(ctxToken, token)

		c.Next()
	}
}

// RequireTenant rejects authenticated users that have no company
// membership. MUST be used after Auth().
func (m *AuthMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := GetCompanyID(c)
		if !ok || companyID == 0 {
			response.Forbidden(c, "no tenant access")
			return
		}
		c.Next()
	}
}
