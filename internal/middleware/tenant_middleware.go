// internal/middleware/tenant_middleware.go
package middleware

import (
	"fieldserve/internal/pkg/response"
	"fieldserve/internal/service/tenant"

	"github.com/gin-gonic/gin"
)

type TenantMiddleware struct {
	resolver *tenant.Resolver
}

func NewTenantMiddleware(resolver *tenant.Resolver) *TenantMiddleware {
	return &TenantMiddleware{resolver: resolver}
}

// ResolveSlug serves the tenant-prefixed route family. The slug must name
// a real company and must match the caller's own membership: a wrong slug
// never widens access, it only ever narrows it to 404. MUST be used after
// Auth().
func (m *TenantMiddleware) ResolveSlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		co, err := m.resolver.CompanyFromSlug(c.Request.Context(), slug)
		if err != nil {
			response.NotFound(c, "unknown tenant")
			return
		}

		sessionCompany, ok := GetCompanyID(c)
		if !ok || sessionCompany == 0 {
			response.Forbidden(c, "no tenant access")
			return
		}
		if sessionCompany != co.ID {
			// Another tenant's slug: report not-found, not forbidden,
			// so tenant slugs cannot be probed.
			response.NotFound(c, "unknown tenant")
			return
		}

		c.Set(ctxCompanyID, co.ID)
		c.Next()
	}
}
