// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetUserID gets the authenticated user's id from context
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// GetCompanyID gets the resolved company id from context
func GetCompanyID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxCompanyID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// GetRole gets the session role from context
func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxRole)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// GetSessionToken gets the raw session token from context
func GetSessionToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxToken)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
