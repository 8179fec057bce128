// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"fieldserve/internal/domain/user"
	"fieldserve/internal/middleware"
	"fieldserve/internal/pkg/response"
	service "fieldserve/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	cookieName  string
	cookieMaxAge int
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, cookieName string, cookieMaxAge int, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		logger:       logger,
	}
}

// Login authenticates and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}

	u, sess, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// Unknown user and wrong password look identical to the caller.
		response.Unauthorized(c, "invalid credentials")
		return
	}

	c.SetCookie(h.cookieName, sess.Token, h.cookieMaxAge, "/", "", false, true)
	response.Success(c, http.StatusOK, "logged in", u)
}

// GetMe returns the current user and its resolved company.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	me, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "current user", me)
}

// Logout destroys the session and clears the cookie. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := middleware.GetSessionToken(c)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.logger.Warn("failed to destroy session", zap.Error(err))
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "logged out", nil)
}
