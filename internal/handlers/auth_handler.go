package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/services"
	"github.com/medirec/hospital-service/internal/utils"
	"github.com/medirec/hospital-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	service  services.AuthService
	tokenTTL int
}

func NewAuthHandler(service services.AuthService, tokenTTLSeconds int, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		tokenTTL:    tokenTTLSeconds,
	}
}

// Register creates a new account
// @Summary Register a new account
// @Description Create an admin, doctor, or patient account. Usernames are unique across all roles.
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Bad request - missing or invalid fields"
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	h.LogRequest(c, "Registering account")

	var req services.RegisterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Audit(c, OpRegister, strings.ToUpper(string(result.Role)), map[string]interface{}{
		"username": result.Username,
		"role":     string(result.Role),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":  roleTitle(string(result.Role)) + " registered successfully",
		"username": result.Username,
	})
}

// Login authenticates an account
// @Summary Log in
// @Description Verify credentials against the table matching user_type and issue a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	h.LogRequest(c, "Logging in")

	var req services.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: verrs.LoginWireMessage()})
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.SetCookie(SessionCookieName, result.Token, h.tokenTTL, "/", "", false, true)

	h.Audit(c, OpLogin, strings.ToUpper(string(result.User.UserType)), map[string]interface{}{
		"username": result.User.Username,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    result.User,
	})
}

// Logout ends the session
// @Summary Log out
// @Description Clear the session cookie. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.LogRequest(c, "Logging out")

	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)

	h.Audit(c, OpLogout, actorType(c), map[string]interface{}{
		"username": c.GetString("username"),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: verrs.WireMessage()})
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Username already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid credentials"})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}

// actorType reports the authenticated role in audit-log casing, UNKNOWN when
// the request carries no valid session.
func actorType(c *gin.Context) string {
	if role := c.GetString("user_role"); role != "" {
		return strings.ToUpper(role)
	}
	return "UNKNOWN"
}

func roleTitle(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
