package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/utils"
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// BaseHandler carries the shared handler plumbing.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.GetLogger(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	utils.GetLogger(c, h.logger).Error(msg, append(args, "error", err)...)
}

// parseIDParam parses the :id path segment. A non-numeric id means the URL
// never matched a real resource path, so it reports the same 404 body the
// router uses for unknown routes.
func (h *BaseHandler) parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Endpoint not found"})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body, reporting a uniform 400 on malformed
// payloads. Field-level validation happens in the service layer.
func (h *BaseHandler) bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return false
	}
	return true
}

// Audit stages an operation log entry on the context. The audit middleware
// picks it up once the handler chain completes, so entries are only written
// for requests that actually ran.
func (h *BaseHandler) Audit(c *gin.Context, operation, userType string, data map[string]interface{}) {
	c.Set(auditEntryKey, stagedAuditEntry{
		Operation: operation,
		UserType:  userType,
		Data:      data,
	})
}
