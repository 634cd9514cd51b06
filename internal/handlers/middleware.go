package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	uuid2 "github.com/google/uuid"

	"github.com/medirec/hospital-service/internal/audit"
	"github.com/medirec/hospital-service/internal/auth"
	"github.com/medirec/hospital-service/internal/utils"
)

const (
	auditEntryKey = "audit_entry"

	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "session_token"
)

// Operation names written to the audit log.
const (
	OpRegister = "REGISTER"
	OpLogin    = "LOGIN"
	OpLogout   = "LOGOUT"
	OpGetAll   = "GET_ALL"
	OpGet      = "GET"
	OpGetStats = "GET_STATS"
	OpCreate   = "CREATE"
	OpUpdate   = "UPDATE"
	OpDelete   = "DELETE"
)

type stagedAuditEntry struct {
	Operation string
	UserType  string
	Data      map[string]interface{}
}

// SetupMiddleware sets up common middleware for the Gin router
func SetupMiddleware(router *gin.Engine, logger utils.Logger, tokens *auth.TokenManager, recorder *audit.Recorder) {
	// Request ID middleware
	router.Use(RequestIDMiddleware())

	// CORS middleware
	router.Use(CORSMiddleware())

	// Recovery middleware with the uniform error body
	router.Use(RecoveryMiddleware(logger))

	// Context logger middleware (adds logger with request_id to context)
	router.Use(utils.ContextLogger(logger))

	// Custom logging middleware
	router.Use(utils.LoggerMiddleware(logger))

	// Security headers middleware
	router.Use(SecurityMiddleware())

	// Session identity middleware
	router.Use(SessionMiddleware(tokens))

	// Operation log middleware
	router.Use(AuditMiddleware(recorder))
}

// SessionMiddleware attaches the authenticated identity to the context when a
// valid session token is present, either as a cookie or a bearer header. It
// never rejects a request; endpoints that need the identity read it from the
// context.
func SessionMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				tokenString = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if tokenString != "" {
			if claims, err := tokens.Parse(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("username", claims.Username)
				c.Set("user_role", string(claims.Role))
			}
		}

		c.Next()
	}
}

// AuditMiddleware writes the staged operation log entry, if any, after the
// handler chain completes.
func AuditMiddleware(recorder *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if recorder == nil {
			return
		}

		value, exists := c.Get(auditEntryKey)
		if !exists {
			return
		}

		entry, ok := value.(stagedAuditEntry)
		if !ok {
			return
		}

		recorder.Record(entry.Operation, entry.UserType, entry.Data)
	}
}

// RecoveryMiddleware turns panics into the uniform internal error body.
func RecoveryMiddleware(logger utils.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	})
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// RequestIDMiddleware generates a unique request ID for each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			// Generate a new request ID
			requestID = uuid2.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// CORSMiddleware provides CORS support
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "43200")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
