package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/kurihiro0119/site-metrics/internal/errors"
)

const requestIDHeader = "X-Request-ID"

// maxRequestIDLen caps inbound request IDs before they reach the logs
const maxRequestIDLen = 128

// Logger returns a middleware that writes one structured entry per request
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		}
		if raw != "" {
			fields = append(fields, zap.String("query", raw))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("HTTP request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// RequestID tags each request with an ID, reusing a sane inbound X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()
	}
}

// CORS returns a middleware that handles CORS. keyHeader is added to the
// allowed headers so browsers may send the API key.
func CORS(keyHeader string) gin.HandlerFunc {
	allowed := []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
		"accept", "origin", "Cache-Control", "X-Requested-With", requestIDHeader,
	}
	if keyHeader != "" {
		allowed = append(allowed, keyHeader)
	}
	allowedHeaders := strings.Join(allowed, ", ")

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// APIKey rejects requests whose headerName header does not carry key
func APIKey(headerName, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(headerName)
		if provided == "" || key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			err := apperrors.NewForbiddenError()
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": err.Message,
			})
			return
		}

		c.Next()
	}
}

// Recovery returns a middleware that recovers from panics and logs them
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("Panic recovered",
					zap.Any("error", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
