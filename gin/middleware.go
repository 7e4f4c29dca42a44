package gin

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestID tags each request with the caller's X-Request-ID or a new one.
func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header("X-Request-ID", id)
	c.Next()
}

func (s *Server) logRequests(c *gin.Context) {
	begin := time.Now()
	c.Next()
	s.Logger.Info("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(begin),
		"request_id", c.GetString(requestIDKey),
	)
}

// recoverPanics turns a panic into a 500 whose body never includes the
// panic value. Gin's own stack dump is discarded; the panic goes to Logger.
func (s *Server) recoverPanics() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, s.handlePanic)
}

func (s *Server) handlePanic(c *gin.Context, recovered any) {
	s.Logger.Error("unhandled panic",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDKey),
		"panic", recovered,
	)
	c.Abort()
	writeJSON(c, http.StatusInternalServerError, gin.H{"error": genericErrorMessage})
}

// allowCORS permits cross-origin reads from any origin and answers
// preflight requests with 204.
func allowCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "If-None-Match", "X-Request-ID"},
		ExposeHeaders:   []string{"ETag", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	})
}
