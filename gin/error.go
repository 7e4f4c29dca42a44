package gin

import (
	"net/http"

	"github.com/dbsapi/dbsapi"
	"github.com/gin-gonic/gin"
)

// genericErrorMessage replaces the message of any error that has no
// application error code.
const genericErrorMessage = "Something went wrong!"

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	dbsapi.EFETCH:    http.StatusInternalServerError,
	dbsapi.EINTERNAL: http.StatusInternalServerError,
	dbsapi.EINVALID:  http.StatusBadRequest,
	dbsapi.ENOTFOUND: http.StatusNotFound,
	dbsapi.EPARSE:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// clientMessage returns the message shown to API clients for err.
// Messages of application errors are shown; anything else is not.
func clientMessage(err error) string {
	if dbsapi.ErrorCode(err) == dbsapi.EINTERNAL {
		return genericErrorMessage
	}
	return dbsapi.ErrorMessage(err)
}

// notFoundMessage is the message of unmatched-route errors.
const notFoundMessage = "404 Not Found: The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again."

// Error writes err as a JSON error envelope with the status of its code.
// ENOTFOUND errors use the {"error", "message"} not-found envelope.
func (s *Server) Error(c *gin.Context, err error) {
	code := dbsapi.ErrorCode(err)
	if code == dbsapi.EINTERNAL {
		s.LogError(c, err)
	}

	body := gin.H{"error": clientMessage(err)}
	if code == dbsapi.ENOTFOUND {
		body = gin.H{"error": "Resource not found", "message": dbsapi.ErrorMessage(err)}
	}
	writeJSON(c, ErrorStatusCode(code), body)
}

// LogError logs an error with the request it occurred in.
func (s *Server) LogError(c *gin.Context, err error) {
	s.Logger.Error("http error",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDKey),
		"err", err,
	)
}

func (s *Server) handleNotFound(c *gin.Context) {
	s.Error(c, dbsapi.Errorf(dbsapi.ENOTFOUND, notFoundMessage))
}

func (s *Server) handleMethodNotAllowed(c *gin.Context) {
	writeJSON(c, http.StatusMethodNotAllowed, gin.H{
		"error":       "Method Not Allowed",
		"description": "The method is not allowed for the requested URL.",
	})
}
