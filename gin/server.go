// Package gin serves the dbsapi JSON API over HTTP using
// github.com/gin-gonic/gin.
package gin

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dbsapi/dbsapi"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout is the time given for outstanding requests to finish before shutdown.
const ShutdownTimeout = 1 * time.Second

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server represents the HTTP server exposing a dbsapi.SchoolService.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	// Bind address to open.
	Addr string

	// Services used by the HTTP routes.
	SchoolService dbsapi.SchoolService

	Logger *slog.Logger
}

// NewServer returns a new instance of Server with all routes registered.
func NewServer() *Server {
	s := &Server{
		router: gin.New(),
		Logger: slog.Default(),
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.HandleMethodNotAllowed = true
	s.router.RedirectTrailingSlash = false
	s.router.Use(s.requestID, s.logRequests, s.recoverPanics(), allowCORS())
	s.router.NoRoute(s.handleNotFound)
	s.router.NoMethod(s.handleMethodNotAllowed)

	s.registerSchoolRoutes(s.router)

	return s
}

// Open begins listening on the bind address.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go s.server.Serve(s.ln)

	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP routes a request. Used directly by tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
