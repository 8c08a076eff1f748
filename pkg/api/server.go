// Package api exposes the masking transform over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-dataspace/maskgate/pkg/config"
	"github.com/open-dataspace/maskgate/pkg/masking"
)

// Server is the HTTP boundary around the masking engine. It owns no state
// beyond the engine and configuration references, so handlers are safe for
// concurrent use.
type Server struct {
	cfg        *config.Config
	service    *masking.Service
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, service *masking.Service) *Server {
	s := &Server{
		cfg:     cfg,
		service: service,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/mask", s.maskPayloadHandler)
		v1.POST("/mask/value", s.maskValueHandler)
		v1.GET("/status", s.statusHandler)
	}

	s.router = router
	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
