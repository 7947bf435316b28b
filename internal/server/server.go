package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/etl/configs"
	"github.com/thirdweb-dev/etl/internal/middleware"
)

const shutdownTimeout = 5 * time.Second

// StatusFunc reports what the process is currently doing.
type StatusFunc func() string

// Server exposes health and Prometheus metrics for the worker process.
type Server struct {
	srv *http.Server
}

func NewServer(cfg config.ServerConfig, status StatusFunc) *Server {
	gin.SetMode(gin.ReleaseMode)
	return &Server{
		srv: &http.Server{
			Addr:    cfg.Addr,
			Handler: newRouter(status),
		},
	}
}

func newRouter(status StatusFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if status != nil {
			body["worker"] = status()
		}
		c.JSON(http.StatusOK, body)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// Run serves until ctx is cancelled and then shuts the listener down.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("Starting ops server")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Ops server forced to shutdown")
		return err
	}
	log.Info().Msg("Ops server closed")
	return nil
}
