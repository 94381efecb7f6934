package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatusSource reports live counters shown on /status
type StatusSource interface {
	Count() int
}

// Server exposes health and status endpoints next to the bot
type Server struct {
	srv     *http.Server
	started time.Time
	logger  *logrus.Logger
}

// NewServer creates the status server
func NewServer(addr string, sessions, profiles StatusSource, logger *logrus.Logger) *Server {
	s := &Server{started: time.Now(), logger: logger}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.router(sessions, profiles),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) router(sessions, profiles StatusSource) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"support_sessions": sessions.Count(),
			"profiles":         profiles.Count(),
			"uptime_seconds":   int64(time.Since(s.started).Seconds()),
		})
	})

	return r
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.logger.Debugf("%s %s %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(started))
	}
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start serves until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warnf("Status server shutdown: %v", err)
		}
	}()

	s.logger.Infof("Status server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
