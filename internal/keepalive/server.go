// Package keepalive serves the small HTTP endpoint hosting platforms ping to
// keep the bot's process awake, plus health and metrics.
package keepalive

import (
	"context"
	"net/http"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/keshon/server-buddy/internal/metrics"
	"github.com/keshon/server-buddy/internal/router"
)

// Greeting is the body of GET /.
const Greeting = "Hello. I am alive!"

const shutdownTimeout = 5 * time.Second

// Server is the keep-alive HTTP server.
type Server struct {
	addr    string
	engine  *gin.Engine
	state   func() router.State
	started time.Time
	log     *zap.SugaredLogger
}

// New builds the server. state reports the gateway connection for /healthz;
// m may be nil, in which case /metrics is not served.
func New(addr string, state func() router.State, m *metrics.Metrics, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		addr:    addr,
		engine:  gin.New(),
		state:   state,
		started: time.Now(),
		log:     log,
	}
	s.engine.Use(gin.Recovery())

	s.engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Greeting)
	})
	s.engine.GET("/healthz", s.health)
	if m != nil {
		s.engine.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return s
}

// Handler returns the routes, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	state := s.state()
	status, code := "ok", http.StatusOK
	if state != router.StateReady {
		status, code = "unavailable", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":  status,
		"state":   state.String(),
		"uptime":  strings.TrimSpace(humanize.RelTime(s.started, time.Now(), "", "")),
		"started": s.started.UTC().Format(time.RFC3339),
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.log.Info("Shutting down keep-alive server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("Keep-alive shutdown: %v", err)
		}
	}()

	s.log.Infof("Keep-alive server listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "keep-alive server")
	}
	return nil
}
