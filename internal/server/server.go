// Package server drives the connection lifecycle: the rate-limited accept
// loop, the handshake/status/login phase switch, and the play-state
// bootstrap and loop described in spec.md §4.6.
package server

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/mc754/server/internal/chunk"
	"github.com/mc754/server/internal/config"
	"github.com/mc754/server/internal/metrics"
	"github.com/mc754/server/internal/session"
	"github.com/mc754/server/internal/world"
)

const protocolVersion = 754

// Server is a running Minecraft 1.16.5 server: one accept loop plus one
// background keep-alive ticker, per spec.md §5's scheduling model.
type Server struct {
	cfg      *config.Config
	log      *logrus.Entry
	metrics  *metrics.Metrics
	sessions *session.Manager
	spawn    *chunk.ChunkColumn
}

// New builds a Server ready to listen.
func New(cfg *config.Config, log *logrus.Logger, m *metrics.Metrics) *Server {
	entry := log.WithField("component", "server")
	return &Server{
		cfg:      cfg,
		log:      entry,
		metrics:  m,
		sessions: session.NewManager(entry, m),
		spawn:    world.SpawnColumn(),
	}
}

// ListenAndServe binds the configured address and runs the accept loop and
// the keep-alive ticker until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	defer listener.Close()

	s.log.WithField("addr", s.cfg.ListenAddr).Info("listening")

	go s.keepAliveTicker(ctx)

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	return s.acceptLoop(ctx, listener)
}

// acceptLoop accepts connections at a bounded rate, dispatching each to its
// own goroutine per spec.md's one-task-per-connection model.
func (s *Server) acceptLoop(ctx context.Context, listener net.Listener) error {
	limiter := rate.NewLimiter(rate.Limit(s.cfg.AcceptRate), s.cfg.AcceptBurst)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}

		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			s.log.WithError(err).Warn("accept failed")
			continue
		}

		if s.metrics != nil {
			s.metrics.ConnectionsTotal.Inc()
		}
		go s.handleConnection(conn)
	}
}

// keepAliveTicker runs the process's single background task: once a
// second, send due keep-alives and evict timed-out sessions.
func (s *Server) keepAliveTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			evicted := s.sessions.TickKeepAlives(now)
			for _, name := range evicted {
				s.log.WithField("username", name).Info("evicted on keep-alive timeout")
			}
		}
	}
}
