package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/launcherlock/answer-relay/internal/config"
	myHTTP "github.com/launcherlock/answer-relay/internal/handler/http"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handler *myHTTP.Handler, wrk *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		workers:    wrk,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.run()
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	if s.workers != nil {
		s.workers.StopAll()
	}
}

func (s *server) run() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.workers != nil {
		s.logger.Info().Msg("Launching background workers")
		s.workers.StartAll(ctx)
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
