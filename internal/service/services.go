package service

import (
	"github.com/launcherlock/answer-relay/internal/config"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/mailer"
	"github.com/launcherlock/answer-relay/internal/store"
)

// NewServices wires the server-side services against the security
// repository and the outbound mail dispatcher.
func NewServices(repos *store.Repositories, m mailer.Mailer, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Debug().Msg("creating server services")

	return &Services{
		AuthGate:   NewAuthGateService(repos.Security, cfg.App.SkewWindow, cfg.App.NonceTTL, logger),
		Submission: NewSubmissionService(repos.Security, m, cfg.App.IdempotencyTTL, logger),
	}
}
