package http

import (
	"time"

	"github.com/launcherlock/answer-relay/internal/config"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/service"
)

type Handler struct {
	services *service.Services

	// legacy shared-secret rotation pair; both accepted while clients
	// migrate to signed requests
	appTokenCurrent string
	appTokenNext    string

	rateLimitPerMinute int
	requestTimeout     time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		appTokenCurrent:    cfg.App.AppTokenCurrent,
		appTokenNext:       cfg.App.AppTokenNext,
		rateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		requestTimeout:     cfg.Server.RequestTimeout,
		logger:             logger,
	}
}
