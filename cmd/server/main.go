package main

import (
	"context"
	"fmt"

	"github.com/launcherlock/answer-relay/internal/config"
	myHTTP "github.com/launcherlock/answer-relay/internal/handler/http"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/mailer"
	"github.com/launcherlock/answer-relay/internal/server"
	"github.com/launcherlock/answer-relay/internal/service"
	"github.com/launcherlock/answer-relay/internal/store"
	"github.com/launcherlock/answer-relay/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("answer-relay-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configuration")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	guardianMailer := mailer.NewSMTPMailer(cfg.Mail, log)
	services := service.NewServices(repos, guardianMailer, cfg, log)
	handler := myHTTP.NewHandler(services, cfg, log)
	maintenance := workers.NewWorkers(repos, cfg.Workers, log)

	srv, err := server.NewServer(handler, maintenance, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
