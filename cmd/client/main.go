package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/launcherlock/answer-relay/internal/adapter"
	"github.com/launcherlock/answer-relay/internal/config"
	"github.com/launcherlock/answer-relay/internal/crypto"
	"github.com/launcherlock/answer-relay/internal/identity"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/service"
	"github.com/launcherlock/answer-relay/internal/store"
	"github.com/launcherlock/answer-relay/models"
)

const prefsKeyAPIBaseURL = "api_base_url"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// mode flags have to be registered before the config layer calls
	// flag.Parse
	submitPath := flag.String("submit", "", "Answers JSON file to submit ('-' for stdin)")
	register := flag.Bool("register", false, "Register the device signing key and exit")
	flush := flag.Bool("flush", false, "Drain the retry queue once and exit")
	daemon := flag.Bool("daemon", false, "Run the periodic queue flush in the foreground")

	log := logger.NewAgentLogger("answer-relay-agent")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	baseURL := resolveBaseURL(cfg, storages.Prefs, log)
	signer := crypto.NewFileKeystore(cfg.App.KeystorePath, cfg.App.KeystorePassphrase)
	identityProvider := identity.NewProvider(storages.Prefs, cfg.App.DeviceID, log)

	deviceID, err := identityProvider.DeviceID()
	if err != nil {
		log.Fatal().Err(err).Msg("resolve device identity")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL:  baseURL,
		AppToken: cfg.App.AppToken,
		Timeout:  cfg.Adapter.RequestTimeout,
	}, signer, deviceID)

	services := service.NewClientServices(storages, serverAdapter, signer, identityProvider, cfg.Workers.FlushBatchSize, log)

	switch {
	case *register:
		runRegister(ctx, services, log)
	case *submitPath != "":
		runSubmit(ctx, services, *submitPath, log)
	case *flush:
		runFlush(ctx, services, log)
	case *daemon:
		runDaemon(ctx, services, cfg, log)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runRegister(ctx context.Context, services *service.ClientServices, log *logger.Logger) {
	if err := services.SubmissionService.RegisterKey(ctx); err != nil {
		log.Fatal().Err(err).Msg("device key registration failed")
	}
	fmt.Println("device key registered")
}

func runSubmit(ctx context.Context, services *service.ClientServices, path string, log *logger.Logger) {
	payload, err := readPayload(path)
	if err != nil {
		log.Fatal().Err(err).Msg("read answers payload")
	}

	result, err := services.SubmissionService.SubmitOrQueue(ctx, payload)
	if err != nil {
		log.Fatal().Err(err).Msg("submit answers")
	}

	switch result {
	case service.SubmitSuccess:
		fmt.Println("answers delivered")
	case service.SubmitQueuedRateLimited:
		fmt.Println("rate limited, answers queued for retry")
	case service.SubmitQueued:
		fmt.Println("answers queued for retry")
	}
}

func runFlush(ctx context.Context, services *service.ClientServices, log *logger.Logger) {
	sent, err := services.SubmissionService.FlushQueue(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("flush retry queue")
	}
	fmt.Printf("delivered %d queued submission(s)\n", sent)
}

func runDaemon(ctx context.Context, services *service.ClientServices, cfg *config.ClientConfig, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	services.FlushJob.Start(ctx, cfg.Workers.FlushInterval)
	log.Info().Dur("interval", cfg.Workers.FlushInterval).Msg("flush daemon started")

	<-ctx.Done()
	services.FlushJob.Stop()
	log.Info().Msg("flush daemon stopped")
}

// resolveBaseURL prefers the configured relay address and falls back to
// the persisted one. A configured address is written back so later runs
// without flags keep talking to the same relay.
func resolveBaseURL(cfg *config.ClientConfig, prefs store.PrefsRepository, log *logger.Logger) string {
	if cfg.Adapter.HTTPAddress != "" {
		if err := prefs.Set(prefsKeyAPIBaseURL, cfg.Adapter.HTTPAddress); err != nil {
			log.Warn().Err(err).Msg("failed to persist relay address")
		}
		return cfg.Adapter.HTTPAddress
	}

	stored, err := prefs.Get(prefsKeyAPIBaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read persisted relay address")
	}
	return stored
}

func readPayload(path string) (models.AnswerPayload, error) {
	var raw []byte
	var err error

	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return models.AnswerPayload{}, fmt.Errorf("read payload: %w", err)
	}

	var payload models.AnswerPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return models.AnswerPayload{}, fmt.Errorf("decode payload: %w", err)
	}

	return payload, nil
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
