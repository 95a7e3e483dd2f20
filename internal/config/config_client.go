package config

import (
	"fmt"
	"time"
)

// ClientApp holds agent-side application settings derived from the
// shared structured config.
type ClientApp struct {
	// DeviceID is the externally provisioned identifier, empty when the
	// agent should use (or generate) its persisted identity.
	DeviceID string
	// KeystorePath is where the sealed signing key lives.
	KeystorePath string
	// KeystorePassphrase seals the signing key at rest.
	KeystorePassphrase string
	// AppToken is the deprecated static token still sent alongside
	// signature headers for relays mid-migration. Empty disables it.
	AppToken string
}

// ClientAdapter holds network settings used by the agent transport layer.
type ClientAdapter struct {
	// HTTPAddress is the relay base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the agent.
type ClientDB struct {
	// DSN is the SQLite file path holding the retry queue and prefs.
	DSN string
}

// ClientStorage groups agent storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains agent background worker settings.
type ClientWorkers struct {
	// FlushInterval defines how often the queue drain job runs.
	FlushInterval time.Duration
	// FlushBatchSize bounds rows processed per drain.
	FlushBatchSize int
}

// ClientConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level agent settings.
	App ClientApp
	// Adapter contains relay address and timeouts.
	Adapter ClientAdapter
	// Storage contains agent storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates an agent-specific config view
// from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the
// fields relevant to the agent runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceID:           cfg.App.DeviceID,
			KeystorePath:       cfg.App.KeystorePath,
			KeystorePassphrase: cfg.App.KeystorePassphrase,
			AppToken:           cfg.App.AppTokenCurrent,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			FlushInterval:  cfg.Workers.FlushInterval,
			FlushBatchSize: cfg.Workers.FlushBatchSize,
		},
	}

	return clientCfg, clientCfg.validate()
}
