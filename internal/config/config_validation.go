package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies
// the invariants shared by both binaries. Role-specific requirements
// (DSN kind, mail settings) are enforced by the respective runtime
// validations, since the same structured config feeds both.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SkewWindow <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.NonceTTL < cfg.App.SkewWindow {
		// a nonce reservation must outlive the freshness window it guards
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateServer checks the fields the relay server cannot run without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Mail.SMTPAddress == "" || cfg.Mail.From == "" {
		return ErrInvalidMailConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.FlushInterval == 0 || cfg.Workers.FlushBatchSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.KeystorePath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
