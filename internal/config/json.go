package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		SkewWindow         Duration `json:"skew_window"`
		NonceTTL           Duration `json:"nonce_ttl"`
		IdempotencyTTL     Duration `json:"idempotency_ttl"`
		AppTokenCurrent    string   `json:"app_token_current"`
		AppTokenNext       string   `json:"app_token_next"`
		DeviceID           string   `json:"device_id"`
		KeystorePath       string   `json:"keystore_path"`
		KeystorePassphrase string   `json:"keystore_passphrase"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		RateLimitPerMinute int      `json:"rate_limit_per_minute"`
	} `json:"server,omitempty"`

	Mail struct {
		SMTPAddress string `json:"smtp_address"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		From        string `json:"from"`
	} `json:"mail,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		FlushInterval   Duration `json:"flush_interval"`
		FlushBatchSize  int      `json:"flush_batch_size"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SkewWindow:         time.Duration(jsonCfg.App.SkewWindow),
			NonceTTL:           time.Duration(jsonCfg.App.NonceTTL),
			IdempotencyTTL:     time.Duration(jsonCfg.App.IdempotencyTTL),
			AppTokenCurrent:    jsonCfg.App.AppTokenCurrent,
			AppTokenNext:       jsonCfg.App.AppTokenNext,
			DeviceID:           jsonCfg.App.DeviceID,
			KeystorePath:       jsonCfg.App.KeystorePath,
			KeystorePassphrase: jsonCfg.App.KeystorePassphrase,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimitPerMinute: jsonCfg.Server.RateLimitPerMinute,
		},
		Mail: Mail{
			SMTPAddress: jsonCfg.Mail.SMTPAddress,
			Username:    jsonCfg.Mail.Username,
			Password:    jsonCfg.Mail.Password,
			From:        jsonCfg.Mail.From,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			FlushInterval:   time.Duration(jsonCfg.Workers.FlushInterval),
			FlushBatchSize:  jsonCfg.Workers.FlushBatchSize,
			CleanupInterval: time.Duration(jsonCfg.Workers.CleanupInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
