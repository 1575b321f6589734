package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations ("30s", "5m").
type StructuredJSONConfig struct {
	App struct {
		WalletAPIKey  string `json:"wallet_api_key"`
		PlatformToken string `json:"platform_token"`
		LogFile       string `json:"log_file"`
	} `json:"app"`

	Storage struct {
		ProfileDir            string   `json:"profile_dir"`
		WalletFile            string   `json:"wallet_file"`
		CacheDir              string   `json:"cache_dir"`
		DSN                   string   `json:"dsn"`
		VerificationRetention Duration `json:"verification_retention"`
	} `json:"storage"`

	Adapter struct {
		WalletAddress   string   `json:"wallet_address"`
		PlatformAddress string   `json:"platform_address"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"adapter"`

	Wallet struct {
		AutoConnect bool `json:"auto_connect"`
	} `json:"wallet"`

	Workers struct {
		CachePruneInterval    Duration `json:"cache_prune_interval"`
		WalletStatusInterval  Duration `json:"wallet_status_interval"`
		LicenseVerifyInterval Duration `json:"license_verify_interval"`
		PairingPollInterval   Duration `json:"pairing_poll_interval"`
		PairingTimeout        Duration `json:"pairing_timeout"`
		StartupDelay          Duration `json:"startup_delay"`
	} `json:"workers"`
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

	return &StructuredConfig{
		App: App{
			WalletAPIKey:  jsonCfg.App.WalletAPIKey,
			PlatformToken: jsonCfg.App.PlatformToken,
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			ProfileDir:            jsonCfg.Storage.ProfileDir,
			WalletFile:            jsonCfg.Storage.WalletFile,
			CacheDir:              jsonCfg.Storage.CacheDir,
			DB:                    DB{DSN: jsonCfg.Storage.DSN},
			VerificationRetention: time.Duration(jsonCfg.Storage.VerificationRetention),
		},
		Adapter: Adapter{
			WalletAddress:   jsonCfg.Adapter.WalletAddress,
			PlatformAddress: jsonCfg.Adapter.PlatformAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Wallet: Wallet{AutoConnect: jsonCfg.Wallet.AutoConnect},
		Workers: Workers{
			CachePruneInterval:    time.Duration(jsonCfg.Workers.CachePruneInterval),
			WalletStatusInterval:  time.Duration(jsonCfg.Workers.WalletStatusInterval),
			LicenseVerifyInterval: time.Duration(jsonCfg.Workers.LicenseVerifyInterval),
			PairingPollInterval:   time.Duration(jsonCfg.Workers.PairingPollInterval),
			PairingTimeout:        time.Duration(jsonCfg.Workers.PairingTimeout),
			StartupDelay:          time.Duration(jsonCfg.Workers.StartupDelay),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
