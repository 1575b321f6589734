// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientApp holds credentials and process settings.
type ClientApp struct {
	WalletAPIKey  string
	PlatformToken string
	LogFile       string
}

// ClientAdapter holds the remote endpoints used by the transport layer.
type ClientAdapter struct {
	// WalletAddress is the wallet service base URL.
	WalletAddress string
	// PlatformAddress is the platform API base URL.
	PlatformAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// ClientStorage holds the paths owned by the client.
type ClientStorage struct {
	ProfileDir            string
	WalletFile            string
	CacheDir              string
	DSN                   string
	VerificationRetention time.Duration
}

// ClientWallet holds wallet behaviour switches.
type ClientWallet struct {
	AutoConnect bool
}

// ClientWorkers holds background worker intervals, already clamped.
type ClientWorkers struct {
	CachePruneInterval    time.Duration
	WalletStatusInterval  time.Duration
	LicenseVerifyInterval time.Duration
	PairingPollInterval   time.Duration
	PairingTimeout        time.Duration
	StartupDelay          time.Duration
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Wallet  ClientWallet
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration from the environment, the
// process arguments and the optional JSON file, fills defaults and returns a
// validated [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig fills the zero fields of cfg with [Defaults], clamps
// intervals to their minimums and validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	profileDir := cfg.Storage.ProfileDir
	if profileDir == "" {
		profileDir = defaultProfileDir()
	}

	merged := *cfg
	if err := mergo.Merge(&merged, Defaults(profileDir)); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			WalletAPIKey:  merged.App.WalletAPIKey,
			PlatformToken: merged.App.PlatformToken,
			LogFile:       merged.App.LogFile,
		},
		Adapter: ClientAdapter{
			WalletAddress:   merged.Adapter.WalletAddress,
			PlatformAddress: merged.Adapter.PlatformAddress,
			RequestTimeout:  clamp(merged.Adapter.RequestTimeout, MinRequestTimeout),
		},
		Storage: ClientStorage{
			ProfileDir:            merged.Storage.ProfileDir,
			WalletFile:            merged.Storage.WalletFile,
			CacheDir:              merged.Storage.CacheDir,
			DSN:                   merged.Storage.DB.DSN,
			VerificationRetention: merged.Storage.VerificationRetention,
		},
		Wallet: ClientWallet{AutoConnect: merged.Wallet.AutoConnect},
		Workers: ClientWorkers{
			CachePruneInterval:    clamp(merged.Workers.CachePruneInterval, MinCachePruneInterval),
			WalletStatusInterval:  clamp(merged.Workers.WalletStatusInterval, MinWalletStatusInterval),
			LicenseVerifyInterval: clamp(merged.Workers.LicenseVerifyInterval, MinLicenseVerifyInterval),
			PairingPollInterval:   clamp(merged.Workers.PairingPollInterval, MinPairingPollInterval),
			PairingTimeout:        clamp(merged.Workers.PairingTimeout, MinPairingTimeout),
			StartupDelay:          clamp(merged.Workers.StartupDelay, 0),
		},
	}

	return clientCfg, clientCfg.validate()
}
