// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credentials and process-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of every file the client owns.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds remote service addresses and request timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Wallet holds wallet behaviour switches.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Workers holds intervals of the background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: LK_CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds credentials and process-level settings.
type App struct {
	// WalletAPIKey is sent in the X-API-Key header of every wallet service
	// request.
	// Env: LK_APP_WALLET_API_KEY
	WalletAPIKey string `env:"WALLET_API_KEY"`

	// PlatformToken is the optional bearer token for the platform API.
	// Env: LK_APP_PLATFORM_TOKEN
	PlatformToken string `env:"PLATFORM_TOKEN"`

	// LogFile is where JSON logs are written.
	// Env: LK_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage holds file-system locations.
type Storage struct {
	// ProfileDir is the base directory for all client state. Other paths
	// default to files inside it.
	// Env: LK_STORAGE_PROFILE_DIR
	ProfileDir string `env:"PROFILE_DIR"`

	// WalletFile is the JSON file holding the persisted wallet state.
	// Env: LK_STORAGE_WALLET_FILE
	WalletFile string `env:"WALLET_FILE"`

	// CacheDir is the directory owned by the TTL cache.
	// Env: LK_STORAGE_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`

	// DB holds the local verification log database settings.
	DB DB `envPrefix:"DB_"`

	// VerificationRetention is how long verification log rows are kept.
	// Env: LK_STORAGE_VERIFICATION_RETENTION
	VerificationRetention time.Duration `env:"VERIFICATION_RETENTION"`
}

// DB holds the sqlite connection settings.
type DB struct {
	// DSN is the sqlite file path (or DSN) of the verification log.
	// Env: LK_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds remote service settings.
type Adapter struct {
	// WalletAddress is the base URL of the wallet service
	// (e.g. "http://localhost:3333/api/").
	// Env: LK_ADAPTER_WALLET_ADDRESS
	WalletAddress string `env:"WALLET_ADDRESS"`

	// PlatformAddress is the base URL of the platform API used for token
	// verification and stream access.
	// Env: LK_ADAPTER_PLATFORM_ADDRESS
	PlatformAddress string `env:"PLATFORM_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: LK_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Wallet holds wallet behaviour switches.
type Wallet struct {
	// AutoConnect enables silent reconnection with the stored address at
	// startup.
	// Env: LK_WALLET_AUTO_CONNECT
	AutoConnect bool `env:"AUTO_CONNECT"`
}

// Workers holds background worker intervals.
type Workers struct {
	// Env: LK_WORKERS_CACHE_PRUNE_INTERVAL
	CachePruneInterval time.Duration `env:"CACHE_PRUNE_INTERVAL"`
	// Env: LK_WORKERS_WALLET_STATUS_INTERVAL
	WalletStatusInterval time.Duration `env:"WALLET_STATUS_INTERVAL"`
	// Env: LK_WORKERS_LICENSE_VERIFY_INTERVAL
	LicenseVerifyInterval time.Duration `env:"LICENSE_VERIFY_INTERVAL"`
	// Env: LK_WORKERS_PAIRING_POLL_INTERVAL
	PairingPollInterval time.Duration `env:"PAIRING_POLL_INTERVAL"`
	// Env: LK_WORKERS_PAIRING_TIMEOUT
	PairingTimeout time.Duration `env:"PAIRING_TIMEOUT"`
	// Env: LK_WORKERS_STARTUP_DELAY
	StartupDelay time.Duration `env:"STARTUP_DELAY"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
