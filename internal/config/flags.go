package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-c/-config       json file path with configs
//	-profile         profile directory
//	-wallet-api      wallet service base URL
//	-wallet-api-key  wallet service API key
//	-platform-api    platform API base URL
//	-request-timeout request timeout (e.g. "15s")
//	-auto-connect    reconnect the stored wallet at startup
//	-verify-interval license re-verification interval (e.g. "5m")
//	-pairing-timeout QR pairing deadline (e.g. "2m")
//	-log-file        log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		jsonConfigPath string
		profileDir     string
		walletAddress  string
		walletAPIKey   string
		platformAddr   string
		requestTimeout time.Duration
		autoConnect    bool
		verifyInterval time.Duration
		pairingTimeout time.Duration
		logFile        string
	)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&profileDir, "profile", "", "Profile directory")
	fs.StringVar(&walletAddress, "wallet-api", "", "Wallet service base URL")
	fs.StringVar(&walletAPIKey, "wallet-api-key", "", "Wallet service API key")
	fs.StringVar(&platformAddr, "platform-api", "", "Platform API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.BoolVar(&autoConnect, "auto-connect", false, "Reconnect the stored wallet at startup")
	fs.DurationVar(&verifyInterval, "verify-interval", 0, "License re-verification interval (e.g., 5m)")
	fs.DurationVar(&pairingTimeout, "pairing-timeout", 0, "QR pairing deadline (e.g., 2m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			WalletAPIKey: walletAPIKey,
			LogFile:      logFile,
		},
		Storage: Storage{
			ProfileDir: profileDir,
		},
		Adapter: Adapter{
			WalletAddress:   walletAddress,
			PlatformAddress: platformAddr,
			RequestTimeout:  requestTimeout,
		},
		Wallet: Wallet{AutoConnect: autoConnect},
		Workers: Workers{
			LicenseVerifyInterval: verifyInterval,
			PairingTimeout:        pairingTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
