package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultWalletAddress   = "http://localhost:3333/api/"
	DefaultPlatformAddress = "https://api.wylloh.com/api/v1/"
	DefaultWalletAPIKey    = "local-seed-one-key"
)

// Minimum values for user-supplied intervals. Anything lower (including zero
// and negative values) is clamped up to these.
const (
	MinRequestTimeout        = time.Second
	MinPairingPollInterval   = 250 * time.Millisecond
	MinPairingTimeout        = 10 * time.Second
	MinLicenseVerifyInterval = 10 * time.Second
	MinCachePruneInterval    = time.Minute
	MinWalletStatusInterval  = 30 * time.Second
)

// Defaults returns the configuration used for every field no source set.
// Paths are rooted at profileDir.
func Defaults(profileDir string) StructuredConfig {
	return StructuredConfig{
		App: App{
			WalletAPIKey: DefaultWalletAPIKey,
			LogFile:      filepath.Join(profileDir, "client.log"),
		},
		Storage: Storage{
			ProfileDir:            profileDir,
			WalletFile:            filepath.Join(profileDir, "wallet.json"),
			CacheDir:              filepath.Join(profileDir, "cache"),
			DB:                    DB{DSN: filepath.Join(profileDir, "verifications.db")},
			VerificationRetention: 30 * 24 * time.Hour,
		},
		Adapter: Adapter{
			WalletAddress:   DefaultWalletAddress,
			PlatformAddress: DefaultPlatformAddress,
			RequestTimeout:  15 * time.Second,
		},
		Workers: Workers{
			CachePruneInterval:    time.Hour,
			WalletStatusInterval:  5 * time.Minute,
			LicenseVerifyInterval: 5 * time.Minute,
			PairingPollInterval:   time.Second,
			PairingTimeout:        2 * time.Minute,
			StartupDelay:          5 * time.Second,
		},
	}
}

// defaultProfileDir is <user config dir>/go-license-keeper, or a directory
// in the working directory when the user config dir is unknown.
func defaultProfileDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".go-license-keeper"
	}
	return filepath.Join(base, "go-license-keeper")
}

func clamp(v, minimum time.Duration) time.Duration {
	if v < minimum {
		return minimum
	}
	return v
}
