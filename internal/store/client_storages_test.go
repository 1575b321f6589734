package store

import (
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/config"
)

func testStorageConfig(dir string) config.ClientStorage {
	return config.ClientStorage{
		ProfileDir:            dir,
		WalletFile:            filepath.Join(dir, "wallet.json"),
		CacheDir:              filepath.Join(dir, "cache"),
		DSN:                   filepath.Join(dir, "db", "verifications.db"),
		VerificationRetention: time.Hour,
	}
}
