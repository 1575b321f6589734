package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Wallet persists the wallet state file.
	Wallet WalletStore

	// Cache is the TTL cache directory.
	Cache Cache

	// Verifications is the SQLite-backed verification log.
	Verifications VerificationRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Creates the cache directory and the wallet file store.
//
// Returns an error if the database connection cannot be established, if
// migration fails or if the cache directory cannot be created.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache, err := NewFileCache(cfg.CacheDir, DefaultCacheTTL, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &ClientStorages{
		Wallet:        NewWalletFileStore(cfg.WalletFile, logger),
		Cache:         cache,
		Verifications: NewVerificationRepository(db, logger),
		db:            db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
