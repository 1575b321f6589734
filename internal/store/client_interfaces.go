package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-license-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// WalletStore persists the wallet state to a single file.
type WalletStore interface {
	// Load never fails: a missing or malformed file yields the zero state.
	Load() models.WalletState
	// Save replaces the whole persisted state atomically.
	Save(state models.WalletState) error
}

// Cache is a persistent key/value cache with per-entry expiry.
type Cache interface {
	// Set stores value (JSON-encoded) under key for ttl. A non-positive ttl
	// selects the cache default.
	Set(key string, value any, ttl time.Duration) error
	// Get decodes the live entry under key into out. It reports false when
	// the entry is absent, expired or unreadable.
	Get(key string, out any) (bool, error)
	// Delete removes key. Removing an absent key is not an error.
	Delete(key string) error
	// Clear removes every entry.
	Clear() error
	// Prune removes expired and unreadable entries and returns how many were
	// removed.
	Prune() (int, error)
}

// VerificationRepository is the local log of license verifications.
type VerificationRepository interface {
	Save(ctx context.Context, v models.Verification) (int64, error)
	Last(ctx context.Context, contentID, tokenID string) (models.Verification, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}
