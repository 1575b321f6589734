// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/utils"
	"github.com/MKhiriev/go-license-keeper/models"
)

const walletFilePerm = 0o600

type walletFileStore struct {
	path string

	mu     sync.Mutex
	logger *logger.Logger
}

// NewWalletFileStore returns a [WalletStore] backed by the JSON file at path.
// The file is created on the first Save.
func NewWalletFileStore(path string, log *logger.Logger) WalletStore {
	return &walletFileStore{
		path:   path,
		logger: log.WithComponent("wallet-store"),
	}
}

func (s *walletFileStore) Load() models.WalletState {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Err(err).Str("func", "walletFileStore.Load").Str("path", s.path).Msg("cannot read wallet file, using empty state")
		}
		return models.EmptyWalletState()
	}

	var state models.WalletState
	if err = json.Unmarshal(data, &state); err != nil {
		s.logger.Err(err).Str("func", "walletFileStore.Load").Str("path", s.path).Msg("malformed wallet file, using empty state")
		return models.EmptyWalletState()
	}

	return normalizeWalletState(state)
}

func (s *walletFileStore) Save(state models.WalletState) error {
	data, err := encodeWalletState(state)
	if err != nil {
		return fmt.Errorf("error encoding wallet state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = utils.WriteFileAtomic(s.path, data, walletFilePerm); err != nil {
		s.logger.Err(err).Str("func", "walletFileStore.Save").Str("path", s.path).Msg("cannot write wallet file")
		return fmt.Errorf("error writing wallet file: %w", err)
	}

	return nil
}

// encodeWalletState produces the canonical file form: two-space indented
// JSON with a trailing newline and a non-null tokens array.
func encodeWalletState(state models.WalletState) ([]byte, error) {
	state = normalizeWalletState(state)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func normalizeWalletState(state models.WalletState) models.WalletState {
	if state.Tokens == nil {
		state.Tokens = []models.Token{}
	}
	if state.Connected && state.Address == nil {
		state.Connected = false
	}
	return state
}
