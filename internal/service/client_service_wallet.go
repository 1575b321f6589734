// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-license-keeper/internal/adapter"
	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/models"
)

const zeroBalance = "0.0"

type clientWalletService struct {
	adapter adapter.WalletAdapter
	store   store.WalletStore
	pairing ClientPairingService

	// opMu serialises state-changing operations including their remote calls.
	opMu sync.Mutex

	// mu guards everything below.
	mu          sync.RWMutex
	state       models.WalletState
	live        bool
	balance     string
	autoConnect bool
	display     PairingDisplay

	logger *logger.Logger
}

// NewClientWalletService loads the persisted wallet state from walletStore
// and returns a service operating on it.
func NewClientWalletService(
	walletAdapter adapter.WalletAdapter,
	walletStore store.WalletStore,
	pairing ClientPairingService,
	walletCfg config.ClientWallet,
	log *logger.Logger,
) ClientWalletService {
	return &clientWalletService{
		adapter:     walletAdapter,
		store:       walletStore,
		pairing:     pairing,
		state:       walletStore.Load(),
		autoConnect: walletCfg.AutoConnect,
		logger:      log.WithComponent("wallet"),
	}
}

func (w *clientWalletService) IsConnected() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.Connected
}

func (w *clientWalletService) GetAddress() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.AddressOrEmpty()
}

func (w *clientWalletService) GetBalance(ctx context.Context) string {
	if !w.IsConnected() {
		return zeroBalance
	}

	balance, err := w.adapter.Balance(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.GetBalance").Msg("error getting balance")
		return zeroBalance
	}
	if strings.TrimSpace(balance) == "" {
		return zeroBalance
	}

	return balance
}

func (w *clientWalletService) LastBalance() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.balance == "" || !w.state.Connected {
		return zeroBalance
	}
	return w.balance
}

func (w *clientWalletService) Connect(ctx context.Context, useQR bool) models.Result {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	if stored := w.storedAddress(); stored != "" {
		if res, fallback := w.reconnect(ctx, stored); !fallback {
			return res
		}
	}

	if useQR {
		res := w.pairing.Pair(ctx, w.pairingDisplay())
		if !res.Success {
			w.logger.Info().Str("func", "clientWalletService.Connect").Str("reason", res.Message).Msg("qr pairing did not connect")
			return res
		}
		return w.establish(ctx, res.Address)
	}

	address, err := w.adapter.Connect(ctx, "")
	if err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.Connect").Msg("error connecting wallet")
		return models.Fail(remoteMessage(err, MsgConnectFailed))
	}

	return w.establish(ctx, address)
}

func (w *clientWalletService) AutoConnect(ctx context.Context) models.Result {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.RLock()
	enabled, live := w.autoConnect, w.live
	w.mu.RUnlock()

	switch {
	case !enabled:
		return models.Fail(MsgAutoConnectDisabled)
	case live:
		return models.Fail(MsgAlreadyConnected)
	}

	stored := w.storedAddress()
	if stored == "" {
		return models.Fail(MsgNoStoredAddress)
	}

	res, _ := w.reconnect(ctx, stored)
	return res
}

func (w *clientWalletService) ImportWallet(ctx context.Context, privateKey string) models.Result {
	if strings.TrimSpace(privateKey) == "" {
		return models.Fail(MsgEmptyPrivateKey)
	}

	w.opMu.Lock()
	defer w.opMu.Unlock()

	address, err := w.adapter.Import(ctx, privateKey)
	if err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.ImportWallet").Msg("error importing wallet")
		return models.Fail(remoteMessage(err, MsgImportFailed))
	}

	return w.establish(ctx, address)
}

func (w *clientWalletService) Disconnect(ctx context.Context) models.Result {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	if err := w.adapter.Disconnect(ctx); err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.Disconnect").Msg("error disconnecting wallet")
		return models.Fail(remoteMessage(err, MsgDisconnectFailed))
	}

	if err := w.commit(models.EmptyWalletState(), ""); err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.Disconnect").Msg("wallet disconnected remotely but local state was not saved")
		return models.Fail(MsgSaveFailed)
	}

	w.mu.Lock()
	w.live = false
	w.mu.Unlock()

	w.logger.Info().Str("func", "clientWalletService.Disconnect").Msg("wallet disconnected")
	return models.OK()
}

func (w *clientWalletService) Refresh(ctx context.Context) models.Result {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	return w.refreshLocked(ctx)
}

func (w *clientWalletService) PurchaseToken(ctx context.Context, contentID string) models.Result {
	if strings.TrimSpace(contentID) == "" {
		return models.Fail(MsgEmptyContentID)
	}

	w.opMu.Lock()
	defer w.opMu.Unlock()

	if !w.IsConnected() {
		return models.Fail(MsgWalletNotConnected)
	}

	tokenID, err := w.adapter.Purchase(ctx, contentID)
	if err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.PurchaseToken").Str("content_id", contentID).Msg("error purchasing token")
		return models.Fail(remoteMessage(err, MsgPurchaseFailed))
	}

	if res := w.refreshLocked(ctx); !res.Success {
		w.logger.Warn().Str("func", "clientWalletService.PurchaseToken").Str("reason", res.Message).Msg("token purchased but refresh failed")
	}

	return models.Result{Success: true, TokenID: tokenID}
}

func (w *clientWalletService) GetOwnedTokens() []models.Token {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.state.Connected {
		return []models.Token{}
	}
	return append([]models.Token{}, w.state.Tokens...)
}

func (w *clientWalletService) HasToken(tokenID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.state.Connected {
		return false
	}
	for _, t := range w.state.Tokens {
		if t.ID == tokenID {
			return true
		}
	}
	return false
}

func (w *clientWalletService) HasTokenForContent(contentID string) bool {
	_, ok := w.GetTokenIDForContent(contentID)
	return ok
}

func (w *clientWalletService) GetTokenIDForContent(contentID string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.state.Connected {
		return "", false
	}
	for _, t := range w.state.Tokens {
		if t.ContentID == contentID {
			return t.ID, true
		}
	}
	return "", false
}

func (w *clientWalletService) GetTokensForContent(contentID string) []models.Token {
	w.mu.RLock()
	defer w.mu.RUnlock()

	tokens := []models.Token{}
	if !w.state.Connected {
		return tokens
	}
	for _, t := range w.state.Tokens {
		if t.ContentID == contentID {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func (w *clientWalletService) SetPairingDisplay(display PairingDisplay) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.display = display
}

func (w *clientWalletService) ReloadSettings(cfg config.ClientConfig) error {
	if err := w.adapter.Reconfigure(cfg.Adapter.WalletAddress, cfg.App.WalletAPIKey); err != nil {
		return fmt.Errorf("error reloading wallet settings: %w", err)
	}

	w.mu.Lock()
	w.autoConnect = cfg.Wallet.AutoConnect
	w.mu.Unlock()

	return nil
}

// reconnect tries the silent reconnection with a stored address. fallback is
// true only when the wallet service refused it, so the caller may try another
// way to connect. A local failure after the service accepted is final.
func (w *clientWalletService) reconnect(ctx context.Context, stored string) (res models.Result, fallback bool) {
	address, err := w.adapter.Connect(ctx, stored)
	if err != nil {
		w.logger.Warn().Err(err).Str("func", "clientWalletService.reconnect").Msg("silent reconnection failed")
		return models.Fail(remoteMessage(err, MsgConnectFailed)), true
	}
	if address == "" {
		address = stored
	}

	res = w.establish(ctx, address)
	if res.Success {
		res.AutoConnected = true
	}
	return res, false
}

// establish records a successful connection to address and refreshes the
// token list. A failed refresh does not fail the connection. Must be called
// with opMu held.
func (w *clientWalletService) establish(ctx context.Context, address string) models.Result {
	if address == "" {
		return models.Fail(MsgConnectFailed)
	}

	next := w.snapshot()
	if next.AddressOrEmpty() != address {
		next.Tokens = []models.Token{}
	}
	next.Connected = true
	next.Address = &address

	if err := w.commit(next, ""); err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.establish").Msg("error saving connected wallet")
		return models.Fail(MsgSaveFailed)
	}

	w.mu.Lock()
	w.live = true
	w.mu.Unlock()

	if res := w.refreshLocked(ctx); !res.Success {
		w.logger.Warn().Str("func", "clientWalletService.establish").Str("reason", res.Message).Msg("wallet connected but tokens were not refreshed")
	}

	w.logger.Info().Str("func", "clientWalletService.establish").Str("address", address).Msg("wallet connected")
	return models.Result{Success: true, Address: address}
}

// refreshLocked must be called with opMu held.
func (w *clientWalletService) refreshLocked(ctx context.Context) models.Result {
	next := w.snapshot()
	if !next.Connected {
		return models.Fail(MsgWalletNotConnected)
	}

	balance, err := w.adapter.Balance(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Str("func", "clientWalletService.refreshLocked").Msg("error getting balance")
	}

	tokens, err := w.adapter.Tokens(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.refreshLocked").Msg("error getting tokens")
		return models.Fail(remoteMessage(err, MsgRefreshFailed))
	}
	for _, t := range tokens {
		if !t.RightsLevel.Valid() {
			w.logger.Warn().Str("func", "clientWalletService.refreshLocked").
				Str("token_id", t.ID).
				Str("rights_level", string(t.RightsLevel)).
				Msg("token has unknown rights level")
		}
	}
	next.Tokens = tokens

	if err = w.commit(next, balance); err != nil {
		w.logger.Err(err).Str("func", "clientWalletService.refreshLocked").Msg("error saving refreshed wallet")
		return models.Fail(MsgSaveFailed)
	}

	return models.OK()
}

// commit persists next and then publishes it in memory, so a failed save
// leaves the in-memory state untouched. An empty balance keeps the previous
// one unless next is disconnected.
func (w *clientWalletService) commit(next models.WalletState, balance string) error {
	if err := w.store.Save(next); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.state = next
	switch {
	case !next.Connected:
		w.balance = ""
	case balance != "":
		w.balance = balance
	}
	return nil
}

func (w *clientWalletService) snapshot() models.WalletState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.Clone()
}

func (w *clientWalletService) storedAddress() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.AddressOrEmpty()
}

func (w *clientWalletService) pairingDisplay() PairingDisplay {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.display
}
