// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/utils"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/go-resty/resty/v2"
)

const apiKeyHeader = "X-API-Key"

type httpWalletAdapter struct {
	mu      sync.RWMutex
	client  *utils.HTTPClient
	apiKey  string
	timeout time.Duration

	logger *logger.Logger
}

// NewHTTPWalletAdapter constructs an HTTP/REST implementation of
// [WalletAdapter] for the wallet service at adapterCfg.WalletAddress.
//
// Returns an error if the address is empty or cannot be parsed as a valid URL.
func NewHTTPWalletAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (WalletAdapter, error) {
	a := &httpWalletAdapter{
		timeout: adapterCfg.RequestTimeout,
		logger:  log.WithComponent("wallet-adapter"),
	}

	if err := a.Reconfigure(adapterCfg.WalletAddress, appCfg.WalletAPIKey); err != nil {
		return nil, err
	}

	return a, nil
}

// Reconfigure implements [WalletAdapter]. A fresh resty client is built so
// requests already in flight keep their own settings.
func (h *httpWalletAdapter) Reconfigure(baseURL, apiKey string) error {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return fmt.Errorf("invalid wallet service address: %w", err)
	}

	client := utils.NewHTTPClient(h.timeout)
	client.SetBaseURL(normalized)

	h.mu.Lock()
	h.client = client
	h.apiKey = apiKey
	h.mu.Unlock()

	h.logger.Debug().Str("func", "httpWalletAdapter.Reconfigure").Str("base_url", normalized).Msg("wallet adapter configured")
	return nil
}

// Connect implements [WalletAdapter] via POST wallet/connect.
func (h *httpWalletAdapter) Connect(ctx context.Context, address string) (string, error) {
	var out models.ConnectResponse
	if err := h.send(ctx, resty.MethodPost, "wallet/connect", models.ConnectRequest{Address: address}, &out); err != nil {
		return "", fmt.Errorf("connect request: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("connect request: %w", rejected(out.Message))
	}

	return out.Address, nil
}

// RequestPairing implements [WalletAdapter] via POST wallet/qr-connect.
func (h *httpWalletAdapter) RequestPairing(ctx context.Context, sessionID string) (string, error) {
	var out models.PairingResponse
	if err := h.send(ctx, resty.MethodPost, "wallet/qr-connect", models.PairingRequest{SessionID: sessionID}, &out); err != nil {
		return "", fmt.Errorf("qr connect request: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("qr connect request: %w", rejected(out.Message))
	}

	return out.ConnectionURL, nil
}

// PairingStatus implements [WalletAdapter] via GET wallet/qr-status/{sessionId}.
func (h *httpWalletAdapter) PairingStatus(ctx context.Context, sessionID string) (models.PairingStatusResponse, error) {
	var out models.PairingStatusResponse
	path := "wallet/qr-status/" + url.PathEscape(sessionID)
	if err := h.send(ctx, resty.MethodGet, path, nil, &out); err != nil {
		return models.PairingStatusResponse{}, fmt.Errorf("qr status request: %w", err)
	}
	if !out.Success {
		return models.PairingStatusResponse{}, fmt.Errorf("qr status request: %w", rejected(out.Message))
	}

	return out, nil
}

// Disconnect implements [WalletAdapter] via POST wallet/disconnect.
func (h *httpWalletAdapter) Disconnect(ctx context.Context) error {
	var out models.RemoteResponse
	if err := h.send(ctx, resty.MethodPost, "wallet/disconnect", nil, &out); err != nil {
		return fmt.Errorf("disconnect request: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("disconnect request: %w", rejected(out.Message))
	}

	return nil
}

// Import implements [WalletAdapter] via POST wallet/import. The private key
// only travels in the request body.
func (h *httpWalletAdapter) Import(ctx context.Context, privateKey string) (string, error) {
	var out models.ConnectResponse
	if err := h.send(ctx, resty.MethodPost, "wallet/import", models.ImportRequest{PrivateKey: privateKey}, &out); err != nil {
		return "", fmt.Errorf("import request: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("import request: %w", rejected(out.Message))
	}

	return out.Address, nil
}

// Balance implements [WalletAdapter] via GET wallet/balance.
func (h *httpWalletAdapter) Balance(ctx context.Context) (string, error) {
	var out models.BalanceResponse
	if err := h.send(ctx, resty.MethodGet, "wallet/balance", nil, &out); err != nil {
		return "", fmt.Errorf("balance request: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("balance request: %w", rejected(out.Message))
	}

	return out.Balance, nil
}

// Tokens implements [WalletAdapter] via GET wallet/tokens.
func (h *httpWalletAdapter) Tokens(ctx context.Context) ([]models.Token, error) {
	var out models.TokensResponse
	if err := h.send(ctx, resty.MethodGet, "wallet/tokens", nil, &out); err != nil {
		return nil, fmt.Errorf("tokens request: %w", err)
	}
	if !out.Success {
		return nil, fmt.Errorf("tokens request: %w", rejected(out.Message))
	}

	if out.Tokens == nil {
		return []models.Token{}, nil
	}
	return out.Tokens, nil
}

// Purchase implements [WalletAdapter] via POST marketplace/purchase.
func (h *httpWalletAdapter) Purchase(ctx context.Context, contentID string) (string, error) {
	var out models.PurchaseResponse
	if err := h.send(ctx, resty.MethodPost, "marketplace/purchase", models.PurchaseRequest{ContentID: contentID}, &out); err != nil {
		return "", fmt.Errorf("purchase request: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("purchase request: %w", rejected(out.Message))
	}

	return out.TokenID, nil
}

func (h *httpWalletAdapter) send(ctx context.Context, method, path string, body, out any) error {
	h.mu.RLock()
	req := h.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, h.apiKey)
	h.mu.RUnlock()

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "httpWalletAdapter.send").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("wallet service returned an error")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}
