// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newFakeWalletService serves the wallet service contract under /api.
func newFakeWalletService(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("X-API-Key") != testAPIKey {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid api key"})
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/wallet/connect", func(w http.ResponseWriter, req *http.Request) {
			var body models.ConnectRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			address := body.Address
			if address == "" {
				address = "0xnew"
			}
			if address == "0xbanned" {
				writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "wallet locked"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "address": address})
		})
		r.Post("/wallet/qr-connect", func(w http.ResponseWriter, req *http.Request) {
			var body models.PairingRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "connectionUrl": "wc:" + body.SessionID})
		})
		r.Get("/wallet/qr-status/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "sessionID") == "done" {
				writeJSON(w, http.StatusOK, map[string]any{"success": true, "connected": true, "address": "0xqr"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "connected": false})
		})
		r.Post("/wallet/disconnect", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		})
		r.Post("/wallet/import", func(w http.ResponseWriter, req *http.Request) {
			var body models.ImportRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			if body.PrivateKey != "0xkey" {
				writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid private key"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "address": "0ximported"})
		})
		r.Get("/wallet/balance", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "balance": "12.5"})
		})
		r.Get("/wallet/tokens", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "tokens": []map[string]any{
				{"id": "t1", "contentId": "A", "contract": "0xc", "rightsLevel": "basic"},
				{"id": "t2", "contentId": "B", "contract": "0xc", "rightsLevel": "commercial", "streaming": true},
			}})
		})
		r.Post("/marketplace/purchase", func(w http.ResponseWriter, req *http.Request) {
			var body models.PurchaseRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "tokenId": "tok-" + body.ContentID})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestWalletAdapter(t *testing.T, serverURL, apiKey string) *httpWalletAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{WalletAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{WalletAPIKey: apiKey}

	a, err := NewHTTPWalletAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpWalletAdapter)
}

// ── constructor ──

func TestNewHTTPWalletAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPWalletAdapter(config.ClientAdapter{WalletAddress: ""}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:3333/api/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3333/api", got)
}

// ── wallet operations ──

func TestWalletAdapter_Connect(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api/", testAPIKey)

	address, err := a.Connect(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "0xnew", address)

	address, err = a.Connect(context.Background(), "0xstored")
	require.NoError(t, err)
	assert.Equal(t, "0xstored", address)
}

func TestWalletAdapter_Connect_Rejected(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api", testAPIKey)

	_, err := a.Connect(context.Background(), "0xbanned")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "wallet locked", Message(err))
}

func TestWalletAdapter_WrongAPIKey(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api", "wrong")

	_, err := a.Balance(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "invalid api key", Message(err))
}

func TestWalletAdapter_Reconfigure(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api", "wrong")

	require.NoError(t, a.Reconfigure(srv.URL+"/api", testAPIKey))

	balance, err := a.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12.5", balance)

	assert.Error(t, a.Reconfigure("", testAPIKey))
}

func TestWalletAdapter_Pairing(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api", testAPIKey)

	connURL, err := a.RequestPairing(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "wc:sess-1", connURL)

	status, err := a.PairingStatus(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.False(t, status.Connected)

	status, err = a.PairingStatus(context.Background(), "done")
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "0xqr", status.Address)
}

func TestWalletAdapter_Import(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api", testAPIKey)

	address, err := a.Import(context.Background(), "0xkey")
	require.NoError(t, err)
	assert.Equal(t, "0ximported", address)

	_, err = a.Import(context.Background(), "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "invalid private key", Message(err))
}

func TestWalletAdapter_DisconnectTokensPurchase(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api", testAPIKey)

	require.NoError(t, a.Disconnect(context.Background()))

	tokens, err := a.Tokens(context.Background())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "t1", tokens[0].ID)
	assert.Equal(t, models.RightsCommercial, tokens[1].RightsLevel)
	assert.True(t, tokens[1].Streaming)

	tokenID, err := a.Purchase(context.Background(), "C")
	require.NoError(t, err)
	assert.Equal(t, "tok-C", tokenID)
}

func TestWalletAdapter_TokensNullList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "tokens": nil})
	}))
	defer srv.Close()

	a := newTestWalletAdapter(t, srv.URL, testAPIKey)
	tokens, err := a.Tokens(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestWalletAdapter_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	a := newTestWalletAdapter(t, srv.URL, testAPIKey)
	_, err := a.Balance(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestWalletAdapter_ContextCanceled(t *testing.T) {
	srv := newFakeWalletService(t)
	a := newTestWalletAdapter(t, srv.URL+"/api", testAPIKey)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Connect(ctx, "")
	require.Error(t, err)
}

// ── error mapping ──

func TestMapHTTPError_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("plain reason"))
			}))
			defer srv.Close()

			a := newTestWalletAdapter(t, srv.URL, testAPIKey)
			err := a.Disconnect(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, "plain reason", Message(err))
		})
	}
}

func TestMessage_NonRemote(t *testing.T) {
	assert.Equal(t, "", Message(context.DeadlineExceeded))
}
