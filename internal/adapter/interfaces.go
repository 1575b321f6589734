// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote wallet service and the content platform API.
//
// [WalletAdapter] decouples the wallet service layer from the REST contract
// of the wallet service; [PlatformAdapter] does the same for license token
// verification and stream access. Both ship HTTP/REST implementations built
// on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. Every mapped error is a [*RemoteError] carrying the remote
// message, so callers can surface it with [Message].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-license-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// WalletAdapter defines communication with the wallet service. Every request
// carries the configured API key. A response with success == false is
// reported as an error wrapping [ErrRejected].
type WalletAdapter interface {
	// Reconfigure points the adapter at a new base URL and API key. In-flight
	// requests finish against the previous settings.
	Reconfigure(baseURL, apiKey string) error

	// Connect asks the wallet service to connect a wallet. address is an
	// optional hint for silent reconnection; an empty string lets the service
	// choose. Returns the connected address.
	Connect(ctx context.Context, address string) (string, error)

	// RequestPairing opens a remote pairing session and returns the
	// connection URL the user has to open on their wallet device.
	RequestPairing(ctx context.Context, sessionID string) (string, error)

	// PairingStatus polls a pairing session.
	PairingStatus(ctx context.Context, sessionID string) (models.PairingStatusResponse, error)

	// Disconnect disconnects the current wallet on the service side.
	Disconnect(ctx context.Context) error

	// Import imports a wallet from a private key and returns its address.
	Import(ctx context.Context, privateKey string) (string, error)

	// Balance returns the balance of the connected wallet as reported by the
	// service.
	Balance(ctx context.Context) (string, error)

	// Tokens returns the license tokens held by the connected wallet. The
	// result is never nil.
	Tokens(ctx context.Context) ([]models.Token, error)

	// Purchase buys a license token for contentID and returns its id.
	Purchase(ctx context.Context, contentID string) (string, error)
}

// PlatformAdapter defines communication with the content platform API.
type PlatformAdapter interface {
	// VerifyToken asks the platform whether walletAddress still holds
	// tokenID. A nil error means the answer is conclusive.
	VerifyToken(ctx context.Context, tokenID, walletAddress string) (bool, error)

	// RequestStreamAccess exchanges a license token for a stream access
	// token.
	RequestStreamAccess(ctx context.Context, contentID, tokenID string) (string, error)
}
