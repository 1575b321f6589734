package service

import (
	"context"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

// ClientWalletService manages the local view of the user's wallet: its
// connection to the wallet service, the persisted state and the ownership
// queries used by playback.
//
// State-changing operations never return errors; they report failures in
// [models.Result] and leave both the persisted and the in-memory state
// untouched when they fail.
type ClientWalletService interface {
	// IsConnected reports whether a wallet is connected.
	IsConnected() bool

	// GetAddress returns the connected address, or "" when none.
	GetAddress() string

	// GetBalance asks the wallet service for the current balance. It returns
	// "0.0" when not connected or on any remote error.
	GetBalance(ctx context.Context) string

	// LastBalance returns the balance fetched by the last successful Refresh.
	LastBalance() string

	// Connect reconnects the stored address silently when there is one.
	// Otherwise it runs QR pairing when useQR is set, or asks the wallet
	// service to connect without an address hint.
	Connect(ctx context.Context, useQR bool) models.Result

	// AutoConnect is the non-interactive variant of Connect. It only tries
	// the stored address and only when auto connect is enabled.
	AutoConnect(ctx context.Context) models.Result

	// ImportWallet imports a wallet from privateKey. The key is forwarded to
	// the wallet service and never stored.
	ImportWallet(ctx context.Context, privateKey string) models.Result

	// Disconnect disconnects the wallet and clears the local state.
	Disconnect(ctx context.Context) models.Result

	// Refresh re-reads balance and tokens of the connected wallet.
	Refresh(ctx context.Context) models.Result

	// PurchaseToken buys a license token for contentID.
	PurchaseToken(ctx context.Context, contentID string) models.Result

	// GetOwnedTokens returns a copy of the token list, empty when not
	// connected.
	GetOwnedTokens() []models.Token

	// HasToken reports whether the wallet holds tokenID.
	HasToken(tokenID string) bool

	// HasTokenForContent reports whether the wallet holds any token for
	// contentID.
	HasTokenForContent(contentID string) bool

	// GetTokenIDForContent returns the first token (in list order) for
	// contentID.
	GetTokenIDForContent(contentID string) (string, bool)

	// GetTokensForContent returns every token for contentID in list order.
	GetTokensForContent(contentID string) []models.Token

	// SetPairingDisplay installs the front-end used by QR pairing.
	SetPairingDisplay(display PairingDisplay)

	// ReloadSettings applies changed wallet service settings.
	ReloadSettings(cfg config.ClientConfig) error
}

// PairingDisplay is the front-end of a QR pairing session.
type PairingDisplay interface {
	// ShowPairing presents the connection URL of a pending session.
	ShowPairing(session models.PairingSession)

	// ClosePairing is called exactly once when the session resolves.
	ClosePairing(status models.PairingStatus)

	// Canceled is closed (or receives) when the user aborts pairing.
	Canceled() <-chan struct{}
}

// IDGenerator issues pairing session identifiers.
type IDGenerator interface {
	Generate() string
}

// ClientPairingService runs a single QR pairing handshake.
type ClientPairingService interface {
	// Pair blocks until the session is connected, canceled through display
	// or timed out. On success the Result carries the paired address.
	Pair(ctx context.Context, display PairingDisplay) models.Result
}

// Player is the playback collaborator the license verifier can stop.
type Player interface {
	StopPlayback()
	IsPlaying() bool
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(title, message string)
}

// ClientLicenseService re-validates the license of the content being played.
type ClientLicenseService interface {
	// Attach installs the playback and notification collaborators. It must
	// be called before Start.
	Attach(player Player, notifier Notifier)

	// Start verifies tokenID immediately and then periodically until Stop,
	// ctx cancellation, the player stopping or a revoked license.
	Start(ctx context.Context, contentID, tokenID string)

	// Stop stops the verifier and waits for it.
	Stop()

	// State reports the verifier state.
	State() models.VerifierState

	// Verify performs a single verification of tokenID held by the connected
	// wallet. A nil error means the answer is conclusive.
	Verify(ctx context.Context, contentID, tokenID string) (bool, error)

	// LastVerification returns the most recent conclusive verification.
	LastVerification(ctx context.Context, contentID, tokenID string) (models.Verification, error)
}

// ClientStreamService exchanges owned license tokens for stream credentials.
type ClientStreamService interface {
	// RequestStreamAccess returns a live credential for contentID. An empty
	// tokenID selects the first owned token for the content.
	RequestStreamAccess(ctx context.Context, contentID, tokenID string) (models.StreamAccess, error)
}

// ClientJob is a background job with the Start/Stop lifecycle.
type ClientJob interface {
	Start(ctx context.Context)
	Stop()
}
