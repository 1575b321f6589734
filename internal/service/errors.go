package service

import (
	"errors"

	"github.com/MKhiriev/go-license-keeper/internal/adapter"
)

var (
	ErrWalletNotConnected      = errors.New("wallet not connected")
	ErrTokenNotOwned           = errors.New("license token is not owned by the wallet")
	ErrVerificationUnavailable = errors.New("license verification unavailable")
)

// User-facing messages of failed wallet operations.
const (
	MsgWalletNotConnected  = "Wallet not connected"
	MsgConnectFailed       = "Failed to connect wallet"
	MsgDisconnectFailed    = "Failed to disconnect wallet"
	MsgImportFailed        = "Failed to import wallet"
	MsgRefreshFailed       = "Failed to refresh wallet"
	MsgPurchaseFailed      = "Failed to purchase token"
	MsgSaveFailed          = "Failed to save wallet state"
	MsgAutoConnectDisabled = "Auto connect is disabled"
	MsgAlreadyConnected    = "Wallet already connected"
	MsgNoStoredAddress     = "No stored wallet address"
	MsgPairingCanceled     = "Connection canceled or timed out"
	MsgPairingFailed       = "Failed to start QR pairing"
	MsgPairingUnavailable  = "QR pairing is not available"
	MsgEmptyPrivateKey     = "Private key is required"
	MsgEmptyContentID      = "Content id is required"
	MsgLicenseErrorTitle   = "License Error"
	MsgLicenseNotVerified  = "Your license could not be verified"
)

// remoteMessage returns the message the remote side attached to err, or
// fallback.
func remoteMessage(err error, fallback string) string {
	if msg := adapter.Message(err); msg != "" {
		return msg
	}
	return fallback
}
