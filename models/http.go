package models

// ConnectRequest is the body of POST wallet/connect. Address is an optional
// hint used for silent reconnection.
type ConnectRequest struct {
	Address string `json:"address,omitempty"`
}

// PairingRequest is the body of POST wallet/qr-connect.
type PairingRequest struct {
	SessionID string `json:"sessionId"`
}

// ImportRequest is the body of POST wallet/import.
// PrivateKey must never be logged or persisted.
type ImportRequest struct {
	PrivateKey string `json:"privateKey"`
}

// PurchaseRequest is the body of POST marketplace/purchase.
type PurchaseRequest struct {
	ContentID string `json:"contentId"`
}

// VerifyTokenRequest is the body of POST tokens/verify on the platform API.
type VerifyTokenRequest struct {
	TokenID       string `json:"tokenId"`
	WalletAddress string `json:"walletAddress"`
}

// StreamAccessRequest is the body of POST encryption/access on the platform API.
type StreamAccessRequest struct {
	ContentID string `json:"contentId"`
	TokenID   string `json:"tokenId"`
}
