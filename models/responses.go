package models

// RemoteResponse is the envelope shared by every wallet service response.
// A 2xx response with Success == false is still a failure; Message then
// carries the reason.
type RemoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ConnectResponse is returned by wallet/connect and wallet/import.
type ConnectResponse struct {
	RemoteResponse
	Address string `json:"address"`
}

// PairingResponse is returned by wallet/qr-connect.
type PairingResponse struct {
	RemoteResponse
	ConnectionURL string `json:"connectionUrl"`
}

// PairingStatusResponse is returned by wallet/qr-status/{sessionId}.
type PairingStatusResponse struct {
	RemoteResponse
	Connected bool   `json:"connected"`
	Address   string `json:"address"`
}

// BalanceResponse is returned by wallet/balance.
type BalanceResponse struct {
	RemoteResponse
	Balance string `json:"balance"`
}

// TokensResponse is returned by wallet/tokens.
type TokensResponse struct {
	RemoteResponse
	Tokens []Token `json:"tokens"`
}

// PurchaseResponse is returned by marketplace/purchase.
type PurchaseResponse struct {
	RemoteResponse
	TokenID string `json:"tokenId"`
}

// VerifyTokenResponse is returned by tokens/verify.
type VerifyTokenResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// StreamAccessResponse is returned by encryption/access.
type StreamAccessResponse struct {
	AccessToken string `json:"accessToken"`
	Message     string `json:"message,omitempty"`
}
