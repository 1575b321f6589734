// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VerifierState is the state of the license verifier worker.
type VerifierState string

const (
	VerifierIdle      VerifierState = "idle"
	VerifierPlaying   VerifierState = "playing"
	VerifierVerifying VerifierState = "verifying"
)

// Verification is one conclusive answer of the platform about a token held
// by a wallet. Inconclusive checks (network errors) are not recorded.
type Verification struct {
	ID            int64     `json:"id"`
	ContentID     string    `json:"content_id"`
	TokenID       string    `json:"token_id"`
	WalletAddress string    `json:"wallet_address"`
	Valid         bool      `json:"valid"`
	VerifiedAt    time.Time `json:"verified_at"`
}

// StreamAccess is a time-limited credential that unlocks a content stream.
type StreamAccess struct {
	ContentID   string    `json:"content_id"`
	TokenID     string    `json:"token_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the credential is no longer usable at now.
func (s StreamAccess) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
