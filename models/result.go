// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the uniform outcome of every wallet operation. Operations never
// return errors across the service boundary; failures are reported with
// Success == false and a human-readable Message that the UI shows as is.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Address is set by connect and import operations.
	Address string `json:"address,omitempty"`

	// AutoConnected is true when the wallet was reconnected silently with a
	// previously stored address.
	AutoConnected bool `json:"autoConnected,omitempty"`

	// TokenID is set by a successful purchase.
	TokenID string `json:"tokenId,omitempty"`
}

// Fail builds a non-success Result with the given message.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}

// OK builds a success Result.
func OK() Result {
	return Result{Success: true}
}
