// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WalletState is the durable representation of the local wallet.
// It is persisted as a single JSON document by the wallet file store.
//
// Invariants:
//   - Connected == true implies Address != nil;
//   - after a successful disconnect Connected == false, Address == nil and
//     Tokens is empty.
type WalletState struct {
	// Connected reports whether the wallet service accepted this client.
	Connected bool `json:"connected"`

	// Address is the blockchain address of the paired wallet, or nil when
	// no wallet has ever been paired (or after a disconnect).
	Address *string `json:"address"`

	// Tokens is the ordered list of license tokens owned by Address as last
	// reported by the wallet service.
	Tokens []Token `json:"tokens"`
}

// EmptyWalletState returns the zero, disconnected state with a non-nil
// token list so that it serialises as "tokens": [].
func EmptyWalletState() WalletState {
	return WalletState{Tokens: []Token{}}
}

// AddressOrEmpty returns the stored address, or "" when it is nil.
func (w WalletState) AddressOrEmpty() string {
	if w.Address == nil {
		return ""
	}
	return *w.Address
}

// Clone returns a deep copy of w. The token slice is copied so callers may
// mutate the result without touching the original.
func (w WalletState) Clone() WalletState {
	out := WalletState{Connected: w.Connected, Tokens: make([]Token, len(w.Tokens))}
	if w.Address != nil {
		addr := *w.Address
		out.Address = &addr
	}
	copy(out.Tokens, w.Tokens)
	return out
}
