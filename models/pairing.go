// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PairingStatus is the state of a remote (QR) pairing session.
// pending is the only non-terminal state.
type PairingStatus string

const (
	PairingPending   PairingStatus = "pending"
	PairingConnected PairingStatus = "connected"
	PairingCanceled  PairingStatus = "canceled"
	PairingTimedOut  PairingStatus = "timedOut"
)

// Terminal reports whether s ends the pairing session.
func (s PairingStatus) Terminal() bool {
	return s != PairingPending
}

// PairingSession is the in-memory handle of a single pairing handshake.
// It is created when pairing starts and dropped when the flow resolves.
type PairingSession struct {
	SessionID     string
	ConnectionURL string
	Status        PairingStatus
	Deadline      time.Time
}
