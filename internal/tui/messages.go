package tui

import (
	"github.com/MKhiriev/go-license-keeper/models"
)

type walletResultMsg struct {
	action string
	res    models.Result
}

type pairingShownMsg struct {
	session models.PairingSession
	qr      string
	err     error
}

type pairingClosedMsg struct {
	status models.PairingStatus
}

type notificationMsg struct {
	title   string
	message string
}

// playbackEndedMsg is sent when playback stops without the user asking,
// e.g. after a failed license verification.
type playbackEndedMsg struct{}

type streamAccessMsg struct {
	access models.StreamAccess
	err    error
}

type verificationMsg struct {
	verification models.Verification
	err          error
}

type playerTickMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
