package tui

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/skip2/go-qrcode"
)

// pairingDisplay implements service.PairingDisplay. The session is shown on
// the pairing screen; the user cancels it with esc. Each pairing attempt
// starts with Begin, so a Cancel that arrives before the session is shown
// still stops it.
type pairingDisplay struct {
	bus *bus

	mu       sync.Mutex
	cancel   chan struct{}
	canceled bool
}

func newPairingDisplay(b *bus) *pairingDisplay {
	return &pairingDisplay{bus: b, cancel: make(chan struct{})}
}

// Begin arms a fresh cancel channel for the next pairing attempt.
func (d *pairingDisplay) Begin() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel = make(chan struct{})
	d.canceled = false
}

func (d *pairingDisplay) ShowPairing(session models.PairingSession) {
	qr, err := renderQR(session.ConnectionURL)
	d.bus.send(pairingShownMsg{session: session, qr: qr, err: err})
}

func (d *pairingDisplay) ClosePairing(status models.PairingStatus) {
	d.bus.send(pairingClosedMsg{status: status})
}

func (d *pairingDisplay) Canceled() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel
}

// Cancel signals the running pairing to stop. Extra calls are no-ops.
func (d *pairingDisplay) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.canceled {
		close(d.cancel)
		d.canceled = true
	}
}

var errEmptyConnectionURL = errors.New("empty connection url")

// renderQR renders url as a block-character QR code for the terminal.
func renderQR(url string) (string, error) {
	if url == "" {
		return "", errEmptyConnectionURL
	}

	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("error encoding qr code: %w", err)
	}
	return strings.TrimRight(qr.ToSmallString(false), "\n"), nil
}
