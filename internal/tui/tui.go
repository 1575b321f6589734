// Package tui is the terminal front-end of the license keeper client.
//
// It renders the wallet menu, shows QR pairing sessions, lists owned
// licenses and simulates playback so the license verifier can be observed.
package tui

import (
	"context"

	"github.com/MKhiriev/go-license-keeper/internal/client"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/service"
	"github.com/MKhiriev/go-license-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	bus     *bus
	display *pairingDisplay
	player  *player

	logger *logger.Logger
}

// New builds the front-end and registers its pairing display and player with
// services.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	b := &bus{}
	t := &TUI{
		services:  services,
		buildInfo: buildInfo,
		bus:       b,
		display:   newPairingDisplay(b),
		player:    newPlayer(b),
		logger:    log.WithComponent("tui"),
	}

	services.WalletService.SetPairingDisplay(t.display)
	services.LicenseService.Attach(t.player, t.Notifier())

	return t
}

// Notifier returns a service.Notifier showing messages in the status line.
func (t *TUI) Notifier() service.Notifier {
	return notifier{bus: t.bus}
}

// Run starts host, shows the UI until the user quits and then shuts host
// down.
func (t *TUI) Run(ctx context.Context, host client.HostEvents) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(runCtx, t.services, host, t.display, t.player, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(runCtx))

	q := newQueue(program)
	go q.run(runCtx)

	t.bus.attach(q)
	host.OnStartup(runCtx)

	_, err := program.Run()

	t.bus.attach(nil)
	cancel()
	host.OnShutdown()

	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("ui stopped with error")
		return err
	}
	return nil
}
