package client

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/service"
	"github.com/MKhiriev/go-license-keeper/internal/workers"
)

const (
	autoConnectedTitle   = "Wallet Connected"
	autoConnectedMessage = "Your wallet has been automatically connected"
)

// Monitor is the [HostEvents] implementation driving the client services.
type Monitor struct {
	services     *service.ClientServices
	jobs         *workers.Workers
	notifier     service.Notifier
	startupDelay time.Duration

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool

	logger *logger.Logger
}

// NewMonitor returns a Monitor for services. notifier receives the
// auto-connect notification and may be nil.
func NewMonitor(services *service.ClientServices, notifier service.Notifier, workersCfg config.ClientWorkers, log *logger.Logger) *Monitor {
	return &Monitor{
		services:     services,
		jobs:         workers.New(services.CacheJob, services.WalletJob),
		notifier:     notifier,
		startupDelay: workersCfg.StartupDelay,
		ctx:          context.Background(),
		logger:       log.WithComponent("monitor"),
	}
}

var _ HostEvents = (*Monitor)(nil)

func (m *Monitor) OnStartup(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.ctx, m.cancel = runCtx, cancel
	m.started = true

	m.jobs.Start(runCtx)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.autoConnect(runCtx)
	}()

	m.logger.Info().Str("func", "Monitor.OnStartup").Dur("auto_connect_delay", m.startupDelay).Msg("client monitor started")
}

func (m *Monitor) OnShutdown() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.ctx = context.Background()
	started := m.started
	m.started = false
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	m.services.LicenseService.Stop()
	m.jobs.Stop()
	m.wg.Wait()

	if started {
		m.logger.Info().Str("func", "Monitor.OnShutdown").Msg("client monitor stopped")
	}
}

func (m *Monitor) OnAbortRequested() {
	m.logger.Info().Str("func", "Monitor.OnAbortRequested").Msg("abort requested")
	m.OnShutdown()
}

func (m *Monitor) OnSettingsChanged(cfg config.ClientConfig) error {
	if err := m.services.WalletService.ReloadSettings(cfg); err != nil {
		m.logger.Err(err).Str("func", "Monitor.OnSettingsChanged").Msg("error applying settings")
		return err
	}

	m.logger.Info().Str("func", "Monitor.OnSettingsChanged").Str("wallet_api", cfg.Adapter.WalletAddress).Msg("settings reloaded")
	return nil
}

func (m *Monitor) OnPlaybackStarted(contentID, tokenID string) {
	m.mu.Lock()
	ctx := m.ctx
	m.mu.Unlock()

	m.services.LicenseService.Start(ctx, contentID, tokenID)
}

func (m *Monitor) OnPlaybackStopped() {
	m.services.LicenseService.Stop()
}

// autoConnect waits for startupDelay and then tries the silent wallet
// reconnection. Failures are only logged.
func (m *Monitor) autoConnect(ctx context.Context) {
	if m.startupDelay > 0 {
		t := time.NewTimer(m.startupDelay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}

	res := m.services.WalletService.AutoConnect(ctx)
	if !res.Success {
		m.logger.Info().Str("func", "Monitor.autoConnect").Str("reason", res.Message).Msg("wallet auto-connect skipped")
		return
	}

	m.logger.Info().Str("func", "Monitor.autoConnect").Str("address", res.Address).Msg("wallet auto-connected")
	if m.notifier != nil {
		m.notifier.Notify(autoConnectedTitle, autoConnectedMessage)
	}
}
