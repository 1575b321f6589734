package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/adapter"
	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/models"
)

type clientPairingService struct {
	adapter adapter.WalletAdapter
	ids     IDGenerator

	interval time.Duration
	timeout  time.Duration

	logger *logger.Logger
}

// NewClientPairingService creates the QR pairing flow. Status is polled every
// workersCfg.PairingPollInterval until workersCfg.PairingTimeout elapses.
func NewClientPairingService(walletAdapter adapter.WalletAdapter, ids IDGenerator, workersCfg config.ClientWorkers, log *logger.Logger) ClientPairingService {
	interval := workersCfg.PairingPollInterval
	if interval <= 0 {
		interval = time.Second
	}
	timeout := workersCfg.PairingTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &clientPairingService{
		adapter:  walletAdapter,
		ids:      ids,
		interval: interval,
		timeout:  timeout,
		logger:   log.WithComponent("pairing"),
	}
}

func (p *clientPairingService) Pair(ctx context.Context, display PairingDisplay) models.Result {
	if display == nil {
		return models.Fail(MsgPairingUnavailable)
	}

	session := models.PairingSession{
		SessionID: p.ids.Generate(),
		Status:    models.PairingPending,
	}

	connectionURL, err := p.adapter.RequestPairing(ctx, session.SessionID)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPairingService.Pair").Msg("error requesting pairing url")
		return models.Fail(remoteMessage(err, MsgPairingFailed))
	}
	session.ConnectionURL = connectionURL
	session.Deadline = time.Now().Add(p.timeout)

	display.ShowPairing(session)

	pollCtx, cancel := context.WithDeadline(ctx, session.Deadline)
	defer cancel()

	found := make(chan string, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.poll(pollCtx, session.SessionID, found)
	}()

	var address string
	select {
	case address = <-found:
		session.Status = models.PairingConnected
	case <-display.Canceled():
		session.Status = models.PairingCanceled
	case <-pollCtx.Done():
		if ctx.Err() != nil {
			session.Status = models.PairingCanceled
		} else {
			session.Status = models.PairingTimedOut
		}
	}

	cancel()
	wg.Wait()
	display.ClosePairing(session.Status)

	if session.Status != models.PairingConnected {
		p.logger.Info().Str("func", "clientPairingService.Pair").
			Str("session_id", session.SessionID).
			Str("status", string(session.Status)).
			Msg("pairing ended without connection")
		return models.Fail(MsgPairingCanceled)
	}

	p.logger.Info().Str("func", "clientPairingService.Pair").Str("session_id", session.SessionID).Msg("wallet paired")
	return models.Result{Success: true, Address: address}
}

// poll queries the session status immediately and then every interval until
// the wallet connects or ctx ends. A connected address is sent to found.
func (p *clientPairingService) poll(ctx context.Context, sessionID string, found chan<- string) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		status, err := p.adapter.PairingStatus(ctx, sessionID)
		switch {
		case err != nil:
			if ctx.Err() == nil {
				p.logger.Debug().Err(err).Str("func", "clientPairingService.poll").Msg("pairing status not available")
			}
		case status.Connected && status.Address != "":
			found <- status.Address
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
