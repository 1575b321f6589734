// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/adapter"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/models"
)

type clientLicenseService struct {
	wallet        ClientWalletService
	platform      adapter.PlatformAdapter
	verifications store.VerificationRepository
	interval      time.Duration

	mu         sync.Mutex
	player     Player
	notifier   Notifier
	cancel     context.CancelFunc
	generation uint64
	state      models.VerifierState
	wg         sync.WaitGroup

	stoppingPlayback bool

	logger *logger.Logger
}

// NewClientLicenseService creates the license verifier. It is idle until
// Start is called. A non-positive interval defaults to 5 minutes.
func NewClientLicenseService(
	wallet ClientWalletService,
	platform adapter.PlatformAdapter,
	verifications store.VerificationRepository,
	interval time.Duration,
	log *logger.Logger,
) ClientLicenseService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &clientLicenseService{
		wallet:        wallet,
		platform:      platform,
		verifications: verifications,
		interval:      interval,
		state:         models.VerifierIdle,
		logger:        log.WithComponent("license"),
	}
}

func (l *clientLicenseService) Attach(player Player, notifier Notifier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.player = player
	l.notifier = notifier
}

// Start implements ClientLicenseService. It stops any previous verifier, then
// launches a goroutine that verifies immediately and then every interval.
func (l *clientLicenseService) Start(ctx context.Context, contentID, tokenID string) {
	l.Stop()

	l.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.generation++
	gen := l.generation
	l.state = models.VerifierPlaying
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()

		if !l.run(jobCtx, gen, contentID, tokenID) {
			l.setState(gen, models.VerifierIdle)
			return
		}
		l.revoke(gen)
	}()
}

// revoke notifies the user and stops playback for generation gen. Each side
// effect is skipped once a newer Stop or Start has superseded gen.
func (l *clientLicenseService) revoke(gen uint64) {
	l.mu.Lock()
	if l.generation != gen {
		l.mu.Unlock()
		return
	}
	l.state = models.VerifierIdle
	notifier := l.notifier
	l.mu.Unlock()

	if notifier != nil {
		notifier.Notify(MsgLicenseErrorTitle, MsgLicenseNotVerified)
	}

	l.mu.Lock()
	if l.generation != gen {
		l.mu.Unlock()
		return
	}
	player := l.player
	// the host may call Stop from StopPlayback
	l.stoppingPlayback = true
	l.mu.Unlock()

	if player != nil {
		player.StopPlayback()
	}

	l.mu.Lock()
	l.stoppingPlayback = false
	l.mu.Unlock()
}

// Stop implements ClientLicenseService. It cancels the verifier and blocks
// until its goroutine has exited, except when called while the verifier is
// inside Player.StopPlayback. Safe to call when the verifier is idle.
func (l *clientLicenseService) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.generation++
	l.state = models.VerifierIdle
	reentrant := l.stoppingPlayback
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if !reentrant {
		l.wg.Wait()
	}
}

func (l *clientLicenseService) State() models.VerifierState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *clientLicenseService) Verify(ctx context.Context, contentID, tokenID string) (bool, error) {
	address := l.wallet.GetAddress()
	if !l.wallet.IsConnected() || address == "" {
		return false, ErrWalletNotConnected
	}

	valid, err := l.platform.VerifyToken(ctx, tokenID, address)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrVerificationUnavailable, err)
	}

	_, err = l.verifications.Save(ctx, models.Verification{
		ContentID:     contentID,
		TokenID:       tokenID,
		WalletAddress: address,
		Valid:         valid,
		VerifiedAt:    time.Now(),
	})
	if err != nil {
		l.logger.Err(err).Str("func", "clientLicenseService.Verify").Msg("error recording verification")
	}

	return valid, nil
}

func (l *clientLicenseService) LastVerification(ctx context.Context, contentID, tokenID string) (models.Verification, error) {
	return l.verifications.Last(ctx, contentID, tokenID)
}

// run is the verifier loop. It reports whether the license was revoked.
func (l *clientLicenseService) run(ctx context.Context, gen uint64, contentID, tokenID string) bool {
	if l.tick(ctx, gen, contentID, tokenID) {
		return true
	}

	t := time.NewTicker(l.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
		}

		if ctx.Err() != nil {
			return false
		}
		if !l.isPlaying() {
			l.logger.Info().Str("func", "clientLicenseService.run").Msg("playback ended, stopping verification")
			return false
		}
		if l.tick(ctx, gen, contentID, tokenID) {
			return true
		}
	}
}

// tick runs one verification and reports whether it conclusively failed.
func (l *clientLicenseService) tick(ctx context.Context, gen uint64, contentID, tokenID string) bool {
	l.setState(gen, models.VerifierVerifying)
	defer l.setState(gen, models.VerifierPlaying)

	valid, err := l.Verify(ctx, contentID, tokenID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			l.logger.Warn().Err(err).Str("func", "clientLicenseService.tick").Str("token_id", tokenID).Msg("license verification skipped")
		}
		return false
	}
	if ctx.Err() != nil {
		return false
	}

	if !valid {
		l.logger.Error().Str("func", "clientLicenseService.tick").Str("token_id", tokenID).Msg("license verification failed")
		return true
	}

	l.logger.Debug().Str("func", "clientLicenseService.tick").Str("token_id", tokenID).Msg("license verified")
	return false
}

func (l *clientLicenseService) setState(gen uint64, state models.VerifierState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.generation == gen {
		l.state = state
	}
}

func (l *clientLicenseService) isPlaying() bool {
	l.mu.Lock()
	player := l.player
	l.mu.Unlock()
	return player == nil || player.IsPlaying()
}
