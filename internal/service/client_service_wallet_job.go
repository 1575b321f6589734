package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
)

type clientWalletJob struct {
	wallet   ClientWalletService
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientWalletJob creates a job that refreshes the connected wallet every
// interval. A non-positive interval defaults to 5 minutes.
func NewClientWalletJob(wallet ClientWalletService, interval time.Duration, log *logger.Logger) ClientJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &clientWalletJob{
		wallet:   wallet,
		interval: interval,
		logger:   log.WithComponent("wallet-job"),
	}
}

// Start implements ClientJob. It stops any previously running job, then
// launches a background goroutine that calls Refresh every interval while a
// wallet is connected.
func (j *clientWalletJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.wallet.IsConnected() {
					continue
				}
				if res := j.wallet.Refresh(jobCtx); !res.Success && jobCtx.Err() == nil {
					j.logger.Warn().Str("func", "clientWalletJob.Start").Str("reason", res.Message).Msg("wallet status refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited.
func (j *clientWalletJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
