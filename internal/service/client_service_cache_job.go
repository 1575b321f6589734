package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/store"
)

type clientCacheJob struct {
	cache         store.Cache
	verifications store.VerificationRepository
	interval      time.Duration
	retention     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientCacheJob creates a job that prunes expired cache entries and
// verification log rows older than retention. It prunes once on Start and
// then every interval. A non-positive interval defaults to one hour; a
// non-positive retention keeps the verification log untouched.
func NewClientCacheJob(cache store.Cache, verifications store.VerificationRepository, interval, retention time.Duration, log *logger.Logger) ClientJob {
	if interval <= 0 {
		interval = time.Hour
	}

	return &clientCacheJob{
		cache:         cache,
		verifications: verifications,
		interval:      interval,
		retention:     retention,
		logger:        log.WithComponent("cache-job"),
	}
}

// Start implements ClientJob. It stops any previously running job, then
// launches a background goroutine. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *clientCacheJob) Start(ctx context.Context) {
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

		j.prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx)
			}
		}
	}()
}

// Stop implements ClientJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited.
func (j *clientCacheJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientCacheJob) prune(ctx context.Context) {
	removed, err := j.cache.Prune()
	if err != nil {
		j.logger.Err(err).Str("func", "clientCacheJob.prune").Msg("error pruning cache")
	} else if removed > 0 {
		j.logger.Info().Str("func", "clientCacheJob.prune").Int("removed", removed).Msg("expired cache entries removed")
	}

	if j.verifications == nil || j.retention <= 0 {
		return
	}
	rows, err := j.verifications.Prune(ctx, time.Now().Add(-j.retention))
	if err != nil {
		j.logger.Err(err).Str("func", "clientCacheJob.prune").Msg("error pruning verification log")
		return
	}
	if rows > 0 {
		j.logger.Info().Str("func", "clientCacheJob.prune").Int64("removed", rows).Msg("old verifications removed")
	}
}
