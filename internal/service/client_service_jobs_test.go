package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/mock"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCacheJob_PrunesOnStartAndEveryInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCache(ctrl)
	verifications := mock.NewMockVerificationRepository(ctrl)

	var cachePrunes, rowPrunes atomic.Int64
	cache.EXPECT().Prune().DoAndReturn(func() (int, error) {
		cachePrunes.Add(1)
		return 2, nil
	}).AnyTimes()
	verifications.EXPECT().Prune(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, before time.Time) (int64, error) {
			rowPrunes.Add(1)
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), before, time.Second)
			return 0, nil
		}).AnyTimes()

	job := NewClientCacheJob(cache, verifications, 10*time.Millisecond, 24*time.Hour, logger.Nop())
	job.Start(context.Background())
	require.Eventually(t, func() bool { return cachePrunes.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()

	stopped := cachePrunes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, cachePrunes.Load())
	assert.Equal(t, stopped, rowPrunes.Load())
}

func TestCacheJob_ErrorsDoNotStopJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCache(ctrl)

	var prunes atomic.Int64
	cache.EXPECT().Prune().DoAndReturn(func() (int, error) {
		prunes.Add(1)
		return 0, errors.New("read dir")
	}).AnyTimes()

	job := NewClientCacheJob(cache, nil, 10*time.Millisecond, time.Hour, logger.Nop())
	job.Start(context.Background())
	require.Eventually(t, func() bool { return prunes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestCacheJob_ZeroRetentionKeepsLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCache(ctrl)
	verifications := mock.NewMockVerificationRepository(ctrl)

	pruned := make(chan struct{}, 1)
	cache.EXPECT().Prune().DoAndReturn(func() (int, error) {
		select {
		case pruned <- struct{}{}:
		default:
		}
		return 0, nil
	}).AnyTimes()

	job := NewClientCacheJob(cache, verifications, time.Hour, 0, logger.Nop())
	job.Start(context.Background())
	<-pruned
	job.Stop()
}

func TestCacheJob_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockCache(ctrl)
	cache.EXPECT().Prune().Return(0, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewClientCacheJob(cache, nil, 5*time.Millisecond, 0, logger.Nop())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after context cancellation")
	}
}

func TestWalletJob_RefreshesConnectedWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWallet(t, ctrl, connectedState("0xabc", tokenA1), false)

	var refreshes atomic.Int64
	w.adapter.EXPECT().Balance(gomock.Any()).Return("1", nil).AnyTimes()
	w.adapter.EXPECT().Tokens(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Token, error) {
		refreshes.Add(1)
		return []models.Token{tokenA1, tokenB}, nil
	}).AnyTimes()

	job := NewClientWalletJob(w.svc, 10*time.Millisecond, logger.Nop())
	job.Start(context.Background())
	require.Eventually(t, func() bool { return refreshes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.True(t, w.svc.HasToken("t2"))
}

func TestWalletJob_SkipsWhenDisconnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newTestWallet(t, ctrl, nil, false)

	// No adapter expectations: any refresh call fails the test.
	job := NewClientWalletJob(w.svc, 5*time.Millisecond, logger.Nop())
	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()
}
