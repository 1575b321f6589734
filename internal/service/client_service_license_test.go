package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/mock"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testLicense struct {
	svc           *clientLicenseService
	platform      *mock.MockPlatformAdapter
	verifications *mock.MockVerificationRepository
	player        *fakePlayer
	notifier      *fakeNotifier
}

func newTestLicense(t *testing.T, ctrl *gomock.Controller, wallet *models.WalletState, interval time.Duration) *testLicense {
	t.Helper()

	w := newTestWallet(t, ctrl, wallet, false)
	platform := mock.NewMockPlatformAdapter(ctrl)
	verifications := mock.NewMockVerificationRepository(ctrl)

	svc := NewClientLicenseService(w.svc, platform, verifications, interval, logger.Nop()).(*clientLicenseService)
	player := newFakePlayer(true)
	notifier := &fakeNotifier{}
	svc.Attach(player, notifier)

	t.Cleanup(svc.Stop)

	return &testLicense{svc: svc, platform: platform, verifications: verifications, player: player, notifier: notifier}
}

func TestLicense_InitialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), time.Hour)

	assert.Equal(t, models.VerifierIdle, l.svc.State())
	l.svc.Stop()
	assert.Equal(t, models.VerifierIdle, l.svc.State())
}

func TestLicense_RevokedOnSecondTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), 20*time.Millisecond)

	l.verifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
	gomock.InOrder(
		l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(true, nil),
		l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(false, nil),
	)

	// The host stops the verifier from inside StopPlayback.
	l.player.onStop = l.svc.Stop

	l.svc.Start(context.Background(), "A", "t1")

	require.Eventually(t, func() bool { return l.player.stops.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []notification{{MsgLicenseErrorTitle, MsgLicenseNotVerified}}, l.notifier.Sent())
	assert.Equal(t, models.VerifierIdle, l.svc.State())
}

func TestLicense_ValidKeepsPlaying(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), 10*time.Millisecond)

	var calls atomic.Int64
	l.verifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").
		DoAndReturn(func(context.Context, string, string) (bool, error) {
			calls.Add(1)
			return true, nil
		}).AnyTimes()

	l.svc.Start(context.Background(), "A", "t1")
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	assert.NotEqual(t, models.VerifierIdle, l.svc.State())
	assert.Zero(t, l.player.stops.Load())

	l.svc.Stop()
	assert.Equal(t, models.VerifierIdle, l.svc.State())

	after := calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestLicense_TransientErrorsAreSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), 10*time.Millisecond)

	var calls atomic.Int64
	l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").
		DoAndReturn(func(context.Context, string, string) (bool, error) {
			calls.Add(1)
			return false, errors.New("platform unreachable")
		}).AnyTimes()

	l.svc.Start(context.Background(), "A", "t1")
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	l.svc.Stop()

	assert.Zero(t, l.player.stops.Load())
	assert.Empty(t, l.notifier.Sent())
}

func TestLicense_StopsWhenPlaybackEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), 10*time.Millisecond)
	l.player.playing.Store(false)

	l.verifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(true, nil).Times(1)

	l.svc.Start(context.Background(), "A", "t1")

	require.Eventually(t, func() bool { return l.svc.State() == models.VerifierIdle }, time.Second, 5*time.Millisecond)
	assert.Zero(t, l.player.stops.Load())
}

func TestLicense_RestartReplacesVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1, tokenB), time.Hour)

	l.verifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
	first := l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(true, nil)
	l.platform.EXPECT().VerifyToken(gomock.Any(), "t2", "0xabc").Return(true, nil).After(first)

	l.svc.Start(context.Background(), "A", "t1")
	l.svc.Start(context.Background(), "B", "t2")
	require.Eventually(t, ctrl.Satisfied, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return l.svc.State() == models.VerifierPlaying }, time.Second, 5*time.Millisecond)
}

// blockingNotifier holds Notify until release is closed.
type blockingNotifier struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingNotifier() *blockingNotifier {
	return &blockingNotifier{entered: make(chan struct{}), release: make(chan struct{})}
}

func (n *blockingNotifier) Notify(string, string) {
	n.once.Do(func() { close(n.entered) })
	<-n.release
}

func TestLicense_StopSupersedesPendingRevocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1, tokenB), time.Hour)
	notifier := newBlockingNotifier()
	l.svc.Attach(l.player, notifier)

	l.verifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
	l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(false, nil)
	l.platform.EXPECT().VerifyToken(gomock.Any(), "t2", "0xabc").Return(true, nil)

	l.svc.Start(context.Background(), "A", "t1")
	select {
	case <-notifier.entered:
	case <-time.After(time.Second):
		t.Fatal("verifier did not report the revoked license")
	}

	stopped := make(chan struct{})
	go func() {
		l.svc.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while the verifier was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(notifier.release)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	l.svc.Start(context.Background(), "B", "t2")

	require.Eventually(t, ctrl.Satisfied, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return l.svc.State() == models.VerifierPlaying }, time.Second, 5*time.Millisecond)
	assert.True(t, l.player.IsPlaying())
	assert.Zero(t, l.player.stops.Load())
}

func TestVerify(t *testing.T) {
	t.Run("not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := newTestLicense(t, ctrl, nil, time.Hour)

		valid, err := l.svc.Verify(context.Background(), "A", "t1")
		assert.False(t, valid)
		assert.ErrorIs(t, err, ErrWalletNotConnected)
	})

	t.Run("records result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), time.Hour)

		l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(false, nil)
		l.verifications.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v models.Verification) (int64, error) {
				assert.Equal(t, "A", v.ContentID)
				assert.Equal(t, "t1", v.TokenID)
				assert.Equal(t, "0xabc", v.WalletAddress)
				assert.False(t, v.Valid)
				assert.WithinDuration(t, time.Now(), v.VerifiedAt, time.Second)
				return 7, nil
			})

		valid, err := l.svc.Verify(context.Background(), "A", "t1")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("record failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), time.Hour)

		l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(true, nil)
		l.verifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database is locked"))

		valid, err := l.svc.Verify(context.Background(), "A", "t1")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("platform failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), time.Hour)

		l.platform.EXPECT().VerifyToken(gomock.Any(), "t1", "0xabc").Return(false, errors.New("timeout"))

		_, err := l.svc.Verify(context.Background(), "A", "t1")
		assert.ErrorIs(t, err, ErrVerificationUnavailable)
	})
}

func TestLastVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newTestLicense(t, ctrl, connectedState("0xabc", tokenA1), time.Hour)

	want := models.Verification{ID: 3, ContentID: "A", TokenID: "t1", WalletAddress: "0xabc", Valid: true}
	l.verifications.EXPECT().Last(gomock.Any(), "A", "t1").Return(want, nil)
	l.verifications.EXPECT().Last(gomock.Any(), "B", "t2").Return(models.Verification{}, store.ErrVerificationNotFound)

	got, err := l.svc.LastVerification(context.Background(), "A", "t1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = l.svc.LastVerification(context.Background(), "B", "t2")
	assert.ErrorIs(t, err, store.ErrVerificationNotFound)
}
