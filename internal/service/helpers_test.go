package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/mock"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

// fakePairing возвращает заранее заданный результат.
type fakePairing struct {
	result  models.Result
	calls   atomic.Int64
	display PairingDisplay
}

func (f *fakePairing) Pair(_ context.Context, display PairingDisplay) models.Result {
	f.calls.Add(1)
	f.display = display
	return f.result
}

// testWallet связывает сервис кошелька, мок адаптера и файл состояния.
type testWallet struct {
	svc     *clientWalletService
	adapter *mock.MockWalletAdapter
	pairing *fakePairing
	store   store.WalletStore
	path    string
}

func newTestWallet(t *testing.T, ctrl *gomock.Controller, initial *models.WalletState, autoConnect bool) *testWallet {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wallet.json")
	ws := store.NewWalletFileStore(path, logger.Nop())
	if initial != nil {
		require.NoError(t, ws.Save(*initial))
	}

	walletAdapter := mock.NewMockWalletAdapter(ctrl)
	pairing := &fakePairing{}
	svc := NewClientWalletService(walletAdapter, ws, pairing, config.ClientWallet{AutoConnect: autoConnect}, logger.Nop()).(*clientWalletService)

	return &testWallet{svc: svc, adapter: walletAdapter, pairing: pairing, store: ws, path: path}
}

func (w *testWallet) fileBytes(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(w.path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return data
}

func connectedState(address string, tokens ...models.Token) *models.WalletState {
	if tokens == nil {
		tokens = []models.Token{}
	}
	return &models.WalletState{Connected: true, Address: strPtr(address), Tokens: tokens}
}

// fakeDisplay записывает показанные сессии и статус закрытия.
type fakeDisplay struct {
	mu     sync.Mutex
	shown  []models.PairingSession
	closed []models.PairingStatus
	cancel chan struct{}
	onShow func(models.PairingSession)
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{cancel: make(chan struct{})}
}

func (d *fakeDisplay) ShowPairing(session models.PairingSession) {
	d.mu.Lock()
	d.shown = append(d.shown, session)
	onShow := d.onShow
	d.mu.Unlock()
	if onShow != nil {
		onShow(session)
	}
}

func (d *fakeDisplay) ClosePairing(status models.PairingStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = append(d.closed, status)
}

func (d *fakeDisplay) Canceled() <-chan struct{} {
	return d.cancel
}

func (d *fakeDisplay) Closed() []models.PairingStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.PairingStatus{}, d.closed...)
}

func (d *fakeDisplay) Shown() []models.PairingSession {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.PairingSession{}, d.shown...)
}

// fakePlayer имитирует плеер хоста.
type fakePlayer struct {
	playing atomic.Bool
	stops   atomic.Int64
	onStop  func()
}

func newFakePlayer(playing bool) *fakePlayer {
	p := &fakePlayer{}
	p.playing.Store(playing)
	return p
}

func (p *fakePlayer) IsPlaying() bool { return p.playing.Load() }

func (p *fakePlayer) StopPlayback() {
	p.playing.Store(false)
	p.stops.Add(1)
	if p.onStop != nil {
		p.onStop()
	}
}

type notification struct{ title, message string }

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *fakeNotifier) Notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{title, message})
}

func (n *fakeNotifier) Sent() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification{}, n.sent...)
}

type fixedID string

func (f fixedID) Generate() string { return string(f) }
