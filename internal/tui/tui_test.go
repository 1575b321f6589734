package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/go-license-keeper/internal/service"
	"github.com/MKhiriev/go-license-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) Messages() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg{}, r.msgs...)
}

type fakeHost struct {
	started []string
	stopped int
}

func (h *fakeHost) OnStartup(context.Context)                   {}
func (h *fakeHost) OnShutdown()                                 {}
func (h *fakeHost) OnAbortRequested()                           {}
func (h *fakeHost) OnSettingsChanged(config.ClientConfig) error { return nil }
func (h *fakeHost) OnPlaybackStarted(contentID, tokenID string) {
	h.started = append(h.started, contentID+"/"+tokenID)
}
func (h *fakeHost) OnPlaybackStopped() { h.stopped++ }

type testUI struct {
	model   appModel
	wallet  *servicemock.MockClientWalletService
	license *servicemock.MockClientLicenseService
	stream  *servicemock.MockClientStreamService
	host    *fakeHost
	sender  *recordingSender
}

func newTestUI(t *testing.T) *testUI {
	ctrl := gomock.NewController(t)
	ui := &testUI{
		wallet:  servicemock.NewMockClientWalletService(ctrl),
		license: servicemock.NewMockClientLicenseService(ctrl),
		stream:  servicemock.NewMockClientStreamService(ctrl),
		host:    &fakeHost{},
		sender:  &recordingSender{},
	}
	services := &service.ClientServices{
		WalletService:  ui.wallet,
		LicenseService: ui.license,
		StreamService:  ui.stream,
	}

	b := &bus{}
	b.attach(ui.sender)
	ui.model = newAppModel(context.Background(), services, ui.host, newPairingDisplay(b), newPlayer(b), models.NewAppBuildInfo("1.0.0", "", ""))
	return ui
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

// collect runs cmd and every command it batches, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func walletResult(t *testing.T, cmd tea.Cmd) walletResultMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if res, ok := msg.(walletResultMsg); ok {
			return res
		}
	}
	t.Fatal("no wallet result produced")
	return walletResultMsg{}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderQR(t *testing.T) {
	qr, err := renderQR("wc:7f6e504b@2?relay-protocol=irn&symKey=587d5484")
	require.NoError(t, err)
	assert.NotEmpty(t, qr)
	assert.Contains(t, qr, "█")

	_, err = renderQR("")
	assert.ErrorIs(t, err, errEmptyConnectionURL)
}

func TestPairingDisplay_CancelIsIdempotentPerSession(t *testing.T) {
	sender := &recordingSender{}
	b := &bus{}
	b.attach(sender)
	d := newPairingDisplay(b)

	d.Begin()
	d.ShowPairing(models.PairingSession{SessionID: "s1", ConnectionURL: "wc:1", Status: models.PairingPending})
	first := d.Canceled()
	d.Cancel()
	d.Cancel()

	select {
	case <-first:
	default:
		t.Fatal("cancel channel not closed")
	}

	d.Begin()
	d.ShowPairing(models.PairingSession{SessionID: "s2", ConnectionURL: "wc:2", Status: models.PairingPending})
	select {
	case <-d.Canceled():
		t.Fatal("new session must start uncanceled")
	default:
	}

	d.ClosePairing(models.PairingTimedOut)

	msgs := sender.Messages()
	require.Len(t, msgs, 3)
	shown, ok := msgs[0].(pairingShownMsg)
	require.True(t, ok)
	assert.Equal(t, "s1", shown.session.SessionID)
	assert.NotEmpty(t, shown.qr)
	assert.Equal(t, pairingClosedMsg{status: models.PairingTimedOut}, msgs[2])
}

func TestPairingDisplay_CancelBeforeShowIsKept(t *testing.T) {
	d := newPairingDisplay(&bus{})

	d.Begin()
	d.Cancel()
	d.ShowPairing(models.PairingSession{SessionID: "s1", ConnectionURL: "wc:1", Status: models.PairingPending})

	select {
	case <-d.Canceled():
	default:
		t.Fatal("cancel before the session was shown must not be lost")
	}
}

func TestTokensModel_UnknownRightsLevel(t *testing.T) {
	view := newTokensModel([]models.Token{
		{ID: "t1", ContentID: "A", RightsLevel: models.RightsCommercial},
		{ID: "t2", ContentID: "B", RightsLevel: "premium"},
	}).View()

	assert.Contains(t, view, "commercial")
	assert.Contains(t, view, "unknown")
	assert.NotContains(t, view, "premium")
}

func TestAppModel_ConnectQRArmsCancel(t *testing.T) {
	ui := newTestUI(t)
	m := ui.model

	// a stale cancel from an earlier attempt
	m.display.Cancel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, actionConnectQR, m.busy)

	select {
	case <-m.display.Canceled():
		t.Fatal("a new pairing attempt must start uncanceled")
	default:
	}
}

func TestBus_DropsWithoutTarget(t *testing.T) {
	b := &bus{}
	notifier{bus: b}.Notify("title", "message")

	sender := &recordingSender{}
	b.attach(sender)
	notifier{bus: b}.Notify("License Error", "Your license could not be verified")

	assert.Equal(t, []tea.Msg{notificationMsg{title: "License Error", message: "Your license could not be verified"}}, sender.Messages())
}

// gatedSender holds every Send until release is closed.
type gatedSender struct {
	recordingSender
	release chan struct{}
}

func (g *gatedSender) Send(msg tea.Msg) {
	<-g.release
	g.recordingSender.Send(msg)
}

func TestQueue_SendDoesNotWaitForTarget(t *testing.T) {
	target := &gatedSender{release: make(chan struct{})}
	q := newQueue(target)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.run(ctx)

	// the target is blocked, these must still return
	q.Send(notificationMsg{title: "License Error", message: "revoked"})
	q.Send(playbackEndedMsg{})
	q.Send(clearStatusMsg{})
	assert.Empty(t, target.Messages())

	close(target.release)
	require.Eventually(t, func() bool { return len(target.Messages()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []tea.Msg{
		notificationMsg{title: "License Error", message: "revoked"},
		playbackEndedMsg{},
		clearStatusMsg{},
	}, target.Messages())
}

func TestQueue_StopsWithContext(t *testing.T) {
	target := &recordingSender{}
	q := newQueue(target)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		q.run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queue did not stop")
	}
}

func TestPlayer_StopPlaybackNotifiesOnce(t *testing.T) {
	sender := &recordingSender{}
	b := &bus{}
	b.attach(sender)
	p := newPlayer(b)

	p.Play("A", "t1")
	assert.True(t, p.IsPlaying())
	contentID, tokenID := p.Now()
	assert.Equal(t, "A", contentID)
	assert.Equal(t, "t1", tokenID)

	p.StopPlayback()
	p.StopPlayback()

	assert.False(t, p.IsPlaying())
	assert.Equal(t, []tea.Msg{playbackEndedMsg{}}, sender.Messages())
	assert.Zero(t, p.Elapsed())
}

func TestAppModel_PairingScreen(t *testing.T) {
	ui := newTestUI(t)
	m := ui.model

	session := models.PairingSession{SessionID: "s1", ConnectionURL: "wc:1", Status: models.PairingPending, Deadline: time.Now().Add(time.Minute)}
	m, _ = update(t, m, pairingShownMsg{session: session, qr: "██"})
	assert.Equal(t, screenPairing, m.currentScreen)
	assert.Contains(t, m.View(), "wc:1")

	cancelCh := m.display.Canceled()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	select {
	case <-cancelCh:
	default:
		t.Fatal("esc must cancel the pairing")
	}

	m, _ = update(t, m, pairingClosedMsg{status: models.PairingCanceled})
	assert.Equal(t, screenMenu, m.currentScreen)

	m, _ = update(t, m, walletResultMsg{action: actionConnectQR, res: models.Fail(service.MsgPairingCanceled)})
	assert.False(t, m.showError)
	assert.Equal(t, service.MsgPairingCanceled, m.status)
}

func TestAppModel_WalletFailureShowsError(t *testing.T) {
	ui := newTestUI(t)

	m, _ := update(t, ui.model, walletResultMsg{action: actionConnectDirect, res: models.Fail("wallet locked")})
	assert.True(t, m.showError)
	assert.Equal(t, "wallet locked", m.errorOverlay.message)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}

func TestAppModel_ConnectRunsInCommand(t *testing.T) {
	ui := newTestUI(t)
	ui.wallet.EXPECT().Connect(gomock.Any(), false).Return(models.Result{Success: true, Address: "0xabc"})

	m := ui.model
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, menuConnectDirect, m.menu.selected())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, actionConnectDirect, m.busy)

	m, _ = update(t, m, walletResult(t, cmd))
	assert.Empty(t, m.busy)
	assert.Equal(t, "Wallet connected: 0xabc", m.status)
}

func TestAppModel_PlayAndStop(t *testing.T) {
	ui := newTestUI(t)
	tokens := []models.Token{{ID: "t1", ContentID: "A", RightsLevel: models.RightsBasic}}
	ui.wallet.EXPECT().GetOwnedTokens().Return(tokens)

	m := ui.model
	m.menu.idx = int(menuTokens)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenTokens, m.currentScreen)
	assert.Contains(t, m.View(), "t1")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, screenPlayer, m.currentScreen)
	assert.Equal(t, []string{"A/t1"}, ui.host.started)
	assert.True(t, m.player.IsPlaying())

	m, _ = update(t, m, keyRunes("s"))
	assert.Equal(t, screenTokens, m.currentScreen)
	assert.Equal(t, 1, ui.host.stopped)
	assert.False(t, m.player.IsPlaying())
}

func TestAppModel_PlaybackEndedByVerifier(t *testing.T) {
	ui := newTestUI(t)
	m := ui.model
	m.player.Play("A", "t1")
	m.currentScreen = screenPlayer

	m.player.StopPlayback()
	m, _ = update(t, m, playbackEndedMsg{})
	m, _ = update(t, m, notificationMsg{title: service.MsgLicenseErrorTitle, message: service.MsgLicenseNotVerified})

	assert.Equal(t, screenTokens, m.currentScreen)
	assert.Equal(t, 1, ui.host.stopped)
	assert.Equal(t, "License Error: Your license could not be verified", m.status)
}

func TestAppModel_DisconnectConfirm(t *testing.T) {
	ui := newTestUI(t)
	ui.wallet.EXPECT().IsConnected().Return(true)
	ui.wallet.EXPECT().GetAddress().Return("0xabc")
	ui.wallet.EXPECT().Disconnect(gomock.Any()).Return(models.OK())

	m := ui.model
	m.menu.idx = int(menuDisconnect)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.showConfirm)

	m, cmd := update(t, m, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Equal(t, actionDisconnect, m.busy)

	m, _ = update(t, m, walletResult(t, cmd))
	assert.Equal(t, "Wallet disconnected", m.status)
}

func TestAppModel_PurchaseRequiresConnection(t *testing.T) {
	ui := newTestUI(t)
	ui.wallet.EXPECT().IsConnected().Return(false)

	m := ui.model
	m.menu.idx = int(menuPurchase)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.showError)
	assert.Equal(t, service.MsgWalletNotConnected, m.errorOverlay.message)
	assert.Equal(t, screenMenu, m.currentScreen)
}

func TestAppModel_StreamAccessErrorIsHumanized(t *testing.T) {
	ui := newTestUI(t)
	m := ui.model
	m.currentScreen = screenPlayer

	m, _ = update(t, m, streamAccessMsg{err: assert.AnError})
	assert.Nil(t, m.stream)
	assert.Equal(t, assert.AnError.Error(), m.streamErr)

	exp := time.Now().Add(time.Hour)
	m, _ = update(t, m, streamAccessMsg{access: models.StreamAccess{AccessToken: "x", ExpiresAt: exp}})
	require.NotNil(t, m.stream)
	assert.Empty(t, m.streamErr)
}
