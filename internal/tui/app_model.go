package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/client"
	"github.com/MKhiriev/go-license-keeper/internal/service"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenTokens
	screenPairing
	screenInput
	screenPlayer
	screenAbout
)

type inputPurpose int

const (
	inputImport inputPurpose = iota
	inputPurchase
)

const (
	actionConnectQR     = "connect-qr"
	actionConnectDirect = "connect"
	actionImport        = "import"
	actionPurchase      = "purchase"
	actionRefresh       = "refresh"
	actionDisconnect    = "disconnect"
)

const statusTTL = 3 * time.Second

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	host      client.HostEvents
	display   *pairingDisplay
	player    *player
	buildInfo models.AppBuildInfo

	currentScreen screen
	menu          menuModel
	tokens        tokensModel
	input         textinput.Model
	inputFor      inputPurpose
	spinner       spinner.Model
	busy          string

	pairing   models.PairingSession
	pairingQR string

	stream       *models.StreamAccess
	streamErr    string
	verification *models.Verification

	status       string
	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, host client.HostEvents, display *pairingDisplay, p *player, info models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.CharLimit = 256

	return appModel{
		ctx:           ctx,
		services:      services,
		host:          host,
		display:       display,
		player:        p,
		buildInfo:     info,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		input:         in,
		spinner:       s,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				return m.startWallet(actionDisconnect, m.services.WalletService.Disconnect)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
			}
			return m, nil
		}
	case walletResultMsg:
		return m.onWalletResult(msg)
	case pairingShownMsg:
		if msg.err != nil {
			m.showErrorf("Cannot render QR code: " + msg.err.Error())
		}
		m.pairing = msg.session
		m.pairingQR = msg.qr
		m.currentScreen = screenPairing
		return m, nil
	case pairingClosedMsg:
		m.pairing.Status = msg.status
		if m.currentScreen == screenPairing {
			m.currentScreen = screenMenu
		}
		return m, nil
	case notificationMsg:
		return m.setStatus(msg.title + ": " + msg.message)
	case playbackEndedMsg:
		m.host.OnPlaybackStopped()
		if m.currentScreen == screenPlayer {
			m.currentScreen = screenTokens
		}
		return m, nil
	case streamAccessMsg:
		if msg.err != nil {
			m.stream = nil
			m.streamErr = humanizeServiceUnavailableError(msg.err)
			return m, nil
		}
		access := msg.access
		m.stream, m.streamErr = &access, ""
		return m, nil
	case verificationMsg:
		if msg.err == nil {
			v := msg.verification
			m.verification = &v
		}
		return m, nil
	case playerTickMsg:
		if m.currentScreen != screenPlayer || !m.player.IsPlaying() {
			return m, nil
		}
		return m, tea.Batch(cmdPlayerTick(), m.cmdLastVerification())
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf("Copy to clipboard failed: " + msg.err.Error())
			return m, nil
		}
		return m.setStatus("Copied!")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenTokens:
		return m.updateTokens(msg)
	case screenPairing:
		return m.updatePairing(msg)
	case screenInput:
		return m.updateInput(msg)
	case screenPlayer:
		return m.updatePlayer(msg)
	case screenAbout:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.currentScreen = screenMenu
		}
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View(m.walletLine(), m.busyLine())
	case screenTokens:
		body = m.tokens.View()
	case screenPairing:
		body = m.pairingView()
	case screenInput:
		body = m.inputView()
	case screenPlayer:
		body = m.playerView()
	case screenAbout:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if m.status != "" {
		body += "\n\n" + okStyle.Render(m.status)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	case key.Matches(keyMsg, keys.up):
		m.menu.prev()
	case key.Matches(keyMsg, keys.down):
		m.menu.next()
	case key.Matches(keyMsg, keys.version):
		m.currentScreen = screenAbout
	case key.Matches(keyMsg, keys.enter):
		if m.busy != "" {
			return m, nil
		}
		return m.runMenuAction(m.menu.selected())
	}
	return m, nil
}

func (m appModel) runMenuAction(action menuAction) (tea.Model, tea.Cmd) {
	wallet := m.services.WalletService

	switch action {
	case menuConnectQR:
		m.display.Begin()
		return m.startWallet(actionConnectQR, func(ctx context.Context) models.Result {
			return wallet.Connect(ctx, true)
		})
	case menuConnectDirect:
		return m.startWallet(actionConnectDirect, func(ctx context.Context) models.Result {
			return wallet.Connect(ctx, false)
		})
	case menuImport:
		return m.openInput(inputImport)
	case menuTokens:
		m.tokens = newTokensModel(wallet.GetOwnedTokens())
		m.currentScreen = screenTokens
	case menuPurchase:
		if !wallet.IsConnected() {
			m.showErrorf(service.MsgWalletNotConnected)
			return m, nil
		}
		return m.openInput(inputPurchase)
	case menuRefresh:
		return m.startWallet(actionRefresh, wallet.Refresh)
	case menuDisconnect:
		if !wallet.IsConnected() {
			m.showErrorf(service.MsgWalletNotConnected)
			return m, nil
		}
		m.confirm.message = "Disconnect wallet " + fitText(wallet.GetAddress(), 20) + "?"
		m.showConfirm = true
	case menuAbout:
		m.currentScreen = screenAbout
	}
	return m, nil
}

func (m appModel) updateTokens(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		m.tokens.prev()
	case key.Matches(keyMsg, keys.down):
		m.tokens.next()
	case key.Matches(keyMsg, keys.refresh):
		m.tokens = newTokensModel(m.services.WalletService.GetOwnedTokens())
	case key.Matches(keyMsg, keys.enter):
		token, ok := m.tokens.current()
		if !ok {
			return m, nil
		}
		return m.play(token)
	}
	return m, nil
}

func (m appModel) play(token models.Token) (tea.Model, tea.Cmd) {
	m.player.Play(token.ContentID, token.ID)
	m.host.OnPlaybackStarted(token.ContentID, token.ID)

	m.stream, m.streamErr, m.verification = nil, "", nil
	m.currentScreen = screenPlayer

	return m, tea.Batch(m.cmdStreamAccess(token.ContentID, token.ID), cmdPlayerTick())
}

func (m appModel) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.stop) || key.Matches(keyMsg, keys.esc) {
		m.player.Stop()
		m.host.OnPlaybackStopped()
		m.currentScreen = screenTokens
	}
	return m, nil
}

func (m appModel) updatePairing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.display.Cancel()
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(m.pairing.ConnectionURL)
	}
	return m, nil
}

func (m appModel) openInput(purpose inputPurpose) (tea.Model, tea.Cmd) {
	m.inputFor = purpose
	m.input.Reset()
	switch purpose {
	case inputImport:
		m.input.Placeholder = "private key"
		m.input.EchoMode = textinput.EchoPassword
	case inputPurchase:
		m.input.Placeholder = "content id"
		m.input.EchoMode = textinput.EchoNormal
	}
	m.currentScreen = screenInput
	cmd := m.input.Focus()
	return m, cmd
}

func (m appModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.input.Blur()
			m.input.Reset()
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			value := strings.TrimSpace(m.input.Value())
			m.input.Blur()
			m.input.Reset()
			m.currentScreen = screenMenu

			wallet := m.services.WalletService
			if m.inputFor == inputImport {
				return m.startWallet(actionImport, func(ctx context.Context) models.Result {
					return wallet.ImportWallet(ctx, value)
				})
			}
			return m.startWallet(actionPurchase, func(ctx context.Context) models.Result {
				return wallet.PurchaseToken(ctx, value)
			})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startWallet runs fn off the UI goroutine and reports its result as a
// walletResultMsg.
func (m appModel) startWallet(action string, fn func(context.Context) models.Result) (tea.Model, tea.Cmd) {
	m.busy = action
	ctx := m.ctx
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return walletResultMsg{action: action, res: fn(ctx)}
	})
}

func (m appModel) onWalletResult(msg walletResultMsg) (tea.Model, tea.Cmd) {
	m.busy = ""
	if m.currentScreen == screenPairing {
		m.currentScreen = screenMenu
	}

	res := msg.res
	if !res.Success {
		if msg.action == actionConnectQR && res.Message == service.MsgPairingCanceled {
			return m.setStatus(res.Message)
		}
		m.showErrorf(res.Message)
		return m, nil
	}

	switch msg.action {
	case actionConnectQR, actionConnectDirect, actionImport:
		if res.AutoConnected {
			return m.setStatus("Wallet reconnected: " + res.Address)
		}
		return m.setStatus("Wallet connected: " + res.Address)
	case actionPurchase:
		return m.setStatus("License purchased, token " + res.TokenID)
	case actionRefresh:
		return m.setStatus("Wallet refreshed")
	case actionDisconnect:
		return m.setStatus("Wallet disconnected")
	}
	return m, nil
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.display.Cancel()
	if m.player.Stop() {
		m.host.OnPlaybackStopped()
	}
	return m, tea.Quit
}

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, cmdClearStatus()
}

func (m *appModel) showErrorf(msg string) {
	m.showError = true
	m.errorOverlay.message = msg
}

func (m appModel) walletLine() string {
	wallet := m.services.WalletService
	if !wallet.IsConnected() {
		return "Wallet: not connected"
	}
	return fmt.Sprintf("Wallet: %s │ Balance: %s │ Licenses: %d",
		fitText(wallet.GetAddress(), 24), wallet.LastBalance(), len(wallet.GetOwnedTokens()))
}

func (m appModel) busyLine() string {
	if m.busy == "" {
		return ""
	}
	return m.spinner.View() + " " + m.busy + "..."
}

func (m appModel) pairingView() string {
	var b strings.Builder
	b.WriteString("Scan the code with your wallet app\n\n")
	if m.pairingQR != "" {
		b.WriteString(qrStyle.Render(m.pairingQR))
		b.WriteString("\n\n")
	}
	b.WriteString("URL: ")
	b.WriteString(m.pairing.ConnectionURL)
	b.WriteString("\n")
	if !m.pairing.Deadline.IsZero() {
		b.WriteString("Expires at: ")
		b.WriteString(m.pairing.Deadline.Format(time.TimeOnly))
		b.WriteString("\n")
	}
	if line := m.busyLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	return renderPage("CONNECT WALLET", b.String(), "c: copy url │ esc: cancel")
}

func (m appModel) inputView() string {
	title, prompt := "IMPORT WALLET", "Private key (never stored):"
	if m.inputFor == inputPurchase {
		title, prompt = "PURCHASE LICENSE", "Content id:"
	}
	return renderPage(title, prompt+"\n\n"+m.input.View(), "enter: submit │ esc: back")
}

func (m appModel) playerView() string {
	contentID, tokenID := m.player.Now()

	var b strings.Builder
	fmt.Fprintf(&b, "Content:  %s\n", contentID)
	fmt.Fprintf(&b, "Token:    %s\n", tokenID)
	fmt.Fprintf(&b, "Playing:  %s\n", m.player.Elapsed())
	fmt.Fprintf(&b, "License:  %s\n", m.services.LicenseService.State())

	switch {
	case m.stream != nil:
		fmt.Fprintf(&b, "Stream:   access until %s\n", m.stream.ExpiresAt.Format(time.TimeOnly))
	case m.streamErr != "":
		fmt.Fprintf(&b, "Stream:   %s\n", m.streamErr)
	default:
		b.WriteString("Stream:   requesting access...\n")
	}

	if v := m.verification; v != nil {
		result := "valid"
		if !v.Valid {
			result = "invalid"
		}
		fmt.Fprintf(&b, "Verified: %s at %s\n", result, v.VerifiedAt.Format(time.TimeOnly))
	} else {
		b.WriteString("Verified: -\n")
	}

	return renderPage("NOW PLAYING", b.String(), "s / esc: stop")
}

func (m appModel) cmdStreamAccess(contentID, tokenID string) tea.Cmd {
	ctx, streams := m.ctx, m.services.StreamService
	return func() tea.Msg {
		access, err := streams.RequestStreamAccess(ctx, contentID, tokenID)
		return streamAccessMsg{access: access, err: err}
	}
}

func (m appModel) cmdLastVerification() tea.Cmd {
	contentID, tokenID := m.player.Now()
	ctx, license := m.ctx, m.services.LicenseService
	return func() tea.Msg {
		v, err := license.LastVerification(ctx, contentID, tokenID)
		return verificationMsg{verification: v, err: err}
	}
}

func cmdPlayerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return playerTickMsg{}
	})
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
