package tui

import (
	"fmt"
	"strings"
)

type menuAction int

const (
	menuConnectQR menuAction = iota
	menuConnectDirect
	menuImport
	menuTokens
	menuPurchase
	menuRefresh
	menuDisconnect
	menuAbout
)

type menuItem struct {
	title  string
	action menuAction
}

type menuModel struct {
	items []menuItem
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{
		items: []menuItem{
			{"Connect wallet (QR)", menuConnectQR},
			{"Connect wallet", menuConnectDirect},
			{"Import wallet", menuImport},
			{"My licenses", menuTokens},
			{"Purchase license", menuPurchase},
			{"Refresh wallet", menuRefresh},
			{"Disconnect wallet", menuDisconnect},
			{"About", menuAbout},
		},
	}
}

func (m *menuModel) prev() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *menuModel) next() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m menuModel) selected() menuAction {
	return m.items[m.idx].action
}

func (m menuModel) View(walletLine, busyLine string) string {
	var b strings.Builder

	b.WriteString(walletLine)
	b.WriteString("\n")
	if busyLine != "" {
		b.WriteString(busyLine)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, item.title))
	}

	return renderPage("LICENSE KEEPER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
