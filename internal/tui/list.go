package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-license-keeper/models"
)

type tokensModel struct {
	items []models.Token
	idx   int
}

func newTokensModel(items []models.Token) tokensModel {
	return tokensModel{items: items}
}

func (m *tokensModel) prev() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *tokensModel) next() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m tokensModel) current() (models.Token, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Token{}, false
	}
	return m.items[m.idx], true
}

func tokenFlags(t models.Token) string {
	var flags []string
	if t.PublicScreening {
		flags = append(flags, "screening")
	}
	if t.Streaming {
		flags = append(flags, "streaming")
	}
	if t.Remix {
		flags = append(flags, "remix")
	}
	return strings.Join(flags, ",")
}

func (m tokensModel) View() string {
	var b strings.Builder

	if len(m.items) == 0 {
		b.WriteString("No licenses\n")
	} else {
		const idColWidth, contentColWidth = 12, 24
		b.WriteString(fmt.Sprintf("  %-*s │ %-*s │ %-12s │ %s\n", idColWidth, "TOKEN", contentColWidth, "CONTENT", "RIGHTS", "FLAGS"))
		for i, t := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-*s │ %-*s │ %-12s │ %s\n",
				cursor,
				idColWidth, fitText(t.ID, idColWidth),
				contentColWidth, fitText(t.ContentID, contentColWidth),
				rightsLabel(t.RightsLevel),
				valueOrDash(tokenFlags(t)),
			))
		}
	}

	return renderPage("MY LICENSES", strings.TrimRight(b.String(), "\n"), "enter: play │ r: reload │ esc: back")
}

func rightsLabel(r models.RightsLevel) string {
	if !r.Valid() {
		return "unknown"
	}
	return string(r)
}
