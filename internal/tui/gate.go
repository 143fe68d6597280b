package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	gateFocusInput = iota
	gateFocusJoin
	gateFocusCreate
	gateFocusCount
)

type gateAction int

const (
	gateNone gateAction = iota
	gateJoin
	gateCreate
)

// gateModel is the session gate: a code input with Join and Create buttons.
// Submission happens only through the buttons.
type gateModel struct {
	input textinput.Model
	focus int
}

func newGateModel() gateModel {
	in := textinput.New()
	in.Placeholder = "Enter session code"
	in.CharLimit = 32
	in.Width = 24
	in.Focus()

	return gateModel{input: in}
}

func (g gateModel) Update(msg tea.KeyMsg) (gateModel, gateAction, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return g.setFocus((g.focus + 1) % gateFocusCount), gateNone, nil
	case key.Matches(msg, keys.backtab):
		return g.setFocus((g.focus + gateFocusCount - 1) % gateFocusCount), gateNone, nil
	case key.Matches(msg, keys.enter):
		switch g.focus {
		case gateFocusJoin:
			return g, gateJoin, nil
		case gateFocusCreate:
			return g, gateCreate, nil
		}
		return g, gateNone, nil
	}

	if g.focus != gateFocusInput {
		return g, gateNone, nil
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, gateNone, cmd
}

func (g gateModel) setFocus(focus int) gateModel {
	g.focus = focus
	if focus == gateFocusInput {
		g.input.Focus()
	} else {
		g.input.Blur()
	}
	return g
}

func (g gateModel) code() string {
	return g.input.Value()
}

func (g gateModel) View() string {
	var b strings.Builder

	b.WriteString(viewTitle("STICKY BOARD"))
	b.WriteString("\n")
	b.WriteString("Session code: ")
	b.WriteString(g.input.View())
	b.WriteString("\n\n")
	b.WriteString(renderButton("Join Session", g.focus == gateFocusJoin))
	b.WriteString("   ")
	b.WriteString(renderButton("Create New Session", g.focus == gateFocusCreate))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(helpLine(keys.tab, keys.enter, keys.buildInfo, keys.forceQuit)))

	return b.String()
}
