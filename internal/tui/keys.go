package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	prevNote  key.Binding
	nextNote  key.Binding
	newNote   key.Binding
	delete    key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "nudge up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "nudge down")),
	left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "nudge left")),
	right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "nudge right")),
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	prevNote:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous note")),
	nextNote:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next note")),
	newNote:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "write a note")),
	delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete note")),
	copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy code")),
	buildInfo: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "about")),
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return joinHelp(parts)
}
