package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const uiDivider = "──────────────────────────────────────────────────────"

func viewTitle(title string) string {
	return fmt.Sprintf("%s\n%s\n", titleStyle.Render(title), uiDivider)
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(viewTitle(title))
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

func joinHelp(parts []string) string {
	return strings.Join(parts, " • ")
}

// fitText truncates v to max display cells, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(v, max, "…")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
