// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"math"
	"strings"

	"github.com/MKhiriev/sticky-board/models"
	"github.com/mattn/go-runewidth"
)

// Note boxes have a fixed size on the canvas. The delete button sits on the
// top border, one cell in from the right corner:
//
//	┌────────────────[x]─┐
//	│ buy milk           │
//	│                    │
//	│                    │
//	└────────────────────┘
const (
	noteWidth      = 22
	noteHeight     = 5
	noteInnerWidth = noteWidth - 4
	noteLines      = noteHeight - 2

	deleteButton       = "[x]"
	deleteButtonOffset = noteWidth - 2 - len(deleteButton)
)

type cellStyle uint8

const (
	styleBlank cellStyle = iota
	styleNote
	styleSelected
	stylePending
	styleDeleting
	styleDragging
)

type cell struct {
	r     rune
	style cellStyle
	// cont marks the trailing half of a double-width rune.
	cont bool
}

// canvas is a fixed-size cell grid the board is painted onto.
type canvas struct {
	width, height int
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		row := make([]cell, c.width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// put writes s starting at (x, y) and returns the column after the last cell
// written. Anything outside the grid is clipped.
func (c *canvas) put(x, y int, s string, style cellStyle) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if y >= 0 && y < c.height && x >= 0 && x+w <= c.width {
			c.cells[y][x] = cell{r: r, style: style}
			if w == 2 {
				c.cells[y][x+1] = cell{style: style, cont: true}
			}
		}
		x += w
	}
	return x
}

// String renders the grid, one styled run per stretch of equal style.
func (c *canvas) String() string {
	var b strings.Builder
	var run strings.Builder

	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		cur := styleBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == styleBlank {
				b.WriteString(run.String())
			} else {
				b.WriteString(canvasStyles[cur].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}

	return b.String()
}

// cellPos converts a board position into canvas cells.
func cellPos(p models.Position) (int, int) {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	return max(x, 0), max(y, 0)
}

// clampPos keeps a note box fully inside a canvas of the given size where
// possible.
func clampPos(x, y, width, height int) (int, int) {
	x = min(x, width-noteWidth)
	y = min(y, height-noteHeight)
	return max(x, 0), max(y, 0)
}

// placeNote is where a note is drawn on a canvas of the given size. Peers
// with larger screens may place notes far outside this terminal; those are
// pulled in to the nearest edge so they stay visible and clickable.
func placeNote(p models.Position, width, height int) (int, int) {
	x, y := cellPos(p)
	return clampPos(x, y, width, height)
}

// drawNote paints one note box with its top-left corner at (x, y).
func (c *canvas) drawNote(x, y int, content string, style cellStyle) {
	top := "┌" + strings.Repeat("─", deleteButtonOffset-1) + deleteButton + "─┐"
	c.put(x, y, top, style)

	lines := wrapContent(content, noteInnerWidth, noteLines)
	for i := range noteLines {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		pad := noteInnerWidth - runewidth.StringWidth(line)
		c.put(x, y+1+i, "│ "+line+strings.Repeat(" ", max(pad, 0))+" │", style)
	}

	c.put(x, y+noteHeight-1, "└"+strings.Repeat("─", noteWidth-2)+"┘", style)
}

// wrapContent breaks content into at most maxLines lines of width cells,
// splitting on spaces where it can. Overflow is cut with an ellipsis.
func wrapContent(content string, width, maxLines int) []string {
	var lines []string
	for _, para := range strings.Split(content, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case word == "":
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > maxLines {
		last := lines[maxLines-1]
		lines = lines[:maxLines]
		if runewidth.StringWidth(last) >= width {
			last = runewidth.Truncate(last, width-1, "")
		}
		lines[maxLines-1] = last + "…"
	}
	return lines
}

// hit is the result of a canvas hit test.
type hit struct {
	id       string
	onDelete bool
}

// noteAt returns the topmost note under (x, y) on a canvas of the given
// size. Later notes are drawn over earlier ones, so the search runs back to
// front.
func noteAt(notes []models.Note, x, y, width, height int) (hit, bool) {
	for i := len(notes) - 1; i >= 0; i-- {
		nx, ny := placeNote(notes[i].Position, width, height)
		if x < nx || x >= nx+noteWidth || y < ny || y >= ny+noteHeight {
			continue
		}
		onDelete := y == ny && x >= nx+deleteButtonOffset && x < nx+deleteButtonOffset+len(deleteButton)
		return hit{id: notes[i].ID, onDelete: onDelete}, true
	}
	return hit{}, false
}

// drag is an in-progress mouse drag of one note. The note is previewed at
// (x, y) and committed on release.
type drag struct {
	id           string
	grabX, grabY int
	x, y         int
}

func renderBoard(notes []models.Note, selected string, d *drag, width, height int) string {
	c := newCanvas(width, height)

	for _, n := range notes {
		x, y := placeNote(n.Position, width, height)
		style := styleNote
		switch {
		case d != nil && d.id == n.ID:
			x, y, style = d.x, d.y, styleDragging
		case n.Status == models.NotePendingDelete:
			style = styleDeleting
		case n.ID == selected:
			style = styleSelected
		case n.Status != models.NoteConfirmed:
			style = stylePending
		}
		c.drawNote(x, y, n.Content, style)
	}

	if len(notes) == 0 && height > 0 {
		msg := "No notes yet. Write one below."
		c.put(max((width-len(msg))/2, 0), height/2, msg, styleBlank)
	}

	return c.String()
}
