package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"panewm/internal/wm"
)

var (
	dockStyle     = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	dropdownStyle = lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("255"))
)

type borderSet struct {
	tl, tr, bl, br, h, v rune
}

var (
	normalBorder = borderSet{'┌', '┐', '└', '┘', '─', '│'}
	frontBorder  = borderSet{'╔', '╗', '╚', '╝', '═', '║'}
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.viewportH == 0 {
		return "starting..."
	}

	c := newCanvas(m.width, m.viewportH)

	front := m.mgr.FrontPane()
	for _, p := range m.mgr.Panes() {
		if !p.Visible {
			continue
		}
		if front != nil && p.ID == front.ID {
			continue
		}
		c.drawPane(p, normalBorder)
	}
	if front != nil && front.Visible {
		c.drawPane(front, frontBorder)
	}

	lines := c.lines()

	if m.dropdownOpen {
		m.overlayDropdown(lines)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.renderDock())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderDock() string {
	snap := m.mgr.Overflow()

	var content string
	switch {
	case len(snap.Entries) == 0:
		content = " no minimized panes"
	case snap.Mode == wm.ModeDropdown:
		content = fmt.Sprintf(" ▾ %d minimized (d or click to list)", len(snap.Entries))
	default:
		var b strings.Builder
		for i, e := range snap.Entries {
			b.WriteString(padItem(fmt.Sprintf("[%d] %s", i, e.Title), m.dockItemOuterWidth()))
		}
		content = b.String()
	}

	return dockStyle.Render(padRight(content, m.width))
}

// overlayDropdown paints the minimized list bottom-up above the dock row.
func (m Model) overlayDropdown(lines []string) {
	entries := m.mgr.Overflow().Entries
	top := m.viewportH - len(entries)
	if top < 0 {
		top = 0
	}

	width := m.dockItemOuterWidth() * 2
	if width > m.width {
		width = m.width
	}

	for i, e := range entries {
		row := top + i
		if row >= len(lines) {
			break
		}
		item := dropdownStyle.Render(padItem(fmt.Sprintf("[%d] %s", i, e.Title), width))
		lines[row] = item + trimPrefixCells(lines[row], width)
	}
}

type canvas struct {
	cells [][]rune
	w, h  int
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &canvas{cells: cells, w: w, h: h}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
}

func (c *canvas) drawPane(p *wm.Pane, b borderSet) {
	r := p.Rect
	x2 := r.X + r.Width - 1
	y2 := r.Y + r.Height - 1

	for y := r.Y + 1; y < y2; y++ {
		for x := r.X + 1; x < x2; x++ {
			c.set(x, y, ' ')
		}
	}

	for x := r.X + 1; x < x2; x++ {
		c.set(x, r.Y, b.h)
		c.set(x, y2, b.h)
	}
	for y := r.Y + 1; y < y2; y++ {
		c.set(r.X, y, b.v)
		c.set(x2, y, b.v)
	}
	c.set(r.X, r.Y, b.tl)
	c.set(x2, r.Y, b.tr)
	c.set(r.X, y2, b.bl)
	c.set(x2, y2, b.br)

	c.drawTitleBar(p, b)
}

// drawTitleBar writes the title into the top border and, when the pane is
// wide enough, the _ □ × buttons ahead of the upper-right corner. Button
// cells line up with buttonAt.
func (c *canvas) drawTitleBar(p *wm.Pane, b borderSet) {
	r := p.Rect

	buttons := r.Width >= 8
	maxTitle := r.Width - 4
	if buttons {
		maxTitle = r.Width - 7
	}
	if maxTitle > 0 {
		title := p.Title
		if len(title) > maxTitle {
			title = title[:maxTitle]
		}
		for i, ch := range " " + title + " " {
			if i >= maxTitle+2 {
				break
			}
			c.set(r.X+1+i, r.Y, ch)
		}
	}

	if buttons {
		c.set(r.X+r.Width-4, r.Y, '_')
		c.set(r.X+r.Width-3, r.Y, '□')
		c.set(r.X+r.Width-2, r.Y, '×')
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.h)
	for y, row := range c.cells {
		out[y] = string(row)
	}
	return out
}

func padItem(s string, width int) string {
	if len([]rune(s)) > width-1 {
		s = string([]rune(s)[:width-1])
	}
	return padRight(" "+s, width)
}

func padRight(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// trimPrefixCells drops the first n cells of an unstyled canvas line.
func trimPrefixCells(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}
