package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panewm/internal/config"
	"panewm/internal/wm"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(config.DefaultConfig(), zerolog.Nop())
	m = apply(t, m, tea.WindowSizeMsg{Width: 120, Height: 42})
	return m
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWindowSizeDrivesViewport(t *testing.T) {
	m := newTestModel(t)

	vp := m.Manager().Viewport()
	assert.Equal(t, 120, vp.Width)
	assert.Equal(t, 40, vp.Height) // dock and help rows reserved
}

func TestDragOnTitleBarMovesPane(t *testing.T) {
	m := newTestModel(t)

	// Notes starts at (4,2) 40x12; (10,2) lands on its drag handle.
	m = apply(t, m, press(10, 2))
	require.True(t, m.Manager().SessionActive())

	m = apply(t, m, motion(15, 5))
	m = apply(t, m, release(15, 5))

	p, err := m.Manager().Pane("notes")
	require.NoError(t, err)
	assert.Equal(t, wm.Rect{X: 9, Y: 5, Width: 40, Height: 12}, p.Rect)
	assert.False(t, m.Manager().SessionActive())

	front := m.Manager().FrontPane()
	require.NotNil(t, front)
	assert.Equal(t, "notes", front.ID)
}

func TestCornerDragResizesPane(t *testing.T) {
	m := newTestModel(t)

	// Raise notes first so its corner is not shadowed by tasks.
	m = apply(t, m, press(10, 2))
	m = apply(t, m, release(10, 2))

	// Lower-right corner of notes is (43,13).
	m = apply(t, m, press(43, 13))
	require.True(t, m.Manager().SessionActive())

	m = apply(t, m, motion(48, 16))
	m = apply(t, m, release(48, 16))

	p, err := m.Manager().Pane("notes")
	require.NoError(t, err)
	assert.Equal(t, wm.Rect{X: 4, Y: 2, Width: 45, Height: 15}, p.Rect)
}

func TestTitleBarButtons(t *testing.T) {
	m := newTestModel(t)

	// Notes top row, minimize button sits at X+W-4 = 40.
	m = apply(t, m, press(40, 2))

	p, err := m.Manager().Pane("notes")
	require.NoError(t, err)
	assert.Equal(t, wm.StateMinimized, p.State)
	assert.Len(t, m.Manager().Overflow().Entries, 1)

	// Raise tasks above scratch, then hit its close button at X+W-2 = 54.
	m = apply(t, m, press(25, 12))
	m = apply(t, m, release(25, 12))
	m = apply(t, m, press(54, 8))
	_, err = m.Manager().Pane("tasks")
	assert.ErrorIs(t, err, wm.ErrPaneNotFound)
}

func TestDockClickRestoresPane(t *testing.T) {
	m := newTestModel(t)
	m = apply(t, m, press(40, 2)) // minimize notes

	// First strip item occupies cells [0, itemWidth) on the dock row.
	m = apply(t, m, press(3, m.dockRow()))

	p, err := m.Manager().Pane("notes")
	require.NoError(t, err)
	assert.Equal(t, wm.StateNormal, p.State)
	assert.True(t, p.Visible)
	assert.Empty(t, m.Manager().Overflow().Entries)
}

func TestKeyboardMinimizeAndRestore(t *testing.T) {
	m := newTestModel(t)

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab}) // focus a pane
	front := m.Manager().FrontPane()
	require.NotNil(t, front)
	id := front.ID

	m = apply(t, m, keyRune('m'))
	p, err := m.Manager().Pane(id)
	require.NoError(t, err)
	assert.Equal(t, wm.StateMinimized, p.State)

	m = apply(t, m, keyRune('r'))
	p, err = m.Manager().Pane(id)
	require.NoError(t, err)
	assert.Equal(t, wm.StateNormal, p.State)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHitTestPrefersFrontPane(t *testing.T) {
	m := newTestModel(t)

	// (39,8) is inside both tasks (20,8,36x10) and scratch (38,4,30x9).
	// Without a front pane, the later-registered scratch wins.
	hit, ok := m.hitTest(wm.Point{X: 39, Y: 8})
	require.True(t, ok)
	assert.Equal(t, "scratch", hit.id)

	// Raising tasks flips the outcome.
	m = apply(t, m, press(25, 12))
	m = apply(t, m, release(25, 12))
	require.Equal(t, "tasks", m.Manager().FrontPane().ID)

	hit, ok = m.hitTest(wm.Point{X: 39, Y: 8})
	require.True(t, ok)
	assert.Equal(t, "tasks", hit.id)
}

func TestClassifyZones(t *testing.T) {
	pane := &wm.Pane{ID: "p", Title: "P", Rect: wm.Rect{X: 10, Y: 5, Width: 20, Height: 8}, Visible: true}

	cases := []struct {
		name string
		pt   wm.Point
		want wm.Hit
	}{
		{"upper left corner", wm.Point{X: 10, Y: 5}, wm.Hit{Kind: wm.HitResize, Zone: wm.ZoneUpperLeft}},
		{"upper right corner", wm.Point{X: 29, Y: 5}, wm.Hit{Kind: wm.HitResize, Zone: wm.ZoneUpperRight}},
		{"lower left corner", wm.Point{X: 10, Y: 12}, wm.Hit{Kind: wm.HitResize, Zone: wm.ZoneLowerLeft}},
		{"lower right corner", wm.Point{X: 29, Y: 12}, wm.Hit{Kind: wm.HitResize, Zone: wm.ZoneLowerRight}},
		{"left edge", wm.Point{X: 10, Y: 8}, wm.Hit{Kind: wm.HitResize, Zone: wm.ZoneLeft}},
		{"right edge", wm.Point{X: 29, Y: 8}, wm.Hit{Kind: wm.HitResize, Zone: wm.ZoneRight}},
		{"bottom edge", wm.Point{X: 15, Y: 12}, wm.Hit{Kind: wm.HitResize, Zone: wm.ZoneBottom}},
		{"title bar", wm.Point{X: 13, Y: 5}, wm.Hit{Kind: wm.HitHandle}},
		{"content", wm.Point{X: 15, Y: 8}, wm.Hit{Kind: wm.HitContent}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(pane, tc.pt)
			assert.Equal(t, actionNone, got.action)
			assert.Equal(t, tc.want, got.hit)
		})
	}
}

func TestClassifyButtons(t *testing.T) {
	pane := &wm.Pane{ID: "p", Title: "P", Rect: wm.Rect{X: 10, Y: 5, Width: 20, Height: 8}, Visible: true}

	assert.Equal(t, actionMinimize, classify(pane, wm.Point{X: 26, Y: 5}).action)
	assert.Equal(t, actionMaximize, classify(pane, wm.Point{X: 27, Y: 5}).action)
	assert.Equal(t, actionClose, classify(pane, wm.Point{X: 28, Y: 5}).action)

	// Too narrow for buttons: the whole top row is a handle.
	narrow := &wm.Pane{ID: "n", Rect: wm.Rect{X: 0, Y: 0, Width: 6, Height: 6}, Visible: true}
	got := classify(narrow, wm.Point{X: 4, Y: 0})
	assert.Equal(t, actionNone, got.action)
	assert.Equal(t, wm.Hit{Kind: wm.HitHandle}, got.hit)
}

func TestDropdownOverlay(t *testing.T) {
	m := newTestModel(t)
	m.Manager().SetDockWidth(40) // capacity 2 once the item width is measured

	// Minimize all three panes top-down so nothing shadows the buttons;
	// the third overflows the strip.
	for _, pos := range [][2]int{{64, 4}, {52, 8}, {40, 2}} {
		m = apply(t, m, press(pos[0], pos[1]))
	}
	require.Equal(t, wm.ModeDropdown, m.Manager().Overflow().Mode)

	// A dock-row click opens the list instead of restoring.
	m = apply(t, m, press(3, m.dockRow()))
	assert.True(t, m.dropdownOpen)

	// Clicking the second list row restores that entry and closes the list.
	entries := len(m.Manager().Overflow().Entries)
	m = apply(t, m, press(3, m.dockRow()-entries+1))
	assert.False(t, m.dropdownOpen)
	assert.Len(t, m.Manager().Overflow().Entries, entries-1)
}

func TestViewShowsPanesAndDock(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Notes")
	assert.Contains(t, out, "Scratch")
	assert.Contains(t, out, "no minimized panes")

	m = apply(t, m, press(40, 2)) // minimize notes
	out = m.View()
	assert.Contains(t, out, "[0] Notes")
}
