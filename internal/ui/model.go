package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"panewm/internal/config"
	"panewm/internal/wm"
)

const (
	dockRows = 1
	helpRows = 1

	// dockItemWidth is the rendered outer width of one strip item. The
	// engine is told the real value after the first item renders.
	dockItemWidth = 18
)

// Model is the bubbletea model driving the demo window manager.
type Model struct {
	mgr  *wm.Manager
	keys keyMap
	help help.Model
	log  zerolog.Logger

	width     int
	height    int
	viewportH int

	dropdownOpen bool
	itemMeasured bool
}

// New builds the demo model from configuration. The real viewport arrives
// with the first WindowSizeMsg; until then the configured fallback is used.
func New(cfg *config.Config, log zerolog.Logger) Model {
	h := &host{log: log.With().Str("component", "ui").Logger()}

	mgr := wm.New(h, wm.Options{
		Viewport:      wm.Size{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height},
		DockWidth:     cfg.Dock.Width,
		DockItemWidth: cfg.Dock.ItemWidth,
		Logger:        log.With().Str("component", "wm").Logger(),
	})

	caps := wm.Capabilities{
		Draggable:   cfg.Defaults.Draggable,
		Resizable:   cfg.Defaults.Resizable,
		Closable:    cfg.Defaults.Closable,
		Minimizable: cfg.Defaults.Minimizable,
	}

	for _, dp := range cfg.Demo.Panes {
		var rect *wm.Rect
		if dp.Width > 0 && dp.Height > 0 {
			rect = &wm.Rect{X: dp.X, Y: dp.Y, Width: dp.Width, Height: dp.Height}
		}
		if _, err := mgr.Register(dp.ID, dp.Title, &caps, rect); err != nil {
			log.Warn().Err(err).Str("pane", dp.ID).Msg("skipping demo pane")
		}
	}

	return Model{
		mgr:  mgr,
		keys: defaultKeyMap(),
		help: help.New(),
		log:  log,
	}
}

// Manager exposes the engine, mainly for tests.
func (m Model) Manager() *wm.Manager { return m.mgr }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewportH = msg.Height - dockRows - helpRows
		if m.viewportH < 1 {
			m.viewportH = 1
		}
		m.help.Width = msg.Width
		m.mgr.ViewportResized(m.width, m.viewportH)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := wm.PointerEvent{
		Pos:    wm.Point{X: msg.X, Y: msg.Y},
		Button: translateButton(msg.Button),
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.mgr.PointerMove(ev)

	case tea.MouseActionRelease:
		m.mgr.PointerUp(ev)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(ev), nil
	}

	return m, nil
}

func (m Model) handlePress(ev wm.PointerEvent) Model {
	snap := m.mgr.Overflow()

	if m.dropdownOpen {
		if idx, ok := m.dropdownIndexAt(ev.Pos, len(snap.Entries)); ok {
			if err := m.mgr.RestoreMinimized(idx); err != nil {
				m.log.Warn().Err(err).Int("index", idx).Msg("restore failed")
			}
			m.dropdownOpen = false
			return m
		}
		m.dropdownOpen = false
		return m
	}

	if ev.Pos.Y == m.dockRow() {
		switch snap.Mode {
		case wm.ModeStrip:
			idx := ev.Pos.X / m.dockItemOuterWidth()
			if idx >= 0 && idx < len(snap.Entries) {
				if err := m.mgr.RestoreMinimized(idx); err != nil {
					m.log.Warn().Err(err).Int("index", idx).Msg("restore failed")
				}
			}
		case wm.ModeDropdown:
			if len(snap.Entries) > 0 {
				m.dropdownOpen = true
			}
		}
		return m
	}

	target, ok := m.hitTest(ev.Pos)
	if !ok {
		return m
	}

	switch target.action {
	case actionMinimize:
		m = m.minimizePane(target.id)
	case actionMaximize:
		if err := m.mgr.ToggleMaximize(target.id); err != nil {
			m.log.Warn().Err(err).Str("pane", target.id).Msg("maximize failed")
		}
	case actionClose:
		if err := m.mgr.Close(target.id); err != nil {
			m.log.Warn().Err(err).Str("pane", target.id).Msg("close failed")
		}
	default:
		if err := m.mgr.PointerDown(target.id, target.hit, ev); err != nil {
			m.log.Warn().Err(err).Str("pane", target.id).Msg("pointer down failed")
		}
	}
	return m
}

// minimizePane runs the trigger and reports the first real item width back
// to the engine, standing in for the DOM measurement of the original
// system.
func (m Model) minimizePane(id string) Model {
	if err := m.mgr.Minimize(id); err != nil {
		m.log.Warn().Err(err).Str("pane", id).Msg("minimize failed")
		return m
	}
	if !m.itemMeasured {
		if snap := m.mgr.Overflow(); len(snap.Entries) > 0 {
			m.mgr.SetDockItemWidth(m.dockItemOuterWidth())
			m.itemMeasured = true
		}
	}
	return m
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, k.Cycle):
		if id, ok := m.nextVisiblePane(); ok {
			// Synthesized click: restack without leaving a drag session open.
			ev := wm.PointerEvent{Button: wm.ButtonPrimary}
			if err := m.mgr.PointerDown(id, wm.Hit{Kind: wm.HitContent}, ev); err != nil {
				m.log.Warn().Err(err).Str("pane", id).Msg("focus failed")
			}
			m.mgr.PointerUp(ev)
		}

	case key.Matches(msg, k.Minimize):
		if p := m.mgr.FrontPane(); p != nil {
			m = m.minimizePane(p.ID)
		}

	case key.Matches(msg, k.Maximize):
		if p := m.mgr.FrontPane(); p != nil {
			if err := m.mgr.ToggleMaximize(p.ID); err != nil {
				m.log.Warn().Err(err).Str("pane", p.ID).Msg("maximize failed")
			}
		}

	case key.Matches(msg, k.Close):
		if p := m.mgr.FrontPane(); p != nil {
			if err := m.mgr.Close(p.ID); err != nil {
				m.log.Warn().Err(err).Str("pane", p.ID).Msg("close failed")
			}
		}

	case key.Matches(msg, k.Dropdown):
		if m.mgr.Overflow().Mode == wm.ModeDropdown {
			m.dropdownOpen = !m.dropdownOpen
		}

	case key.Matches(msg, k.Restore):
		if len(m.mgr.Overflow().Entries) > 0 {
			if err := m.mgr.RestoreMinimized(0); err != nil {
				m.log.Warn().Err(err).Msg("restore failed")
			}
		}
	}

	return m, nil
}

// nextVisiblePane returns the visible pane following the current front
// pane in registration order, wrapping around.
func (m Model) nextVisiblePane() (string, bool) {
	panes := m.mgr.Panes()
	if len(panes) == 0 {
		return "", false
	}

	start := 0
	if front := m.mgr.FrontPane(); front != nil {
		for i, p := range panes {
			if p.ID == front.ID {
				start = i + 1
				break
			}
		}
	}

	for i := 0; i < len(panes); i++ {
		p := panes[(start+i)%len(panes)]
		if p.Visible {
			return p.ID, true
		}
	}
	return "", false
}

func (m Model) dockRow() int {
	return m.viewportH
}

func (m Model) dockItemOuterWidth() int {
	return dockItemWidth
}

// dropdownIndexAt maps a click inside the open dropdown list to a restore
// index. The list renders bottom-up directly above the dock row.
func (m Model) dropdownIndexAt(p wm.Point, entries int) (int, bool) {
	if entries == 0 {
		return 0, false
	}
	top := m.dockRow() - entries
	if p.Y < top || p.Y >= m.dockRow() {
		return 0, false
	}
	return p.Y - top, true
}

func translateButton(b tea.MouseButton) wm.MouseButton {
	switch b {
	case tea.MouseButtonRight:
		return wm.ButtonSecondary
	case tea.MouseButtonMiddle:
		return wm.ButtonMiddle
	default:
		return wm.ButtonPrimary
	}
}

