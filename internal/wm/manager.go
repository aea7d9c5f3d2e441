package wm

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Host receives change notifications from the Manager. Implementations
// render panes and the dock; they must not call back into the Manager from
// inside a notification.
type Host interface {
	// PaneShown fires when a pane becomes visible again after a restore.
	PaneShown(id string)
	// PaneHidden fires when a pane is minimized.
	PaneHidden(id string)
	// PaneMoved fires whenever a pane's committed rectangle changes.
	PaneMoved(id string, r Rect)
	// PaneTierChanged fires for every pane whose stacking tier changed.
	PaneTierChanged(id string, t Tier)
	// PaneClosed fires after a pane is detached; the id is gone for good.
	PaneClosed(id string)
	// OverflowChanged fires after every dock mutation with the compacted
	// registry and current presentation mode.
	OverflowChanged(s OverflowSnapshot)
}

// Options configures a Manager.
type Options struct {
	// Viewport is the initial containment bounds. Falls back to 1200x800
	// when unset.
	Viewport Size
	// DockWidth is the minimize-area width. When zero the dock follows the
	// viewport width.
	DockWidth int
	// DockItemWidth is the assumed outer width of one dock item until the
	// host reports a real measurement via SetDockItemWidth.
	DockItemWidth int
	// Logger receives debug traces of sessions and transitions.
	Logger zerolog.Logger
}

// Manager owns all window-management state for one viewport: the pane
// registry, the active pointer session, the stacking tiers, and the
// minimized-pane dock. Every operation takes explicit payloads and all
// mutation happens on the caller's goroutine.
type Manager struct {
	mu   sync.RWMutex
	log  zerolog.Logger
	host Host

	viewport Size
	panes    map[string]*Pane
	order    []string
	sess     *session
	dock     *dock

	// dockWidthSet pins the dock width once the host reports a dedicated
	// minimize area; otherwise the dock tracks the viewport width.
	dockWidthSet bool
}

// New creates a window manager for the given host.
func New(host Host, opts Options) *Manager {
	vp := opts.Viewport
	if vp.Width <= 0 {
		vp.Width = 1200
	}
	if vp.Height <= 0 {
		vp.Height = 800
	}

	dockWidth := opts.DockWidth
	widthSet := dockWidth > 0
	if !widthSet {
		dockWidth = vp.Width
	}

	return &Manager{
		log:          opts.Logger,
		host:         host,
		viewport:     vp,
		panes:        make(map[string]*Pane),
		dock:         newDock(dockWidth, opts.DockItemWidth),
		dockWidthSet: widthSet,
	}
}

// emit flushes queued notifications outside the lock.
func (m *Manager) emit(notes []func(Host)) {
	if m.host == nil {
		return
	}
	for _, fn := range notes {
		fn(m.host)
	}
}

// restack promotes p to the front and queues tier notifications for every
// pane whose tier actually changed. Caller holds the lock.
func (m *Manager) restack(p *Pane) []func(Host) {
	before := make(map[string]Tier, len(m.panes))
	for id, q := range m.panes {
		before[id] = q.tier
	}

	raiseToFront(p, m.panes)

	var notes []func(Host)
	for _, id := range m.order {
		q := m.panes[id]
		if q.tier != before[id] {
			pid, t := q.ID, q.tier
			notes = append(notes, func(h Host) { h.PaneTierChanged(pid, t) })
		}
	}
	return notes
}

// Register adds a pane to the manager. A nil capability set enables all
// four capabilities; a nil rectangle places the pane at the origin with the
// default size. The initial rectangle is clamped into the viewport.
func (m *Manager) Register(id, title string, caps *Capabilities, initial *Rect) (*Pane, error) {
	if id == "" {
		return nil, fmt.Errorf("register pane: empty id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.panes[id]; exists {
		return nil, fmt.Errorf("register pane %q: %w", id, ErrDuplicatePane)
	}

	c := DefaultCapabilities()
	if caps != nil {
		c = *caps
	}

	r := Rect{Width: defaultPaneWidth, Height: defaultPaneHeight}
	if initial != nil {
		r = *initial
	}
	r = fitToViewport(r, m.viewport)

	p := newPane(id, title, c, r)
	m.panes[id] = p
	m.order = append(m.order, id)

	m.log.Debug().Str("pane", id).Interface("rect", r).Msg("pane registered")
	return p, nil
}

// Minimize moves a pane into the dock. The pane keeps its geometry so a
// restore only has to re-show it. Repeated minimize requests for the same
// pane can arrive from a double-click and its bubbled click; the dock's
// dedup absorbs the immediate duplicate. Minimizing a maximized pane is an
// illegal transition.
func (m *Manager) Minimize(id string) error {
	m.mu.Lock()

	p, ok := m.panes[id]
	if !ok {
		m.mu.Unlock()
		return ErrPaneNotFound
	}
	if !p.Caps.Minimizable {
		m.mu.Unlock()
		return nil
	}
	if p.State == StateMaximized {
		m.mu.Unlock()
		return fmt.Errorf("minimize maximized pane %q: %w", id, ErrIllegalTransition)
	}

	var notes []func(Host)

	// Insertion, dedup, and capacity check run in this order inside the
	// one event so the host never sees a stale mode.
	m.dock.push(p.ID, p.Title)

	if p.State == StateNormal {
		p.State = StateMinimized
		p.Visible = false
		pid := p.ID
		notes = append(notes, func(h Host) { h.PaneHidden(pid) })
		m.log.Debug().Str("pane", id).Msg("pane minimized")
	}

	snap := m.dock.snapshot()
	notes = append(notes, func(h Host) { h.OverflowChanged(snap) })

	m.mu.Unlock()
	m.emit(notes)
	return nil
}

// RestoreMinimized restores the pane behind the dock entry at the given
// index, re-shows it, and brings it to the front. The remaining entries are
// re-indexed contiguously from zero.
func (m *Manager) RestoreMinimized(index int) error {
	m.mu.Lock()

	entry, err := m.dock.removeAt(index)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	p, ok := m.panes[entry.PaneID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("restore dock entry %d (pane %q): %w", index, entry.PaneID, ErrPaneNotFound)
	}

	p.State = StateNormal
	p.Visible = true

	notes := m.restack(p)
	pid := p.ID
	notes = append(notes, func(h Host) { h.PaneShown(pid) })
	snap := m.dock.snapshot()
	notes = append(notes, func(h Host) { h.OverflowChanged(snap) })

	m.log.Debug().Str("pane", p.ID).Int("index", index).Msg("pane restored from dock")

	m.mu.Unlock()
	m.emit(notes)
	return nil
}

// ToggleMaximize maximizes a normal pane or restores a maximized one. The
// pre-maximize rectangle is snapshotted on the way in and reinstated,
// clamped to the current viewport, on the way out. Toggling a minimized
// pane is an illegal transition.
func (m *Manager) ToggleMaximize(id string) error {
	m.mu.Lock()

	p, ok := m.panes[id]
	if !ok {
		m.mu.Unlock()
		return ErrPaneNotFound
	}

	var notes []func(Host)

	switch p.State {
	case StateNormal:
		saved := p.Rect
		p.savedRect = &saved
		p.Rect = maximizedRect(m.viewport, p.Caps.Resizable)
		p.State = StateMaximized
		m.log.Debug().Str("pane", id).Msg("pane maximized")

	case StateMaximized:
		if p.savedRect != nil {
			p.Rect = fitToViewport(*p.savedRect, m.viewport)
			p.savedRect = nil
		}
		p.State = StateNormal
		m.log.Debug().Str("pane", id).Msg("pane restored from maximize")

	case StateMinimized:
		m.mu.Unlock()
		return fmt.Errorf("maximize minimized pane %q: %w", id, ErrIllegalTransition)
	}

	pid, r := p.ID, p.Rect
	notes = append(notes, func(h Host) { h.PaneMoved(pid, r) })

	m.mu.Unlock()
	m.emit(notes)
	return nil
}

// Close detaches a pane for good. A minimized pane's dock entry is released
// along the way, as is any saved geometry. Closing the target of an active
// pointer session is rejected; the host has to end the session first.
func (m *Manager) Close(id string) error {
	m.mu.Lock()

	p, ok := m.panes[id]
	if !ok {
		m.mu.Unlock()
		return ErrPaneNotFound
	}
	if !p.Caps.Closable {
		m.mu.Unlock()
		return nil
	}
	if m.sess != nil && m.sess.paneID == id {
		m.mu.Unlock()
		return fmt.Errorf("close pane %q: %w", id, ErrPaneBusy)
	}

	var notes []func(Host)

	if p.State == StateMinimized && m.dock.removePane(id) {
		snap := m.dock.snapshot()
		notes = append(notes, func(h Host) { h.OverflowChanged(snap) })
	}

	p.savedRect = nil
	delete(m.panes, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	pid := p.ID
	notes = append(notes, func(h Host) { h.PaneClosed(pid) })
	m.log.Debug().Str("pane", id).Msg("pane closed")

	m.mu.Unlock()
	m.emit(notes)
	return nil
}

// ViewportResized updates the containment bounds, runs the containment
// pass over every registered pane exactly once, and recomputes the dock
// capacity. Maximized panes are refit to the new viewport.
func (m *Manager) ViewportResized(width, height int) {
	m.mu.Lock()

	m.viewport = Size{Width: width, Height: height}

	var notes []func(Host)
	for _, id := range m.order {
		p := m.panes[id]

		var next Rect
		if p.State == StateMaximized {
			next = maximizedRect(m.viewport, p.Caps.Resizable)
		} else {
			next = fitToViewport(p.Rect, m.viewport)
		}
		if next != p.Rect {
			p.Rect = next
			pid, r := p.ID, p.Rect
			notes = append(notes, func(h Host) { h.PaneMoved(pid, r) })
		}
	}

	dockWidth := m.dock.width
	if !m.dockWidthSet {
		dockWidth = width
	}
	m.dock.resize(dockWidth)
	snap := m.dock.snapshot()
	notes = append(notes, func(h Host) { h.OverflowChanged(snap) })

	m.mu.Unlock()
	m.emit(notes)
}

// SetDockWidth pins the minimize-area width and re-evaluates the dock mode.
func (m *Manager) SetDockWidth(width int) {
	m.mu.Lock()
	m.dockWidthSet = true
	m.dock.resize(width)
	snap := m.dock.snapshot()
	m.mu.Unlock()

	m.emit([]func(Host){func(h Host) { h.OverflowChanged(snap) }})
}

// SetDockItemWidth records the rendered outer width of a dock item as
// measured by the host from the first rendered item.
func (m *Manager) SetDockItemWidth(width int) {
	m.mu.Lock()
	m.dock.setItemWidth(width)
	m.mu.Unlock()
}

// Pane returns a registered pane.
func (m *Manager) Pane(id string) (*Pane, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.panes[id]
	if !ok {
		return nil, ErrPaneNotFound
	}
	return p, nil
}

// Panes returns all registered panes in registration order.
func (m *Manager) Panes() []*Pane {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Pane, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.panes[id])
	}
	return out
}

// FrontPane returns the pane currently holding the front tier, or nil
// before the first interaction.
func (m *Manager) FrontPane() *Pane {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.panes {
		if p.tier == TierFront {
			return p
		}
	}
	return nil
}

// Overflow returns the current dock snapshot.
func (m *Manager) Overflow() OverflowSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dock.snapshot()
}

// Viewport returns the current containment bounds.
func (m *Manager) Viewport() Size {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewport
}

// SessionActive reports whether a drag/resize session is in progress.
func (m *Manager) SessionActive() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess != nil
}
