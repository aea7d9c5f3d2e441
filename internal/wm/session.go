package wm

// MouseButton identifies which button triggered a pointer event.
type MouseButton int

const (
	// ButtonPrimary is the only button that starts sessions.
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is an explicit pointer payload. The engine never reads an
// ambient "current event"; hosts pass coordinates with every call.
type PointerEvent struct {
	Pos    Point
	Button MouseButton
}

// HitKind tells the engine which affordance a pointer-down landed on. The
// host performs the hit-testing; the engine only interprets the result.
type HitKind int

const (
	// HitContent is a pointer-down anywhere on the pane that is neither a
	// drag handle nor a resize zone. It raises the pane and nothing else.
	HitContent HitKind = iota
	// HitHandle is a pointer-down on the drag affordance.
	HitHandle
	// HitResize is a pointer-down on one of the eight resize zones.
	HitResize
)

// Hit describes what a pointer-down landed on. Zone is only meaningful for
// HitResize.
type Hit struct {
	Kind HitKind
	Zone Zone
}

type sessionMode int

const (
	sessionMove sessionMode = iota
	sessionResize
)

// session is the transient pointer-tracking state. At most one exists per
// Manager; it is created on pointer-down over an affordance and destroyed
// on pointer-up, from any location.
type session struct {
	paneID      string
	mode        sessionMode
	zone        Zone
	lastPointer Point
}

// PointerDown routes a pointer-down on a registered pane. Every
// pointer-down promotes the pane to the front tier; a primary-button down
// on a drag handle or resize zone additionally opens a session, gated on
// the pane's capabilities. The host must route move/up events to the active
// session only; a pointer-down arriving while a session is active restacks
// but never opens a second session.
func (m *Manager) PointerDown(id string, hit Hit, ev PointerEvent) error {
	m.mu.Lock()

	p, ok := m.panes[id]
	if !ok {
		m.mu.Unlock()
		return ErrPaneNotFound
	}

	notes := m.restack(p)

	if m.sess == nil && ev.Button == ButtonPrimary {
		switch {
		case hit.Kind == HitHandle && p.Caps.Draggable:
			m.sess = &session{paneID: id, mode: sessionMove, lastPointer: ev.Pos}
			m.log.Debug().Str("pane", id).Msg("move session started")
		case hit.Kind == HitResize && p.Caps.Resizable:
			m.sess = &session{paneID: id, mode: sessionResize, zone: hit.Zone, lastPointer: ev.Pos}
			m.log.Debug().Str("pane", id).Stringer("zone", hit.Zone).Msg("resize session started")
		}
	}

	m.mu.Unlock()
	m.emit(notes)
	return nil
}

// PointerMove feeds one pointer-move step into the active session. The
// delta is incremental, previous pointer minus current, never cumulative
// from session start; each step is resolved against the rectangle as it is
// at that moment and committed immediately. Without an active session this
// is a no-op.
func (m *Manager) PointerMove(ev PointerEvent) {
	m.mu.Lock()

	s := m.sess
	if s == nil {
		m.mu.Unlock()
		return
	}

	p, ok := m.panes[s.paneID]
	if !ok {
		// Target vanished; drop the session.
		m.sess = nil
		m.mu.Unlock()
		return
	}

	d := Delta{X: s.lastPointer.X - ev.Pos.X, Y: s.lastPointer.Y - ev.Pos.Y}
	s.lastPointer = ev.Pos

	var next Rect
	switch s.mode {
	case sessionMove:
		next = moveRect(p.Rect, d, m.viewport)
	case sessionResize:
		next = resizeRect(p.Rect, d, s.zone, m.viewport)
	}

	var notes []func(Host)
	if next != p.Rect {
		p.Rect = next
		id, r := p.ID, p.Rect
		notes = append(notes, func(h Host) { h.PaneMoved(id, r) })
	}

	m.mu.Unlock()
	m.emit(notes)
}

// PointerUp ends the active session unconditionally, regardless of pointer
// location. Without an active session this is a no-op.
func (m *Manager) PointerUp(_ PointerEvent) {
	m.mu.Lock()
	if m.sess != nil {
		m.log.Debug().Str("pane", m.sess.paneID).Msg("session ended")
		m.sess = nil
	}
	m.mu.Unlock()
}
