package ui

import "panewm/internal/wm"

// paneAction is a title-bar button resolved during hit testing.
type paneAction int

const (
	actionNone paneAction = iota
	actionMinimize
	actionMaximize
	actionClose
)

// paneHit is the result of mapping a terminal cell to a pane.
type paneHit struct {
	id     string
	hit    wm.Hit
	action paneAction
}

// hitTest finds the topmost visible pane under p. The front pane is probed
// first so an overlapped pane never steals the press.
func (m Model) hitTest(p wm.Point) (paneHit, bool) {
	for _, pane := range m.panesTopFirst() {
		if !pane.Visible {
			continue
		}
		if !contains(pane.Rect, p) {
			continue
		}
		return classify(pane, p), true
	}
	return paneHit{}, false
}

// panesTopFirst returns visible panes front to back: the front-tier pane
// first, then the rest in reverse registration order.
func (m Model) panesTopFirst() []*wm.Pane {
	panes := m.mgr.Panes()
	out := make([]*wm.Pane, 0, len(panes))

	front := m.mgr.FrontPane()
	if front != nil {
		out = append(out, front)
	}
	for i := len(panes) - 1; i >= 0; i-- {
		if front != nil && panes[i].ID == front.ID {
			continue
		}
		out = append(out, panes[i])
	}
	return out
}

func contains(r wm.Rect, p wm.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// classify maps a cell inside the pane to a handle, resize zone, title-bar
// button, or content. The top border doubles as the drag handle; its
// corners and right-edge buttons take precedence.
func classify(pane *wm.Pane, p wm.Point) paneHit {
	r := pane.Rect
	left := p.X == r.X
	right := p.X == r.X+r.Width-1
	top := p.Y == r.Y
	bottom := p.Y == r.Y+r.Height-1

	switch {
	case top && left:
		return zoneHit(pane.ID, wm.ZoneUpperLeft)
	case top && right:
		return zoneHit(pane.ID, wm.ZoneUpperRight)
	case bottom && left:
		return zoneHit(pane.ID, wm.ZoneLowerLeft)
	case bottom && right:
		return zoneHit(pane.ID, wm.ZoneLowerRight)
	}

	if top {
		if action, ok := buttonAt(r, p.X); ok {
			return paneHit{id: pane.ID, action: action}
		}
		return paneHit{id: pane.ID, hit: wm.Hit{Kind: wm.HitHandle}}
	}

	switch {
	case left:
		return zoneHit(pane.ID, wm.ZoneLeft)
	case right:
		return zoneHit(pane.ID, wm.ZoneRight)
	case bottom:
		return zoneHit(pane.ID, wm.ZoneBottom)
	}

	return paneHit{id: pane.ID, hit: wm.Hit{Kind: wm.HitContent}}
}

func zoneHit(id string, z wm.Zone) paneHit {
	return paneHit{id: id, hit: wm.Hit{Kind: wm.HitResize, Zone: z}}
}

// buttonAt resolves the minimize, maximize and close buttons drawn on the
// top border just inside the upper-right corner. Panes too narrow to show
// them have none.
func buttonAt(r wm.Rect, x int) (paneAction, bool) {
	if r.Width < 8 {
		return actionNone, false
	}
	switch x {
	case r.X + r.Width - 2:
		return actionClose, true
	case r.X + r.Width - 3:
		return actionMaximize, true
	case r.X + r.Width - 4:
		return actionMinimize, true
	}
	return actionNone, false
}
