package wm

// Geometry constants. The minimum pane size is a hard floor, never
// user-configurable; the edge margin is twice the resize-handle thickness
// so a maximized resizable pane keeps its handles reachable.
const (
	handleThickness = 3
	edgeMargin      = 2 * handleThickness

	minPaneWidth  = 5
	minPaneHeight = 5

	defaultPaneWidth  = 200
	defaultPaneHeight = 150
)

// Zone identifies which of the eight resize handles a session is anchored
// to. Edges mutate one axis, corners mutate both.
type Zone int

const (
	ZoneLeft Zone = iota
	ZoneRight
	ZoneTop
	ZoneBottom
	ZoneUpperLeft
	ZoneUpperRight
	ZoneLowerLeft
	ZoneLowerRight
)

// String returns a string representation of the zone.
func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	case ZoneUpperLeft:
		return "upper-left"
	case ZoneUpperRight:
		return "upper-right"
	case ZoneLowerLeft:
		return "lower-left"
	case ZoneLowerRight:
		return "lower-right"
	default:
		return "unknown"
	}
}

type horizEdge int

const (
	horizNone horizEdge = iota
	horizLeft
	horizRight
)

type vertEdge int

const (
	vertNone vertEdge = iota
	vertTop
	vertBottom
)

// horizontal returns the horizontal component of the zone.
func (z Zone) horizontal() horizEdge {
	switch z {
	case ZoneLeft, ZoneUpperLeft, ZoneLowerLeft:
		return horizLeft
	case ZoneRight, ZoneUpperRight, ZoneLowerRight:
		return horizRight
	default:
		return horizNone
	}
}

// vertical returns the vertical component of the zone.
func (z Zone) vertical() vertEdge {
	switch z {
	case ZoneTop, ZoneUpperLeft, ZoneUpperRight:
		return vertTop
	case ZoneBottom, ZoneLowerLeft, ZoneLowerRight:
		return vertBottom
	default:
		return vertNone
	}
}

// moveRect computes the rectangle after one move step. The delta is the
// previous pointer position minus the current one, so the pane travels
// opposite to the delta sign. An axis whose movement would cross a viewport
// edge is rejected wholesale: the previous coordinate is kept exactly
// rather than clamped to the edge.
func moveRect(r Rect, d Delta, vp Size) Rect {
	out := r

	nx := r.X - d.X
	if nx >= 0 && nx+r.Width <= vp.Width {
		out.X = nx
	}

	ny := r.Y - d.Y
	if ny >= 0 && ny+r.Height <= vp.Height {
		out.Y = ny
	}

	return out
}

// resizeRect computes the rectangle after one resize step anchored at the
// given zone. Horizontal and vertical components are resolved
// independently; a component whose result would violate the minimum size
// or a viewport boundary is rejected for this step while the other
// component still applies.
func resizeRect(r Rect, d Delta, zone Zone, vp Size) Rect {
	out := r

	switch zone.horizontal() {
	case horizRight:
		nw := r.Width - d.X
		grows := nw > r.Width
		if nw >= minPaneWidth && !(grows && r.X+nw+edgeMargin > vp.Width) {
			out.Width = nw
		}
	case horizLeft:
		nw := r.Width + d.X
		nx := r.X - d.X
		if nw >= minPaneWidth && nx >= 0 {
			out.Width = nw
			out.X = nx
		}
	}

	switch zone.vertical() {
	case vertBottom:
		nh := r.Height - d.Y
		grows := nh > r.Height
		if nh >= minPaneHeight && !(grows && r.Y+nh+edgeMargin > vp.Height) {
			out.Height = nh
		}
	case vertTop:
		nh := r.Height + d.Y
		ny := r.Y - d.Y
		if nh >= minPaneHeight && ny >= 0 {
			out.Height = nh
			out.Y = ny
		}
	}

	return out
}

// fitToViewport clamps a rectangle into the viewport after a viewport
// change. Width shrinks to fit first; when shrinking would fall below the
// minimum size, the floor width is kept and the origin shifts left
// instead. Vertical handling is symmetric.
func fitToViewport(r Rect, vp Size) Rect {
	out := r

	if out.X < 0 {
		out.X = 0
	}
	if out.Y < 0 {
		out.Y = 0
	}

	if out.X+out.Width+edgeMargin > vp.Width {
		w := vp.Width - out.X - edgeMargin
		if w < minPaneWidth {
			out.Width = minPaneWidth
			x := vp.Width - minPaneWidth - edgeMargin
			if x < 0 {
				x = 0
			}
			out.X = x
		} else {
			out.Width = w
		}
	}

	if out.Y+out.Height+edgeMargin > vp.Height {
		h := vp.Height - out.Y - edgeMargin
		if h < minPaneHeight {
			out.Height = minPaneHeight
			y := vp.Height - minPaneHeight - edgeMargin
			if y < 0 {
				y = 0
			}
			out.Y = y
		} else {
			out.Height = h
		}
	}

	return out
}

// maximizedRect returns the full-viewport geometry for a pane. Resizable
// panes keep the edge margin on both axes so their handles stay inside the
// viewport.
func maximizedRect(vp Size, resizable bool) Rect {
	r := Rect{X: 0, Y: 0, Width: vp.Width, Height: vp.Height}
	if resizable {
		r.Width -= edgeMargin
		r.Height -= edgeMargin
	}
	return r
}
