package wm

// Rect is a pane rectangle in viewport pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Point is a pointer position in viewport pixels.
type Point struct {
	X int
	Y int
}

// Delta is a per-step pointer displacement, computed as previous pointer
// minus current pointer.
type Delta struct {
	X int
	Y int
}

// Size holds viewport or pane dimensions.
type Size struct {
	Width  int
	Height int
}

// State represents the lifecycle state of a pane.
type State int

const (
	// StateNormal indicates the pane is shown at its own geometry.
	StateNormal State = iota
	// StateMinimized indicates the pane is hidden and represented in the dock.
	StateMinimized
	// StateMaximized indicates the pane fills the viewport.
	StateMaximized
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Tier is the coarse z-order bucket of a pane. Panes start at TierInherit
// and only ever hold TierBack or TierFront after an explicit elevation.
type Tier int

const (
	// TierInherit marks a pane that never received an explicit elevation.
	TierInherit Tier = iota
	// TierBack is every previously elevated pane except the frontmost one.
	TierBack
	// TierFront is the single pane promoted by the latest interaction.
	TierFront
)

// String returns a string representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierInherit:
		return "inherit"
	case TierBack:
		return "back"
	case TierFront:
		return "front"
	default:
		return "unknown"
	}
}

// Capabilities is the explicit capability set carried by a pane. The host
// decides which affordances to render from it; the engine gates sessions
// and lifecycle triggers on it.
type Capabilities struct {
	Draggable   bool
	Resizable   bool
	Closable    bool
	Minimizable bool
}

// DefaultCapabilities returns the capability set used when registration
// supplies none: everything enabled.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Draggable:   true,
		Resizable:   true,
		Closable:    true,
		Minimizable: true,
	}
}

// Pane is one managed window. Rect is always fully inside the viewport
// except transiently within a drag/resize step, which is clamped before
// being committed.
type Pane struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Caps    Capabilities `json:"-"`
	Rect    Rect         `json:"rect"`
	State   State        `json:"state"`
	Visible bool         `json:"visible"`

	// savedRect holds the pre-maximize geometry. Written on entering
	// StateMaximized, cleared on restore, nil otherwise.
	savedRect *Rect
	tier      Tier
}

// Tier returns the pane's current z-order tier.
func (p *Pane) Tier() Tier { return p.tier }

// SavedRect returns the pre-maximize geometry snapshot, or false while the
// pane is not maximized.
func (p *Pane) SavedRect() (Rect, bool) {
	if p.savedRect == nil {
		return Rect{}, false
	}
	return *p.savedRect, true
}

func newPane(id, title string, caps Capabilities, r Rect) *Pane {
	return &Pane{
		ID:      id,
		Title:   title,
		Caps:    caps,
		Rect:    r,
		State:   StateNormal,
		Visible: true,
	}
}
