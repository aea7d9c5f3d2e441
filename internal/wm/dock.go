package wm

// OverflowMode is the presentation mode for the set of minimized panes.
type OverflowMode int

const (
	// ModeStrip renders one item per minimized pane in a horizontal strip.
	ModeStrip OverflowMode = iota
	// ModeDropdown replaces the strip with a toggle plus a vertical list
	// once the strip no longer fits.
	ModeDropdown
)

// String returns a string representation of the mode.
func (m OverflowMode) String() string {
	switch m {
	case ModeStrip:
		return "strip"
	case ModeDropdown:
		return "dropdown"
	default:
		return "unknown"
	}
}

// MinimizedEntry represents one minimized pane in the dock. Its position in
// the registry doubles as its display identifier.
type MinimizedEntry struct {
	PaneID string
	Title  string
}

// OverflowSnapshot is the dock state handed to the host after every change.
// Entries are compacted and ordered; their slice index is the restore
// index.
type OverflowSnapshot struct {
	Mode    OverflowMode
	Entries []MinimizedEntry
}

// dock owns the ordered minimized-pane registry and the strip/dropdown
// mode decision. Empty slots (zero PaneID) only exist transiently between
// a removal and its compaction pass.
type dock struct {
	entries   []MinimizedEntry
	mode      OverflowMode
	width     int
	itemWidth int
}

func newDock(width, fallbackItemWidth int) *dock {
	if fallbackItemWidth <= 0 {
		fallbackItemWidth = defaultPaneWidth / 2
	}
	return &dock{
		mode:      ModeStrip,
		width:     width,
		itemWidth: fallbackItemWidth,
	}
}

// capacity is how many strip items fit in the dock width.
func (d *dock) capacity() int {
	if d.itemWidth <= 0 {
		return 0
	}
	return d.width / d.itemWidth
}

// live counts non-empty registry slots.
func (d *dock) live() int {
	n := 0
	for _, e := range d.entries {
		if e.PaneID != "" {
			n++
		}
	}
	return n
}

// push appends an entry, suppresses duplicate back-to-back pushes for the
// same pane, and re-evaluates the mode. The dedup only compares the two
// most recent entries; it is a best-effort guard against a double-click and
// its bubbled click both enqueueing the same pane, not a full idempotency
// guarantee.
func (d *dock) push(paneID, title string) {
	d.entries = append(d.entries, MinimizedEntry{PaneID: paneID, Title: title})

	if n := len(d.entries); n >= 2 && d.entries[n-1].PaneID == d.entries[n-2].PaneID {
		d.entries = d.entries[:n-1]
	}

	if d.live() > d.capacity() {
		d.mode = ModeDropdown
	} else {
		d.mode = ModeStrip
	}
}

// removeAt empties the slot at the given index and compacts. In strip mode
// only the compaction pass runs; in dropdown mode the removal triggers a
// full mode check and a drop back to strip when the compacted registry
// fits again.
func (d *dock) removeAt(index int) (MinimizedEntry, error) {
	if index < 0 || index >= len(d.entries) || d.entries[index].PaneID == "" {
		return MinimizedEntry{}, ErrBadDockIndex
	}

	entry := d.entries[index]
	// Mark the slot empty in place first so indices of the remaining
	// entries stay aligned with any rendered representation until the
	// compaction pass reassigns them.
	d.entries[index] = MinimizedEntry{}

	d.compact()

	if d.mode == ModeDropdown && d.live() <= d.capacity() {
		d.mode = ModeStrip
	}

	return entry, nil
}

// removePane drops the entry for a pane regardless of position. Used when
// a minimized pane is closed.
func (d *dock) removePane(paneID string) bool {
	for i, e := range d.entries {
		if e.PaneID == paneID {
			_, err := d.removeAt(i)
			return err == nil
		}
	}
	return false
}

// compact strips empty slots so the remaining entries occupy indices
// 0..n-1 in their original relative order.
func (d *dock) compact() {
	kept := d.entries[:0]
	for _, e := range d.entries {
		if e.PaneID != "" {
			kept = append(kept, e)
		}
	}
	d.entries = kept
}

// setItemWidth records the rendered outer width (width plus horizontal
// margins) of a dock item, measured by the host from the first rendered
// item.
func (d *dock) setItemWidth(w int) {
	if w <= 0 {
		return
	}
	d.itemWidth = w
}

// resize recomputes capacity for a new dock width. The strip-to-dropdown
// check tolerates one item beyond capacity; this asymmetry with the
// insertion path is deliberate, it keeps the dock from flickering between
// modes when a resize lands exactly on the boundary.
func (d *dock) resize(width int) {
	d.width = width

	n := d.live()
	switch d.mode {
	case ModeStrip:
		if n > d.capacity()+1 {
			d.mode = ModeDropdown
		}
	case ModeDropdown:
		if n <= d.capacity() {
			d.mode = ModeStrip
		}
	}
}

// snapshot returns the compacted registry and mode for the host.
func (d *dock) snapshot() OverflowSnapshot {
	entries := make([]MinimizedEntry, 0, len(d.entries))
	for _, e := range d.entries {
		if e.PaneID != "" {
			entries = append(entries, e)
		}
	}
	return OverflowSnapshot{Mode: d.mode, Entries: entries}
}
