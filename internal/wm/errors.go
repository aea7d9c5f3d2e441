package wm

import "errors"

// ErrPaneNotFound is returned when a pane ID does not resolve to a
// registered pane. Lifecycle triggers are only ever supposed to be invoked
// with IDs produced by Register, so hitting this indicates a caller bug.
var ErrPaneNotFound = errors.New("pane not found")

// ErrDuplicatePane is returned when registering an ID that is already taken.
var ErrDuplicatePane = errors.New("pane id already registered")

// ErrBadDockIndex is returned when restoring a dock slot that is out of
// range or already empty.
var ErrBadDockIndex = errors.New("invalid minimized dock index")

// ErrIllegalTransition is returned for lifecycle transitions the state
// machine rejects, such as minimizing a maximized pane.
var ErrIllegalTransition = errors.New("illegal lifecycle transition")

// ErrPaneBusy is returned when closing a pane that has an active
// drag/resize session attached to it.
var ErrPaneBusy = errors.New("pane has an active pointer session")
