// Package wm implements the window-management core: pane registration,
// pointer-driven move/resize sessions, the minimize/maximize lifecycle with
// saved-geometry restore, front/back stacking, and the minimized-pane dock
// with its strip/dropdown overflow modes.
//
// The package is host-agnostic. Rendering, affordance hit-testing, and input
// capture live in the host (see internal/ui for the terminal host); the host
// feeds explicit pointer events into a Manager and receives change
// notifications through the Host interface. All state is owned by the
// Manager instance, so multiple independent managers can coexist.
package wm
