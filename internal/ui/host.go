// Package ui implements the terminal host for the window-management
// engine: a bubbletea program that renders panes as bordered boxes, routes
// terminal mouse events into the engine, and shows the minimized dock as a
// strip or dropdown.
package ui

import (
	"github.com/rs/zerolog"

	"panewm/internal/wm"
)

// host receives engine notifications. The view pulls state from the
// manager on every frame, so the host only traces what happened.
type host struct {
	log zerolog.Logger
}

var _ wm.Host = (*host)(nil)

func (h *host) PaneShown(id string) {
	h.log.Debug().Str("pane", id).Msg("shown")
}

func (h *host) PaneHidden(id string) {
	h.log.Debug().Str("pane", id).Msg("hidden")
}

func (h *host) PaneMoved(id string, r wm.Rect) {
	h.log.Trace().Str("pane", id).Interface("rect", r).Msg("moved")
}

func (h *host) PaneTierChanged(id string, t wm.Tier) {
	h.log.Debug().Str("pane", id).Stringer("tier", t).Msg("tier changed")
}

func (h *host) PaneClosed(id string) {
	h.log.Debug().Str("pane", id).Msg("closed")
}

func (h *host) OverflowChanged(s wm.OverflowSnapshot) {
	h.log.Debug().Stringer("mode", s.Mode).Int("entries", len(s.Entries)).Msg("dock changed")
}
