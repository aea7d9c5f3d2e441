// Package wmtest provides test doubles for the wm package.
package wmtest

import (
	"github.com/stretchr/testify/mock"

	"panewm/internal/wm"
)

// MockHost is a testify mock for wm.Host.
type MockHost struct {
	mock.Mock
}

var _ wm.Host = (*MockHost)(nil)

func NewMockHost() *MockHost {
	return &MockHost{}
}

func (m *MockHost) PaneShown(id string) {
	m.Called(id)
}

func (m *MockHost) PaneHidden(id string) {
	m.Called(id)
}

func (m *MockHost) PaneMoved(id string, r wm.Rect) {
	m.Called(id, r)
}

func (m *MockHost) PaneTierChanged(id string, t wm.Tier) {
	m.Called(id, t)
}

func (m *MockHost) PaneClosed(id string) {
	m.Called(id)
}

func (m *MockHost) OverflowChanged(s wm.OverflowSnapshot) {
	m.Called(s)
}

// RecordingHost is a no-assertion host that remembers everything it was
// told, in order. Useful when a test only cares about the final state.
type RecordingHost struct {
	Shown    []string
	Hidden   []string
	Moved    map[string]wm.Rect
	Tiers    map[string]wm.Tier
	Closed   []string
	Overflow []wm.OverflowSnapshot
}

var _ wm.Host = (*RecordingHost)(nil)

func NewRecordingHost() *RecordingHost {
	return &RecordingHost{
		Moved: make(map[string]wm.Rect),
		Tiers: make(map[string]wm.Tier),
	}
}

func (r *RecordingHost) PaneShown(id string)  { r.Shown = append(r.Shown, id) }
func (r *RecordingHost) PaneHidden(id string) { r.Hidden = append(r.Hidden, id) }

func (r *RecordingHost) PaneMoved(id string, rect wm.Rect) { r.Moved[id] = rect }

func (r *RecordingHost) PaneTierChanged(id string, t wm.Tier) { r.Tiers[id] = t }

func (r *RecordingHost) PaneClosed(id string) { r.Closed = append(r.Closed, id) }

func (r *RecordingHost) OverflowChanged(s wm.OverflowSnapshot) {
	r.Overflow = append(r.Overflow, s)
}

// LastOverflow returns the most recent snapshot, or a zero value if none
// was emitted yet.
func (r *RecordingHost) LastOverflow() wm.OverflowSnapshot {
	if len(r.Overflow) == 0 {
		return wm.OverflowSnapshot{}
	}
	return r.Overflow[len(r.Overflow)-1]
}
