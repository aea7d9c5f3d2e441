package wm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRect_RejectsOffendingAxisWholesale(t *testing.T) {
	vp := Size{Width: 500, Height: 400}
	r := Rect{X: 10, Y: 10, Width: 100, Height: 100}

	// Positive delta drags left/up. X would land at -10, so the whole
	// horizontal step is discarded; the vertical step still applies.
	got := moveRect(r, Delta{X: 20, Y: -5}, vp)

	assert.Equal(t, 10, got.X, "offending axis must keep its previous value exactly")
	assert.Equal(t, 15, got.Y)
}

func TestMoveRect_RejectsBeyondRightAndBottom(t *testing.T) {
	vp := Size{Width: 500, Height: 400}
	r := Rect{X: 390, Y: 290, Width: 100, Height: 100}

	got := moveRect(r, Delta{X: -20, Y: -20}, vp)

	assert.Equal(t, r, got)
}

func TestMoveRect_ContainmentHoldsForAnyDeltaSequence(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 300, Y: 200, Width: 180, Height: 120}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		d := Delta{X: rng.Intn(61) - 30, Y: rng.Intn(61) - 30}
		r = moveRect(r, d, vp)

		assert.GreaterOrEqual(t, r.X, 0)
		assert.GreaterOrEqual(t, r.Y, 0)
		assert.LessOrEqual(t, r.X+r.Width, vp.Width)
		assert.LessOrEqual(t, r.Y+r.Height, vp.Height)
	}
}

func TestResizeRect_RightGrowthRejectedAtViewportEdge(t *testing.T) {
	// Pane already hangs past the right edge from an earlier resize.
	// Growing by 50 would need 990+250+6 <= 1000, so the step is a no-op.
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 990, Y: 10, Width: 200, Height: 100}

	got := resizeRect(r, Delta{X: -50}, ZoneRight, vp)

	assert.Equal(t, r, got)
}

func TestResizeRect_RightShrinkAlwaysAllowed(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 990, Y: 10, Width: 200, Height: 100}

	got := resizeRect(r, Delta{X: 30}, ZoneRight, vp)

	assert.Equal(t, 170, got.Width)
	assert.Equal(t, 990, got.X)
}

func TestResizeRect_MinimumSizeFloor(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 50, Y: 50, Width: 6, Height: 6}

	got := resizeRect(r, Delta{X: 2, Y: 2}, ZoneLowerRight, vp)

	// Width/height would land at 4, below the 5px floor.
	assert.Equal(t, r, got)
}

func TestResizeRect_LeftZoneShiftsOrigin(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	got := resizeRect(r, Delta{X: 10}, ZoneLeft, vp)

	assert.Equal(t, 90, got.X)
	assert.Equal(t, 60, got.Width)
	assert.Equal(t, 100, got.Y)
	assert.Equal(t, 50, got.Height)
}

func TestResizeRect_LeftZoneRejectedPastOrigin(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 5, Y: 100, Width: 50, Height: 50}

	got := resizeRect(r, Delta{X: 10}, ZoneLeft, vp)

	assert.Equal(t, r, got)
}

func TestResizeRect_TopZoneSymmetry(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	got := resizeRect(r, Delta{Y: 10}, ZoneTop, vp)

	assert.Equal(t, 90, got.Y)
	assert.Equal(t, 60, got.Height)
}

func TestResizeRect_CornerResolvesAxesIndependently(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 5, Y: 100, Width: 50, Height: 50}

	// Horizontal component rejected (origin would go negative), vertical
	// component still applies.
	got := resizeRect(r, Delta{X: 10, Y: 10}, ZoneUpperLeft, vp)

	assert.Equal(t, 5, got.X)
	assert.Equal(t, 50, got.Width)
	assert.Equal(t, 90, got.Y)
	assert.Equal(t, 60, got.Height)
}

func TestResizeRect_PureEdgeLeavesOtherAxisUntouched(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}
	r := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	got := resizeRect(r, Delta{X: 25, Y: 25}, ZoneBottom, vp)

	assert.Equal(t, 100, got.X)
	assert.Equal(t, 50, got.Width)
	assert.Equal(t, 25, got.Height)
}

func TestFitToViewport_ShrinksWidthToFit(t *testing.T) {
	vp := Size{Width: 400, Height: 400}
	r := Rect{X: 100, Y: 10, Width: 350, Height: 100}

	got := fitToViewport(r, vp)

	assert.Equal(t, 100, got.X)
	assert.Equal(t, vp.Width-100-edgeMargin, got.Width)
}

func TestFitToViewport_ShiftsOriginWhenFloorWouldBreak(t *testing.T) {
	vp := Size{Width: 200, Height: 400}
	r := Rect{X: 198, Y: 10, Width: 50, Height: 100}

	got := fitToViewport(r, vp)

	assert.Equal(t, minPaneWidth, got.Width)
	assert.Equal(t, vp.Width-minPaneWidth-edgeMargin, got.X)
}

func TestFitToViewport_PullsNegativeOrigins(t *testing.T) {
	vp := Size{Width: 400, Height: 400}
	r := Rect{X: -10, Y: -20, Width: 100, Height: 100}

	got := fitToViewport(r, vp)

	assert.Equal(t, 0, got.X)
	assert.Equal(t, 0, got.Y)
}

func TestMaximizedRect_KeepsHandleMarginForResizablePanes(t *testing.T) {
	vp := Size{Width: 1000, Height: 800}

	assert.Equal(t, Rect{Width: 1000 - edgeMargin, Height: 800 - edgeMargin}, maximizedRect(vp, true))
	assert.Equal(t, Rect{Width: 1000, Height: 800}, maximizedRect(vp, false))
}

func TestZone_Decomposition(t *testing.T) {
	cases := []struct {
		zone Zone
		h    horizEdge
		v    vertEdge
	}{
		{ZoneLeft, horizLeft, vertNone},
		{ZoneRight, horizRight, vertNone},
		{ZoneTop, horizNone, vertTop},
		{ZoneBottom, horizNone, vertBottom},
		{ZoneUpperLeft, horizLeft, vertTop},
		{ZoneUpperRight, horizRight, vertTop},
		{ZoneLowerLeft, horizLeft, vertBottom},
		{ZoneLowerRight, horizRight, vertBottom},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.h, tc.zone.horizontal(), tc.zone.String())
		assert.Equal(t, tc.v, tc.zone.vertical(), tc.zone.String())
	}
}
