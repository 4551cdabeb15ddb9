package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frameloop/ui/geom"
)

func TestCheckboxToggles(t *testing.T) {
	h := newHarness()
	checked := false
	var at geom.Pos2
	changed := false
	build := func(ctx *Context) {
		r := ctx.Checkbox("Enable logging", &checked)
		at = r.Rect.Center()
		changed = r.Changed
	}

	h.frame(build)
	assert.False(t, changed)

	h.click(at, build)
	assert.True(t, checked)
	assert.True(t, changed, "the toggling frame reports Changed")

	h.frame(build)
	assert.False(t, changed)

	h.click(at, build)
	assert.False(t, checked)
}

func TestRadioValueSelectsOption(t *testing.T) {
	h := newHarness()
	mode := "fast"
	var slowAt geom.Pos2
	build := func(ctx *Context) {
		RadioValue(ctx, "Fast", &mode, "fast")
		r := RadioValue(ctx, "Slow", &mode, "slow")
		slowAt = r.Rect.Center()
	}

	h.frame(build)
	h.click(slowAt, build)
	assert.Equal(t, "slow", mode)

	// Clicking the selected option keeps it selected.
	h.click(slowAt, build)
	assert.Equal(t, "slow", mode)
}

func TestSliderDragSetsValue(t *testing.T) {
	h := newHarness()
	value := float32(0)
	var track geom.Rect
	build := func(ctx *Context) {
		r := ctx.Slider("Volume", &value, 0, 100, WithWidth(200))
		track = geom.Rect{Min: r.Rect.Min, Max: geom.P(r.Rect.Min.X+200, r.Rect.Max.Y)}
	}

	h.frame(build)
	knobR := h.ctx.Style().Spacing.InteractSize.Y / 3
	x0, x1 := track.Min.X+knobR, track.Max.X-knobR
	mid := geom.P((x0+x1)/2, track.Center().Y)

	h.press(mid)
	h.frame(build)
	assert.InDelta(t, 50, value, 0.5, "pressing the track jumps the knob there")

	h.move(geom.P(x1, mid.Y))
	h.frame(build)
	h.release(geom.P(x1, mid.Y))
	h.frame(build)
	assert.InDelta(t, 100, value, 0.5)

	// Dragging past the end clamps.
	h.press(geom.P(x1+300, mid.Y))
	h.frame(build)
	h.release(geom.P(x1+300, mid.Y))
	h.frame(build)
	assert.InDelta(t, 100, value, 0.5)
}

func TestSliderArrowKeysNudge(t *testing.T) {
	h := newHarness()
	value := float32(50)
	build := func(ctx *Context) {
		ctx.Slider("Volume", &value, 0, 100, WithStep(5))
	}

	h.frame(build)
	h.key(KeyTab, Modifiers{})
	h.frame(build)
	h.key(KeyRight, Modifiers{})
	h.frame(build)
	assert.InDelta(t, 55, value, 0.01)
	h.key(KeyLeft, Modifiers{})
	h.frame(build)
	assert.InDelta(t, 50, value, 0.01)
}

func TestApplyStepSnaps(t *testing.T) {
	assert.Equal(t, float32(15), applyStep(14, 0, 5))
	assert.Equal(t, float32(10), applyStep(12, 0, 5))
	assert.Equal(t, float32(7), applyStep(7.4, 2, 5))
	assert.Equal(t, float32(-5), applyStep(-6, 0, 5))
	assert.Equal(t, float32(3.3), applyStep(3.3, 0, 0), "zero step leaves the value alone")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "42.00", formatValue(42, applyOptions(nil)))
	assert.Equal(t, "42%", formatValue(42.4, applyOptions([]Option{WithFormat("%.0f%%")})))
	assert.Equal(t, "x=1.0s", formatValue(1, applyOptions([]Option{
		WithFormat("%.1f"), WithPrefix("x="), WithSuffix("s"),
	})))
}

func TestCollapsingHeaderTogglesItsBody(t *testing.T) {
	h := newHarness()
	built := false
	var headerAt geom.Pos2
	build := func(ctx *Context) {
		built = false
		top := ctx.CursorPos()
		ctx.CollapsingHeader("Advanced")(func() {
			built = true
		})
		headerAt = geom.P(top.X+40, top.Y+ctx.Style().Spacing.InteractSize.Y/2)
	}

	h.frame(build)
	assert.False(t, built, "closed by default")

	h.click(headerAt, build)
	h.frames(30, build) // let the reveal animation finish
	assert.True(t, built)

	h.click(headerAt, build)
	h.frames(30, build) // body stays until the collapse animation ends
	assert.False(t, built)
}

func TestSeparatorAdvancesTheCursor(t *testing.T) {
	h := newHarness()
	var before, after float32
	h.frame(func(ctx *Context) {
		before = ctx.CursorPos().Y
		ctx.Separator()
		after = ctx.CursorPos().Y
	})
	assert.Greater(t, after, before)
}

func TestDisabledSliderIgnoresInput(t *testing.T) {
	h := newHarness()
	value := float32(25)
	var at geom.Pos2
	build := func(ctx *Context) {
		r := ctx.Slider("Volume", &value, 0, 100, WithDisabled(true))
		at = r.Rect.Center()
	}

	h.frame(build)
	h.press(at)
	h.frame(build)
	h.release(at)
	h.frame(build)
	assert.Equal(t, float32(25), value)
}
