package ui

import (
	"github.com/frameloop/ui/geom"
)

// harness drives a Context frame by frame with synthesized input, the way
// a host would. Events queued between frames land in the next frame's
// batch.
type harness struct {
	ctx    *Context
	clock  float64
	screen geom.Rect
	queue  []Event
	mods   Modifiers
}

func newHarness(opts ...ContextOption) *harness {
	return &harness{
		ctx:    NewContext(opts...),
		screen: geom.RectFromMinSize(geom.Pos2Zero, geom.V(800, 600)),
	}
}

func (h *harness) push(events ...Event) {
	h.queue = append(h.queue, events...)
}

func (h *harness) frame(build func(ctx *Context)) FullOutput {
	h.clock += 1.0 / 60.0
	raw := RawInput{
		Events:         h.queue,
		ScreenRect:     h.screen,
		PixelsPerPoint: 1,
		Time:           h.clock,
		Modifiers:      h.mods,
	}
	h.queue = nil
	return h.ctx.Frame(raw, func() { build(h.ctx) })
}

// frames runs n identical frames.
func (h *harness) frames(n int, build func(ctx *Context)) {
	for i := 0; i < n; i++ {
		h.frame(build)
	}
}

func (h *harness) move(pos geom.Pos2) {
	h.push(PointerMovedEvent{Pos: pos})
}

func (h *harness) press(pos geom.Pos2) {
	h.push(PointerButtonEvent{Pos: pos, Button: PointerPrimary, Pressed: true})
}

func (h *harness) release(pos geom.Pos2) {
	h.push(PointerButtonEvent{Pos: pos, Button: PointerPrimary})
}

// click runs a press frame and a release frame at pos. The click lands
// in the release frame, so callers inspect state after this returns.
func (h *harness) click(pos geom.Pos2, build func(ctx *Context)) {
	h.press(pos)
	h.frame(build)
	h.release(pos)
	h.frame(build)
}

func (h *harness) key(k Key, mods Modifiers) {
	h.mods = mods
	h.push(KeyEvent{Key: k, Pressed: true, Modifiers: mods})
}

func (h *harness) typeText(s string) {
	h.push(TextEvent{Text: s})
}

func (h *harness) wheel(delta geom.Vec2) {
	h.push(MouseWheelEvent{Unit: UnitPoint, Delta: delta, Phase: PhaseMove})
}
