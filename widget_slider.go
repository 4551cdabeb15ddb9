package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frameloop/ui/geom"
)

// formatValue renders a slider or drag value with the configured
// format, prefix and suffix.
func formatValue(v float32, o options) string {
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.2f"
	}
	return GetOpt(o, OptPrefix) + fmt.Sprintf(format, v) + GetOpt(o, OptSuffix)
}

// applyStep snaps v to multiples of step (counted from lo).
func applyStep(v, lo, step float32) float32 {
	if step <= 0 {
		return v
	}
	steps := (v - lo) / step
	return lo + step*float32(int(steps+0.5*sign32(steps)))
}

func sign32(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// Slider drags value across [lo, hi]. Arrow keys nudge it while the
// slider has focus. Changed reports value edits.
//
//	ctx.Slider("Volume", &vol, 0, 1, ui.WithFormat("%.0f%%"))
func (ctx *Context) Slider(label string, value *float32, lo, hi float32, opts ...Option) Response {
	o := applyOptions(opts)
	id := ctx.widgetId(label, o)
	style := ctx.style

	sliderW := GetOpt(o, OptWidth)
	if sliderW <= 0 {
		sliderW = style.Spacing.SliderWidth
	}
	h := style.Spacing.InteractSize.Y
	valueText := formatValue(*value, o)
	galley := ctx.layouter.Layout(valueText+"  "+label, TextFormat{Size: style.Text.Body}, -1)

	rect := ctx.AllocateSpace(geom.V(sliderW+style.Spacing.ItemSpacing.X+galley.Size.X, max(h, galley.Size.Y)))
	track := geom.Rect{
		Min: geom.P(rect.Min.X, rect.Min.Y),
		Max: geom.P(rect.Min.X+sliderW, rect.Max.Y),
	}

	enabled := ctx.enabled && !GetOpt(o, OptDisabled)
	ctx.mem.InterestedInFocus(id)
	resp := ctx.interact(track, id, SenseClickAndDrag(), enabled)

	step := GetOpt(o, OptStep)
	old := *value

	knobR := h / 3
	x0, x1 := track.Min.X+knobR, track.Max.X-knobR
	if resp.Enabled && (resp.Dragged() || resp.IsPointerButtonDownOn) && resp.InteractPointerPos != nil {
		*value = geom.RemapClamp(resp.InteractPointerPos.X, x0, x1, lo, hi)
	}
	if resp.Enabled && resp.HasFocus {
		nudge := step
		if nudge <= 0 {
			nudge = (hi - lo) / 100
		}
		if ctx.input.ConsumeKey(Modifiers{}, KeyLeft) {
			*value -= nudge
		}
		if ctx.input.ConsumeKey(Modifiers{}, KeyRight) {
			*value += nudge
		}
	}
	*value = applyStep(*value, lo, step)
	if GetOpt(o, OptClampToRange) {
		*value = geom.Clamp(*value, min(lo, hi), max(lo, hi))
	}
	if *value != old {
		resp.MarkChanged()
		ctx.RequestRepaint()
	}

	// Paint: rail, filled part, knob, then value + label text.
	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()
	railH := float32(4)
	rail := geom.Rect{
		Min: geom.P(track.Min.X, track.Center().Y-railH/2),
		Max: geom.P(track.Max.X, track.Center().Y+railH/2),
	}
	painter.RectFilled(rail, railH/2, style.Visuals.ExtremeBgColor)
	knobX := geom.RemapClamp(*value, lo, hi, x0, x1)
	fill := rail
	fill.Max.X = knobX
	painter.RectFilled(fill, railH/2, wv.BgStroke)
	painter.CircleFilled(geom.P(knobX, track.Center().Y), knobR, wv.FgColor)

	textPos := geom.P(track.Max.X+style.Spacing.ItemSpacing.X, rect.Center().Y-galley.Size.Y/2)
	painter.Galley(textPos, galley, wv.FgColor)
	return resp
}

// dragValueState holds the inline-edit mode of a DragValue.
type dragValueState struct {
	Editing bool
	Buffer  string
}

// DragValue shows a numeric value that adjusts when dragged
// horizontally and turns into an inline text edit on double-click.
func (ctx *Context) DragValue(source any, value *float32, opts ...Option) Response {
	o := applyOptions(opts)
	id := ctx.MakeId(source)
	state := MemoryGetOr(ctx.mem, id, dragValueState{})
	style := ctx.style

	editSrc := NewId(id, "edit")
	editId := ctx.MakeId(editSrc)

	if state.Editing {
		commit := false
		for _, ev := range ctx.input.Events() {
			if ke, ok := ev.(KeyEvent); ok && ke.Pressed && ke.Key == KeyEnter {
				commit = true
			}
		}
		resp := ctx.TextEdit(editSrc, &state.Buffer)
		if commit || !ctx.mem.HasFocus(editId) {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(state.Buffer), 32); err == nil {
				*value = float32(parsed)
				resp.MarkChanged()
			}
			state.Editing = false
			ctx.mem.SurrenderFocus(editId)
			ctx.RequestRepaint()
		}
		return resp
	}

	speed := GetOpt(o, OptDragSpeed)
	if speed <= 0 {
		speed = 1
	}
	rng := GetOpt(o, OptRange)

	label := formatValue(*value, o)
	galley := ctx.layouter.Layout(label, TextFormat{Size: style.Text.Body}, -1)
	pad := style.Spacing.ButtonPadding
	size := galley.Size.Add(pad.Scale(2)).Max(style.Spacing.InteractSize)
	rect := ctx.AllocateSpace(size)

	enabled := ctx.enabled && !GetOpt(o, OptDisabled)
	ctx.mem.InterestedInFocus(id)
	resp := ctx.interact(rect, id, SenseClickAndDrag(), enabled)

	if resp.Enabled {
		if resp.DoubleClicked() {
			state.Editing = true
			state.Buffer = strconv.FormatFloat(float64(*value), 'g', -1, 32)
			ctx.mem.RequestFocus(editId)
			ctx.RequestRepaint()
		} else if resp.Dragged() {
			old := *value
			*value += resp.DragDelta.X * speed
			if rng.HasRange && GetOpt(o, OptClampToRange) {
				*value = geom.Clamp(*value, rng.Min, rng.Max)
			}
			if *value != old {
				resp.MarkChanged()
				ctx.RequestRepaint()
			}
		}
	}
	if resp.Hovered {
		ctx.setCursor(CursorResizeHorizontal)
	}

	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()
	painter.RectFilled(rect, wv.Rounding, wv.BgFill)
	painter.RectStroke(rect, wv.Rounding, wv.BgStrokeWidth, wv.BgStroke)
	painter.Galley(rect.Center().SubVec(galley.Size.Scale(0.5)), galley, wv.FgColor)
	return resp
}
