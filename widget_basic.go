package ui

import "github.com/frameloop/ui/geom"

// Label shows non-editable text, wrapped to the available width.
func (ctx *Context) Label(text string) Response {
	return ctx.labelImpl(text, ctx.style.Text.Body)
}

// Heading is a Label at the heading text size.
func (ctx *Context) Heading(text string) Response {
	return ctx.labelImpl(text, ctx.style.Text.Heading)
}

// Monospace is a Label at the monospace text size.
func (ctx *Context) Monospace(text string) Response {
	return ctx.labelImpl(text, ctx.style.Text.Monospace)
}

func (ctx *Context) labelImpl(text string, size float32) Response {
	galley := ctx.layouter.Layout(text, TextFormat{Size: size}, ctx.AvailableWidth())
	rect := ctx.AllocateSpace(galley.Size)
	resp := ctx.Interact(rect, ctx.MakeId(text), SenseHover())
	ctx.Painter().Galley(rect.Min, galley, ctx.style.Visuals.Widgets.Inactive.FgColor)
	return resp
}

// Button shows a clickable button.
//
//	if ctx.Button("Save").Clicked() {
//	    save()
//	}
func (ctx *Context) Button(label string, opts ...Option) Response {
	return ctx.buttonImpl(label, ctx.style.Spacing.ButtonPadding, applyOptions(opts))
}

// SmallButton is a Button with minimal padding, for toolbars and rows.
func (ctx *Context) SmallButton(label string, opts ...Option) Response {
	return ctx.buttonImpl(label, geom.V(2, 0), applyOptions(opts))
}

func (ctx *Context) buttonImpl(label string, pad geom.Vec2, o options) Response {
	id := ctx.widgetId(label, o)
	galley := ctx.layouter.Layout(label, TextFormat{Size: ctx.style.Text.Button}, -1)

	size := galley.Size.Add(pad.Scale(2)).Max(ctx.style.Spacing.InteractSize)
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	rect := ctx.AllocateSpace(size)

	enabled := ctx.enabled && !GetOpt(o, OptDisabled)
	ctx.mem.InterestedInFocus(id)
	resp := ctx.interact(rect, id, SenseClick(), enabled)
	ctx.activateOnKey(&resp)

	wv := ctx.style.InteractVisuals(resp)
	painter := ctx.Painter()
	painter.RectFilled(rect, wv.Rounding, wv.BgFill)
	painter.RectStroke(rect, wv.Rounding, wv.BgStrokeWidth, wv.BgStroke)
	textPos := rect.Center().SubVec(galley.Size.Scale(0.5))
	painter.Galley(textPos, galley, wv.FgColor)
	return resp
}

// activateOnKey turns Enter or Space into a click while focused.
func (ctx *Context) activateOnKey(resp *Response) {
	if !resp.Enabled || !resp.HasFocus {
		return
	}
	if ctx.input.ConsumeKey(Modifiers{}, KeyEnter) || ctx.input.ConsumeKey(Modifiers{}, KeySpace) {
		resp.clicked[PointerPrimary] = true
	}
}

// widgetId derives the widget id from an explicit WithID option or the
// label.
func (ctx *Context) widgetId(label string, o options) Id {
	if explicit := GetOpt(o, OptID); explicit != "" {
		return ctx.MakeId(explicit)
	}
	return ctx.MakeId(label)
}

// Checkbox toggles value on click. Changed reports the toggle.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) Response {
	o := applyOptions(opts)
	id := ctx.widgetId(label, o)
	style := ctx.style
	galley := ctx.layouter.Layout(label, TextFormat{Size: style.Text.Body}, -1)

	boxSize := style.Spacing.IconWidth
	size := geom.V(
		boxSize+style.Spacing.IconSpacing+galley.Size.X,
		max(boxSize, galley.Size.Y),
	).Max(style.Spacing.InteractSize)
	rect := ctx.AllocateSpace(size)

	enabled := ctx.enabled && !GetOpt(o, OptDisabled)
	ctx.mem.InterestedInFocus(id)
	resp := ctx.interact(rect, id, SenseClick(), enabled)
	ctx.activateOnKey(&resp)
	if resp.Clicked() {
		*value = !*value
		resp.MarkChanged()
	}

	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()
	box := geom.RectFromCenterSize(
		geom.P(rect.Min.X+boxSize/2, rect.Center().Y),
		geom.Splat(boxSize),
	)
	painter.RectFilled(box, wv.Rounding, wv.BgFill)
	painter.RectStroke(box, wv.Rounding, wv.BgStrokeWidth, wv.BgStroke)
	if *value {
		// Check mark.
		c := box.Center()
		w := boxSize * 0.3
		painter.Line(geom.P(c.X-w, c.Y), geom.P(c.X-w/4, c.Y+w*0.75), 2, wv.FgColor)
		painter.Line(geom.P(c.X-w/4, c.Y+w*0.75), geom.P(c.X+w, c.Y-w*0.6), 2, wv.FgColor)
	}
	textPos := geom.P(box.Max.X+style.Spacing.IconSpacing, rect.Center().Y-galley.Size.Y/2)
	painter.Galley(textPos, galley, wv.FgColor)
	return resp
}

// RadioButton shows a radio mark that reports clicks; selection state is
// the caller's. See RadioValue for the common pattern.
func (ctx *Context) RadioButton(label string, selected bool, opts ...Option) Response {
	o := applyOptions(opts)
	id := ctx.widgetId(label, o)
	style := ctx.style
	galley := ctx.layouter.Layout(label, TextFormat{Size: style.Text.Body}, -1)

	iconSize := style.Spacing.IconWidth
	size := geom.V(
		iconSize+style.Spacing.IconSpacing+galley.Size.X,
		max(iconSize, galley.Size.Y),
	).Max(style.Spacing.InteractSize)
	rect := ctx.AllocateSpace(size)

	enabled := ctx.enabled && !GetOpt(o, OptDisabled)
	ctx.mem.InterestedInFocus(id)
	resp := ctx.interact(rect, id, SenseClick(), enabled)
	ctx.activateOnKey(&resp)

	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()
	center := geom.P(rect.Min.X+iconSize/2, rect.Center().Y)
	painter.CircleStroke(center, iconSize/2, wv.BgStrokeWidth, wv.BgStroke)
	if selected {
		painter.CircleFilled(center, iconSize/4, wv.FgColor)
	}
	textPos := geom.P(rect.Min.X+iconSize+style.Spacing.IconSpacing, rect.Center().Y-galley.Size.Y/2)
	painter.Galley(textPos, galley, wv.FgColor)
	return resp
}

// RadioValue shows a RadioButton bound to value: selected when *value ==
// option, and clicking stores option. Changed reports the switch.
func RadioValue[T comparable](ctx *Context, label string, value *T, option T) Response {
	resp := ctx.RadioButton(label, *value == option)
	if resp.Clicked() && *value != option {
		*value = option
		resp.MarkChanged()
	}
	return resp
}

// Separator draws a thin horizontal rule across the available width.
func (ctx *Context) Separator() {
	rect := ctx.AllocateSpace(geom.V(ctx.AvailableWidth(), 6))
	y := rect.Center().Y
	ctx.Painter().Line(geom.P(rect.Min.X, y), geom.P(rect.Max.X, y), 1, ctx.style.Visuals.Widgets.Inactive.BgStroke)
}

// Hyperlink shows url as a clickable link that asks the host to open it.
func (ctx *Context) Hyperlink(url string) Response {
	return ctx.HyperlinkTo(url, url)
}

// HyperlinkTo is Hyperlink with a separate visible label.
func (ctx *Context) HyperlinkTo(label, url string) Response {
	style := ctx.style
	galley := ctx.layouter.Layout(label, TextFormat{Size: style.Text.Body}, ctx.AvailableWidth())
	rect := ctx.AllocateSpace(galley.Size)
	resp := ctx.Interact(rect, ctx.MakeId(url), SenseClick())
	color := style.Visuals.HyperlinkColor
	painter := ctx.Painter()
	painter.Galley(rect.Min, galley, color)
	if resp.Hovered {
		painter.Line(geom.P(rect.Min.X, rect.Max.Y), rect.Max, 1, color)
	}
	if resp.Clicked() {
		newTab := ctx.input.Modifiers.Command
		ctx.OpenURL(url, newTab)
	}
	return resp
}
