package ui

import "github.com/frameloop/ui/geom"

// ComboBox shows the selected item in a closed box that opens a
// dropdown list. Changed reports a new selection.
//
//	ctx.ComboBox("Theme", &themeIdx, []string{"Dark", "Light"})
func (ctx *Context) ComboBox(label string, selected *int, items []string, opts ...Option) Response {
	o := applyOptions(opts)
	id := ctx.widgetId(label, o)
	style := ctx.style
	mem := ctx.mem

	current := ""
	if *selected >= 0 && *selected < len(items) {
		current = items[*selected]
	}
	galley := ctx.layouter.Layout(current, TextFormat{Size: style.Text.Body}, -1)
	labelG := ctx.layouter.Layout(label, TextFormat{Size: style.Text.Body}, -1)
	pad := style.Spacing.ButtonPadding

	boxW := GetOpt(o, OptWidth)
	if boxW <= 0 {
		boxW = style.Spacing.ComboWidth
	}
	h := max(galley.Size.Y+2*pad.Y, style.Spacing.InteractSize.Y)
	rect := ctx.AllocateSpace(geom.V(boxW+style.Spacing.ItemSpacing.X+labelG.Size.X, h))
	box := geom.Rect{Min: rect.Min, Max: geom.P(rect.Min.X+boxW, rect.Max.Y)}

	enabled := ctx.enabled && !GetOpt(o, OptDisabled)
	mem.InterestedInFocus(id)
	resp := ctx.interact(box, id, SenseClick(), enabled)
	ctx.activateOnKey(&resp)

	popupId := NewId(id, "popup")
	if resp.Clicked() {
		if mem.IsPopupOpen(popupId) {
			mem.ClosePopup(popupId)
		} else {
			mem.OpenPopup(popupId)
		}
	}

	// Closed box.
	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()
	painter.RectFilled(box, wv.Rounding, wv.BgFill)
	painter.RectStroke(box, wv.Rounding, wv.BgStrokeWidth, wv.BgStroke)
	painter.Galley(geom.P(box.Min.X+pad.X, box.Center().Y-galley.Size.Y/2), galley, wv.FgColor)
	arrow := geom.P(box.Max.X-pad.X-style.Spacing.IconWidth/2, box.Center().Y)
	paintOpenTriangle(painter, arrow, style.Spacing.IconWidth*0.3, 1, wv.FgColor)
	painter.Galley(geom.P(box.Max.X+style.Spacing.ItemSpacing.X, rect.Center().Y-labelG.Size.Y/2), labelG, wv.FgColor)

	if !mem.IsPopupOpen(popupId) {
		return resp
	}

	// Dropdown list in a Foreground area under the box.
	maxH := GetOpt(o, OptMaxDropdownHeight)
	if maxH <= 0 {
		maxH = 240
	}
	areaSrc := NewId(id, "combo-area")
	ctx.BeginArea(areaSrc, AtPos(geom.P(box.Min.X, box.Max.Y)), OnOrder(OrderForeground))
	reg := ctx.curRegion()
	reg.avail.Max.X = reg.avail.Min.X + boxW
	listPainter := ctx.Painter()
	bg := listPainter.Reserve()

	clickedItem := -1
	ctx.ScrollArea("list", WithMaxHeight(maxH))(func() {
		for i, item := range items {
			ctx.PushId(i)
			ir := ctx.menuEntry(item, comboMark(i == *selected))
			ctx.PopId()
			if ir.Clicked() {
				clickedItem = i
			}
		}
	})
	ctx.EndArea()

	var listRect geom.Rect
	if r, ok := mem.AreaRect(ctx.MakeId(areaSrc)); ok {
		listRect = r
	}
	visuals := &style.Visuals
	listPainter.SetRectFilled(bg, listRect, visuals.MenuRounding, visuals.WindowFill)
	listPainter.RectStroke(listRect, visuals.MenuRounding, visuals.WindowStrokeWidth, visuals.WindowStroke)

	if clickedItem >= 0 {
		if clickedItem != *selected {
			*selected = clickedItem
			resp.MarkChanged()
		}
		mem.ClosePopup(popupId)
		ctx.RequestRepaint()
	}

	if ctx.input.ConsumeKey(Modifiers{}, KeyEscape) {
		mem.ClosePopup(popupId)
	}
	if ctx.input.Pointer.AnyPressed() {
		if p, ok := ctx.input.Pointer.InteractPos(); ok {
			if !box.Contains(p) && !listRect.Contains(p) {
				mem.ClosePopup(popupId)
			}
		}
	}
	return resp
}

func comboMark(selected bool) string {
	if selected {
		return "✓"
	}
	return ""
}
