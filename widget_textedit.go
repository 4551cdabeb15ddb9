package ui

import "github.com/frameloop/ui/geom"

// TextEdit shows a single-line editable text field bound to text.
// Returns a response whose Changed reports edits this frame.
//
//	resp := ctx.TextEdit("name", &cfg.Name, ui.WithHint("your name"))
//	if resp.Changed {
//	    save(cfg)
//	}
func (ctx *Context) TextEdit(source any, text *string, opts ...Option) Response {
	return ctx.textEditImpl(source, text, true, applyOptions(opts))
}

// MultilineTextEdit is TextEdit with line breaks, wrapping and a Tab
// that inserts instead of moving focus.
func (ctx *Context) MultilineTextEdit(source any, text *string, opts ...Option) Response {
	return ctx.textEditImpl(source, text, false, applyOptions(opts))
}

func (ctx *Context) textEditImpl(source any, text *string, singleLine bool, o options) Response {
	id := ctx.MakeId(source)
	mem := ctx.mem
	state := MemoryGetOr(mem, id, TextEditState{})
	style := ctx.style
	pad := style.Spacing.ButtonPadding

	password := GetOpt(o, OptPassword)
	charLimit := GetOpt(o, OptCharLimit)
	hint := GetOpt(o, OptHint)

	width := GetOpt(o, OptWidth)
	if width <= 0 {
		width = min(style.Spacing.TextEditWidth, ctx.AvailableWidth())
	}
	innerWidth := width - 2*pad.X

	format := TextFormat{Size: style.Text.Body}
	wrapWidth := float32(0)
	if !singleLine {
		wrapWidth = innerWidth
	}
	relayout := func(s string) *Galley {
		return ctx.layouter.Layout(displayText(s, password), format, wrapWidth)
	}
	galley := relayout(*text)

	lineH := style.Text.Body
	if len(galley.Rows) > 0 {
		lineH = galley.Rows[0].Rect.Height()
	}
	rows := GetOpt(o, OptDesiredRows)
	if rows <= 0 {
		rows = 1
		if !singleLine {
			rows = 4
		}
	}
	height := float32(rows)*lineH + 2*pad.Y
	if !singleLine && galley.Size.Y+2*pad.Y > height {
		height = galley.Size.Y + 2*pad.Y
	}

	rect := ctx.AllocateSpace(geom.V(width, height))
	inner := rect.Shrink2(pad)

	mem.InterestedInFocus(id)
	resp := ctx.Interact(rect, id, SenseClickAndDrag())

	if resp.Hovered {
		ctx.setCursor(CursorText)
	}

	cursorAt := func() (CCursor, bool) {
		if resp.InteractPointerPos == nil {
			return CCursor{}, false
		}
		return galley.CursorFromPos(resp.InteractPointerPos.Sub(inner.Min)), true
	}

	if resp.Enabled {
		switch {
		case resp.TripleClicked():
			if c, ok := cursorAt(); ok {
				state.SetCursorRange(selectLineAt(*text, c.Index))
			}
		case resp.DoubleClicked():
			if c, ok := cursorAt(); ok {
				state.SetCursorRange(selectWordAt(*text, c.Index))
			}
		case resp.Clicked():
			mem.RequestFocus(id)
			if c, ok := cursorAt(); ok {
				state.SetCursorRange(CCursorRangeSingle(c))
			}
		case resp.DragStarted():
			mem.RequestFocus(id)
			if c, ok := cursorAt(); ok {
				r := state.CursorRange(*text)
				r.Primary = c
				r.Secondary = c
				state.SetCursorRange(r)
			}
		case resp.Dragged():
			if c, ok := cursorAt(); ok {
				r := state.CursorRange(*text)
				r.Primary = c
				state.SetCursorRange(r)
			}
		}
	}

	focused := mem.HasFocus(id)
	if focused && resp.Enabled {
		if !singleLine {
			mem.LockFocus(id, true)
		}
		if ctx.input.ConsumeKey(Modifiers{}, KeyEscape) {
			mem.SurrenderFocus(id)
			focused = false
		}
	}

	var crange CCursorRange
	if focused && resp.Enabled {
		pageRows := max(1, int((inner.Height())/max(lineH, 1)))
		newText, r, changed, committed := ctx.textEditEvents(state, *text, galley, singleLine, charLimit, pageRows, relayout)
		crange = r
		if changed {
			*text = newText
			galley = relayout(*text)
			resp.MarkChanged()
		}
		if committed {
			mem.SurrenderFocus(id)
		}
	} else {
		crange = state.CursorRange(*text)
	}

	ctx.paintTextEdit(resp, inner, galley, crange, hint, focused)
	return resp
}

func (ctx *Context) paintTextEdit(resp Response, inner geom.Rect, galley *Galley, crange CCursorRange, hint string, focused bool) {
	style := ctx.style
	visuals := &style.Visuals
	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()

	painter.RectFilled(resp.Rect, wv.Rounding, visuals.ExtremeBgColor)
	painter.RectStroke(resp.Rect, wv.Rounding, wv.BgStrokeWidth, wv.BgStroke)

	origin := inner.Min

	if focused && !crange.IsEmpty() {
		for _, sel := range selectionRects(galley, crange) {
			painter.RectFilled(sel.Translate(origin.ToVec()), 0, visuals.SelectionBg)
		}
	}

	if galley.CharCount() == 0 && hint != "" {
		hintG := ctx.layouter.Layout(hint, TextFormat{Size: style.Text.Body}, -1)
		painter.Galley(origin, hintG, visuals.Widgets.Disabled.FgColor)
	} else {
		painter.Galley(origin, galley, wv.FgColor)
	}

	if focused && resp.Enabled {
		caret := galley.PosFromCursor(crange.Primary).Translate(origin.ToVec())
		caret.Max.X = caret.Min.X + 1
		painter.RectFilled(caret, 0, visuals.TextCursor)
		ctx.setIMERect(caret)
		if ctx.currentScrollScope() != nil {
			ctx.ScrollToRect(caret.Expand(4))
		}
	}
}

// selectionRects returns the highlight rects of a selection, one per
// touched row, in galley-local coordinates.
func selectionRects(galley *Galley, crange CCursorRange) []geom.Rect {
	sorted := crange.Sorted()
	lo, hi := sorted[0], sorted[1]
	loRow := galley.rowForCursor(lo)
	hiRow := galley.rowForCursor(hi)

	var out []geom.Rect
	for ri := loRow; ri <= hiRow && ri < len(galley.Rows); ri++ {
		row := &galley.Rows[ri]
		r := row.Rect
		if ri == loRow {
			r.Min.X = galley.PosFromCursor(lo).Min.X
		}
		if ri == hiRow {
			r.Max.X = galley.PosFromCursor(hi).Min.X
		} else {
			// Newline-terminated rows show a half-character stub so the
			// break is visibly selected.
			r.Max.X = row.Rect.Max.X + row.Rect.Height()/4
		}
		if r.Max.X > r.Min.X {
			out = append(out, r)
		}
	}
	return out
}
