package ui

import "github.com/frameloop/ui/geom"

// GridState persists the track sizes of a grid across frames.
type GridState struct {
	ColWidths  []float32
	RowHeights []float32
}

// Grid is the builder handed to a grid body. Place one cell at a time
// with Cell and advance with EndRow.
type Grid struct {
	ctx    *Context
	id     Id
	state  *GridState
	origin geom.Pos2

	spacing geom.Vec2
	minColW float32
	minRowH float32
	striped bool
	rowBase int

	// Track sizes start from last frame's and only grow, so cells align
	// across rows. Shrinking requires a fresh id.
	prevCols []float32
	prevRows []float32
	cols     []float32
	rows     []float32

	row, col int
	curRowH  float32
	changed  bool
}

// Grid lays cells out on a column/row lattice where every cell in a
// column shares the column's width. Track sizes converge within one
// frame of a content change.
//
//	ctx.Grid("settings", ui.Striped())(func(g *ui.Grid) {
//	    ctx.Label("Name")
//	    g.Cell(func() { ctx.Label("value") })
//	    g.EndRow()
//	})
func (ctx *Context) Grid(source any, opts ...Option) func(func(*Grid)) {
	o := applyOptions(opts)
	return func(body func(*Grid)) {
		g := ctx.beginGrid(source, o)
		body(g)
		ctx.endGrid(g)
	}
}

func (ctx *Context) beginGrid(source any, o options) *Grid {
	id := ctx.MakeId(source)
	state := MemoryGetOr(ctx.mem, id, GridState{})

	spacing := GetOpt(o, OptSpacing)
	if spacing.X < 0 {
		spacing.X = ctx.style.Spacing.ItemSpacing.X
	}
	if spacing.Y < 0 {
		spacing.Y = ctx.style.Spacing.ItemSpacing.Y
	}

	g := &Grid{
		ctx:      ctx,
		id:       id,
		state:    state,
		origin:   ctx.CursorPos(),
		spacing:  spacing,
		minColW:  GetOpt(o, OptMinColWidth),
		minRowH:  GetOpt(o, OptMinRowHeight),
		striped:  GetOpt(o, OptStriped),
		rowBase:  GetOpt(o, OptStartRow),
		prevCols: append([]float32(nil), state.ColWidths...),
		prevRows: append([]float32(nil), state.RowHeights...),
	}
	g.cols = append([]float32(nil), g.prevCols...)
	ctx.PushId(id)
	g.maybeStripe()
	return g
}

// maybeStripe paints the current row's background before its content,
// sized with last frame's row height since this frame's is not known
// yet. New rows get their stripe one frame late.
func (g *Grid) maybeStripe() {
	if !g.striped || (g.row+g.rowBase)%2 == 0 {
		return
	}
	if g.row >= len(g.prevRows) {
		return
	}
	w := g.totalWidth(g.prevCols)
	if w <= 0 {
		return
	}
	y := g.rowTop(g.row)
	rect := geom.RectFromMinSize(geom.P(g.origin.X, y), geom.V(w, g.prevRows[g.row]))
	g.ctx.Painter().RectFilled(rect.Expand2(g.spacing.Scale(0.5)), 0, g.ctx.style.Visuals.FaintBgColor)
}

func (g *Grid) totalWidth(cols []float32) float32 {
	var w float32
	for i, c := range cols {
		if i > 0 {
			w += g.spacing.X
		}
		w += c
	}
	return w
}

// rowTop is the y of row r using this frame's finished rows.
func (g *Grid) rowTop(r int) float32 {
	y := g.origin.Y
	for i := 0; i < r && i < len(g.rows); i++ {
		y += g.rows[i] + g.spacing.Y
	}
	return y
}

// colLeft is the x of column c using the grown track widths.
func (g *Grid) colLeft(c int) float32 {
	x := g.origin.X
	for i := 0; i < c && i < len(g.cols); i++ {
		x += g.cols[i] + g.spacing.X
	}
	return x
}

// Cell lays one cell's contents at the current column and advances to
// the next column.
func (g *Grid) Cell(contents func()) {
	ctx := g.ctx
	for len(g.cols) <= g.col {
		g.cols = append(g.cols, g.minColW)
	}

	pos := geom.P(g.colLeft(g.col), g.rowTop(g.row))
	avail := geom.RectFromMinSize(pos, geom.V(max(g.cols[g.col], g.minColW), geom.Inf))
	ctx.PushId(NewId(g.id, [2]any{g.row, g.col}))
	ctx.pushRegionClipped(avail, ctx.clipRect(), layoutVertical)
	contents()
	used := ctx.popRegion()
	ctx.PopId()

	w := max(used.Width(), g.minColW)
	if w > g.cols[g.col] {
		g.cols[g.col] = w
		g.changed = true
	}
	g.curRowH = max(g.curRowH, used.Height(), g.minRowH)
	g.col++
}

// EndRow finishes the current row and moves to the next.
func (g *Grid) EndRow() {
	g.rows = append(g.rows, g.curRowH)
	if g.row < len(g.prevRows) && g.prevRows[g.row] > g.curRowH {
		// Monotonic within the frame pair: keep the larger height.
		g.rows[g.row] = g.prevRows[g.row]
	}
	g.row++
	g.col = 0
	g.curRowH = 0
	g.maybeStripe()
}

func (ctx *Context) endGrid(g *Grid) {
	if g.col > 0 {
		g.EndRow()
	}
	ctx.PopId()

	var h float32
	for i, r := range g.rows {
		if i > 0 {
			h += g.spacing.Y
		}
		h += r
	}
	total := geom.RectFromMinSize(g.origin, geom.V(g.totalWidth(g.cols), h))
	ctx.advanceCursor(total)

	if g.changed || len(g.rows) != len(g.prevRows) || !equalTracks(g.rows, g.prevRows) {
		ctx.RequestRepaint()
	}
	g.state.ColWidths = g.cols
	g.state.RowHeights = g.rows
}

func equalTracks(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
