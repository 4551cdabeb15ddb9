package ui

import "github.com/frameloop/ui/geom"

// layoutDir is the main axis of a layout region.
type layoutDir uint8

const (
	layoutVertical   layoutDir = iota // widgets stack top to bottom
	layoutHorizontal                  // widgets line up left to right
)

// region is one level of the layout stack: a cursor walking through an
// available rectangle, tracking the bounds of everything allocated so
// far. Containers push a region around their content and read the used
// bounds back when they pop it; that measured size is what feeds the
// grow-to-content state machines.
type region struct {
	dir     layoutDir
	avail   geom.Rect // may extend to +Inf on the open axes
	cursor  geom.Pos2
	used    geom.Rect // nothing-rect until the first allocation
	clip    geom.Rect // screen space
	spacing geom.Vec2
}

func (ctx *Context) curRegion() *region {
	return &ctx.regionStack[len(ctx.regionStack)-1]
}

// pushRegion opens a region over avail, inheriting the current clip.
func (ctx *Context) pushRegion(avail geom.Rect, dir layoutDir) {
	clip := avail
	if len(ctx.regionStack) > 0 {
		clip = ctx.clipRect()
	} else if !clip.IsFinite() {
		clip = ctx.input.ScreenRect
	}
	ctx.pushRegionClipped(avail, clip, dir)
}

// pushRegionClipped opens a region with an explicit clip rectangle,
// which is what scrolling and resizable containers use.
func (ctx *Context) pushRegionClipped(avail, clip geom.Rect, dir layoutDir) {
	ctx.regionStack = append(ctx.regionStack, region{
		dir:     dir,
		avail:   avail,
		cursor:  avail.Min,
		used:    geom.RectNothing(),
		clip:    clip,
		spacing: ctx.style.Spacing.ItemSpacing,
	})
}

// popRegion closes the current region and returns the rect its content
// actually occupied. An empty region reports a zero-size rect at its
// origin.
func (ctx *Context) popRegion() geom.Rect {
	n := len(ctx.regionStack)
	if n == 0 {
		debugPanic("popRegion on empty layout stack")
		return geom.Rect{}
	}
	r := ctx.regionStack[n-1]
	ctx.regionStack = ctx.regionStack[:n-1]
	if r.used.IsNegative() {
		return geom.RectFromMinSize(r.avail.Min, geom.Vec2Zero)
	}
	return r.used
}

// clipRect returns the clip rectangle painting and hit tests honor.
func (ctx *Context) clipRect() geom.Rect {
	if len(ctx.regionStack) == 0 {
		return ctx.input.ScreenRect
	}
	return ctx.curRegion().clip
}

// AllocateSpace claims a rect of the given size at the cursor, advances
// the cursor along the region's main axis and returns the claimed rect.
// This is the primitive every widget builds on.
func (ctx *Context) AllocateSpace(size geom.Vec2) geom.Rect {
	r := ctx.curRegion()
	rect := geom.RectFromMinSize(r.cursor, size)
	ctx.advanceCursor(rect)
	return rect
}

// AllocateExact marks an explicitly placed rect as used without moving
// the cursor. Overlays and manually positioned children use it so their
// bounds still count toward the container's content size.
func (ctx *Context) AllocateExact(rect geom.Rect) {
	r := ctx.curRegion()
	r.used = r.used.Union(rect)
}

func (ctx *Context) advanceCursor(rect geom.Rect) {
	r := ctx.curRegion()
	r.used = r.used.Union(rect)
	switch r.dir {
	case layoutHorizontal:
		r.cursor.X = rect.Max.X + r.spacing.X
	default:
		r.cursor.Y = rect.Max.Y + r.spacing.Y
	}
}

// CursorPos returns where the next widget will be placed.
func (ctx *Context) CursorPos() geom.Pos2 {
	return ctx.curRegion().cursor
}

// AvailableRect returns the space from the cursor to the region's far
// corner. The result may extend to +Inf inside unbounded containers.
func (ctx *Context) AvailableRect() geom.Rect {
	r := ctx.curRegion()
	return geom.RectFromMinMax(r.cursor, r.avail.Max)
}

// AvailableSize returns the size of AvailableRect.
func (ctx *Context) AvailableSize() geom.Vec2 {
	return ctx.AvailableRect().Size()
}

// AvailableWidth returns the width left in the current region.
func (ctx *Context) AvailableWidth() float32 {
	return ctx.AvailableRect().Width()
}

// AddSpace leaves a gap of v points along the main axis.
func (ctx *Context) AddSpace(v float32) {
	r := ctx.curRegion()
	if r.dir == layoutHorizontal {
		r.cursor.X += v
	} else {
		r.cursor.Y += v
	}
}

// Horizontal lays its contents out left to right, then claims the
// combined bounds as one item in the surrounding region.
//
//	ctx.Horizontal(func() {
//	    ctx.Label("Name:")
//	    ctx.TextEdit("name", &name)
//	})
func (ctx *Context) Horizontal(contents func()) {
	ctx.subRegion(layoutHorizontal, contents)
}

// Vertical lays its contents out top to bottom as one item in the
// surrounding region. Useful to stack widgets inside a Horizontal.
func (ctx *Context) Vertical(contents func()) {
	ctx.subRegion(layoutVertical, contents)
}

func (ctx *Context) subRegion(dir layoutDir, contents func()) {
	parent := ctx.curRegion()
	avail := geom.RectFromMinMax(parent.cursor, parent.avail.Max)
	ctx.pushRegion(avail, dir)
	contents()
	used := ctx.popRegion()
	ctx.advanceCursor(used)
}

// Indented shifts its contents right by the style indent, the way
// collapsing headers indent their body.
func (ctx *Context) Indented(contents func()) {
	parent := ctx.curRegion()
	indent := ctx.style.Spacing.Indent
	avail := geom.RectFromMinMax(
		geom.P(parent.cursor.X+indent, parent.cursor.Y),
		parent.avail.Max,
	)
	ctx.pushRegion(avail, layoutVertical)
	contents()
	used := ctx.popRegion()
	// The indent itself counts toward the parent's width.
	used.Min.X -= indent
	ctx.advanceCursor(used)
}
