package ui

import "github.com/frameloop/ui/geom"

// MenuTrigger says what opens a menu node.
type MenuTrigger int

const (
	// MenuTriggerClick opens on a primary click (bar menus).
	MenuTriggerClick MenuTrigger = iota
	// MenuTriggerHover opens on hover (submenus, and bar siblings once
	// one bar menu is open).
	MenuTriggerHover
	// MenuTriggerContext opens on a secondary click at the pointer.
	MenuTriggerContext
)

// menuNil is the null menu handle.
const menuNil int32 = -1

// menuNode is one open menu level. Links are arena indices, not
// pointers, so the whole tree is a pair of flat slices.
type menuNode struct {
	parent     int32
	firstChild int32
	next       int32
	id         Id
	// rect is the popup rect of this level, updated as it renders.
	rect geom.Rect
	// openSub is the currently open child, or menuNil.
	openSub int32
}

// MenuArena allocates menu nodes from a free list. Handles stay valid
// until released; released handles are recycled.
type MenuArena struct {
	nodes []menuNode
	free  []int32
}

// Alloc returns a fresh node handle linked under parent (or a root when
// parent is menuNil).
func (a *MenuArena) Alloc(parent int32, id Id) int32 {
	var h int32
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, menuNode{})
		h = int32(len(a.nodes) - 1)
	}
	a.nodes[h] = menuNode{parent: parent, firstChild: menuNil, next: menuNil, id: id, openSub: menuNil}
	if parent != menuNil {
		a.nodes[h].next = a.nodes[parent].firstChild
		a.nodes[parent].firstChild = h
	}
	return h
}

// Release frees h and its whole subtree.
func (a *MenuArena) Release(h int32) {
	if h == menuNil {
		return
	}
	for c := a.nodes[h].firstChild; c != menuNil; {
		next := a.nodes[c].next
		a.Release(c)
		c = next
	}
	if p := a.nodes[h].parent; p != menuNil {
		a.unlink(p, h)
	}
	a.nodes[h] = menuNode{parent: menuNil, firstChild: menuNil, next: menuNil, openSub: menuNil}
	a.free = append(a.free, h)
}

func (a *MenuArena) unlink(parent, h int32) {
	p := &a.nodes[parent]
	if p.firstChild == h {
		p.firstChild = a.nodes[h].next
		return
	}
	for c := p.firstChild; c != menuNil; c = a.nodes[c].next {
		if a.nodes[c].next == h {
			a.nodes[c].next = a.nodes[h].next
			return
		}
	}
}

// Node returns the node behind h. The pointer is valid until the next
// Alloc.
func (a *MenuArena) Node(h int32) *menuNode {
	return &a.nodes[h]
}

// DeepestOpen follows openSub links from h to the deepest open level.
func (a *MenuArena) DeepestOpen(h int32) int32 {
	for h != menuNil && a.nodes[h].openSub != menuNil {
		h = a.nodes[h].openSub
	}
	return h
}

// ContainsPointer reports whether pos falls in any popup rect along the
// open path starting at h.
func (a *MenuArena) ContainsPointer(h int32, pos geom.Pos2) bool {
	for ; h != menuNil; h = a.nodes[h].openSub {
		if a.nodes[h].rect.Contains(pos) {
			return true
		}
	}
	return false
}

// MenuState is the per-root persisted menu state.
type MenuState struct {
	arena MenuArena
	root  int32
	// openPos anchors context menus at the click position.
	openPos geom.Pos2
	// triggerRect is the rect that opened the root (bar button), part of
	// the click-outside test.
	triggerRect geom.Rect
}

func newMenuState() MenuState {
	return MenuState{root: menuNil}
}

// IsOpen reports whether the root menu is open.
func (s *MenuState) IsOpen() bool { return s.root != menuNil }

func (s *MenuState) open(id Id) {
	if s.root == menuNil {
		s.root = s.arena.Alloc(menuNil, id)
	}
}

func (s *MenuState) close() {
	if s.root != menuNil {
		s.arena.Release(s.root)
		s.root = menuNil
	}
}

// menuScope tracks the open popup level being filled this frame.
type menuScope struct {
	state  *MenuState
	handle int32
}

// menuBarState remembers which bar menu is open so hovering a sibling
// switches to it.
type menuBarState struct {
	openButton Id
}

// MenuBar lays its buttons in a horizontal strip with a background.
func (ctx *Context) MenuBar(contents func()) {
	barId := ctx.MakeId("menu-bar")
	start := ctx.CursorPos()
	ctx.PushId(barId)
	ctx.Horizontal(contents)
	ctx.PopId()
	// Background behind the buttons, painted late but below them would
	// need a reserve; the strip is subtle enough to draw under via the
	// background layer.
	height := ctx.CursorPos().Y - start.Y
	rect := geom.RectFromMinSize(start, geom.V(ctx.AvailableWidth(), height))
	ctx.PainterOn(LayerId{Order: OrderBackground, Id: barId}).
		RectFilled(rect, 0, ctx.style.Visuals.PanelFill)
}

// MenuButton is a bar button that opens a dropdown menu. Once any bar
// menu is open, hovering a sibling switches to it.
//
//	ctx.MenuBar(func() {
//	    ctx.MenuButton("File")(func() {
//	        if ctx.MenuItem("Open").Clicked() { ... }
//	    })
//	})
func (ctx *Context) MenuButton(label string) func(func()) {
	return func(body func()) {
		id := ctx.MakeId(label)
		barId := ctx.CurrentId()
		bar := MemoryGetOr(ctx.mem, barId, menuBarState{})
		state := MemoryGetOr(ctx.mem, id, newMenuState())

		resp := ctx.SmallButton(label)
		switch {
		case resp.Clicked():
			if state.IsOpen() {
				state.close()
				bar.openButton = IdNil
			} else {
				state.open(id)
				bar.openButton = id
			}
		case resp.Hovered && bar.openButton != IdNil && bar.openButton != id:
			// Hover-switch between siblings.
			if other := MemoryGetOr(ctx.mem, bar.openButton, newMenuState()); other.IsOpen() {
				other.close()
			}
			state.open(id)
			bar.openButton = id
		}

		if !state.IsOpen() {
			return
		}
		state.triggerRect = resp.Rect
		pos := geom.P(resp.Rect.Min.X, resp.Rect.Max.Y)
		closed := ctx.showMenuLevel(state, state.root, id, pos, body)
		if closed {
			bar.openButton = IdNil
		}
	}
}

// ContextMenu opens a menu at the pointer when resp is
// secondary-clicked.
func (ctx *Context) ContextMenu(resp Response) func(func()) {
	return func(body func()) {
		id := NewId(resp.Id, "context-menu")
		state := MemoryGetOr(ctx.mem, id, newMenuState())

		if resp.SecondaryClicked() {
			state.close()
			state.open(id)
			if p, ok := ctx.input.Pointer.InteractPos(); ok {
				state.openPos = p
			} else {
				state.openPos = resp.Rect.Min
			}
			state.triggerRect = geom.RectFromMinSize(state.openPos, geom.Vec2{})
		}
		if !state.IsOpen() {
			return
		}
		ctx.showMenuLevel(state, state.root, id, state.openPos, body)
	}
}

// SubMenu is a menu entry that opens a nested level beside itself on
// hover. Only valid inside an open menu body.
func (ctx *Context) SubMenu(label string) func(func()) {
	return func(body func()) {
		sc := ctx.currentMenuScope()
		if sc == nil {
			debugPanic("SubMenu outside a menu")
			return
		}
		state := sc.state
		arena := &state.arena
		id := ctx.MakeId(label)

		resp := ctx.menuEntry(label, "▸")
		node := arena.Node(sc.handle)

		openHere := node.openSub != menuNil && arena.Node(node.openSub).id == id
		if resp.Hovered && !openHere {
			if node.openSub != menuNil {
				arena.Release(node.openSub)
			}
			node.openSub = arena.Alloc(sc.handle, id)
			openHere = true
		}
		if !openHere {
			return
		}
		pos := geom.P(resp.Rect.Max.X, resp.Rect.Min.Y)
		ctx.showMenuLevel(state, arena.Node(sc.handle).openSub, id, pos, body)
	}
}

// MenuItem is one clickable menu entry; clicking it closes the whole
// menu.
func (ctx *Context) MenuItem(label string) Response {
	resp := ctx.menuEntry(label, "")
	if resp.Clicked() {
		if sc := ctx.currentMenuScope(); sc != nil {
			sc.state.close()
		}
	}
	return resp
}

// menuEntry paints one row of a menu popup.
func (ctx *Context) menuEntry(label, mark string) Response {
	style := ctx.style
	galley := ctx.layouter.Layout(label, TextFormat{Size: style.Text.Body}, -1)
	pad := style.Spacing.ButtonPadding
	w := galley.Size.X + 2*pad.X + style.Spacing.IconWidth
	if aw := ctx.AvailableWidth(); isFinite32(aw) {
		w = max(w, aw)
	}
	rect := ctx.AllocateSpace(geom.V(w, galley.Size.Y+2*pad.Y))

	resp := ctx.Interact(rect, ctx.MakeId(label), SenseClick())
	wv := style.InteractVisuals(resp)
	painter := ctx.Painter()
	if resp.Hovered {
		painter.RectFilled(rect, wv.Rounding, wv.BgFill)
	}
	painter.Galley(geom.P(rect.Min.X+pad.X, rect.Center().Y-galley.Size.Y/2), galley, wv.FgColor)
	if mark != "" {
		mg := ctx.layouter.Layout(mark, TextFormat{Size: style.Text.Body}, -1)
		painter.Galley(geom.P(rect.Max.X-pad.X-mg.Size.X, rect.Center().Y-mg.Size.Y/2), mg, wv.FgColor)
	}
	return resp
}

func (ctx *Context) currentMenuScope() *menuScope {
	if n := len(ctx.menuStack); n > 0 {
		return ctx.menuStack[n-1]
	}
	return nil
}

// showMenuLevel renders one open popup level at pos in a Foreground
// area and runs its body inside. Returns whether the menu closed.
func (ctx *Context) showMenuLevel(state *MenuState, handle int32, id Id, pos geom.Pos2, body func()) bool {
	ctx.menuStack = append(ctx.menuStack, &menuScope{state: state, handle: handle})
	areaId := NewId(id, "menu-area")
	margin := ctx.style.Spacing.MenuMargin

	scopedAreaId := ctx.MakeId(areaId)
	ctx.BeginArea(areaId, AtPos(pos), OnOrder(OrderForeground))
	// Inset the content by the menu margin. The width follows what the
	// widest entry needed last frame, so sibling entries line up.
	reg := ctx.curRegion()
	reg.avail.Min = reg.avail.Min.Add(margin)
	reg.cursor = reg.avail.Min
	if last, ok := ctx.mem.AreaRect(scopedAreaId); ok && last.Width() > 0 {
		reg.avail.Max.X = reg.avail.Min.X + last.Width()
	}

	painter := ctx.Painter()
	bg := painter.Reserve()
	body()
	ctx.EndArea()

	var content geom.Vec2
	if r, ok := ctx.mem.AreaRect(scopedAreaId); ok {
		content = r.Size()
	}
	rect := geom.RectFromMinSize(pos, content.Add(margin.Scale(2)))
	state.arena.Node(handle).rect = rect

	visuals := &ctx.style.Visuals
	painter.SetRectFilled(bg, rect, visuals.MenuRounding, visuals.WindowFill)
	painter.RectStroke(rect, visuals.MenuRounding, visuals.WindowStrokeWidth, visuals.WindowStroke)

	ctx.menuStack = ctx.menuStack[:len(ctx.menuStack)-1]

	// Root-level close conditions.
	if handle == state.root {
		closed := false
		if ctx.input.ConsumeKey(Modifiers{}, KeyEscape) {
			closed = true
		}
		if ctx.input.Pointer.AnyPressed() {
			if p, ok := ctx.input.Pointer.InteractPos(); ok {
				if !state.arena.ContainsPointer(state.root, p) && !state.triggerRect.Contains(p) {
					closed = true
				}
			}
		}
		if closed {
			state.close()
			ctx.RequestRepaint()
			return true
		}
	}
	return false
}
