package ui

import "github.com/frameloop/ui/geom"

// AreaState is the persisted placement of a floating area.
type AreaState struct {
	// Pos is the top-left corner in screen points.
	Pos geom.Pos2
	// Size is the measured content size from the last frame.
	Size geom.Vec2
	// placed is false until the area has picked its first position.
	placed bool
}

// Rect returns the area rectangle from the last frame.
func (s AreaState) Rect() geom.Rect {
	return geom.RectFromMinSize(s.Pos, s.Size)
}

// areaEntry is the bookkeeping the area manager keeps per layer.
type areaEntry struct {
	rect         geom.Rect
	order        Order
	lastFrame    uint64
	interactable bool
}

// areaManager tracks every floating area: its rectangle, its order class
// and the stacking within that class. Stacking is bottom to top; a click
// on an area raises it at the start of the next frame.
type areaManager struct {
	entries  map[Id]*areaEntry
	stacking [numOrders][]Id
	toFront  []LayerId
}

func (a *areaManager) init() {
	a.entries = make(map[Id]*areaEntry)
}

// beginFrame applies pending raise requests and drops areas that have
// stopped being shown.
func (a *areaManager) beginFrame(frame uint64) {
	for _, layer := range a.toFront {
		a.raise(layer)
	}
	a.toFront = a.toFront[:0]

	for order := range a.stacking {
		kept := a.stacking[order][:0]
		for _, id := range a.stacking[order] {
			e := a.entries[id]
			if e == nil {
				continue
			}
			if frame-e.lastFrame > staleFrames {
				delete(a.entries, id)
				continue
			}
			kept = append(kept, id)
		}
		a.stacking[order] = kept
	}
}

func (a *areaManager) raise(layer LayerId) {
	stack := a.stacking[layer.Order]
	for i, id := range stack {
		if id == layer.Id {
			copy(stack[i:], stack[i+1:])
			stack[len(stack)-1] = layer.Id
			return
		}
	}
}

func (a *areaManager) removeFromStack(order Order, id Id) {
	stack := a.stacking[order]
	for i, other := range stack {
		if other == id {
			a.stacking[order] = append(stack[:i], stack[i+1:]...)
			return
		}
	}
}

func (a *areaManager) register(layer LayerId, rect geom.Rect, frame uint64, interactable bool) {
	e := a.entries[layer.Id]
	switch {
	case e == nil:
		e = &areaEntry{}
		a.entries[layer.Id] = e
		a.stacking[layer.Order] = append(a.stacking[layer.Order], layer.Id)
	case e.order != layer.Order:
		// The area switched order class; restack it on top of the new one.
		a.removeFromStack(e.order, layer.Id)
		a.stacking[layer.Order] = append(a.stacking[layer.Order], layer.Id)
	}
	e.rect = rect
	e.order = layer.Order
	e.lastFrame = frame
	e.interactable = interactable
}

func (a *areaManager) bringToFront(layer LayerId) {
	a.toFront = append(a.toFront, layer)
}

func (a *areaManager) rectOf(id Id) (geom.Rect, bool) {
	e := a.entries[id]
	if e == nil {
		return geom.Rect{}, false
	}
	return e.rect, true
}

// topLayerAt returns the topmost interactable layer whose area contains
// pos. Tooltip and debug layers never capture the pointer. When no area
// contains pos the shared middle layer wins.
func (a *areaManager) topLayerAt(pos geom.Pos2) LayerId {
	for order := OrderForeground; order >= OrderBackground; order-- {
		stack := a.stacking[order]
		for i := len(stack) - 1; i >= 0; i-- {
			e := a.entries[stack[i]]
			if e != nil && e.interactable && e.rect.Contains(pos) {
				return LayerId{Order: order, Id: stack[i]}
			}
		}
	}
	return DefaultLayer()
}

// paintOrder lists every layer back to front: for each order class the
// shared layer first, then the floating areas in stacking order.
func (a *areaManager) paintOrder() []LayerId {
	n := int(numOrders)
	for order := range a.stacking {
		n += len(a.stacking[order])
	}
	out := make([]LayerId, 0, n)
	for order := Order(0); order < numOrders; order++ {
		out = append(out, LayerId{Order: order})
		for _, id := range a.stacking[order] {
			out = append(out, LayerId{Order: order, Id: id})
		}
	}
	return out
}

// AreaRect returns the rectangle an area covered last frame.
func (m *Memory) AreaRect(id Id) (geom.Rect, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.areas.rectOf(id)
}

// BringToFront raises a layer above its siblings at the next frame start.
func (m *Memory) BringToFront(layer LayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.areas.bringToFront(layer)
}

// TopLayerAt returns the layer that owns the pointer at pos.
func (m *Memory) TopLayerAt(pos geom.Pos2) LayerId {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.areas.topLayerAt(pos)
}

func (m *Memory) registerArea(layer LayerId, rect geom.Rect, interactable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.areas.register(layer, rect, m.frame, interactable)
}

func (m *Memory) paintOrder() []LayerId {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.areas.paintOrder()
}

// areaFrame is the per-Begin bookkeeping for one open area.
type areaFrame struct {
	id        Id
	layer     LayerId
	pos       geom.Pos2
	movable   bool
	constrain bool
}

// Area places content in a floating rectangle on its own layer, above
// or below ordinary panels depending on the order option. Position and
// measured size persist across frames; the first shown frame uses the
// measured size one frame late, so a brand new area may draw with zero
// size for a single frame.
//
// Usage:
//
//	ctx.Area("inspector", ui.AtPos(geom.P(100, 100)), ui.Movable())(func() {
//	    ctx.Label("I float")
//	})
func (ctx *Context) Area(source any, opts ...Option) func(func()) {
	return func(contents func()) {
		ctx.BeginArea(source, opts...)
		contents()
		ctx.EndArea()
	}
}

// BeginArea starts a floating area. Must be paired with EndArea.
func (ctx *Context) BeginArea(source any, opts ...Option) {
	o := applyOptions(opts)
	id := ctx.MakeId(source)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.MakeId(optID)
	}
	order := GetOpt(o, OptOrder)
	layer := LayerId{Order: order, Id: id}

	state := MemoryGetOr(ctx.mem, id, AreaState{})
	if p := GetOpt(o, OptAreaPos); p.Set {
		state.Pos = p.Pos
		state.placed = true
	}
	if !state.placed {
		// Drop new areas a third of the way into the screen.
		screen := ctx.input.ScreenRect
		state.Pos = screen.Min.Add(screen.Size().Scale(1.0 / 3.0))
		state.placed = true
	}
	if GetOpt(o, OptConstrain) {
		state.Pos = constrainAreaPos(state.Pos, state.Size, ctx.input.ScreenRect)
	}
	state.Pos = state.Pos.Round()

	ctx.areaStack = append(ctx.areaStack, areaFrame{
		id:        id,
		layer:     layer,
		pos:       state.Pos,
		movable:   GetOpt(o, OptMovable),
		constrain: GetOpt(o, OptConstrain),
	})
	ctx.PushId(id)
	ctx.pushLayer(layer)
	ctx.pushRegion(geom.RectFromMinSize(state.Pos, geom.Vec2Inf), layoutVertical)
}

// EndArea closes the area opened by the matching BeginArea.
func (ctx *Context) EndArea() {
	n := len(ctx.areaStack)
	if n == 0 {
		debugPanic("EndArea called without BeginArea")
		return
	}
	fr := ctx.areaStack[n-1]
	ctx.areaStack = ctx.areaStack[:n-1]

	used := ctx.popRegion()
	rect := geom.RectFromMinSize(fr.pos, used.Size())

	state := MemoryGetOr(ctx.mem, fr.id, AreaState{})
	state.Size = used.Size()

	if fr.movable {
		resp := ctx.Interact(rect, NewId(fr.id, "move"), SenseDrag())
		if resp.Dragged() {
			state.Pos = state.Pos.Add(resp.DragDelta)
			if fr.constrain {
				state.Pos = constrainAreaPos(state.Pos, state.Size, ctx.input.ScreenRect)
			}
		}
	}

	// Any press inside raises the area above its siblings.
	if ctx.input.Pointer.AnyPressed() {
		if pos, ok := ctx.input.Pointer.InteractPos(); ok && rect.Contains(pos) {
			ctx.mem.BringToFront(fr.layer)
		}
	}

	ctx.mem.registerArea(fr.layer, rect, fr.layer.AllowsInteraction())
	ctx.popLayer()
	ctx.PopId()
}

// constrainAreaPos keeps as much of the area on screen as fits.
func constrainAreaPos(pos geom.Pos2, size geom.Vec2, screen geom.Rect) geom.Pos2 {
	if !screen.IsPositive() {
		return pos
	}
	allowed := geom.RectFromMinMax(screen.Min, screen.Max.SubVec(size))
	allowed.Max = allowed.Max.Max(allowed.Min)
	return pos.Clamp(allowed.Min, allowed.Max)
}
