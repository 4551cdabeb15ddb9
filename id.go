package ui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/frameloop/ui/geom"
)

// Id identifies a widget for state persistence and interaction tracking.
// Ids are stable across frames: they hash a source value (usually a label
// or index) together with the parent id, never pointer identity or call
// order. Two widgets that are visible in the same frame must not share an
// id; collisions are detected per frame and reported (see DebugChecks).
type Id uint64

// IdNil is the zero id. No widget uses it.
const IdNil Id = 0

// NewId derives an id from source scoped under parent. Strings, integers
// and other ids hash directly; any other type goes through its %v form.
func NewId(parent Id, source any) Id {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h.Write(buf[:])

	switch s := source.(type) {
	case string:
		h.Write([]byte(s))
	case Id:
		binary.LittleEndian.PutUint64(buf[:], uint64(s))
		h.Write(buf[:])
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(s)))
		h.Write(buf[:])
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(s))
		h.Write(buf[:])
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], s)
		h.Write(buf[:])
	default:
		fmt.Fprintf(h, "%v", s)
	}

	id := Id(h.Sum64())
	if id == IdNil {
		id = 1
	}
	return id
}

// Short returns an abbreviated hex form for logs.
func (id Id) Short() string {
	return fmt.Sprintf("%04X", uint64(id)&0xFFFF)
}

// MakeId returns an id for source scoped under the current id stack.
func (ctx *Context) MakeId(source any) Id {
	return NewId(ctx.CurrentId(), source)
}

// PushId scopes subsequent MakeId calls under source. Use it around loops
// or repeated subtrees so identical labels stay distinct.
func (ctx *Context) PushId(source any) {
	ctx.idStack = append(ctx.idStack, ctx.MakeId(source))
}

// PopId removes the most recent PushId scope.
func (ctx *Context) PopId() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentId returns the top of the id stack.
func (ctx *Context) CurrentId() Id {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return IdNil
}

// registerUsedId records that id occupies rect this frame and reports
// collisions with earlier registrations.
func (ctx *Context) registerUsedId(id Id, rect geom.Rect) {
	if prev, ok := ctx.usedIds[id]; ok {
		debugPanic("id %s used twice this frame (rects %v and %v); scope one side with PushId",
			id.Short(), prev, rect)
		return
	}
	ctx.usedIds[id] = rect
}
