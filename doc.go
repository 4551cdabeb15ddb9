// Package ui is an immediate-mode GUI library. The application rebuilds
// the whole interface from scratch every frame by calling widget
// functions; the library keeps only small per-widget state (scroll
// offsets, text cursors, open flags) in a store keyed by stable Ids, and
// returns tessellated triangle meshes for the host to paint. There are no
// widget objects to create, update or destroy, and no callbacks: a button
// reports its click as the return value of the call that drew it.
//
// # Frame lifecycle
//
// A host owns one long-lived *Context and drives it once per paint
// cycle:
//
//	ctx := ui.NewContext()
//	for running {
//	    out := ctx.Frame(gatherInput(), func() {
//	        ctx.Heading("Settings")
//	        if ctx.Button("Save").Clicked() {
//	            save()
//	        }
//	        ctx.Slider("Volume", &volume, 0, 1)
//	    })
//	    paint(out.Primitives, out.TexturesDelta)
//	    applyPlatform(out.Platform)
//	}
//
// Frame folds the RawInput batch into the input state, runs the closure,
// and returns a FullOutput: ClippedPrimitives ordered back to front,
// texture uploads, the platform output (cursor icon, clipboard text,
// opened links) and a repaint request. When RepaintRequested is set an
// animation is mid-flight and the host should run another frame promptly
// instead of sleeping for input.
//
// Layout is single-pass: widgets are placed top to bottom (or left to
// right inside Horizontal) as they are called, each taking the space it
// asks for. Containers that need to know their content size, such as
// ScrollArea gutters or Grid columns, use last frame's measurement and
// request a repaint when it changed, so layout converges one frame after
// content changes.
//
// # Ids and state
//
// Per-widget state is keyed by Id, a hash of the widget's source value
// (usually its label) scoped under the enclosing PushId stack. Ids never
// depend on call order or pointer identity, so state survives widgets
// moving around. Two widgets visible in the same frame must not share an
// id; give one of them an explicit ID("...") option or wrap list items
// in PushId(i). Collisions panic under DebugChecks and are logged
// otherwise.
//
// State lives in the Context's Memory. MemoryGetOr returns a pointer to
// the state for an id, creating it on first use; entries not touched for
// a few frames are dropped, so hiding a widget eventually frees its
// state. Memory.SaveState and LoadState snapshot the persistable stores
// (scroll offsets, resize sizes, grid tracks, collapsing flags, area
// positions) as TOML across runs.
//
// # Containers
//
// Container calls return a closure that takes the body, which keeps
// begin/end pairing implicit:
//
//	ctx.ScrollArea("log")(func() {
//	    ctx.ScrollRows(rowH, len(lines), func(first, last int) {
//	        for i := first; i < last; i++ {
//	            ctx.Monospace(lines[i])
//	        }
//	    })
//	})
//
// Available containers: Horizontal and Vertical flow, Indented, Grid,
// ScrollArea (with ScrollRows/ScrollBlocks virtualization), Resize,
// CollapsingHeader, Scene (pan/zoom canvas with a persisted transform),
// and floating Areas used by menus, combo dropdowns and tooltips.
//
// # Layers
//
// Paint order is controlled by layers: Background, Middle (the default),
// Foreground, Tooltip and Debug order classes, with floating areas
// stacked within their class and raised on click. PainterOn paints onto
// another layer without changing where layout happens.
//
// # Input and interaction
//
// Widgets declare what they sense (hover, click, drag) and the library
// resolves ownership: exactly one widget owns a press, drags require the
// pointer to travel past a threshold (so a sloppy click is still a
// click), and the topmost layer under the pointer wins. Keyboard focus
// moves with Tab and clicks; focused widgets consume key events so
// shortcuts do not fire behind a text edit.
//
// The library is single-threaded per Context: all widget calls must
// happen between BeginFrame and EndFrame on the goroutine driving the
// frame.
package ui
