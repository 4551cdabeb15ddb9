package ui

import (
	"time"

	"github.com/frameloop/ui/geom"
)

// Context is the entry point of the library. A host creates one Context
// per independent UI tree, keeps it alive for the lifetime of that tree,
// and drives it one frame at a time:
//
//	out := ctx.Frame(raw, func() {
//	    if ctx.Button("Quit").Clicked() { ... }
//	})
//
// The Context owns the persisted widget state (Memory), the input state
// machine, the active style, the texture manager and the per-frame paint
// buffers. There is no global or thread-local state: multiple Contexts in
// one process are independent.
//
// All methods must be called from a single goroutine, and widget calls
// are only legal between BeginFrame and EndFrame.
type Context struct {
	mem      *Memory
	input    *InputState
	style    *Style
	textures *TextureManager
	layouter TextLayouter
	keymap   Keymap

	inFrame bool

	idStack []Id
	usedIds map[Id]geom.Rect
	autoSeq uint64

	regionStack  []region
	layerStack   []LayerId
	enabledStack []bool
	scrollStack  []*scrollScope
	menuStack    []*menuScope
	enabled      bool
	areaStack    []areaFrame

	// transformStack maps local (content) coordinates to screen
	// coordinates; Scene pushes entries here. Identity when empty.
	transformStack []geom.TSTransform

	layers map[LayerId]*layerPaint

	platform     PlatformOutput
	cursorLocked bool
	repaint      bool
	repaintAfter time.Duration
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithStyle sets the initial style.
func WithStyle(s *Style) ContextOption {
	return func(ctx *Context) { ctx.style = s }
}

// WithLayouter sets the text layouter used for all text.
func WithLayouter(l TextLayouter) ContextOption {
	return func(ctx *Context) { ctx.layouter = l }
}

// WithKeymap selects the platform keymap for text editing shortcuts.
func WithKeymap(k Keymap) ContextOption {
	return func(ctx *Context) { ctx.keymap = k }
}

// WithMemory adopts an existing Memory, e.g. one restored with LoadState.
func WithMemory(m *Memory) ContextOption {
	return func(ctx *Context) { ctx.mem = m }
}

// NewContext creates a Context with the default style and the built-in
// monospace layouter. The glyph atlas is allocated as texture 0 and shows
// up in the first frame's TexturesDelta.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		input:    NewInputState(),
		textures: NewTextureManager(),
		keymap:   KeymapStandard,
		usedIds:  make(map[Id]geom.Rect),
		layers:   make(map[LayerId]*layerPaint),
		enabled:  true,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.mem == nil {
		ctx.mem = NewMemory()
	}
	if ctx.style == nil {
		ctx.style = DefaultStyle()
	}
	if ctx.layouter == nil {
		ctx.layouter = NewMonospaceLayouter()
	}
	ctx.textures.Alloc("font", buildFontAtlas())
	return ctx
}

// Memory returns the persisted-state store.
func (ctx *Context) Memory() *Memory { return ctx.mem }

// Input returns the current frame's input state.
func (ctx *Context) Input() *InputState { return ctx.input }

// Style returns the active style.
func (ctx *Context) Style() *Style { return ctx.style }

// SetStyle replaces the active style. Takes effect immediately; calling
// it mid-frame restyles the widgets that follow.
func (ctx *Context) SetStyle(s *Style) {
	if s != nil {
		ctx.style = s
	}
}

// Layouter returns the text layouter.
func (ctx *Context) Layouter() TextLayouter { return ctx.layouter }

// TextureManager returns the texture manager, for hosts that show images.
func (ctx *Context) TextureManager() *TextureManager { return ctx.textures }

// KeymapInUse returns the platform keymap text editing follows.
func (ctx *Context) KeymapInUse() Keymap { return ctx.keymap }

// Frame runs one complete frame: BeginFrame, the contents closure, and
// EndFrame. This is the call hosts make once per paint cycle.
func (ctx *Context) Frame(raw RawInput, contents func()) FullOutput {
	ctx.BeginFrame(raw)
	contents()
	return ctx.EndFrame()
}

// BeginFrame starts a frame: it folds the raw input batch into the input
// state, advances the memory clock (garbage-collecting stale widget
// state), and opens the root layout region covering the screen.
func (ctx *Context) BeginFrame(raw RawInput) {
	if ctx.inFrame {
		debugPanic("BeginFrame called twice without EndFrame")
		return
	}
	ctx.inFrame = true

	// Meshes of the previous frame go back to the pool now: the host has
	// had a full frame to consume them.
	for _, lp := range ctx.layers {
		lp.clear()
	}

	ctx.mem.beginFrame()
	ctx.input.Pointer.setInteraction(ctx.style.Interaction)
	ctx.input.begin(raw)
	ctx.mem.focus.handleInput(ctx.input)
	ctx.maintainInteraction()

	clear(ctx.usedIds)
	ctx.autoSeq = 0
	ctx.idStack = ctx.idStack[:0]
	ctx.areaStack = ctx.areaStack[:0]
	ctx.transformStack = ctx.transformStack[:0]
	ctx.enabledStack = ctx.enabledStack[:0]
	ctx.scrollStack = ctx.scrollStack[:0]
	ctx.menuStack = ctx.menuStack[:0]
	ctx.enabled = true
	ctx.layerStack = append(ctx.layerStack[:0], DefaultLayer())

	screen := ctx.input.ScreenRect
	if !screen.IsPositive() {
		// Headless hosts that never report a screen get a nominal one.
		screen = geom.RectFromMinSize(geom.Pos2Zero, geom.V(800, 600))
		ctx.input.ScreenRect = screen
	}
	ctx.regionStack = ctx.regionStack[:0]
	ctx.pushRegion(screen.Shrink2(ctx.style.Spacing.ItemSpacing), layoutVertical)

	ctx.platform.clearFrame()
	ctx.cursorLocked = false
	ctx.repaint = false
	ctx.repaintAfter = time.Hour
}

// EndFrame finishes the frame and returns everything the host needs to
// act on it: primitives to paint back to front, texture uploads, the
// platform output and the repaint request.
func (ctx *Context) EndFrame() FullOutput {
	if !ctx.inFrame {
		debugPanic("EndFrame called without BeginFrame")
		return FullOutput{}
	}
	ctx.inFrame = false

	if len(ctx.regionStack) != 1 {
		debugPanic("EndFrame: %d unclosed layout regions", len(ctx.regionStack)-1)
	}
	ctx.regionStack = ctx.regionStack[:0]
	if len(ctx.areaStack) != 0 {
		debugPanic("EndFrame: %d unclosed areas", len(ctx.areaStack))
		ctx.areaStack = ctx.areaStack[:0]
	}

	ctx.mem.focus.endFrame()

	if ctx.input.SmoothScrollPending() {
		ctx.RequestRepaint()
	}

	var out FullOutput
	for _, layer := range ctx.mem.paintOrder() {
		lp := ctx.layers[layer]
		if lp == nil {
			continue
		}
		for i := range lp.prims {
			pr := lp.prims[i]
			if pr.Mesh.IsEmpty() || !pr.ClipRect.IsPositive() {
				continue
			}
			out.Primitives = append(out.Primitives, pr)
		}
	}
	out.TexturesDelta = ctx.textures.take()
	out.Platform = ctx.platform
	out.RepaintRequested = ctx.repaint
	out.RepaintAfter = ctx.repaintAfter
	out.PixelsPerPoint = ctx.input.PixelsPerPoint
	return out
}

// RequestRepaint asks the host to run another frame promptly, e.g.
// because an animation is mid-flight or synthesized state needs one more
// frame to settle.
func (ctx *Context) RequestRepaint() {
	ctx.repaint = true
}

// RequestRepaintAfter asks for another frame within d, for slow
// animations like cursor blinking.
func (ctx *Context) RequestRepaintAfter(d time.Duration) {
	if d < ctx.repaintAfter {
		ctx.repaintAfter = d
	}
}

// --- layers ---

func (ctx *Context) currentLayer() LayerId {
	return ctx.layerStack[len(ctx.layerStack)-1]
}

func (ctx *Context) pushLayer(layer LayerId) {
	ctx.layerStack = append(ctx.layerStack, layer)
}

func (ctx *Context) popLayer() {
	if len(ctx.layerStack) <= 1 {
		debugPanic("popLayer on the root layer")
		return
	}
	ctx.layerStack = ctx.layerStack[:len(ctx.layerStack)-1]
}

func (ctx *Context) layerPaintFor(layer LayerId) *layerPaint {
	lp := ctx.layers[layer]
	if lp == nil {
		lp = newLayerPaint()
		ctx.layers[layer] = lp
	}
	return lp
}

// Painter returns a painter for the current layer, clipped to the
// current region and carrying the current content transform. The clip
// is mapped to screen space since it ends up as the scissor rect.
func (ctx *Context) Painter() *Painter {
	trans := ctx.currentTransform()
	clip := trans.ApplyRect(ctx.clipRect()).Intersect(ctx.input.ScreenRect)
	p := newPainter(ctx.layerPaintFor(ctx.currentLayer()), ctx.currentLayer(), clip)
	p.trans = trans
	return &p
}

// PainterOn returns a painter for an explicit layer, clipped only by the
// screen. Debug overlays use it.
func (ctx *Context) PainterOn(layer LayerId) *Painter {
	p := newPainter(ctx.layerPaintFor(layer), layer, ctx.input.ScreenRect)
	return &p
}

// --- transforms (Scene) ---

func (ctx *Context) currentTransform() geom.TSTransform {
	if n := len(ctx.transformStack); n > 0 {
		return ctx.transformStack[n-1]
	}
	return geom.TSIdentity()
}

func (ctx *Context) pushTransform(t geom.TSTransform) {
	ctx.transformStack = append(ctx.transformStack, ctx.currentTransform().Mul(t))
}

func (ctx *Context) popTransform() {
	if len(ctx.transformStack) == 0 {
		debugPanic("popTransform without pushTransform")
		return
	}
	ctx.transformStack = ctx.transformStack[:len(ctx.transformStack)-1]
}

// --- enabled state ---

// Disabled runs contents with interaction turned off: widgets inside
// render in their disabled visuals and never click, drag or focus.
func (ctx *Context) Disabled(contents func()) {
	ctx.enabledStack = append(ctx.enabledStack, ctx.enabled)
	ctx.enabled = false
	contents()
	ctx.enabled = ctx.enabledStack[len(ctx.enabledStack)-1]
	ctx.enabledStack = ctx.enabledStack[:len(ctx.enabledStack)-1]
}

// IsEnabled reports whether widgets are currently interactive.
func (ctx *Context) IsEnabled() bool { return ctx.enabled }

// --- misc frame services ---

// nextAutoId returns an id for widgets that have no natural source, like
// labels. It is stable as long as the call order is stable, which is all
// a hover-only widget needs.
func (ctx *Context) nextAutoId() Id {
	ctx.autoSeq++
	return NewId(ctx.CurrentId(), ctx.autoSeq)
}

// setCursor picks the cursor icon for this frame. The first widget to
// ask wins; widgets processed later sit lower in the stacking order.
func (ctx *Context) setCursor(icon CursorIcon) {
	if !ctx.cursorLocked {
		ctx.platform.Cursor = icon
		ctx.cursorLocked = true
	}
}

// CopyText places text on the host clipboard at the end of the frame.
func (ctx *Context) CopyText(text string) {
	if text != "" {
		ctx.platform.CopiedText = text
	}
}

// OpenURL asks the host to open a link.
func (ctx *Context) OpenURL(url string, newTab bool) {
	ctx.platform.OpenURL = &OpenURL{Url: url, NewTab: newTab}
}

// setIMERect reports where text is being edited, for input method popups.
func (ctx *Context) setIMERect(rect geom.Rect) {
	r := rect
	ctx.platform.IMERect = &r
	ctx.platform.MutableTextUnderCursor = true
}
