package ui

import "github.com/frameloop/ui/geom"

// Option configures a widget or container.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = ui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.MyWidget("id", ui.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := ui.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// ScrollbarVisibility controls when scrollbars are shown.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Show only when content exceeds viewport
	ScrollbarAlways                            // Always show scrollbar
	ScrollbarNever                             // Never show scrollbar
)

// ScrollbarSide controls which side the vertical scrollbar appears on.
type ScrollbarSide int

const (
	ScrollbarRight ScrollbarSide = iota // Scrollbar on right side (default)
	ScrollbarLeft                       // Scrollbar on left side
)

// RangeValue holds min/max range for drag values and zoom limits.
type RangeValue struct {
	Min, Max float32
	HasRange bool
}

// PosValue wraps an explicit screen position for areas.
type PosValue struct {
	Pos geom.Pos2
	Set bool
}

// OpenValue wraps a boolean pointer for controlled open/closed state.
// When Ptr is non-nil, the header is in controlled mode and writes back to it.
type OpenValue struct {
	Ptr *bool
}

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
)

// --- Slider/DragValue Options ---
var (
	OptFormat       = NewOptKey("format", "")
	OptStep         = NewOptKey[float32]("step", 0)
	OptRange        = NewOptKey("range", RangeValue{})
	OptDragSpeed    = NewOptKey[float32]("dragSpeed", 0)
	OptPrefix       = NewOptKey("prefix", "")
	OptSuffix       = NewOptKey("suffix", "")
	OptClampToRange = NewOptKey("clampToRange", true)
)

// --- ScrollArea Options ---
var (
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptScrollbarSide       = NewOptKey("scrollbarSide", ScrollbarRight)
	OptHorizontalScroll    = NewOptKey("horizontalScroll", false)
	OptVerticalScroll      = NewOptKey("verticalScroll", true)
	OptFling               = NewOptKey("fling", true)
	OptStickToBottom       = NewOptKey("stickToBottom", false)
	OptDragToScroll        = NewOptKey("dragToScroll", false)
	OptAutoShrink          = NewOptKey("autoShrink", true)
	OptMaxWidth            = NewOptKey("maxWidth", geom.Inf)
	OptMaxHeight           = NewOptKey("maxHeight", geom.Inf)
)

// --- Area Options ---
var (
	OptAreaPos   = NewOptKey("areaPos", PosValue{})
	OptOrder     = NewOptKey("order", OrderMiddle)
	OptMovable   = NewOptKey("movable", false)
	OptConstrain = NewOptKey("constrain", true)
)

// --- Resize Options ---
var (
	OptDefaultSize = NewOptKey("defaultSize", geom.Vec2{X: 240, Y: 180})
	OptMinSize     = NewOptKey("minSize", geom.Vec2{X: 16, Y: 16})
	OptMaxSize     = NewOptKey("maxSize", geom.Vec2Inf)
	OptResizableX  = NewOptKey("resizableX", true)
	OptResizableY  = NewOptKey("resizableY", true)
)

// --- Grid Options ---
var (
	OptSpacing      = NewOptKey("spacing", geom.Vec2{X: -1, Y: -1}) // negative means style default
	OptMinColWidth  = NewOptKey[float32]("minColWidth", 0)
	OptMinRowHeight = NewOptKey[float32]("minRowHeight", 0)
	OptStriped      = NewOptKey("striped", false)
	OptStartRow     = NewOptKey("startRow", 0)
)

// --- CollapsingHeader Options ---
var (
	OptDefaultOpen = NewOptKey("defaultOpen", false)
	OptOpen        = NewOptKey("open", OpenValue{})
)

// --- ComboBox Options ---
var (
	OptMaxDropdownHeight = NewOptKey[float32]("maxDropdownHeight", 0)
)

// --- TextEdit Options ---
var (
	OptHint        = NewOptKey("hint", "")
	OptPassword    = NewOptKey("password", false)
	OptCharLimit   = NewOptKey("charLimit", 0)
	OptDesiredRows = NewOptKey("desiredRows", 0)
)

// --- Scene Options ---
var (
	OptZoomRange = NewOptKey("zoomRange", RangeValue{Min: 0.1, Max: 10, HasRange: true})
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithFormat sets the display format for numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep sets the increment step for value adjustments.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithRange sets the minimum and maximum values.
func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithDragSpeed sets the drag sensitivity (value change per point dragged).
func WithDragSpeed(speed float32) Option { return WithOpt(OptDragSpeed, speed) }

// WithPrefix sets a prefix text displayed before the value.
func WithPrefix(prefix string) Option { return WithOpt(OptPrefix, prefix) }

// WithSuffix sets a suffix text displayed after the value.
func WithSuffix(suffix string) Option { return WithOpt(OptSuffix, suffix) }

// NoClamp lets drag values move outside their range.
func NoClamp() Option { return WithOpt(OptClampToRange, false) }

// ShowScrollbar controls scrollbar visibility.
func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarAuto)
}

// ScrollbarPosition sets which side the vertical scrollbar appears on.
func ScrollbarPosition(side ScrollbarSide) Option { return WithOpt(OptScrollbarSide, side) }

// EnableHorizontal enables horizontal scrolling.
func EnableHorizontal() Option { return WithOpt(OptHorizontalScroll, true) }

// NoVertical disables vertical scrolling.
func NoVertical() Option { return WithOpt(OptVerticalScroll, false) }

// NoFling disables kinetic scrolling after a touch drag.
func NoFling() Option { return WithOpt(OptFling, false) }

// StickToBottom keeps the view pinned to the end while content grows.
func StickToBottom() Option { return WithOpt(OptStickToBottom, true) }

// DragToScroll lets a touch-style drag on the content scroll the area,
// with a kinetic fling on release.
func DragToScroll() Option { return WithOpt(OptDragToScroll, true) }

// NoAutoShrink makes a scroll area fill the available space even when
// its content is smaller.
func NoAutoShrink() Option { return WithOpt(OptAutoShrink, false) }

// WithMaxWidth limits how wide a scroll area grows.
func WithMaxWidth(w float32) Option { return WithOpt(OptMaxWidth, w) }

// WithMaxHeight limits how tall a scroll area grows.
func WithMaxHeight(h float32) Option { return WithOpt(OptMaxHeight, h) }

// AtPos places an area at a fixed screen position.
func AtPos(pos geom.Pos2) Option { return WithOpt(OptAreaPos, PosValue{Pos: pos, Set: true}) }

// OnOrder places an area on the given layer order.
func OnOrder(order Order) Option { return WithOpt(OptOrder, order) }

// Movable lets the user drag an area by its body.
func Movable() Option { return WithOpt(OptMovable, true) }

// NoConstrain lets an area leave the screen rectangle.
func NoConstrain() Option { return WithOpt(OptConstrain, false) }

// WithDefaultSize sets the size a resizable region starts with.
func WithDefaultSize(size geom.Vec2) Option { return WithOpt(OptDefaultSize, size) }

// WithMinSize sets the smallest size the user can resize to.
func WithMinSize(size geom.Vec2) Option { return WithOpt(OptMinSize, size) }

// WithMaxSize sets the largest size the user can resize to.
func WithMaxSize(size geom.Vec2) Option { return WithOpt(OptMaxSize, size) }

// ResizableX controls whether the width can be dragged.
func ResizableX(on bool) Option { return WithOpt(OptResizableX, on) }

// ResizableY controls whether the height can be dragged.
func ResizableY(on bool) Option { return WithOpt(OptResizableY, on) }

// WithSpacing overrides the style spacing between grid cells.
func WithSpacing(spacing geom.Vec2) Option { return WithOpt(OptSpacing, spacing) }

// WithMinColWidth sets the minimum width of every grid column.
func WithMinColWidth(w float32) Option { return WithOpt(OptMinColWidth, w) }

// WithMinRowHeight sets the minimum height of every grid row.
func WithMinRowHeight(h float32) Option { return WithOpt(OptMinRowHeight, h) }

// Striped paints alternating row backgrounds in a grid.
func Striped() Option { return WithOpt(OptStriped, true) }

// StartRow sets the row parity a striped grid begins with, so stripes
// line up across split tables.
func StartRow(row int) Option { return WithOpt(OptStartRow, row) }

// DefaultOpen makes collapsing headers start in the expanded state.
func DefaultOpen() Option { return WithOpt(OptDefaultOpen, true) }

// OpenState binds the header's open/closed state to an external boolean.
// The header reads from and writes to this variable, making it fully
// controlled. When the user clicks to toggle, the variable is updated.
//
// Usage:
//
//	ctx.CollapsingHeader("Advanced", ui.OpenState(&p.advanced))(func() {
//	    // content
//	})
func OpenState(ptr *bool) Option { return WithOpt(OptOpen, OpenValue{Ptr: ptr}) }

// WithMaxDropdownHeight limits the height of combo box popups.
func WithMaxDropdownHeight(height float32) Option { return WithOpt(OptMaxDropdownHeight, height) }

// WithHint shows placeholder text in an empty text edit.
func WithHint(hint string) Option { return WithOpt(OptHint, hint) }

// Password masks every character in a text edit.
func Password() Option { return WithOpt(OptPassword, true) }

// WithCharLimit caps the number of characters a text edit accepts.
func WithCharLimit(n int) Option { return WithOpt(OptCharLimit, n) }

// WithDesiredRows sets how many text rows a multiline edit shows by default.
func WithDesiredRows(n int) Option { return WithOpt(OptDesiredRows, n) }

// WithZoomRange limits how far a scene can zoom in or out.
func WithZoomRange(minZoom, maxZoom float32) Option {
	return WithOpt(OptZoomRange, RangeValue{Min: minZoom, Max: maxZoom, HasRange: true})
}
