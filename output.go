package ui

import (
	"time"

	"github.com/frameloop/ui/geom"
)

// CursorIcon is the mouse cursor the window system should show.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorText
	CursorGrab
	CursorGrabbing
	CursorMove
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeNwSe
	CursorResizeNeSw
	CursorCrosshair
	CursorWait
	CursorNotAllowed
	CursorNone
)

var cursorNames = [...]string{
	CursorDefault:          "default",
	CursorPointingHand:     "pointing-hand",
	CursorText:             "text",
	CursorGrab:             "grab",
	CursorGrabbing:         "grabbing",
	CursorMove:             "move",
	CursorResizeHorizontal: "resize-horizontal",
	CursorResizeVertical:   "resize-vertical",
	CursorResizeNwSe:       "resize-nwse",
	CursorResizeNeSw:       "resize-nesw",
	CursorCrosshair:        "crosshair",
	CursorWait:             "wait",
	CursorNotAllowed:       "not-allowed",
	CursorNone:             "none",
}

func (c CursorIcon) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "unknown"
}

// OpenURL asks the integration to open a link.
type OpenURL struct {
	Url    string
	NewTab bool
}

// PlatformOutput is the non-paint half of a frame's output: things the
// window integration should act on.
type PlatformOutput struct {
	// Cursor is the icon to show this frame.
	Cursor CursorIcon
	// CopiedText is non-empty when something was copied or cut.
	CopiedText string
	// OpenURL is set when a hyperlink was activated.
	OpenURL *OpenURL
	// IMERect is where the platform should place input method popups,
	// set while a text edit has focus.
	IMERect *geom.Rect
	// MutableTextUnderCursor helps integrations decide whether to show
	// an on-screen keyboard.
	MutableTextUnderCursor bool
}

// clearFrame resets the per-frame fields, keeping nothing.
func (p *PlatformOutput) clearFrame() {
	*p = PlatformOutput{}
}

// FullOutput is everything a frame produced, handed to the integration
// after EndFrame.
type FullOutput struct {
	// Primitives to paint, ordered back to front.
	Primitives []ClippedPrimitive
	// Textures to upload before painting and free afterwards.
	TexturesDelta TexturesDelta
	// Platform actions: cursor, clipboard, links.
	Platform PlatformOutput
	// RepaintRequested is set while something animates; the integration
	// should run another frame promptly instead of waiting for input.
	RepaintRequested bool
	// RepaintAfter is the longest the integration may sleep before the
	// next frame when RepaintRequested is false.
	RepaintAfter time.Duration
	// PixelsPerPoint echoes the scale the frame was laid out for.
	PixelsPerPoint float32
}
