// Command headless drives the library without a window: it synthesizes
// input frame by frame (pointer moves, a button click, wheel scrolling,
// typing into a text edit) and prints what each frame produced. Useful as
// a smoke test of the full pipeline and as a template for writing an
// integration: everything a real host does is here except uploading the
// meshes to a GPU.
package main

import (
	"fmt"

	"github.com/frameloop/ui"
	"github.com/frameloop/ui/geom"
)

type app struct {
	ctx *ui.Context

	name   string
	volume float32
	dark   bool
	clicks int
	lines  []string

	// Rects captured while building, so the script can aim at widgets.
	buttonAt geom.Pos2
	editAt   geom.Pos2
	scrollAt geom.Pos2
}

func (a *app) build() {
	ctx := a.ctx

	ctx.Heading("Headless demo")
	ctx.Label("Every frame below is driven by synthesized input.")
	ctx.Separator()

	resp := ctx.Button("Click me")
	a.buttonAt = resp.Rect.Center()
	if resp.Clicked() {
		a.clicks++
	}
	ctx.Label(fmt.Sprintf("Clicked %d times", a.clicks))

	edit := ctx.TextEdit("name", &a.name, ui.WithHint("your name"))
	a.editAt = edit.Rect.Center()

	ctx.Slider("Volume", &a.volume, 0, 1)
	ctx.Checkbox("Dark mode", &a.dark)

	ctx.ScrollArea("log", ui.WithMaxHeight(120))(func() {
		a.scrollAt = ctx.CursorPos().Add(geom.V(40, 40))
		for _, line := range a.lines {
			ctx.Monospace(line)
		}
	})
}

func main() {
	a := &app{ctx: ui.NewContext(), volume: 0.5}
	for i := 0; i < 40; i++ {
		a.lines = append(a.lines, fmt.Sprintf("log line %02d", i))
	}

	var clock float64
	frame := func(label string, events ...ui.Event) {
		clock += 1.0 / 60.0
		out := a.ctx.Frame(ui.RawInput{
			Events:         events,
			ScreenRect:     geom.RectFromMinSize(geom.Pos2Zero, geom.V(800, 600)),
			PixelsPerPoint: 1,
			Time:           clock,
		}, a.build)

		verts, indices := 0, 0
		for _, p := range out.Primitives {
			verts += len(p.Mesh.Vertices)
			indices += len(p.Mesh.Indices)
		}
		fmt.Printf("%-28s %2d primitives, %4d vertices, %5d indices", label, len(out.Primitives), verts, indices)
		if out.Platform.Cursor != ui.CursorDefault {
			fmt.Printf(", cursor=%v", out.Platform.Cursor)
		}
		if out.RepaintRequested {
			fmt.Print(", repaint")
		}
		fmt.Println()
	}

	press := func(pos geom.Pos2, pressed bool) ui.Event {
		return ui.PointerButtonEvent{Pos: pos, Button: ui.PointerPrimary, Pressed: pressed}
	}

	frame("warm-up")
	frame("settle")

	// Click the button. Press and release land on the rect captured the
	// frame before; positions are stable because nothing moved.
	frame("hover button", ui.PointerMovedEvent{Pos: a.buttonAt})
	frame("press", press(a.buttonAt, true))
	frame("release", press(a.buttonAt, false))
	fmt.Printf("  -> button clicked %d time(s)\n", a.clicks)

	// Scroll the log area under the pointer.
	frame("move to log", ui.PointerMovedEvent{Pos: a.scrollAt})
	for i := 0; i < 5; i++ {
		frame("wheel", ui.MouseWheelEvent{
			Unit:  ui.UnitPoint,
			Delta: geom.V(0, -24),
		})
	}

	// Focus the text edit and type into it.
	frame("click edit", press(a.editAt, true))
	frame("", press(a.editAt, false))
	frame("type", ui.TextEvent{Text: "Ada"})
	frame("type", ui.TextEvent{Text: " Lovelace"})
	fmt.Printf("  -> name is now %q\n", a.name)

	// Let the scroll bar fade back out.
	for i := 0; i < 3; i++ {
		frame("idle")
	}
}
