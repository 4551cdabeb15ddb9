package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/ui/geom"
)

// menuFixture builds a two-button menu bar and exposes the ids and
// rects needed to drive it with pointer input.
type menuFixture struct {
	h         *harness
	fileId    Id
	editId    Id
	barStart  geom.Pos2
	openHit   bool
	closeHit  bool
	editShown bool
}

func newMenuFixture() *menuFixture {
	return &menuFixture{h: newHarness()}
}

func (f *menuFixture) build(ctx *Context) {
	f.barStart = ctx.CursorPos()
	ctx.MenuBar(func() {
		f.fileId = ctx.MakeId("File")
		ctx.MenuButton("File")(func() {
			if ctx.MenuItem("Open").Clicked() {
				f.openHit = true
			}
			if ctx.MenuItem("Close").Clicked() {
				f.closeHit = true
			}
		})
		f.editId = ctx.MakeId("Edit")
		ctx.MenuButton("Edit")(func() {
			f.editShown = true
			ctx.MenuItem("Undo")
		})
	})
}

func (f *menuFixture) fileState() *MenuState {
	s, _ := MemoryGet[MenuState](f.h.ctx.Memory(), f.fileId)
	return s
}

func (f *menuFixture) editState() *MenuState {
	s, _ := MemoryGet[MenuState](f.h.ctx.Memory(), f.editId)
	return s
}

// fileButton derives the bar button rect from the layout constants: a
// small button grows to the minimum interact size.
func (f *menuFixture) fileButton() geom.Rect {
	return geom.RectFromMinSize(f.barStart, f.h.ctx.Style().Spacing.InteractSize)
}

// itemPos aims at menu row i of the open File menu.
func (f *menuFixture) itemPos(i int) geom.Pos2 {
	style := f.h.ctx.Style()
	btn := f.fileButton()
	rowH := float32(13) + 2*style.Spacing.ButtonPadding.Y
	step := rowH + style.Spacing.ItemSpacing.Y
	top := geom.P(btn.Min.X, btn.Max.Y).Add(style.Spacing.MenuMargin)
	return geom.P(top.X+10, top.Y+float32(i)*step+rowH/2)
}

func TestMenuButtonTogglesMenu(t *testing.T) {
	f := newMenuFixture()
	h := f.h
	build := f.build

	h.frame(build)
	state := f.fileState()
	require.NotNil(t, state)
	assert.False(t, state.IsOpen())

	h.click(f.fileButton().Center(), build)
	assert.True(t, f.fileState().IsOpen(), "clicking the bar button opens its menu")

	h.click(f.fileButton().Center(), build)
	assert.False(t, f.fileState().IsOpen(), "clicking again closes it")
}

func TestMenuItemClickClosesMenu(t *testing.T) {
	f := newMenuFixture()
	h := f.h
	build := f.build

	h.frame(build)
	h.click(f.fileButton().Center(), build)
	require.True(t, f.fileState().IsOpen())
	h.frame(build)

	h.click(f.itemPos(0), build)
	assert.True(t, f.openHit, "the first row is the Open item")
	assert.False(t, f.closeHit)
	assert.False(t, f.fileState().IsOpen(), "picking an item closes the menu")
}

func TestMenuEscapeCloses(t *testing.T) {
	f := newMenuFixture()
	h := f.h
	build := f.build

	h.frame(build)
	h.click(f.fileButton().Center(), build)
	require.True(t, f.fileState().IsOpen())

	h.key(KeyEscape, Modifiers{})
	h.frame(build)
	assert.False(t, f.fileState().IsOpen())
}

func TestMenuOutsideClickCloses(t *testing.T) {
	f := newMenuFixture()
	h := f.h
	build := f.build

	h.frame(build)
	h.click(f.fileButton().Center(), build)
	require.True(t, f.fileState().IsOpen())
	h.frame(build)

	h.click(geom.P(700, 500), build)
	assert.False(t, f.fileState().IsOpen())
	assert.False(t, f.openHit)
	assert.False(t, f.closeHit)
}

func TestMenuBarHoverSwitchesSiblings(t *testing.T) {
	f := newMenuFixture()
	h := f.h
	build := f.build

	h.frame(build)
	h.click(f.fileButton().Center(), build)
	require.True(t, f.fileState().IsOpen())

	// Edit sits one interact width plus the item gap to the right.
	btn := f.fileButton()
	editCenter := geom.P(btn.Max.X+h.ctx.Style().Spacing.ItemSpacing.X+btn.Width()/2, btn.Center().Y)
	h.move(editCenter)
	h.frame(build)
	h.frame(build)

	assert.True(t, f.editState().IsOpen(), "hovering a sibling while a menu is open switches to it")
	assert.False(t, f.fileState().IsOpen())
	assert.True(t, f.editShown, "the sibling body runs once open")
}

func TestMenuArenaAllocAndRelease(t *testing.T) {
	var a MenuArena
	root := a.Alloc(menuNil, NewId(IdNil, "root"))
	child := a.Alloc(root, NewId(IdNil, "child"))
	grand := a.Alloc(child, NewId(IdNil, "grand"))

	a.Node(root).openSub = child
	a.Node(child).openSub = grand
	assert.Equal(t, grand, a.DeepestOpen(root))

	a.Node(root).rect = geom.RectFromMinSize(geom.P(0, 0), geom.V(50, 50))
	a.Node(child).rect = geom.RectFromMinSize(geom.P(60, 0), geom.V(50, 50))
	a.Node(grand).rect = geom.RectFromMinSize(geom.P(120, 0), geom.V(50, 50))
	assert.True(t, a.ContainsPointer(root, geom.P(70, 10)), "any rect along the open path counts")
	assert.False(t, a.ContainsPointer(root, geom.P(200, 10)))

	a.Release(root)
	assert.Len(t, a.free, 3, "releasing a root frees the whole subtree")

	// Freed handles are recycled before the arena grows.
	reused := a.Alloc(menuNil, NewId(IdNil, "again"))
	assert.Less(t, int(reused), 3)
	assert.Len(t, a.nodes, 3)
}
