package ui

import (
	"image"
	"sync"
)

// TextureId names a texture owned by the backend renderer. Id 0 is the
// glyph atlas, allocated by NewContext before anything else.
type TextureId uint64

// TextureIdFont is the managed glyph atlas texture.
const TextureIdFont TextureId = 0

// TextureUpdate tells the renderer to (re)upload texture data.
type TextureUpdate struct {
	Id TextureId
	// Image holds premultiplied sRGBA pixels. The manager owns it once
	// handed over; callers must not mutate it afterwards.
	Image *image.RGBA
	// Pos is the top-left corner of a partial update, or nil to replace
	// the whole texture.
	Pos *[2]int
}

// TexturesDelta is what changed in the texture set since the last frame.
// The renderer applies Set before painting and Free after.
type TexturesDelta struct {
	Set  []TextureUpdate
	Free []TextureId
}

// IsEmpty reports whether there is nothing to apply.
func (d *TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

type textureEntry struct {
	name string
	size [2]int
}

// TextureManager allocates texture ids and queues upload work for the
// renderer. It never touches a GPU; EndFrame drains the queued delta
// into FullOutput.
type TextureManager struct {
	mu      sync.Mutex
	next    TextureId
	entries map[TextureId]*textureEntry
	delta   TexturesDelta
}

// NewTextureManager creates an empty manager. The first Alloc returns
// id 0, reserved for the glyph atlas.
func NewTextureManager() *TextureManager {
	return &TextureManager{
		entries: make(map[TextureId]*textureEntry),
	}
}

// Alloc registers a new texture and queues a full upload.
func (t *TextureManager) Alloc(name string, img *image.RGBA) TextureId {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	b := img.Bounds()
	t.entries[id] = &textureEntry{name: name, size: [2]int{b.Dx(), b.Dy()}}
	t.delta.Set = append(t.delta.Set, TextureUpdate{Id: id, Image: img})
	uiLogger.Debug("texture allocated", "id", uint64(id), "name", name, "w", b.Dx(), "h", b.Dy())
	return id
}

// Set queues new pixel data for an existing texture. With a non-nil pos
// only the covered region is replaced; the region must fit inside the
// texture.
func (t *TextureManager) Set(id TextureId, img *image.RGBA, pos *[2]int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.entries[id]
	if !ok {
		debugPanic("TextureManager.Set: unknown texture %d", id)
		return
	}
	b := img.Bounds()
	if pos != nil {
		if pos[0] < 0 || pos[1] < 0 || pos[0]+b.Dx() > entry.size[0] || pos[1]+b.Dy() > entry.size[1] {
			debugPanic("TextureManager.Set: region %v+%dx%d outside texture %q (%dx%d)",
				*pos, b.Dx(), b.Dy(), entry.name, entry.size[0], entry.size[1])
			return
		}
	} else {
		entry.size = [2]int{b.Dx(), b.Dy()}
	}
	t.delta.Set = append(t.delta.Set, TextureUpdate{Id: id, Image: img, Pos: pos})
}

// Free queues the texture for release. The glyph atlas cannot be freed.
func (t *TextureManager) Free(id TextureId) {
	if id == TextureIdFont {
		debugPanic("TextureManager.Free: cannot free the glyph atlas")
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[id]; !ok {
		debugPanic("TextureManager.Free: unknown texture %d", id)
		return
	}
	delete(t.entries, id)
	t.delta.Free = append(t.delta.Free, id)
}

// Len returns the number of live textures.
func (t *TextureManager) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// take drains and returns the accumulated delta.
func (t *TextureManager) take() TexturesDelta {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.delta
	t.delta = TexturesDelta{}
	return d
}
