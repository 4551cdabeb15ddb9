package ui

import (
	"reflect"
	"sync"
)

// staleFrames is how many frames an untouched state entry survives before
// the garbage collector drops it.
const staleFrames = 2

type dataKey struct {
	id Id
	tp reflect.Type
}

type dataEntry struct {
	value     any // always a pointer to the stored value
	lastFrame uint64
}

// Memory is everything the library persists across frames: per-widget
// state keyed by Id, keyboard focus, the open popup, area stacking, and
// animation clocks. The Context owns exactly one Memory; there is no
// global state.
//
// Widget state lives in a type-keyed map: MemoryGetOr[T] returns a
// pointer that stays valid for the frame. Entries not touched for a few
// frames are dropped, so state for widgets that stop being shown goes
// away without explicit invalidation.
type Memory struct {
	frame uint64

	mu   sync.RWMutex
	data map[dataKey]*dataEntry

	focus     focusState
	openPopup Id

	areas    areaManager
	anim     animationManager
	interact interactionState
}

// NewMemory creates an empty Memory.
func NewMemory() *Memory {
	m := &Memory{
		data: make(map[dataKey]*dataEntry),
	}
	m.areas.init()
	return m
}

// Frame returns the current frame number.
func (m *Memory) Frame() uint64 {
	return m.frame
}

// beginFrame advances the frame counter and drops stale state.
func (m *Memory) beginFrame() {
	m.frame++
	m.gc()
	m.focus.beginFrame()
	m.areas.beginFrame(m.frame)
	m.anim.gc(m.frame)
}

func (m *Memory) gc() {
	m.mu.Lock()
	defer m.mu.Unlock()
	dropped := 0
	for key, entry := range m.data {
		if m.frame-entry.lastFrame > staleFrames {
			delete(m.data, key)
			dropped++
		}
	}
	if dropped > 0 {
		uiLogger.Debug("memory gc", "dropped", dropped, "live", len(m.data))
	}
}

// Len returns the number of live state entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear drops all widget state immediately.
func (m *Memory) Clear() {
	m.mu.Lock()
	m.data = make(map[dataKey]*dataEntry)
	m.mu.Unlock()
}

// MemoryGetOr returns the state of type T stored under id, creating it
// from def on first use. The returned pointer may be mutated freely during
// the frame. Reading marks the entry live, postponing garbage collection.
func MemoryGetOr[T any](m *Memory, id Id, def T) *T {
	key := dataKey{id: id, tp: reflect.TypeOf(def)}

	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if ok {
		entry.lastFrame = m.frame
		return entry.value.(*T)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok = m.data[key]; ok {
		entry.lastFrame = m.frame
		return entry.value.(*T)
	}
	v := new(T)
	*v = def
	m.data[key] = &dataEntry{value: v, lastFrame: m.frame}
	return v
}

// MemoryGet returns the state of type T under id if it exists, without
// creating it or marking it live.
func MemoryGet[T any](m *Memory, id Id) (*T, bool) {
	var zero T
	key := dataKey{id: id, tp: reflect.TypeOf(zero)}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if entry, ok := m.data[key]; ok {
		return entry.value.(*T), true
	}
	return nil, false
}

// MemorySet stores value under id, replacing any previous state of type T.
func MemorySet[T any](m *Memory, id Id, value T) {
	key := dataKey{id: id, tp: reflect.TypeOf(value)}
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.data[key]; ok {
		*entry.value.(*T) = value
		entry.lastFrame = m.frame
		return
	}
	v := new(T)
	*v = value
	m.data[key] = &dataEntry{value: v, lastFrame: m.frame}
}

// MemoryDelete removes the state of type T under id.
func MemoryDelete[T any](m *Memory, id Id) {
	var zero T
	key := dataKey{id: id, tp: reflect.TypeOf(zero)}
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

// memoryRange visits every entry whose value is of type *T.
func memoryRange[T any](m *Memory, visit func(id Id, value *T)) {
	var zero T
	tp := reflect.TypeOf(zero)
	m.mu.RLock()
	defer m.mu.RUnlock()
	for key, entry := range m.data {
		if key.tp == tp {
			visit(key.id, entry.value.(*T))
		}
	}
}

// --- Popup ---

// OpenPopup marks id as the open popup, closing any other.
func (m *Memory) OpenPopup(id Id) {
	if m.openPopup != id {
		uiLogger.Debug("popup opened", "id", id.Short())
	}
	m.openPopup = id
}

// ClosePopup closes the open popup if it is id (or any popup when id is
// IdNil).
func (m *Memory) ClosePopup(id Id) {
	if id == IdNil || m.openPopup == id {
		m.openPopup = IdNil
	}
}

// IsPopupOpen reports whether id is the currently open popup.
func (m *Memory) IsPopupOpen(id Id) bool {
	return m.openPopup != IdNil && m.openPopup == id
}

// AnyPopupOpen reports whether some popup is open.
func (m *Memory) AnyPopupOpen() bool {
	return m.openPopup != IdNil
}
