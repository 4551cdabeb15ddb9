package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/frameloop/ui/geom"
)

// stateSnapshot is the on-disk form of the persistable Memory stores.
// Ids are hex strings; values are flattened to plain floats so old
// snapshots keep decoding after geometry types change. Unknown keys are
// tolerated on load.
type stateSnapshot struct {
	Version    int                   `toml:"version"`
	Scroll     map[string]scrollSnap `toml:"scroll,omitempty"`
	Resize     map[string]sizeSnap   `toml:"resize,omitempty"`
	Grid       map[string]gridSnap   `toml:"grid,omitempty"`
	Collapsing map[string]bool       `toml:"collapsing,omitempty"`
	Areas      map[string]posSnap    `toml:"areas,omitempty"`
}

type scrollSnap struct {
	OffsetX float32 `toml:"offset_x"`
	OffsetY float32 `toml:"offset_y"`
	Pinned  bool    `toml:"pinned,omitempty"`
}

type sizeSnap struct {
	W float32 `toml:"w"`
	H float32 `toml:"h"`
}

type gridSnap struct {
	Cols []float32 `toml:"cols,omitempty"`
	Rows []float32 `toml:"rows,omitempty"`
}

type posSnap struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

const snapshotVersion = 1

func idKey(id Id) string {
	return fmt.Sprintf("%016x", uint64(id))
}

func parseIdKey(s string) (Id, bool) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return IdNil, false
	}
	return Id(v), true
}

// SaveState writes a TOML snapshot of the persistable stores: scroll
// offsets, resize sizes, grid track widths, collapsing open flags and
// floating-area positions. Transient state (focus, interaction,
// animation clocks) is not saved.
func (m *Memory) SaveState(w io.Writer) error {
	snap := stateSnapshot{
		Version:    snapshotVersion,
		Scroll:     map[string]scrollSnap{},
		Resize:     map[string]sizeSnap{},
		Grid:       map[string]gridSnap{},
		Collapsing: map[string]bool{},
		Areas:      map[string]posSnap{},
	}
	memoryRange(m, func(id Id, s *ScrollAreaState) {
		snap.Scroll[idKey(id)] = scrollSnap{OffsetX: s.Offset.X, OffsetY: s.Offset.Y, Pinned: s.PinnedToBottom}
	})
	memoryRange(m, func(id Id, s *ResizeState) {
		snap.Resize[idKey(id)] = sizeSnap{W: s.DesiredSize.X, H: s.DesiredSize.Y}
	})
	memoryRange(m, func(id Id, s *GridState) {
		snap.Grid[idKey(id)] = gridSnap{Cols: s.ColWidths, Rows: s.RowHeights}
	})
	memoryRange(m, func(id Id, s *collapsingState) {
		snap.Collapsing[idKey(id)] = s.Open
	})
	memoryRange(m, func(id Id, s *AreaState) {
		if s.placed {
			snap.Areas[idKey(id)] = posSnap{X: s.Pos.X, Y: s.Pos.Y}
		}
	})
	return toml.NewEncoder(w).Encode(snap)
}

// LoadState restores a snapshot written by SaveState. Call it before the
// first frame so the loaded entries are read before they go stale.
// Unknown keys and malformed ids are skipped, not fatal; only a broken
// TOML document returns an error.
func (m *Memory) LoadState(r io.Reader) error {
	var snap stateSnapshot
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return fmt.Errorf("decode state snapshot: %w", err)
	}
	skipped := 0
	for key, s := range snap.Scroll {
		id, ok := parseIdKey(key)
		if !ok {
			skipped++
			continue
		}
		MemorySet(m, id, ScrollAreaState{Offset: geom.V(s.OffsetX, s.OffsetY), PinnedToBottom: s.Pinned})
	}
	for key, s := range snap.Resize {
		id, ok := parseIdKey(key)
		if !ok {
			skipped++
			continue
		}
		MemorySet(m, id, ResizeState{DesiredSize: geom.V(s.W, s.H)})
	}
	for key, s := range snap.Grid {
		id, ok := parseIdKey(key)
		if !ok {
			skipped++
			continue
		}
		MemorySet(m, id, GridState{ColWidths: s.Cols, RowHeights: s.Rows})
	}
	for key, open := range snap.Collapsing {
		id, ok := parseIdKey(key)
		if !ok {
			skipped++
			continue
		}
		MemorySet(m, id, collapsingState{Open: open})
	}
	for key, s := range snap.Areas {
		id, ok := parseIdKey(key)
		if !ok {
			skipped++
			continue
		}
		MemorySet(m, id, AreaState{Pos: geom.P(s.X, s.Y), placed: true})
	}
	if skipped > 0 {
		uiLogger.Warn("state snapshot: skipped malformed ids", "count", skipped)
	}
	return nil
}
