package ui

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/frameloop/ui/geom"
)

// CharRange is a half-open range of character (rune) indices into a
// galley's text.
type CharRange struct {
	Start int
	End   int
}

// Len returns the number of characters in the range.
func (r CharRange) Len() int { return r.End - r.Start }

// Contains reports whether the character index lies in the range.
func (r CharRange) Contains(i int) bool { return r.Start <= i && i < r.End }

// Glyph is one paintable quad of a laid-out row. Rect is relative to the
// galley origin; UV addresses the font atlas in normalized coordinates.
type Glyph struct {
	Char  rune
	Rect  geom.Rect
	UV    geom.Rect
	Color Color32
}

// Row is one visual line of a galley. Chars are the characters shown on
// the row; a terminating newline is not part of the range but sets
// EndsWithNewline (the next row then starts one index later). Advances
// holds one fixed-point advance per character, so caret positions come
// out exactly the same wherever they are computed.
type Row struct {
	Chars           CharRange
	Advances        []fixed.Int26_6
	Glyphs          []Glyph
	Rect            geom.Rect
	EndsWithNewline bool
}

// XOffset returns the x position of the caret boundary before the j'th
// character of the row, relative to the row's left edge. j may equal
// len(Advances), meaning the boundary after the last character.
func (r *Row) XOffset(j int) float32 {
	var x fixed.Int26_6
	for k := 0; k < j && k < len(r.Advances); k++ {
		x += r.Advances[k]
	}
	return fromFixed(x)
}

// Width returns the occupied width of the row.
func (r *Row) Width() float32 { return r.Rect.Width() }

// boundaryAtX returns the caret boundary nearest to x, in row-relative
// coordinates. Positions left of a character's midpoint land before it.
func (r *Row) boundaryAtX(x float32) int {
	var acc fixed.Int26_6
	for j, adv := range r.Advances {
		mid := fromFixed(acc) + fromFixed(adv)/2
		if x < mid {
			return j
		}
		acc += adv
	}
	return len(r.Advances)
}

// Galley is text laid out into rows, ready to paint and to run cursor
// geometry against. Galleys are immutable once built; widgets rebuild
// them when the text or the available width changes.
type Galley struct {
	Text string
	Rows []Row
	Size geom.Vec2
}

// CharCount returns the number of characters the galley covers,
// including newlines.
func (g *Galley) CharCount() int {
	if len(g.Rows) == 0 {
		return 0
	}
	last := &g.Rows[len(g.Rows)-1]
	n := last.Chars.End
	if last.EndsWithNewline {
		n++
	}
	return n
}

// RowForChar returns the index of the row holding the character index.
// A wrap boundary resolves to the earlier row; use rowForCursor when a
// CCursor's PreferNextRow flag should be honored.
func (g *Galley) RowForChar(index int) int {
	for ri := range g.Rows {
		row := &g.Rows[ri]
		end := row.Chars.End
		if row.EndsWithNewline {
			// The newline itself belongs to this row for caret purposes.
			end++
		}
		if index < end {
			return ri
		}
		if index == row.Chars.End && !row.EndsWithNewline {
			return ri
		}
	}
	return len(g.Rows) - 1
}

func (g *Galley) rowForCursor(c CCursor) int {
	ri := g.RowForChar(c.Index)
	if c.PreferNextRow && ri+1 < len(g.Rows) {
		row := &g.Rows[ri]
		if !row.EndsWithNewline && c.Index == row.Chars.End {
			ri++
		}
	}
	return ri
}

// CursorFromPos returns the caret boundary nearest to pos, which is
// relative to the galley origin. Clicks at the start of a wrapped row
// prefer that row over the end of the previous one.
func (g *Galley) CursorFromPos(pos geom.Vec2) CCursor {
	if len(g.Rows) == 0 {
		return CCursor{}
	}
	ri := len(g.Rows) - 1
	for i := range g.Rows {
		if pos.Y < g.Rows[i].Rect.Max.Y {
			ri = i
			break
		}
	}
	return g.cursorFromRowX(ri, pos.X)
}

// cursorFromRowX returns the caret boundary nearest to x on row ri.
func (g *Galley) cursorFromRowX(ri int, x float32) CCursor {
	if len(g.Rows) == 0 {
		return CCursor{}
	}
	ri = geom.Clamp(ri, 0, len(g.Rows)-1)
	row := &g.Rows[ri]
	j := row.boundaryAtX(x - row.Rect.Min.X)
	c := CCursor{Index: row.Chars.Start + j}
	if j == 0 && ri > 0 && !g.Rows[ri-1].EndsWithNewline {
		c.PreferNextRow = true
	}
	return c
}

// PosFromCursor returns the caret rect for the cursor: a zero-width
// rect spanning the row's height, relative to the galley origin.
func (g *Galley) PosFromCursor(c CCursor) geom.Rect {
	if len(g.Rows) == 0 {
		return geom.Rect{}
	}
	c.Index = geom.Clamp(c.Index, 0, g.CharCount())
	ri := g.rowForCursor(c)
	row := &g.Rows[ri]
	j := geom.Clamp(c.Index-row.Chars.Start, 0, len(row.Advances))
	x := row.Rect.Min.X + row.XOffset(j)
	return geom.RectFromMinMax(geom.P(x, row.Rect.Min.Y), geom.P(x, row.Rect.Max.Y))
}

// TextFormat selects how a layouter renders a string.
type TextFormat struct {
	// Size is the line height in points. Zero uses the layouter's native
	// size.
	Size float32
	// Color is baked into the galley's glyphs. Transparent means white;
	// painting with an override replaces it either way.
	Color Color32
}

// TextLayouter turns strings into galleys. The built-in implementation
// is MonospaceLayouter over the bundled bitmap font; integrations with a
// real font stack provide their own and upload whatever atlas textures
// they shape against.
type TextLayouter interface {
	Layout(text string, format TextFormat, wrapWidth float32) *Galley
}

// MonospaceLayouter lays text out on the built-in fixed-width bitmap
// font. It wraps at wrapWidth, honors newlines and expands tabs to
// four-character stops. Every character advances the same amount, which
// keeps caret math exact for tests and headless use.
type MonospaceLayouter struct {
	CharWidth  float32
	LineHeight float32
}

// NewMonospaceLayouter returns a layouter with the metrics of the
// built-in 7x13 font.
func NewMonospaceLayouter() *MonospaceLayouter {
	f := basicfont.Face7x13
	return &MonospaceLayouter{
		CharWidth:  float32(f.Advance),
		LineHeight: float32(f.Height),
	}
}

const tabStopChars = 4

// Layout implements TextLayouter.
func (l *MonospaceLayouter) Layout(text string, format TextFormat, wrapWidth float32) *Galley {
	scale := float32(1)
	if format.Size > 0 && l.LineHeight > 0 {
		scale = format.Size / l.LineHeight
	}
	lineH := l.LineHeight * scale
	charAdv := toFixed(l.CharWidth * scale)
	glyphW := l.CharWidth * scale * fontGlyphWidthFraction
	color := format.Color
	if color.A() == 0 {
		color = RGB(255, 255, 255)
	}
	wrap := wrapWidth > 0 && isFinite32(wrapWidth)

	g := &Galley{Text: text}
	var (
		row      Row
		x        fixed.Int26_6
		maxWidth float32
	)
	rowTop := func() float32 { return float32(len(g.Rows)) * lineH }
	finishRow := func(end int, newline bool) {
		row.Chars.End = end
		row.EndsWithNewline = newline
		w := fromFixed(x)
		row.Rect = geom.RectFromMinSize(geom.P(0, rowTop()), geom.V(w, lineH))
		if w > maxWidth {
			maxWidth = w
		}
		g.Rows = append(g.Rows, row)
		row = Row{Chars: CharRange{Start: end, End: end}}
		x = 0
	}

	i := 0
	for _, r := range text {
		switch r {
		case '\n':
			finishRow(i, true)
			row.Chars.Start = i + 1
			row.Chars.End = i + 1
		case '\t':
			adv := charAdv
			if stop := charAdv * tabStopChars; stop > 0 {
				adv = stop - x%stop
				if wrap && len(row.Advances) > 0 && fromFixed(x+adv) > wrapWidth {
					finishRow(i, false)
					adv = stop
				}
			}
			row.Advances = append(row.Advances, adv)
			x += adv
		default:
			if wrap && len(row.Advances) > 0 && fromFixed(x+charAdv) > wrapWidth {
				finishRow(i, false)
			}
			gi := fontGlyphIndex(r)
			row.Glyphs = append(row.Glyphs, Glyph{
				Char:  r,
				Rect:  geom.RectFromMinSize(geom.P(fromFixed(x), rowTop()), geom.V(glyphW, lineH)),
				UV:    fontGlyphUV(gi),
				Color: color,
			})
			row.Advances = append(row.Advances, charAdv)
			x += charAdv
		}
		i++
	}
	finishRow(i, false)

	g.Size = geom.V(maxWidth, float32(len(g.Rows))*lineH)
	return g
}

// LayoutSingleLine lays text out without wrapping.
func (l *MonospaceLayouter) LayoutSingleLine(text string, format TextFormat) *Galley {
	return l.Layout(text, format, 0)
}

func toFixed(f float32) fixed.Int26_6 {
	return fixed.Int26_6(f*64 + 0.5)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// --- built-in font atlas ---

// The default atlas is a 128x128 image: a solid white 2x2 block at the
// origin (the target of WhiteUV) and the 96 glyphs of the 7x13 bitmap
// font in 8x14 cells, 16 per row, starting at y=16.
const (
	fontAtlasSize   = 128
	fontAtlasCellW  = 8
	fontAtlasCellH  = 14
	fontAtlasCols   = 16
	fontAtlasTop    = 16
	fontAtlasGlyphs = 96

	// The 7x13 font draws a 6-wide mask per 7-wide advance; glyph quads
	// take the same fraction of whatever advance the layouter uses.
	fontGlyphWidthFraction = 6.0 / 7.0
)

// fontGlyphIndex maps a rune to its atlas slot. Runes outside printable
// ASCII share the replacement slot.
func fontGlyphIndex(r rune) int {
	if r >= 0x20 && r < 0x7f {
		return int(r - 0x20)
	}
	return fontAtlasGlyphs - 1
}

// fontGlyphUV returns the normalized atlas rect of glyph slot i.
func fontGlyphUV(i int) geom.Rect {
	f := basicfont.Face7x13
	cx := float32((i % fontAtlasCols) * fontAtlasCellW)
	cy := float32(fontAtlasTop + (i/fontAtlasCols)*fontAtlasCellH)
	return geom.RectFromMinMax(
		geom.P(cx/fontAtlasSize, cy/fontAtlasSize),
		geom.P((cx+float32(f.Width))/fontAtlasSize, (cy+float32(f.Height))/fontAtlasSize),
	)
}

// buildFontAtlas rasterizes the built-in font into the image behind
// TextureIdFont. Premultiplied white on transparent, so glyph quads tint
// by vertex color.
func buildFontAtlas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fontAtlasSize, fontAtlasSize))
	draw.Draw(img, image.Rect(0, 0, 2, 2), image.White, image.Point{}, draw.Src)

	f := basicfont.Face7x13
	for i := 0; i < fontAtlasGlyphs; i++ {
		cx := (i % fontAtlasCols) * fontAtlasCellW
		cy := fontAtlasTop + (i/fontAtlasCols)*fontAtlasCellH
		dst := image.Rect(cx, cy, cx+f.Width, cy+f.Height)
		draw.DrawMask(img, dst, image.White, image.Point{}, f.Mask, image.Pt(0, i*f.Height), draw.Over)
	}
	return img
}
