package pf

import "errors"

// Errors.
var (
	ErrFormat          = errors.New("pf: unknown font format")
	ErrGlyphDimensions = errors.New("pf: invalid glyph dimensions")
)

// Bitmap is a row-major 1-bit-per-pixel glyph bitmap, as produced by a
// rasterizer: Height rows of ceil(Width/8) bytes each, most significant
// bit first, unused trailing bits in the last byte of a row zero.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// Glyph is a character bitmap in paged form: ceil(Height/8) page slices
// of Width bytes each, where bit k of Pages[p][x] covers the pixel at
// column x, row 8*p+k. Width is also the advance width of the character.
type Glyph struct {
	Width  int
	Height int
	Pages  [][]byte
}

// Font maps character codes to paged glyphs. The Default code is rendered
// in place of any code that has no glyph; it must be present in the table
// (Decode and Encode enforce this).
//
// A Font is not safe for concurrent mutation, but is never mutated by the
// renderer, so concurrent read-only use is fine.
type Font struct {
	Name    string
	Default byte

	codes  []byte
	glyphs map[byte]*Glyph
}

func New(defaultChar byte) *Font {
	return &Font{
		Default: defaultChar,
		glyphs:  make(map[byte]*Glyph),
	}
}

// SetGlyph adds or replaces the glyph for code. New codes keep their
// insertion order, which is also the order Encode writes the character
// table in.
func (f *Font) SetGlyph(code byte, g *Glyph) {
	if _, ok := f.glyphs[code]; !ok {
		f.codes = append(f.codes, code)
	}
	f.glyphs[code] = g
}

// Lookup returns the glyph for code, without falling back to the default.
func (f *Font) Lookup(code byte) (*Glyph, bool) {
	g, ok := f.glyphs[code]
	return g, ok
}

// Glyph returns the glyph for code, or the default glyph if the code is
// not in the table.
func (f *Font) Glyph(code byte) *Glyph {
	if g, ok := f.glyphs[code]; ok {
		return g
	}
	return f.glyphs[f.Default]
}

// Len is the number of characters in the table.
func (f *Font) Len() int {
	return len(f.codes)
}

// Codes returns the character codes in table order.
func (f *Font) Codes() []byte {
	return append([]byte(nil), f.codes...)
}
