package pf

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ASCII returns the printable ASCII character codes (0x20 through 0x7E),
// the default charset for font conversion.
func ASCII() []byte {
	codes := make([]byte, 0, 95)
	for c := byte(0x20); c <= 0x7E; c++ {
		codes = append(codes, c)
	}
	return codes
}

// FromFace rasterizes charset through face and builds a font from the
// result. Every glyph gets the full line height (ascent plus descent) of
// the face, so all glyphs of the font share a vertical origin. Characters
// the face has no glyph for are skipped; a charset that leaves the default
// character without a glyph is an error.
func FromFace(face font.Face, charset []byte, defaultChar byte) (*Font, error) {
	var (
		metrics = face.Metrics()
		ascent  = metrics.Ascent.Ceil()
		height  = ascent + metrics.Descent.Ceil()
	)

	f := New(defaultChar)
	for _, code := range charset {
		bm, ok := rasterize(face, rune(code), ascent, height)
		if !ok {
			continue
		}
		glyph, err := Paged(bm)
		if err != nil {
			return nil, err
		}
		f.SetGlyph(code, glyph)
	}

	if _, ok := f.Lookup(defaultChar); !ok {
		return nil, fmt.Errorf("pf: face yields no glyph for default character %#02x", defaultChar)
	}
	return f, nil
}

func rasterize(face font.Face, r rune, ascent, height int) (Bitmap, bool) {
	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return Bitmap{}, false
	}

	var (
		x0    = bounds.Min.X.Floor()
		width = bounds.Max.X.Ceil() - x0
	)
	if width <= 0 {
		// Whitespace has an empty bounding box; carry the advance width
		// as an all-zero bitmap so the cursor still moves.
		x0 = 0
		width = advance.Ceil()
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(-x0, ascent),
	}
	d.DrawString(string(r))

	// Threshold at 50% coverage and pack rows MSB first.
	stride := (width + 7) / 8
	pix := make([]byte, height*stride)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if dst.GrayAt(x, y).Y >= 0x80 {
				pix[y*stride+x>>3] |= 0x80 >> uint(x&7)
			}
		}
	}

	return Bitmap{Width: width, Height: height, Pix: pix}, true
}
