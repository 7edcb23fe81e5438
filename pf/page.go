package pf

// Paged converts a row-major glyph bitmap into the paged column-major form
// used by the display RAM. Every set source pixel (x, y) sets bit y%8 of
// byte x in page slice y/8; the transform is exact and reversible (see
// [Glyph.Bitmap]). A zero width or height yields a glyph with no pixels;
// negative dimensions or a pixel slice shorter than Height rows are
// rejected with ErrGlyphDimensions.
func Paged(bm Bitmap) (*Glyph, error) {
	if bm.Width < 0 || bm.Height < 0 {
		return nil, ErrGlyphDimensions
	}
	stride := (bm.Width + 7) / 8
	if len(bm.Pix) < bm.Height*stride {
		return nil, ErrGlyphDimensions
	}

	pages := make([][]byte, (bm.Height+7)/8)
	for i := range pages {
		pages[i] = make([]byte, bm.Width)
	}
	for y := 0; y < bm.Height; y++ {
		row := bm.Pix[y*stride : (y+1)*stride]
		for x := 0; x < bm.Width; x++ {
			if row[x>>3]&(0x80>>uint(x&7)) != 0 {
				pages[y>>3][x] |= 1 << uint(y&7)
			}
		}
	}

	return &Glyph{Width: bm.Width, Height: bm.Height, Pages: pages}, nil
}

// Bitmap reconstructs the row-major MSB-first bitmap from the paged form.
// It is the exact inverse of [Paged] and is what Encode serializes.
func (g *Glyph) Bitmap() Bitmap {
	stride := (g.Width + 7) / 8
	pix := make([]byte, g.Height*stride)
	for y := 0; y < g.Height; y++ {
		var (
			page = g.Pages[y>>3]
			bit  = byte(1) << uint(y&7)
		)
		for x := 0; x < g.Width; x++ {
			if page[x]&bit != 0 {
				pix[y*stride+x>>3] |= 0x80 >> uint(x&7)
			}
		}
	}
	return Bitmap{Width: g.Width, Height: g.Height, Pix: pix}
}
