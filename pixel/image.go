package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is the container used by PageImage.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// PageImage is a 1-bit per pixel monochrome image in the native memory
// layout of SSD1xxx OLED displays: each byte covers 8 vertically stacked
// pixels of one column, least significant bit on top, grouped in pages of
// 8 rows. The byte for pixel (x, y) sits at Pix[x + y/8*Stride], bit y%8.
type PageImage struct {
	Buffer
}

func NewPageImage(w, h int) *PageImage {
	pages := ((h + 7) & ^7) / 8 // round up to whole pages
	return &PageImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, pages*w),
			Stride: w,
		},
	}
}

func (p *PageImage) ColorModel() color.Model {
	return MonoModel
}

// Pages is the number of 8-row pages.
func (p *PageImage) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

func (p *PageImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

func (p *PageImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *PageImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Blit OR-composites pre-paged glyph data into the image with its top-left
// corner at (x, y). Each element of pages is one 8-row slice of the glyph,
// one byte per column, in the same layout as the image itself.
//
// Columns and pages outside the image are clipped; bits are only ever set,
// never cleared, so overlapping blits merge. When y is not a multiple of 8
// every source byte straddles two destination pages and is split: the low
// 8-(y%8) bits go into the upper page, the remaining bits spill into the
// page below.
func (p *PageImage) Blit(pages [][]byte, x, y int) {
	var (
		width     = p.Rect.Dx()
		pageCount = p.Pages()
		startPage = y >> 3 // arithmetic shift: floors for negative y
		shift     = uint(y & 7)
	)
	for po, slice := range pages {
		page := startPage + po
		for i, b := range slice {
			destX := x + i
			if destX < 0 || destX >= width {
				continue
			}
			if shift == 0 {
				if page >= 0 && page < pageCount {
					p.Pix[destX+page*p.Stride] |= b
				}
				continue
			}
			if page >= 0 && page < pageCount {
				p.Pix[destX+page*p.Stride] |= b << shift
			}
			if next := page + 1; next >= 0 && next < pageCount {
				p.Pix[destX+next*p.Stride] |= b >> (8 - shift)
			}
		}
	}
}

// Interface check.
var _ Image = (*PageImage)(nil)
