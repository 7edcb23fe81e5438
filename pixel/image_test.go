package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestPageImage(t *testing.T) {
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(128, 32),
		image.Pt(128, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewPageImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected color model %T, got %T", MonoModel, v)
			}

			if v := i.Pages(); v != (test.Y+7)/8 {
				it.Errorf("expected %d pages, got %d", (test.Y+7)/8, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := Mono{On: rand.Intn(2) == 1}
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y - 8; y < test.Y*2+8; y++ {
					for x := -test.X - 8; x < test.X*2+8; x++ {
						if (image.Point{X: x, Y: y}).In(i.Bounds()) {
							continue
						}
						i.Set(x, y, On)
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							return
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(On)
				for _, v := range i.Pix {
					if v != 0xff {
						itt.Fatalf("expected 0xff, got %#02x", v)
					}
				}
				i.Fill(Off)
				for _, v := range i.Pix {
					if v != 0x00 {
						itt.Fatalf("expected 0x00, got %#02x", v)
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Fill(On)
				i.Clear()
				for _, v := range i.Pix {
					if v != 0x00 {
						itt.Fatalf("expected 0x00, got %#02x", v)
					}
				}
			})
		})
	}
}

func TestPageImageBlitAligned(t *testing.T) {
	i := NewPageImage(128, 64)
	glyph := [][]byte{{0b10110001}}

	i.Blit(glyph, 0, 0)
	for n, v := range i.Pix {
		var want byte
		if n == 0 {
			want = 0b10110001
		}
		if v != want {
			t.Fatalf("byte %d is %#08b, expected %#08b", n, v, want)
		}
	}
}

func TestPageImageBlitStraddle(t *testing.T) {
	// One byte placed at y=1 splits across pages 0 and 1.
	i := NewPageImage(128, 64)
	glyph := [][]byte{{0b10110001}}

	i.Blit(glyph, 0, 1)
	for n, v := range i.Pix {
		var want byte
		switch n {
		case 0:
			want = 0b01100010
		case 128:
			want = 0b00000001
		}
		if v != want {
			t.Fatalf("byte %d is %#08b, expected %#08b", n, v, want)
		}
	}
}

func TestPageImageBlitShift(t *testing.T) {
	// A single-column 8-row glyph placed at y with shift s must light the
	// same rows as the source byte, moved down by y, for every s in [1,7].
	for shift := 1; shift < 8; shift++ {
		b := byte(rand.Intn(0xFF) + 1)
		y := 8 + shift

		i := NewPageImage(8, 32)
		i.Blit([][]byte{{b}}, 3, y)

		for row := 0; row < 32; row++ {
			want := Off
			if row >= y && row < y+8 && b&(1<<uint(row-y)) != 0 {
				want = On
			}
			if v := i.At(3, row); v != want {
				t.Fatalf("shift %d: pixel (3,%d) is %#+v, expected %#+v", shift, row, v, want)
			}
		}
		for row := 0; row < 32; row++ {
			for x := 0; x < 8; x++ {
				if x == 3 {
					continue
				}
				if v := i.At(x, row); v != Off {
					t.Fatalf("shift %d: pixel (%d,%d) lit outside the glyph column", shift, x, row)
				}
			}
		}
	}
}

func TestPageImageBlitMatchesSet(t *testing.T) {
	// Blitting random paged data must equal setting the same pixels one by
	// one, for aligned and unaligned placements.
	for n := 0; n < 100; n++ {
		var (
			w     = 1 + rand.Intn(12)
			pages = 1 + rand.Intn(3)
			x     = rand.Intn(48) - 8
			y     = rand.Intn(48) - 8
		)
		data := make([][]byte, pages)
		for p := range data {
			data[p] = make([]byte, w)
			for i := range data[p] {
				data[p][i] = byte(rand.Intn(256))
			}
		}

		got := NewPageImage(32, 32)
		got.Blit(data, x, y)

		want := NewPageImage(32, 32)
		for p := range data {
			for i, b := range data[p] {
				for bit := 0; bit < 8; bit++ {
					if b&(1<<uint(bit)) != 0 {
						want.Set(x+i, y+p*8+bit, On)
					}
				}
			}
		}

		for i := range want.Pix {
			if got.Pix[i] != want.Pix[i] {
				t.Fatalf("blit %dx%d pages at (%d,%d): byte %d is %#08b, expected %#08b",
					w, pages, x, y, i, got.Pix[i], want.Pix[i])
			}
		}
	}
}

func TestPageImageBlitClipped(t *testing.T) {
	testCases := []struct {
		name string
		x, y int
	}{
		{"left", -4, 8},
		{"right", 126, 8},
		{"top", 4, -12},
		{"bottom", 4, 60},
		{"top-unaligned", 4, -3},
		{"bottom-unaligned", 4, 61},
		{"far-out", -100, -100},
	}
	glyph := [][]byte{
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			i := NewPageImage(128, 64)
			i.Blit(glyph, test.x, test.y)

			for y := 0; y < 64; y++ {
				for x := 0; x < 128; x++ {
					want := Off
					if x >= test.x && x < test.x+8 && y >= test.y && y < test.y+16 {
						want = On
					}
					if v := i.At(x, y); v != want {
						it.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, v, want)
					}
				}
			}
		})
	}
}

func TestPageImageBlitIdempotent(t *testing.T) {
	glyph := [][]byte{{0x55, 0xaa, 0x0f}}

	once := NewPageImage(16, 16)
	once.Blit(glyph, 2, 3)

	twice := NewPageImage(16, 16)
	twice.Blit(glyph, 2, 3)
	twice.Blit(glyph, 2, 3)

	for i := range once.Pix {
		if once.Pix[i] != twice.Pix[i] {
			t.Fatalf("byte %d differs after second blit: %#08b != %#08b", i, twice.Pix[i], once.Pix[i])
		}
	}
}

func TestPageImageBlitMerges(t *testing.T) {
	// Overlapping blits OR together, they never erase.
	i := NewPageImage(8, 8)
	i.Blit([][]byte{{0x0f}}, 0, 0)
	i.Blit([][]byte{{0xf0}}, 0, 0)
	if i.Pix[0] != 0xff {
		t.Fatalf("expected overlapping blits to merge to 0xff, got %#08b", i.Pix[0])
	}
}
