package pf

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

// testFontData is a hand-built two-character font: 'A' is a 1x8 column
// with rows 0, 4, 5 and 7 lit (pages to the single byte 0b10110001), '?'
// is a 2x4 cross-hatch and the default.
var testFontData = []byte{
	'P', 'F', '?', 2,
	'A', 1, 8, 0, 0,
	'?', 2, 4, 8, 0,
	0x80, 0x00, 0x00, 0x00, 0x80, 0x80, 0x00, 0x80,
	0b10000000, 0b01000000, 0b10000000, 0b01000000,
}

func TestDecode(t *testing.T) {
	f, err := Decode(testFontData)
	if err != nil {
		t.Fatal(err)
	}
	if f.Default != '?' {
		t.Errorf("default character is %q, expected '?'", f.Default)
	}
	if f.Len() != 2 {
		t.Errorf("table has %d characters, expected 2", f.Len())
	}

	a, ok := f.Lookup('A')
	if !ok {
		t.Fatal("no glyph for 'A'")
	}
	if a.Width != 1 || a.Height != 8 || len(a.Pages) != 1 {
		t.Fatalf("glyph 'A' is %dx%d with %d pages", a.Width, a.Height, len(a.Pages))
	}
	if a.Pages[0][0] != 0b10110001 {
		t.Errorf("glyph 'A' page is %#08b, expected 0b10110001", a.Pages[0][0])
	}

	q, ok := f.Lookup('?')
	if !ok {
		t.Fatal("no glyph for '?'")
	}
	// Rows 1000 / 0100 / 1000 / 0100 pack to columns 0101 and 1010.
	if q.Pages[0][0] != 0b0101 || q.Pages[0][1] != 0b1010 {
		t.Errorf("glyph '?' pages to [%#08b %#08b]", q.Pages[0][0], q.Pages[0][1])
	}
}

func TestDecodeRejects(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte{'P', 'F', '?'}},
		{"bad-magic", []byte{'p', 'f', '?', 0}},
		{"not-a-font", []byte("GIF89a")},
		{"truncated-table", []byte{'P', 'F', 'A', 2, 'A', 1, 8, 0, 0}},
		{"bitmap-out-of-range", []byte{'P', 'F', 'A', 1, 'A', 1, 8, 4, 0, 0xFF}},
		{"missing-default", []byte{'P', 'F', '?', 1, 'A', 1, 8, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			f, err := Decode(test.data)
			if !errors.Is(err, ErrFormat) {
				it.Fatalf("expected ErrFormat, got %v", err)
			}
			if f != nil {
				it.Fatal("got a font alongside the error")
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f, err := Decode(testFontData)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Encode(f)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, testFontData) {
		t.Fatalf("re-encoded font differs:\n got %v\nwant %v", data, testFontData)
	}
}

func TestEncodeRandomRoundTrip(t *testing.T) {
	f := New(0)
	for code := 0; code < 96; code++ {
		g, err := Paged(testRandomBitmap(1+rand.Intn(16), 1+rand.Intn(24)))
		if err != nil {
			t.Fatal(err)
		}
		f.SetGlyph(byte(code), g)
	}

	data, err := Encode(f)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Encode(back)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, again) {
		t.Fatal("decode/encode is not a fixed point")
	}
}

func TestEncodeLimits(t *testing.T) {
	t.Run("missing-default", func(it *testing.T) {
		f := New('?')
		g, _ := Paged(Bitmap{Width: 1, Height: 1, Pix: []byte{0x80}})
		f.SetGlyph('A', g)
		if _, err := Encode(f); !errors.Is(err, ErrFormat) {
			it.Fatalf("expected ErrFormat, got %v", err)
		}
	})

	t.Run("blob-overflow", func(it *testing.T) {
		// 10 glyphs of 248x255 push the last start offset past 0xFFFF.
		f := New(0)
		for code := 0; code < 10; code++ {
			g, err := Paged(Bitmap{Width: 248, Height: 255, Pix: make([]byte, 255*31)})
			if err != nil {
				it.Fatal(err)
			}
			f.SetGlyph(byte(code), g)
		}
		if _, err := Encode(f); err == nil {
			it.Fatal("expected an offset overflow error")
		}
	})
}
