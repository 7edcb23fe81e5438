package pf

import (
	"encoding/binary"
	"fmt"
)

// .pf header: 'P', 'F', default character code, character count.
const headerSize = 4

// Decode parses a .pf font stream. All glyphs are paged eagerly, so the
// returned Font carries no row-major data and rendering never touches the
// original blob again. A stream shorter than the header, a bad magic tag,
// a truncated character table, a bitmap offset past the end of the blob
// or a missing default character all fail with an error wrapping
// ErrFormat.
func Decode(data []byte) (*Font, error) {
	if len(data) < headerSize || data[0] != 'P' || data[1] != 'F' {
		return nil, ErrFormat
	}

	var (
		def   = data[2]
		count = int(data[3])
		table = data[headerSize:]
	)
	if len(table) < count*5 {
		return nil, fmt.Errorf("pf: truncated character table: %w", ErrFormat)
	}
	blob := table[count*5:]

	f := New(def)
	for i := 0; i < count; i++ {
		var (
			entry  = table[i*5 : i*5+5]
			code   = entry[0]
			width  = int(entry[1])
			height = int(entry[2])
			start  = int(binary.LittleEndian.Uint16(entry[3:5]))
			size   = height * ((width + 7) / 8)
		)
		if start+size > len(blob) {
			return nil, fmt.Errorf("pf: bitmap for character %#02x out of range: %w", code, ErrFormat)
		}
		glyph, err := Paged(Bitmap{Width: width, Height: height, Pix: blob[start : start+size]})
		if err != nil {
			return nil, err
		}
		f.SetGlyph(code, glyph)
	}

	// A font whose default character cannot be resolved would only fail
	// once an unknown character is drawn; reject it at load time instead.
	if _, ok := f.Lookup(def); !ok {
		return nil, fmt.Errorf("pf: default character %#02x not in table: %w", def, ErrFormat)
	}

	return f, nil
}

// Encode serializes the font to the .pf format, un-paging every glyph
// back to its row-major bitmap. The character table is written in the
// order the glyphs were added, so Decode followed by Encode reproduces
// the original stream byte for byte.
func Encode(f *Font) ([]byte, error) {
	if f.Len() > 0xFF {
		return nil, fmt.Errorf("pf: %d characters exceed the format limit of 255", f.Len())
	}
	if _, ok := f.Lookup(f.Default); !ok {
		return nil, fmt.Errorf("pf: default character %#02x not in table: %w", f.Default, ErrFormat)
	}

	var (
		out  = []byte{'P', 'F', f.Default, byte(f.Len())}
		blob []byte
	)
	for _, code := range f.codes {
		g := f.glyphs[code]
		if g.Width > 0xFF || g.Height > 0xFF {
			return nil, fmt.Errorf("pf: character %#02x is %dx%d, larger than 255 pixels", code, g.Width, g.Height)
		}
		start := len(blob)
		if start > 0xFFFF {
			return nil, fmt.Errorf("pf: bitmap blob exceeds the 16-bit offset limit")
		}
		out = append(out, code, byte(g.Width), byte(g.Height))
		out = binary.LittleEndian.AppendUint16(out, uint16(start))
		blob = append(blob, g.Bitmap().Pix...)
	}

	return append(out, blob...), nil
}
