// Package oled renders text on page-addressed monochrome OLED displays.
//
// The pixel buffer uses the SSD1xxx native layout (8-row pages, one byte
// per column) and text is drawn from pre-paged .pf fonts (see the pf
// package), so a glyph blit is pure byte-wise OR arithmetic and Refresh
// can hand the buffer to the controller verbatim.
package oled

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/BeatGlow/oled/pf"
	"github.com/BeatGlow/oled/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("OLED_DEBUG") != ""
}

// Errors
var (
	ErrNoActiveFont  = errors.New("oled: no font loaded")
	ErrFontNotLoaded = errors.New("oled: font not loaded")
)

// Display is a monochrome page-addressed OLED display.
type Display interface {
	// Close the display driver.
	Close() error

	// Clear the display buffer.
	Clear()

	// Fill the display buffer with a single color.
	Fill(c color.Color)

	// At returns the color of the pixel at (x, y).
	At(x, y int) color.Color

	// Set the pixel color at (x, y). Out-of-bounds pixels are ignored.
	Set(x, y int, c color.Color)

	// Bounds is the display bounding box (dimensions).
	Bounds() image.Rectangle

	// ColorModel used by the display.
	ColorModel() color.Model

	// Image is the backing pixel buffer, in the page-packed layout the
	// controller receives on Refresh.
	Image() *pixel.PageImage

	// LoadFont decodes a .pf font stream and registers it under name.
	// The first font loaded becomes the active font.
	LoadFont(name string, r io.Reader) error

	// AddFont registers an already decoded font under name.
	AddFont(name string, f *pf.Font)

	// SelectFont makes a previously loaded font the active one.
	SelectFont(name string) error

	// Text draws s at (x, y) using the active font.
	Text(s string, x, y int) error

	// Show toggles the display on or off.
	Show(bool) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error

	// Invert toggles inverted output without touching the buffer.
	Invert(bool) error

	// Refresh redraws the display.
	Refresh() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels, a multiple of 8.
	Height int
}

type baseDisplay struct {
	*pixel.PageImage
	c      Conn
	width  int
	height int
	pages  int
	fonts  map[string]*pf.Font
	active *pf.Font
	halted bool
}

func (d *baseDisplay) init(config *Config) error {
	d.PageImage = pixel.NewPageImage(config.Width, config.Height)
	d.width = config.Width
	d.height = config.Height
	d.pages = d.PageImage.Pages()
	d.fonts = make(map[string]*pf.Font)
	return nil
}

func (d *baseDisplay) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *baseDisplay) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *baseDisplay) Image() *pixel.PageImage {
	return d.PageImage
}

func (d *baseDisplay) LoadFont(name string, r io.Reader) (err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("oled: reading font %q: %w", name, err)
	}
	f, err := pf.Decode(data)
	if err != nil {
		return err
	}
	f.Name = name
	d.AddFont(name, f)
	return nil
}

func (d *baseDisplay) AddFont(name string, f *pf.Font) {
	d.fonts[name] = f
	if d.active == nil {
		d.active = f
	}
}

func (d *baseDisplay) SelectFont(name string) error {
	f, ok := d.fonts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFontNotLoaded, name)
	}
	d.active = f
	return nil
}

// Text draws s at (x, y) using the active font, advancing x by each
// glyph's width. Characters without a glyph render as the font's default
// character; pixels outside the display are clipped, never an error.
func (d *baseDisplay) Text(s string, x, y int) error {
	if d.active == nil {
		return ErrNoActiveFont
	}
	if debug {
		log.Printf("oled: text %q at (%d,%d) using font %q", s, x, y, d.active.Name)
	}
	for i := 0; i < len(s); i++ {
		g := d.active.Glyph(s[i])
		d.PageImage.Blit(g.Pages, x, y)
		x += g.Width
	}
	return nil
}

func (d *baseDisplay) Show(show bool) error {
	if show {
		return d.command(setDisplayOn)
	}
	return d.command(setDisplayOff)
}

func (d *baseDisplay) SetContrast(level uint8) error {
	return d.command(setContrast, level)
}

func (d *baseDisplay) Invert(invert bool) error {
	if invert {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}

func (d *baseDisplay) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}
