package oled

import "fmt"

// Command set shared by the SSD1xxx / SH1106 controller family.
const (
	setLowColumn          = 0x00
	setHighColumn         = 0x10
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setIRefSelect         = 0xAD
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDeselect       = 0xDB
)

const (
	ssd1306DefaultWidth  = 128
	ssd1306DefaultHeight = 64
)

type ssd1306 struct {
	baseDisplay
	colStart byte
	colEnd   byte
}

// SSD1306 is a driver for the Solomon Systech SSD1306 OLED display.
func SSD1306(conn Conn, config *Config) (Display, error) {
	d := &ssd1306{
		baseDisplay: baseDisplay{
			c: conn,
		},
	}

	if config.Width == 0 {
		config.Width = ssd1306DefaultWidth
	}
	if config.Height == 0 {
		config.Height = ssd1306DefaultHeight
	}

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *ssd1306) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.width, d.height)
}

func (d *ssd1306) init(config *Config) (err error) {
	var (
		displayClockDiv byte
		comPins         byte
		colStart        byte
	)
	switch {
	case config.Width == 64 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 64 && config.Height == 48:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 96 && config.Height == 16:
		displayClockDiv, comPins, colStart = 0x60, 0x02, 0
	case config.Width == 128 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x02, 0
	case config.Width == 128 && config.Height == 64:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 0
	default:
		return fmt.Errorf("oled: SSD1306 unsupported size %dx%d", config.Width, config.Height)
	}

	// init base
	if err = d.baseDisplay.init(config); err != nil {
		return
	}
	d.colStart = colStart
	d.colEnd = colStart + byte(config.Width)

	// init display
	if err = d.command(
		setDisplayOff,
		setMemoryMode, 0x00, // horizontal addressing
		setStartLine,
		setSegmentRemap,
		setMultiplexRatio, byte(config.Height-1),
		setComScanDec,
		setDisplayOffset, 0x00,
		setComPins, comPins,
		setDisplayClockDiv, displayClockDiv,
		setPrecharge, 0xF1,
		setVComDeselect, 0x30,
		setDisplayAllOnResume,
		setNormalDisplay,
		setIRefSelect, 0x30,
		setChargePump, 0x14,
	); err != nil {
		return err
	}

	if err = d.SetContrast(0xCF); err != nil {
		return
	}
	if err = d.Refresh(); err != nil {
		return
	}
	if err = d.Show(true); err != nil {
		return
	}

	return
}

// Refresh sends the whole pixel buffer after opening a column/page
// address window covering the full display.
func (d *ssd1306) Refresh() (err error) {
	if err = d.command(
		setColumnAddr, d.colStart, d.colEnd-1,
	); err != nil {
		return
	}
	if err = d.command(
		setPageAddr, 0x00, byte(d.pages-1),
	); err != nil {
		return
	}
	return d.data(d.Pix...)
}
