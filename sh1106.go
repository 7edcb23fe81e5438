package oled

import "fmt"

const (
	sh1106DefaultWidth  = 128
	sh1106DefaultHeight = 64
	sh1106SetPageAddr   = 0xB0

	// The SH1106 RAM is 132 columns wide; 128 wide panels are centered.
	sh1106ColOffset = 0x02
)

type sh1106 struct {
	baseDisplay
}

// SH1106 is a driver for the Sino Wealth SH1106 OLED display.
func SH1106(conn Conn, config *Config) (Display, error) {
	d := &sh1106{
		baseDisplay: baseDisplay{
			c: conn,
		},
	}

	if config.Width == 0 {
		config.Width = sh1106DefaultWidth
	}
	if config.Height == 0 {
		config.Height = sh1106DefaultHeight
	}

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *sh1106) String() string {
	return fmt.Sprintf("SH1106 OLED %dx%d", d.width, d.height)
}

func (d *sh1106) init(config *Config) (err error) {
	var (
		multiplexRatio byte
		displayOffset  byte
	)
	switch {
	case config.Width == 128 && config.Height == 32:
		multiplexRatio, displayOffset = 0x20, 0x0F
	case config.Width == 128 && config.Height == 64:
		multiplexRatio, displayOffset = 0x3F, 0x00
	case config.Width == 128 && config.Height == 128:
		multiplexRatio, displayOffset = 0xFF, 0x02
	default:
		return fmt.Errorf("oled: SH1106 unsupported size %dx%d", config.Width, config.Height)
	}

	// init base
	if err = d.baseDisplay.init(config); err != nil {
		return
	}

	// init display
	if err = d.command(
		setDisplayOff,
		setMemoryMode,
		setStartLine,
		setSegmentRemap,
		setNormalDisplay,
		setMultiplexRatio, multiplexRatio,
		setDisplayAllOnResume,
		setDisplayOffset, displayOffset,
		setDisplayClockDiv, 0xF0,
		setPrecharge, 0x22,
		setComScanDec,
		setComPins, 0x12,
		setVComDeselect, 0x20,
		setChargePump, 0x14,
	); err != nil {
		return err
	}

	if err = d.SetContrast(0x7F); err != nil {
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

// Refresh sends the pixel buffer one page at a time; the SH1106 has no
// windowed addressing mode.
func (d *sh1106) Refresh() (err error) {
	for page := 0; page < d.pages; page++ {
		if err = d.command(
			sh1106SetPageAddr | byte(page&0x7),
			setLowColumn | sh1106ColOffset,
			setHighColumn,
		); err != nil {
			return
		}
		var (
			off = page * d.width
			end = off + d.width
		)
		if err = d.data(d.Pix[off:end]...); err != nil {
			return
		}
	}
	return nil
}
