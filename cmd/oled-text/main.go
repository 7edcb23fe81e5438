// Command oled-text draws a line of text on an SSD1306 or SH1106 OLED
// display connected over I²C or SPI.
//
//	oled-text -font terminus12.pf "hello, world"
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	driverFlag := flag.String("driver", "ssd1306", "Display driver (ssd1306, sh1106)")
	busFlag := flag.String("bus", "i2c", "Bus type (i2c, spi)")
	i2cDeviceFlag := flag.Int("i2c-dev", oled.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(oled.DefaultI2CConfig.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	spiSpeedFlag := flag.Int("spi-hz", 8_000_000, "SPI speed in Hz")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC, SPI only)")
	resetPinFlag := flag.String("reset", "", "Reset GPIO pin (optional)")
	fontFlag := flag.String("font", "", "Comma-separated .pf font files; the first one is active")
	useFlag := flag.String("use", "", "Name of the font to select (default: first loaded)")
	xFlag := flag.Int("x", 0, "Horizontal text position")
	yFlag := flag.Int("y", 0, "Vertical text position")
	contrastFlag := flag.Int("contrast", -1, "Contrast level (0-255)")
	invertFlag := flag.Bool("invert", false, "Invert the display")
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if *fontFlag == "" || text == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -font <file.pf>[,<file.pf>...] [options] <text>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		config = &oled.Config{
			Width:  *widthFlag,
			Height: *heightFlag,
		}
		conn oled.Conn
		err  error
	)
	switch *busFlag {
	case "i2c":
		conn, err = oled.OpenI2C(&oled.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   uint8(*i2cAddrFlag),
			Reset:  gpioreg.ByName(*resetPinFlag),
		})
	case "spi":
		conn, err = oled.OpenSPI(&oled.SPIConfig{
			Bus:      *spiBusFlag,
			Device:   *spiDeviceFlag,
			MaxSpeed: physic.Frequency(*spiSpeedFlag) * physic.Hertz,
			Reset:    gpioreg.ByName(*resetPinFlag),
			DC:       gpioreg.ByName(*dcPinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", *busFlag)
	}
	if err != nil {
		fatal(err)
	}

	var output oled.Display
	switch strings.ToLower(*driverFlag) {
	case "ssd1306":
		output, err = oled.SSD1306(conn, config)
	case "sh1106":
		output, err = oled.SH1106(conn, config)
	default:
		err = fmt.Errorf("unsupported driver %q", *driverFlag)
	}
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}

	for _, path := range strings.Split(*fontFlag, ",") {
		if err = loadFont(output, path); err != nil {
			fatal(err)
		}
	}
	if *useFlag != "" {
		if err = output.SelectFont(*useFlag); err != nil {
			fatal(err)
		}
	}

	if *contrastFlag >= 0 {
		if err = output.SetContrast(uint8(*contrastFlag)); err != nil {
			fatal(err)
		}
	}
	if err = output.Invert(*invertFlag); err != nil {
		fatal(err)
	}

	if err = output.Text(text, *xFlag, *yFlag); err != nil {
		fatal(err)
	}
	if err = output.Refresh(); err != nil {
		fatal(err)
	}
}

func loadFont(d oled.Display, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return d.LoadFont(name, f)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
