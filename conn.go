package oled

import (
	"errors"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/oled/conn"
)

// Conn errors.
var (
	ErrDCPin = errors.New("oled: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Reset pin, optional.
	Reset gpio.PinOut
}

var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3C,
}

type i2cConn struct {
	*conn.I2C
	reset gpio.PinOut
}

func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	return &i2cConn{
		I2C:   c,
		reset: config.Reset,
	}, nil
}

func (c *i2cConn) Command(cmnd byte, args ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{0x00, cmnd}, args...))
	return
}

func (c *i2cConn) Data(data ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{0x40}, data...))
	return
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil {
		return nil
	}
	return c.reset.Out(level)
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int
	Device    int
	MaxSpeed  physic.Frequency
	BatchSize uint

	// Reset pin, optional.
	Reset gpio.PinOut

	// DC is the data/command pin, required.
	DC gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	MaxSpeed:  8 * physic.MegaHertz,
	BatchSize: 4096,
}

type spiConn struct {
	bus       *conn.SPI
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcKnown   bool
	batchSize uint
}

func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	if config.MaxSpeed == 0 {
		config.MaxSpeed = DefaultSPIConfig.MaxSpeed
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultSPIConfig.BatchSize
	}

	c, err := conn.OpenSPI(config.Bus, config.Device, config.MaxSpeed)
	if err != nil {
		return nil, err
	}

	return &spiConn{
		bus:       c,
		batchSize: config.BatchSize,
		reset:     config.Reset,
		dc:        config.DC,
	}, nil
}

func (c *spiConn) String() string {
	return c.bus.String()
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	if c.reset == nil {
		return nil
	}
	return c.reset.Out(level)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcKnown || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
		c.dcKnown = true
	}
	return nil
}

// Command sends the command byte and its arguments with DC low; the
// SSD1xxx family reads command parameters in command mode.
func (c *spiConn) Command(cmnd byte, args ...byte) (err error) {
	if err = c.updateDC(gpio.Low); err != nil {
		return
	}
	_, err = c.bus.Write(append([]byte{cmnd}, args...))
	return
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.High); err != nil {
		return
	}
	return c.writeChunked(data)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	if len(data) < int(c.batchSize) {
		_, err = c.bus.Write(data)
		return
	}

	if debug {
		log.Printf("oled: write %d bytes of data in %d chunks", len(data), (len(data)+int(c.batchSize)-1)/int(c.batchSize))
	}
	buffer := data
	for len(buffer) > 0 {
		if len(buffer) > int(c.batchSize) {
			if _, err = c.bus.Write(buffer[:c.batchSize]); err != nil {
				return
			}
			buffer = buffer[c.batchSize:]
		} else {
			if _, err = c.bus.Write(buffer); err != nil {
				return
			}
			buffer = nil
		}
	}
	return
}
