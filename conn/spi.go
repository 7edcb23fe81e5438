package conn

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPI wraps a periph SPI port connected to a display.
type SPI struct {
	port spi.PortCloser
	conn conn.Conn
}

// OpenSPI opens the numbered SPI bus and chip select and configures it
// for mode 0 at the requested speed. A negative bus number selects the
// first available port.
func OpenSPI(bus, device int, maxSpeed physic.Frequency) (*SPI, error) {
	var name string
	if bus >= 0 {
		name = fmt.Sprintf("SPI%d.%d", bus, device)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	c, err := port.Connect(maxSpeed, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	return &SPI{
		port: port,
		conn: c,
	}, nil
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI bus %s", c.port)
}

func (c *SPI) Close() error {
	return c.port.Close()
}

func (c *SPI) Write(p []byte) (int, error) {
	return len(p), c.conn.Tx(p, nil)
}
