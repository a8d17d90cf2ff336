// internal/driver/i2cbus/periph.go
package i2cbus

import (
	"time"

	"periph.io/x/conn/v3/i2c"

	"github.com/tamzrod/i2c-sentry/internal/driver"
	"github.com/tamzrod/i2c-sentry/internal/status"
)

// Capabilities builds the driver transport capabilities over a periph.io
// bus. Every bus fault maps to I2C_ERROR; periph exposes no per-transaction
// deadline, so the timeout bound is enforced by the kernel bus driver
// underneath.
func Capabilities(bus i2c.Bus) (driver.WriteFunc, driver.WriteReadFunc) {
	write := func(addr uint16, buf []byte, timeout time.Duration, user any) status.Status {
		dev := i2c.Dev{Addr: addr, Bus: bus}
		if err := dev.Tx(buf, nil); err != nil {
			return status.Error(status.CodeI2CError, err.Error())
		}
		return status.Ok()
	}

	writeRead := func(addr uint16, tx, rx []byte, timeout time.Duration, user any) status.Status {
		dev := i2c.Dev{Addr: addr, Bus: bus}
		if err := dev.Tx(tx, rx); err != nil {
			return status.Error(status.CodeI2CError, err.Error())
		}
		return status.Ok()
	}

	return write, writeRead
}
