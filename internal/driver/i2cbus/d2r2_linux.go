//go:build linux

// internal/driver/i2cbus/d2r2_linux.go
package i2cbus

import (
	"fmt"
	"time"

	i2c "github.com/d2r2/go-i2c"

	"github.com/tamzrod/i2c-sentry/internal/driver"
	"github.com/tamzrod/i2c-sentry/internal/status"
)

// CapabilitiesD2r2 builds the transport capabilities over a d2r2/go-i2c
// handle. The handle is bound to its device address and bus at open time,
// so the addr argument the driver forwards is ignored here. Short transfers
// count as bus faults.
func CapabilitiesD2r2(dev *i2c.I2C) (driver.WriteFunc, driver.WriteReadFunc) {
	write := func(addr uint16, buf []byte, timeout time.Duration, user any) status.Status {
		n, err := dev.WriteBytes(buf)
		if err != nil {
			return status.Error(status.CodeI2CError, err.Error())
		}
		if n != len(buf) {
			return status.Error(status.CodeI2CError,
				fmt.Sprintf("short write: %d of %d", n, len(buf)))
		}
		return status.Ok()
	}

	writeRead := func(addr uint16, tx, rx []byte, timeout time.Duration, user any) status.Status {
		if st := write(addr, tx, timeout, user); !st.Ok() {
			return st
		}
		if len(rx) == 0 {
			return status.Ok()
		}
		n, err := dev.ReadBytes(rx)
		if err != nil {
			return status.Error(status.CodeI2CError, err.Error())
		}
		if n != len(rx) {
			return status.Error(status.CodeI2CError,
				fmt.Sprintf("short read: %d of %d", n, len(rx)))
		}
		return status.Ok()
	}

	return write, writeRead
}
