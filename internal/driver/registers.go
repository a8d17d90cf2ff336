// internal/driver/registers.go
package driver

import "github.com/tamzrod/i2c-sentry/internal/status"

const (
	// MaxWritePayload bounds one register write so the framing buffer can
	// stay fixed-size. No allocation per transaction.
	MaxWritePayload = 16

	// RegChipID is the device identity register.
	RegChipID = 0xD0

	// ChipIDBME280 is the value the identity register must hold.
	ChipIDBME280 = 0x60
)

// ReadRegs reads len(buf) bytes starting at register start, via the
// tracked path: one single-byte address write followed by the read.
func (d *Driver) ReadRegs(start uint8, buf []byte) status.Status {
	if !d.initialized {
		return status.Error(status.CodeNotInitialized, "driver not initialized")
	}
	if len(buf) == 0 {
		return status.Error(status.CodeInvalidParam, "empty read buffer")
	}

	return d.writeReadTracked([]byte{start}, buf)
}

// WriteRegs writes data to consecutive registers starting at start, framed
// as [start]+payload in one tracked transaction. Payloads longer than
// MaxWritePayload are rejected before the transport is touched.
func (d *Driver) WriteRegs(start uint8, data []byte) status.Status {
	if !d.initialized {
		return status.Error(status.CodeNotInitialized, "driver not initialized")
	}
	if len(data) == 0 {
		return status.Error(status.CodeInvalidParam, "empty write payload")
	}
	if len(data) > MaxWritePayload {
		return status.Error(status.CodeInvalidParam, "write payload too large")
	}

	var frame [MaxWritePayload + 1]byte
	frame[0] = start
	n := copy(frame[1:], data)

	return d.writeTracked(frame[:1+n])
}
