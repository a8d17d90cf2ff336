// internal/status/status.go
package status

import "fmt"

// Code identifies one outcome class.
// The set is closed and device-facing; codes MUST NOT be renumbered.
type Code uint8

// ---- CODES ----

const (
	// CodeOK is the success sentinel, distinct from every error code.
	CodeOK Code = iota

	// CodeNotInitialized means an operation was attempted before Init()
	// or after Close().
	CodeNotInitialized

	// CodeInvalidConfig means the driver configuration is unusable
	// (missing capability, zero timeout).
	CodeInvalidConfig

	// CodeI2CError is a transport-reported bus fault (NAK, arbitration loss,
	// short transfer). Opaque to this layer.
	CodeI2CError

	// CodeTimeout means the transport's timeout bound expired.
	CodeTimeout

	// CodeInvalidParam means a caller passed an unusable argument
	// (empty buffer, oversized payload).
	CodeInvalidParam

	// CodeDeviceNotFound means no device answered at the configured address.
	CodeDeviceNotFound

	// CodeChipIDMismatch means the identity register held an unexpected
	// value; Detail carries the byte that was read.
	CodeChipIDMismatch

	// CodeCalibrationInvalid means device calibration data failed a sanity
	// check. Emitted by device layers above this core.
	CodeCalibrationInvalid

	// CodeMeasurementNotReady means no completed measurement is available.
	CodeMeasurementNotReady

	// CodeCompensationError means measurement compensation math failed.
	CodeCompensationError

	// CodeBusy means the device rejected an operation while occupied.
	CodeBusy

	// CodeInProgress means an operation was accepted and is running.
	CodeInProgress
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeNotInitialized:
		return "NOT_INITIALIZED"
	case CodeInvalidConfig:
		return "INVALID_CONFIG"
	case CodeI2CError:
		return "I2C_ERROR"
	case CodeTimeout:
		return "TIMEOUT"
	case CodeInvalidParam:
		return "INVALID_PARAM"
	case CodeDeviceNotFound:
		return "DEVICE_NOT_FOUND"
	case CodeChipIDMismatch:
		return "CHIP_ID_MISMATCH"
	case CodeCalibrationInvalid:
		return "CALIBRATION_INVALID"
	case CodeMeasurementNotReady:
		return "MEASUREMENT_NOT_READY"
	case CodeCompensationError:
		return "COMPENSATION_ERROR"
	case CodeBusy:
		return "BUSY"
	case CodeInProgress:
		return "IN_PROGRESS"
	default:
		return "UNKNOWN"
	}
}

// ---- STATUS ----

// Status carries the outcome of one driver operation.
// Pure value: no logic, no wrapping, no memory of the past.
// The zero value is the success sentinel.
type Status struct {
	Code   Code
	Detail int32  // optional numeric detail (e.g. the unexpected chip id byte)
	Msg    string // optional human-readable context
}

// Ok returns the success sentinel.
func Ok() Status {
	return Status{}
}

// Error builds an error status with a message.
func Error(code Code, msg string) Status {
	return Status{Code: code, Msg: msg}
}

// ErrorDetail builds an error status carrying a numeric detail.
func ErrorDetail(code Code, msg string, detail int32) Status {
	return Status{Code: code, Detail: detail, Msg: msg}
}

// Ok reports whether the status is the success sentinel.
func (s Status) Ok() bool {
	return s.Code == CodeOK
}

func (s Status) String() string {
	if s.Ok() {
		return "OK"
	}
	out := s.Code.String()
	if s.Detail != 0 {
		out += fmt.Sprintf(" detail=%d", s.Detail)
	}
	if s.Msg != "" {
		out += ": " + s.Msg
	}
	return out
}
