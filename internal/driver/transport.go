// internal/driver/transport.go
package driver

import "github.com/tamzrod/i2c-sentry/internal/status"

// Two transport paths exist on purpose:
//
//   - raw: calls the capability directly, no health bookkeeping. Used only
//     by operations documented as "no health tracking" (Probe), so passive
//     diagnostics cannot perturb the supervisory state.
//   - tracked: validates preconditions, then forwards every operationally
//     meaningful outcome into the health tracker.

func (d *Driver) writeRaw(buf []byte) status.Status {
	if d.cfg.Write == nil {
		return status.Error(status.CodeInvalidConfig, "write capability not set")
	}
	return d.cfg.Write(d.cfg.Addr, buf, d.cfg.Timeout, d.cfg.User)
}

func (d *Driver) writeReadRaw(tx, rx []byte) status.Status {
	if d.cfg.WriteRead == nil {
		return status.Error(status.CodeInvalidConfig, "write-read capability not set")
	}
	return d.cfg.WriteRead(d.cfg.Addr, tx, rx, d.cfg.Timeout, d.cfg.User)
}

// untracked reports whether a code is caller misuse rather than a live bus
// fault. These never reach the health tracker.
func untracked(c status.Code) bool {
	return c == status.CodeInvalidConfig ||
		c == status.CodeInvalidParam ||
		c == status.CodeNotInitialized
}

func (d *Driver) writeTracked(buf []byte) status.Status {
	if !d.initialized {
		return status.Error(status.CodeNotInitialized, "driver not initialized")
	}
	if len(buf) == 0 {
		return status.Error(status.CodeInvalidParam, "empty transmit buffer")
	}

	st := d.writeRaw(buf)
	if untracked(st.Code) {
		return st
	}
	return d.health.Observe(d.now(), st)
}

func (d *Driver) writeReadTracked(tx, rx []byte) status.Status {
	if !d.initialized {
		return status.Error(status.CodeNotInitialized, "driver not initialized")
	}
	if len(tx) == 0 {
		return status.Error(status.CodeInvalidParam, "empty transmit buffer")
	}

	st := d.writeReadRaw(tx, rx)
	if untracked(st.Code) {
		return st
	}
	return d.health.Observe(d.now(), st)
}
