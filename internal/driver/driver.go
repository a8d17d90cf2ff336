// internal/driver/driver.go
package driver

import (
	"time"

	"github.com/tamzrod/i2c-sentry/internal/health"
	"github.com/tamzrod/i2c-sentry/internal/status"
)

// WriteFunc is the injected single-write capability.
// Contract: attempt exactly one bus write transaction; map low-level bus
// faults to CodeI2CError and expiry of the timeout bound to CodeTimeout.
type WriteFunc func(addr uint16, buf []byte, timeout time.Duration, user any) status.Status

// WriteReadFunc is the injected write-then-read capability.
// Same fault-mapping contract, for one combined transaction.
type WriteReadFunc func(addr uint16, tx, rx []byte, timeout time.Duration, user any) status.Status

// Config is the capability bundle injected at Init.
// Owned by the driver after validation; never shared.
type Config struct {
	Write     WriteFunc
	WriteRead WriteReadFunc

	// Addr is the 7-bit target bus address.
	Addr uint16

	// Timeout is the per-transaction bound the capabilities must honor.
	// Must be > 0.
	Timeout time.Duration

	// User is an opaque caller context, forwarded unexamined to the
	// capabilities.
	User any

	// OfflineThreshold is the consecutive-failure count at which the
	// driver is classified Offline. 0 is coerced to 1.
	OfflineThreshold uint8
}

// Driver supervises register access to one bus device.
// Single-owner, single-goroutine: no internal locking.
type Driver struct {
	cfg         Config
	initialized bool
	health      health.Tracker

	now func() time.Time
}

// New creates a driver in the Uninit state.
func New() *Driver {
	return &Driver{now: time.Now}
}

// Init validates the configuration and arms the driver.
//
// All health state is reset first, so a failed Init never leaves stale
// counters from a prior session. On validation failure the configuration
// is discarded and the driver stays Uninit.
func (d *Driver) Init(cfg Config) status.Status {
	d.initialized = false
	d.health.Reset()
	if d.now == nil {
		d.now = time.Now
	}

	if cfg.Write == nil || cfg.WriteRead == nil {
		return status.Error(status.CodeInvalidConfig, "transport capabilities not set")
	}
	if cfg.Timeout <= 0 {
		return status.Error(status.CodeInvalidConfig, "transport timeout must be > 0")
	}

	if cfg.OfflineThreshold == 0 {
		cfg.OfflineThreshold = 1
	}

	d.cfg = cfg
	d.initialized = true
	d.health.Activate(cfg.OfflineThreshold)

	return status.Ok()
}

// Tick is the periodic hook for deferred work (in-flight measurement
// polling once a device layer exists on top). Currently none.
func (d *Driver) Tick(now time.Time) {
}

// Close returns the driver to Uninit. Idempotent; safe before Init.
func (d *Driver) Close() {
	d.initialized = false
	d.health.Deactivate()
}

// Probe checks that the expected device answers at the configured address.
// It uses the raw transport path: a failing probe never moves health
// counters or state.
func (d *Driver) Probe() status.Status {
	if !d.initialized {
		return status.Error(status.CodeNotInitialized, "driver not initialized")
	}
	return d.checkIdentity(d.writeReadRaw)
}

// Recover runs the identity check through the tracked path: a success
// clears Degraded/Offline back to Ready, a failure counts as one more
// consecutive failure. This is the sanctioned manual recovery attempt.
func (d *Driver) Recover() status.Status {
	if !d.initialized {
		return status.Error(status.CodeNotInitialized, "driver not initialized")
	}
	return d.checkIdentity(d.writeReadTracked)
}

func (d *Driver) checkIdentity(writeRead func(tx, rx []byte) status.Status) status.Status {
	var id [1]byte
	st := writeRead([]byte{RegChipID}, id[:])
	if !st.Ok() {
		return st
	}
	if id[0] != ChipIDBME280 {
		return status.ErrorDetail(status.CodeChipIDMismatch, "chip id mismatch", int32(id[0]))
	}
	return status.Ok()
}

// ---- HEALTH ACCESSORS ----

// State returns the current availability classification.
func (d *Driver) State() health.State {
	return d.health.State()
}

// Online reports whether the driver is Ready or Degraded.
func (d *Driver) Online() bool {
	return d.health.State().Online()
}

func (d *Driver) ConsecutiveFailures() uint8 { return d.health.ConsecutiveFailures() }

func (d *Driver) TotalFailures() uint32 { return d.health.TotalFailures() }

func (d *Driver) TotalSuccess() uint32 { return d.health.TotalSuccess() }

func (d *Driver) LastOkAt() time.Time { return d.health.LastOkAt() }

func (d *Driver) LastErrAt() time.Time { return d.health.LastErrAt() }

func (d *Driver) LastError() status.Status { return d.health.LastError() }

// Health returns one consistent snapshot of every counter.
func (d *Driver) Health() health.Snapshot {
	return d.health.Snapshot()
}
