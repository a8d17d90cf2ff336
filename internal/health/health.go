// internal/health/health.go
package health

import (
	"math"
	"time"

	"github.com/tamzrod/i2c-sentry/internal/status"
)

// State is the driver availability classification.
// Severity is strictly ordered: Uninit < Ready < Degraded < Offline.
type State uint8

const (
	// StateUninit means Init() was not called, failed, or Close() was called.
	StateUninit State = iota

	// StateReady means the consecutive-failure count is exactly zero.
	StateReady

	// StateDegraded means 1 <= consecutive failures < offline threshold.
	StateDegraded

	// StateOffline means consecutive failures >= offline threshold.
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateUninit:
		return "UNINIT"
	case StateReady:
		return "READY"
	case StateDegraded:
		return "DEGRADED"
	case StateOffline:
		return "OFFLINE"
	default:
		return "UNKNOWN"
	}
}

// Online reports whether the device is still usable (Ready or Degraded).
func (s State) Online() bool {
	return s == StateReady || s == StateDegraded
}

// Snapshot is a read-only copy of the tracker at one instant.
// It contains no logic.
type Snapshot struct {
	State               State
	ConsecutiveFailures uint8
	TotalFailures       uint32
	TotalSuccess        uint32
	LastOkAt            time.Time
	LastErrAt           time.Time
	LastError           status.Status
}

// Tracker folds tracked transport outcomes into availability state.
// It is fed exclusively by the tracked transport path; raw diagnostics
// never reach it.
type Tracker struct {
	state     State
	threshold uint8

	lastOkAt  time.Time
	lastErrAt time.Time
	lastErr   status.Status

	consecutiveFailures uint8
	totalFailures       uint32
	totalSuccess        uint32
}

// Reset zeroes every counter and returns the tracker to Uninit.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Activate arms the tracker with the offline threshold and enters Ready.
// The caller guarantees threshold >= 1.
func (t *Tracker) Activate(threshold uint8) {
	t.threshold = threshold
	t.state = StateReady
}

// Deactivate returns the tracker to Uninit. Counters are kept until the
// next Reset, so a post-mortem read after Close still sees them.
func (t *Tracker) Deactivate() {
	t.state = StateUninit
}

// Observe folds one tracked outcome into the counters, recomputes the
// state, and returns the outcome unchanged.
//
// One success fully clears Degraded/Offline back to Ready; failures
// accumulate until a success interrupts the streak. All counters saturate
// instead of wrapping.
func (t *Tracker) Observe(now time.Time, st status.Status) status.Status {
	if t.state == StateUninit {
		// Callers check initialization first; do not account.
		return st
	}

	if st.Ok() {
		t.lastOkAt = now
		if t.totalSuccess < math.MaxUint32 {
			t.totalSuccess++
		}
		t.consecutiveFailures = 0
		t.state = StateReady
		return st
	}

	t.lastErr = st
	t.lastErrAt = now
	if t.totalFailures < math.MaxUint32 {
		t.totalFailures++
	}
	if t.consecutiveFailures < math.MaxUint8 {
		t.consecutiveFailures++
	}

	if t.consecutiveFailures >= t.threshold {
		t.state = StateOffline
	} else {
		t.state = StateDegraded
	}

	return st
}

// ---- ACCESSORS ----

func (t *Tracker) State() State { return t.state }

func (t *Tracker) ConsecutiveFailures() uint8 { return t.consecutiveFailures }

func (t *Tracker) TotalFailures() uint32 { return t.totalFailures }

func (t *Tracker) TotalSuccess() uint32 { return t.totalSuccess }

func (t *Tracker) LastOkAt() time.Time { return t.lastOkAt }

func (t *Tracker) LastErrAt() time.Time { return t.lastErrAt }

func (t *Tracker) LastError() status.Status { return t.lastErr }

// Snapshot copies the tracker state for callers that want one consistent view.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		State:               t.state,
		ConsecutiveFailures: t.consecutiveFailures,
		TotalFailures:       t.totalFailures,
		TotalSuccess:        t.totalSuccess,
		LastOkAt:            t.lastOkAt,
		LastErrAt:           t.lastErrAt,
		LastError:           t.lastErr,
	}
}
