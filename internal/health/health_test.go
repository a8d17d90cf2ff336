// internal/health/health_test.go
package health

import (
	"math"
	"testing"
	"time"

	"github.com/tamzrod/i2c-sentry/internal/status"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func busErr() status.Status {
	return status.Error(status.CodeI2CError, "nak")
}

func TestFailureProgressionAndRecovery(t *testing.T) {
	var tr Tracker
	tr.Reset()
	tr.Activate(5)

	// 4 failures: degraded, below threshold
	for i := 0; i < 4; i++ {
		tr.Observe(t0, busErr())
	}
	if tr.State() != StateDegraded {
		t.Fatalf("state after 4 failures: got=%v want=%v", tr.State(), StateDegraded)
	}
	if tr.ConsecutiveFailures() != 4 {
		t.Fatalf("consecutive: got=%d want=4", tr.ConsecutiveFailures())
	}
	if tr.TotalFailures() != 4 || tr.TotalSuccess() != 0 {
		t.Fatalf("totals: failures=%d success=%d", tr.TotalFailures(), tr.TotalSuccess())
	}

	// 5th failure crosses the threshold
	tr.Observe(t0, busErr())
	if tr.State() != StateOffline {
		t.Fatalf("state after 5 failures: got=%v want=%v", tr.State(), StateOffline)
	}
	if tr.ConsecutiveFailures() != 5 {
		t.Fatalf("consecutive: got=%d want=5", tr.ConsecutiveFailures())
	}

	// one success fully clears the streak
	at := t0.Add(time.Second)
	tr.Observe(at, status.Ok())
	if tr.State() != StateReady {
		t.Fatalf("state after success: got=%v want=%v", tr.State(), StateReady)
	}
	if tr.ConsecutiveFailures() != 0 {
		t.Fatalf("consecutive not cleared: got=%d", tr.ConsecutiveFailures())
	}
	if tr.TotalFailures() != 5 || tr.TotalSuccess() != 1 {
		t.Fatalf("totals: failures=%d success=%d", tr.TotalFailures(), tr.TotalSuccess())
	}
	if !tr.LastOkAt().Equal(at) {
		t.Fatalf("last ok at: got=%v want=%v", tr.LastOkAt(), at)
	}
}

func TestObserveRecordsLastError(t *testing.T) {
	var tr Tracker
	tr.Activate(3)

	st := status.ErrorDetail(status.CodeChipIDMismatch, "chip id mismatch", 0x58)
	out := tr.Observe(t0, st)
	if out != st {
		t.Fatalf("outcome must be returned unchanged")
	}
	if tr.LastError() != st {
		t.Fatalf("last error: got=%v want=%v", tr.LastError(), st)
	}
	if !tr.LastErrAt().Equal(t0) {
		t.Fatalf("last error at: got=%v want=%v", tr.LastErrAt(), t0)
	}
}

func TestObserveBeforeActivateIsNoOp(t *testing.T) {
	var tr Tracker

	tr.Observe(t0, busErr())
	if tr.State() != StateUninit {
		t.Fatalf("state: got=%v want=%v", tr.State(), StateUninit)
	}
	if tr.ConsecutiveFailures() != 0 || tr.TotalFailures() != 0 {
		t.Fatalf("counters must not move before activation")
	}
}

func TestThresholdOneGoesStraightOffline(t *testing.T) {
	var tr Tracker
	tr.Activate(1)

	tr.Observe(t0, busErr())
	if tr.State() != StateOffline {
		t.Fatalf("state: got=%v want=%v", tr.State(), StateOffline)
	}
}

func TestCountersSaturate(t *testing.T) {
	tr := Tracker{
		state:               StateOffline,
		threshold:           1,
		consecutiveFailures: math.MaxUint8,
		totalFailures:       math.MaxUint32,
		totalSuccess:        math.MaxUint32,
	}

	tr.Observe(t0, busErr())
	if tr.ConsecutiveFailures() != math.MaxUint8 {
		t.Fatalf("consecutive wrapped: got=%d", tr.ConsecutiveFailures())
	}
	if tr.TotalFailures() != math.MaxUint32 {
		t.Fatalf("total failures wrapped: got=%d", tr.TotalFailures())
	}

	tr.Observe(t0, status.Ok())
	if tr.TotalSuccess() != math.MaxUint32 {
		t.Fatalf("total success wrapped: got=%d", tr.TotalSuccess())
	}
}

func TestResetClearsEverything(t *testing.T) {
	var tr Tracker
	tr.Activate(2)
	tr.Observe(t0, busErr())
	tr.Observe(t0, status.Ok())

	tr.Reset()
	if tr.Snapshot() != (Snapshot{}) {
		t.Fatalf("snapshot after reset: got=%+v", tr.Snapshot())
	}
}

func TestOnlinePredicate(t *testing.T) {
	if StateUninit.Online() || StateOffline.Online() {
		t.Fatalf("UNINIT/OFFLINE must not be online")
	}
	if !StateReady.Online() || !StateDegraded.Online() {
		t.Fatalf("READY/DEGRADED must be online")
	}
}
