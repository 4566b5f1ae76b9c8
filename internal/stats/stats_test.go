package stats

import (
	"testing"
	"time"
)

func TestWindowSnapshotPercentiles(t *testing.T) {
	w := NewWindow(time.Hour)
	for _, ms := range []int64{100, 200, 300, 400, 500} {
		w.Record(time.Duration(ms) * time.Millisecond)
	}

	snap := w.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 500 {
		t.Fatalf("expected min=100 max=500, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestWindowCountsFailuresSeparately(t *testing.T) {
	w := NewWindow(time.Hour)
	w.Record(50 * time.Millisecond)
	w.RecordFailure("corrupt_document")
	w.RecordFailure("corrupt_document")
	w.RecordFailure("")

	snap := w.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.Failures["corrupt_document"] != 2 {
		t.Fatalf("expected 2 corrupt_document failures, got %v", snap.Failures)
	}
	if snap.Failures["unknown"] != 1 {
		t.Fatalf("expected 1 unknown failure, got %v", snap.Failures)
	}
}

func TestWindowPrunesExpiredSamples(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	w := NewWindow(time.Minute)
	w.now = func() time.Time { return now }

	w.Record(100 * time.Millisecond)
	w.RecordFailure("missing_input")
	now = now.Add(2 * time.Minute)

	snap := w.Snapshot()
	if snap.Count != 0 || len(snap.Failures) != 0 {
		t.Fatalf("expected empty snapshot after prune, got %+v", snap)
	}

	w.Record(200 * time.Millisecond)
	snap = w.Snapshot()
	if snap.Count != 1 || snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected a single fresh sample of 200ms, got %+v", snap)
	}
}

func TestWindowClampsNegativeDuration(t *testing.T) {
	w := NewWindow(0)
	w.Record(-10 * time.Millisecond)
	snap := w.Snapshot()
	if snap.Count != 1 || snap.MinMs != 0 {
		t.Fatalf("expected clamped duration=0, got %+v", snap)
	}
}
