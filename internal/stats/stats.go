package stats

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
	kind       string // "" on success
}

// Snapshot is a point-in-time aggregate of comparison latencies.
type Snapshot struct {
	Count    int            `json:"count"`
	MinMs    int64          `json:"min_ms"`
	MaxMs    int64          `json:"max_ms"`
	AvgMs    float64        `json:"avg_ms"`
	P50Ms    float64        `json:"p50_ms"`
	P95Ms    float64        `json:"p95_ms"`
	P99Ms    float64        `json:"p99_ms"`
	Failures map[string]int `json:"failures"`
}

// Window tracks recent comparison latencies and failures within a rolling window.
type Window struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
	now     func() time.Time
}

func NewWindow(maxAge time.Duration) *Window {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Window{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Record adds a successful comparison that took d.
func (w *Window) Record(d time.Duration) {
	w.add(d, "")
}

// RecordFailure counts a failed comparison under kind.
func (w *Window) RecordFailure(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	w.add(0, kind)
}

func (w *Window) add(d time.Duration, kind string) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pruneLocked(now)
	w.samples = append(w.samples, sample{timestamp: now, durationMs: ms, kind: kind})
}

func (w *Window) Snapshot() Snapshot {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pruneLocked(now)
	snap := Snapshot{Failures: map[string]int{}}

	values := make([]int64, 0, len(w.samples))
	var sum int64
	for _, sm := range w.samples {
		if sm.kind != "" {
			snap.Failures[sm.kind]++
			continue
		}
		values = append(values, sm.durationMs)
		sum += sm.durationMs
	}
	if len(values) == 0 {
		return snap
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	snap.Count = len(values)
	snap.MinMs = values[0]
	snap.MaxMs = values[len(values)-1]
	snap.AvgMs = float64(sum) / float64(len(values))
	snap.P50Ms = percentile(values, 50)
	snap.P95Ms = percentile(values, 95)
	snap.P99Ms = percentile(values, 99)
	return snap
}

func (w *Window) pruneLocked(now time.Time) {
	cutoff := now.Add(-w.maxAge)
	writeIdx := 0
	for _, sm := range w.samples {
		if !sm.timestamp.Before(cutoff) {
			w.samples[writeIdx] = sm
			writeIdx++
		}
	}
	w.samples = w.samples[:writeIdx]
}

// percentile interpolates linearly between the closest ranks.
func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
