package progress

import (
	"bytes"
	"runtime"
	"sync"
)

// Tracker accumulates byte-transferred notifications for a single
// transfer. The transfer manager's worker goroutines call Record
// concurrently, so every read-modify-write of the total and the
// per-worker map happens under one lock; the total always equals the
// sum of the per-worker counts.
//
// A Tracker is one-shot: it lives for the duration of one transfer
// call and is read once afterwards for reporting.
type Tracker struct {
	target int64
	bar    *ProgressBar

	mu        sync.Mutex
	total     int64
	perWorker map[string]int64
}

// TrackerOption configures a Tracker at construction time.
type TrackerOption func(*Tracker)

// WithBar attaches a console progress bar that is advanced on every
// Record call. Without a bar the tracker is silent.
func WithBar(bar *ProgressBar) TrackerOption {
	return func(t *Tracker) {
		t.bar = bar
	}
}

// NewTracker creates a tracker expecting targetBytes in total. The
// target only scales the progress display; recording past it is not an
// error.
func NewTracker(targetBytes int64, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		target:    targetBytes,
		perWorker: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record attributes n transferred bytes to the calling goroutine.
func (t *Tracker) Record(n int64) {
	t.RecordFor(workerID(), n)
}

// RecordFor attributes n transferred bytes to an explicit worker
// identity. Safe for concurrent use.
func (t *Tracker) RecordFor(worker string, n int64) {
	t.mu.Lock()
	t.total += n
	t.perWorker[worker] += n
	t.mu.Unlock()

	if t.bar != nil {
		t.bar.Add64(n)
	}
}

// Total returns the cumulative byte count recorded so far.
func (t *Tracker) Total() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Target returns the expected transfer size in bytes.
func (t *Tracker) Target() int64 {
	return t.target
}

// PerWorker returns a snapshot of the per-worker byte counts, stable
// for reporting after the transfer completes.
func (t *Tracker) PerWorker() map[string]int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	snapshot := make(map[string]int64, len(t.perWorker))
	for worker, n := range t.perWorker {
		snapshot[worker] = n
	}
	return snapshot
}

// Finish stops the attached progress bar, if any.
func (t *Tracker) Finish() {
	if t.bar != nil {
		t.bar.Finish()
	}
}

// workerID identifies the calling goroutine, the closest analogue to a
// thread ident for attributing the transfer manager's per-part work.
// The id is opaque: it only has to be stable within one transfer.
func workerID() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	// First line is "goroutine N [state]:".
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return "goroutine-?"
	}
	return "goroutine-" + string(fields[1])
}
