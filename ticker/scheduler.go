package ticker

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FrameScheduler is a Scheduler for a host with its own frame loop. Each
// request arms a timer that the host advances once per frame with Advance;
// when it runs out the frame is marked due and the host renders on its
// next draw. Requests coalesce: only the soonest pending one is kept.
type FrameScheduler struct {
	timer     *gween.Tween
	length    float32
	remaining float32
	due       bool
	closed    bool
}

// NewFrameScheduler creates a scheduler with the first frame already due.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{due: true}
}

func (f *FrameScheduler) Schedule(delay time.Duration) error {
	if f.closed {
		return ErrClosed
	}
	if delay < 0 {
		return ErrNegativeDelay
	}
	if delay == 0 {
		f.Invalidate()
		return nil
	}
	secs := float32(delay.Seconds())
	if f.timer != nil && f.remaining <= secs {
		return nil
	}
	f.timer = gween.New(0, secs, secs, ease.Linear)
	f.length = secs
	f.remaining = secs
	return nil
}

// Advance moves the pending timer forward by dt.
func (f *FrameScheduler) Advance(dt time.Duration) {
	if f.timer == nil {
		return
	}
	elapsed, finished := f.timer.Update(float32(dt.Seconds()))
	if finished {
		f.timer = nil
		f.remaining = 0
		f.due = true
		return
	}
	f.remaining = f.length - elapsed
}

// Invalidate marks the frame due now and drops any pending timer.
func (f *FrameScheduler) Invalidate() {
	f.timer = nil
	f.remaining = 0
	f.due = true
}

// Pending reports whether a timer is running.
func (f *FrameScheduler) Pending() bool {
	return f.timer != nil
}

// TakeDue reports whether a render is due and clears the flag.
func (f *FrameScheduler) TakeDue() bool {
	due := f.due
	f.due = false
	return due
}

// Close rejects all later requests.
func (f *FrameScheduler) Close() {
	f.closed = true
	f.timer = nil
}

// QueueScheduler records requests for a caller that renders on its own
// schedule, such as an offline frame exporter. Limit caps the queue; zero
// means no cap.
type QueueScheduler struct {
	Limit int

	requests []time.Duration
	closed   bool
}

func (q *QueueScheduler) Schedule(delay time.Duration) error {
	switch {
	case q.closed:
		return ErrClosed
	case delay < 0:
		return ErrNegativeDelay
	case q.Limit > 0 && len(q.requests) >= q.Limit:
		return ErrQueueFull
	}
	q.requests = append(q.requests, delay)
	return nil
}

// Next pops the oldest request.
func (q *QueueScheduler) Next() (time.Duration, bool) {
	if len(q.requests) == 0 {
		return 0, false
	}
	d := q.requests[0]
	q.requests = q.requests[1:]
	return d, true
}

// Len is the number of queued requests.
func (q *QueueScheduler) Len() int {
	return len(q.requests)
}

// Close rejects all later requests and drops queued ones.
func (q *QueueScheduler) Close() {
	q.closed = true
	q.requests = nil
}
