// Package ticker runs the animation one step per repaint.
//
// A Ticker does nothing on its own: the host calls Animate from its render
// path, and the Ticker asks its Scheduler for the next render after a fixed
// delay. Nothing blocks; a Scheduler only records that a render is wanted.
package ticker

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrClosed is returned by a Scheduler that no longer accepts requests.
	ErrClosed = errors.New("scheduler closed")
	// ErrNegativeDelay is returned for a delay below zero.
	ErrNegativeDelay = errors.New("negative repaint delay")
	// ErrQueueFull is returned when a QueueScheduler is at its limit.
	ErrQueueFull = errors.New("repaint queue full")
)

// Scheduler requests a future render call.
type Scheduler interface {
	Schedule(delay time.Duration) error
}

// Ticker holds the animated flag and paces steps through a Scheduler.
type Ticker struct {
	animated bool
	delay    time.Duration
	sched    Scheduler
}

// New creates a stopped ticker that waits delay between steps.
func New(sched Scheduler, delay time.Duration) *Ticker {
	return &Ticker{sched: sched, delay: delay}
}

// Animated reports whether the ticker is running.
func (t *Ticker) Animated() bool {
	return t.animated
}

// Animate calls step once and requests the next render, but only while the
// ticker is running. The render is requested even if step stopped the
// ticker, so the final state gets drawn.
func (t *Ticker) Animate(step func()) {
	if !t.animated {
		return
	}
	step()
	t.request(t.delay)
}

// Start runs the ticker and requests an immediate render. Starting a
// running ticker does nothing.
func (t *Ticker) Start() {
	if t.animated {
		return
	}
	t.animated = true
	t.request(0)
}

// Stop halts the ticker.
func (t *Ticker) Stop() {
	t.animated = false
}

// A failed request only costs a tick; the next render from the host
// resumes stepping.
func (t *Ticker) request(delay time.Duration) {
	if err := t.sched.Schedule(delay); err != nil {
		log.Debug("repaint request dropped", "delay", delay, "err", err)
	}
}
