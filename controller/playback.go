package controller

import (
	"errors"
	"fmt"

	"github.com/automoto/squaretoplus/canvas"
	"github.com/automoto/squaretoplus/ticker"
)

// ErrRunaway is returned when a sweep keeps requesting repaints past
// Playback.MaxFrames.
var ErrRunaway = errors.New("sweep did not settle")

// Sweep describes one tap's run during playback.
type Sweep struct {
	Tap    int
	Before Status
	After  Status
	Frames int
}

// Playback drives a Controller without a window. Every repaint the
// controller requests through Queue is rendered immediately onto Surface,
// so a sweep plays out as fast as it can be drawn.
type Playback struct {
	Controller *Controller
	Queue      *ticker.QueueScheduler // must be the scheduler the Controller was built with
	Surface    canvas.Surface

	// MaxFrames bounds the renders of a single sweep; zero means 100000
	MaxFrames int

	OnFrame func() error      // after each render
	OnSweep func(Sweep) error // after each sweep settles
}

// Run renders the resting chain once, then taps taps times, rendering every
// requested repaint after each tap.
func (p *Playback) Run(taps int) error {
	if err := p.render(); err != nil {
		return err
	}

	limit := p.MaxFrames
	if limit <= 0 {
		limit = 100000
	}

	for tap := 1; tap <= taps; tap++ {
		before := p.Controller.Status()
		p.Controller.HandleTap()

		frames := 0
		for _, ok := p.Queue.Next(); ok; _, ok = p.Queue.Next() {
			if frames >= limit {
				return fmt.Errorf("tap %d: %w after %d frames", tap, ErrRunaway, frames)
			}
			if err := p.render(); err != nil {
				return err
			}
			frames++
		}

		if p.OnSweep != nil {
			sweep := Sweep{Tap: tap, Before: before, After: p.Controller.Status(), Frames: frames}
			if err := p.OnSweep(sweep); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Playback) render() error {
	p.Controller.Render(p.Surface)
	if p.OnFrame != nil {
		return p.OnFrame()
	}
	return nil
}
