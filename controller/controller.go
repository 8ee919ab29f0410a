// Package controller ties the chain and the ticker together behind the two
// calls a host makes: Render on every repaint and HandleTap on a press.
//
// One tap drives exactly one node through one full sweep, 0 -> 1 or 1 -> 0,
// and then the ticker stops until the next tap.
package controller

import (
	"fmt"

	"github.com/automoto/squaretoplus/canvas"
	"github.com/automoto/squaretoplus/chain"
	"github.com/automoto/squaretoplus/config"
	"github.com/automoto/squaretoplus/shape"
	"github.com/automoto/squaretoplus/ticker"
	"github.com/charmbracelet/log"
)

// Controller owns the chain and its ticker for one surface.
type Controller struct {
	cfg    config.SceneConfig
	chain  *chain.Chain
	ticker *ticker.Ticker

	runs  int
	steps int
}

// Status is a read-only view of the controller for overlays and tools.
type Status struct {
	Node      int     // active node index
	NodeCount int     // chain length
	Dir       int     // traversal direction, +1 or -1
	Scale     float64 // active node scale
	NodeDir   float64 // active node step direction, 0 when idle
	Animated  bool    // ticker running
	Runs      int     // completed sweeps
	Steps     int     // steps taken in the current or last sweep
}

// New validates cfg and builds an idle controller that requests repaints
// through sched.
func New(cfg config.SceneConfig, sched ticker.Scheduler) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	return &Controller{
		cfg:    cfg,
		chain:  chain.New(cfg),
		ticker: ticker.New(sched, cfg.FrameDelay()),
	}, nil
}

// Render clears s, draws every node and, while a sweep is running, steps it
// once. The step that completes the sweep stops the ticker.
func (c *Controller) Render(s canvas.Surface) {
	s.Clear(c.cfg.BackColor)
	c.chain.Draw(func(i int, scale float64) {
		shape.Draw(s, c.cfg, i, scale)
	})
	c.ticker.Animate(c.step)
}

func (c *Controller) step() {
	c.steps++
	node := c.chain.Current().Index
	c.chain.Update(func() {
		c.runs++
		c.ticker.Stop()
		log.Debug("sweep complete",
			"node", node,
			"scale", c.chain.Node(node).State.Scale,
			"steps", c.steps,
			"next", c.chain.Current().Index,
			"dir", c.chain.Dir())
	})
}

// HandleTap starts a sweep on the active node. A tap during a sweep does
// nothing.
func (c *Controller) HandleTap() {
	c.chain.StartUpdating(func() {
		c.steps = 0
		c.ticker.Start()
		log.Debug("sweep start", "node", c.chain.Current().Index, "dir", c.chain.Current().State.Dir)
	})
}

// Animated reports whether a sweep is in progress.
func (c *Controller) Animated() bool {
	return c.ticker.Animated()
}

// Config returns the scene configuration in use.
func (c *Controller) Config() config.SceneConfig {
	return c.cfg
}

// Status reports the active node and ticker state.
func (c *Controller) Status() Status {
	cur := c.chain.Current()
	return Status{
		Node:      cur.Index,
		NodeCount: c.chain.Len(),
		Dir:       c.chain.Dir(),
		Scale:     cur.State.Scale,
		NodeDir:   cur.State.Dir,
		Animated:  c.ticker.Animated(),
		Runs:      c.runs,
		Steps:     c.steps,
	}
}

// NodeScale returns node i's scale.
func (c *Controller) NodeScale(i int) float64 {
	return c.chain.Node(i).State.Scale
}
