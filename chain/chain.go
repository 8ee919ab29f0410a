// Package chain is the sequence of animated nodes and the rule that picks
// which node animates next.
//
// Nodes live in one slice and refer to their neighbours by index, -1 meaning
// none. The active node walks forward to the last node, turns around, walks
// back to the first and turns around again, indefinitely.
package chain

import "github.com/automoto/squaretoplus/config"

const none = -1

// Node is one figure of the chain.
type Node struct {
	Index int
	State State

	next int
	prev int
}

// Next is the index of the following node, or -1 at the end.
func (n Node) Next() int { return n.next }

// Prev is the index of the preceding node, or -1 at the start.
func (n Node) Prev() int { return n.prev }

// Chain owns the nodes, the active node and the traversal direction.
type Chain struct {
	nodes []Node
	curr  int
	dir   int
	step  Stepping
}

// New builds cfg.NodeCount idle nodes at scale 0, with node 0 active and
// traversal heading forward.
func New(cfg config.SceneConfig) *Chain {
	c := &Chain{
		nodes: make([]Node, cfg.NodeCount),
		dir:   1,
		step: Stepping{
			Slow:    cfg.LineGroups * cfg.PartsPerGroup,
			Fast:    cfg.LineGroups,
			Gap:     cfg.StepGap,
			Divider: cfg.ScaleDivider,
		},
	}
	for i := range c.nodes {
		c.nodes[i] = Node{Index: i, next: none, prev: none}
		if i > 0 {
			c.nodes[i-1].next = i
			c.nodes[i].prev = i - 1
		}
	}
	return c
}

// Len is the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Node returns a copy of node i.
func (c *Chain) Node(i int) Node { return c.nodes[i] }

// Current returns a copy of the active node.
func (c *Chain) Current() Node { return c.nodes[c.curr] }

// Dir is +1 while walking toward the last node and -1 on the way back.
func (c *Chain) Dir() int { return c.dir }

// Draw calls fn for every node in index order, whichever node is animating.
func (c *Chain) Draw(fn func(index int, scale float64)) {
	for i := range c.nodes {
		fn(c.nodes[i].Index, c.nodes[i].State.Scale)
	}
}

// StartUpdating starts a run on the active node if it is idle.
func (c *Chain) StartUpdating(onStart func()) bool {
	return c.nodes[c.curr].State.StartUpdating(onStart)
}

// Update steps the active node once. When its run completes the active node
// moves one place in the traversal direction, or stays put and the direction
// flips if there is no neighbour that way; onComplete is then called.
func (c *Chain) Update(onComplete func()) bool {
	n := &c.nodes[c.curr]
	return n.State.Update(c.step, func(float64) {
		c.curr = c.neighbour(n, func() {
			c.dir = -c.dir
		})
		if onComplete != nil {
			onComplete()
		}
	})
}

func (c *Chain) neighbour(n *Node, onBoundary func()) int {
	i := n.next
	if c.dir < 0 {
		i = n.prev
	}
	if i == none {
		onBoundary()
		return n.Index
	}
	return i
}
