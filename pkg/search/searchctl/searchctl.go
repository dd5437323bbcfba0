// Package searchctl turns the UCI `go` command's options into the single Stopper closure
// the synchronous search (package search) polls at its 65536-node boundary (spec §4.9). It
// replaces the teacher's goroutine-per-search Launcher/Handle design: there is exactly one
// search in flight at a time, driven from the UCI loop's own goroutine, so no channel or
// wait group is needed here -- only a deadline and a stop latch.
package searchctl

import (
	"fmt"
	"strings"
	"time"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold the per-`go` search limits the UCI driver parsed off the command line
// (spec §6): depth, node count and move time. Unset fields mean "no limit on this axis".
type Options struct {
	DepthLimit lang.Optional[uint]
	NodesLimit lang.Optional[uint64]
	MoveTime   lang.Optional[time.Duration]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.NodesLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("nodes=%v", v))
	}
	if v, ok := o.MoveTime.V(); ok {
		ret = append(ret, fmt.Sprintf("movetime=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Controller accumulates the stop conditions for one `go` command: a wall-clock deadline
// (if MoveTime was given), a node budget (if NodesLimit was given), and a stop latch set by
// Stop. The UCI driver does not call Stop: it hands its own stop function to Engine.Go, which
// polls it alongside this Controller's Stopper.
type Controller struct {
	deadline time.Time
	hasLimit bool
	nodes    lang.Optional[uint64]
	stop     bool
}

// New starts a Controller for opt, with start as the search's t=0 (spec §4.9's search.start).
func New(opt Options, start time.Time) *Controller {
	c := &Controller{nodes: opt.NodesLimit}
	if mt, ok := opt.MoveTime.V(); ok {
		c.deadline = start.Add(mt)
		c.hasLimit = true
	}
	return c
}

// Stop latches a `stop` (or `quit`) request. Idempotent.
func (c *Controller) Stop() {
	c.stop = true
}

// Stopper returns the closure search.Search.Stopper polls every NodePollInterval nodes.
// nodes reports the search's current node count at poll time.
func (c *Controller) Stopper(nodes func() uint64) func() bool {
	return func() bool {
		if c.stop {
			return true
		}
		if c.hasLimit && time.Now().After(c.deadline) {
			return true
		}
		if limit, ok := c.nodes.V(); ok && nodes() >= limit {
			return true
		}
		return false
	}
}

// Depth returns the requested depth limit, or 0 (meaning search to search.MaxDepth).
func (o Options) Depth() int {
	if v, ok := o.DepthLimit.V(); ok {
		return int(v)
	}
	return 0
}
