package solver

import (
	"sync/atomic"
	"time"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// search is the per-worker state of one exact sub-search. The
// assignment mutates during exploration and is restored on backtrack;
// degree is shared read-only across workers.
type search struct {
	g      *core.Graph
	k      int
	degree []int
	color  coloring.Assignment

	// stop is the cooperative global flag; nil when the strategy has
	// no cross-worker cancellation (serial, distributed workers).
	stop *atomic.Bool

	// deadline is the absolute wall-clock budget; zero means none.
	deadline time.Time

	nodes      int64
	backtracks int64
}

// interrupted reports whether the sub-search must abandon: a peer found
// a witness, or the deadline elapsed. Checked on node entry and before
// each color branch, which bounds post-cancel work to one color branch
// per recursion depth.
func (s *search) interrupted() bool {
	if s.stop != nil && s.stop.Load() {
		return true
	}
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// run performs the depth-first exact search from the current
// assignment. It returns true when the assignment is a complete proper
// k-coloring (the witness is left in s.color), false on exhaustion,
// stop, or deadline. Interruption unwinds as an ordinary failure; only
// genuine dead ends count as backtracks.
func (s *search) run() bool {
	s.nodes++
	if s.interrupted() {
		return false
	}

	u := coloring.ChooseVertex(s.g, s.color, s.degree)
	if u == coloring.NoVertex {
		return true
	}

	for c := 0; c < s.k; c++ {
		if s.interrupted() {
			return false
		}
		if !coloring.Feasible(s.g, u, c, s.color) {
			continue
		}
		s.color[u] = c
		if s.run() {
			return true
		}
		s.color[u] = coloring.Uncolored
	}

	s.backtracks++
	return false
}
