package solver

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/internal/xlog"
)

// workQueue is the mutex-protected FIFO that transfers sub-problem
// ownership to workers.
type workQueue struct {
	mu   sync.Mutex
	subs []Subproblem
}

func (q *workQueue) pop() (Subproblem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.subs) == 0 {
		return Subproblem{}, false
	}
	sp := q.subs[0]
	q.subs = q.subs[1:]
	return sp, true
}

// solveThreads races a fixed pool of workers over the sub-problems.
//
// The stop flag is a plain atomic.Bool that guards no other data: each
// sub-search is independent, the flag only prunes remaining work. The unique witness slot is
// mutex-protected and written by the worker that wins the false→true
// transition; losers discard their witness. All workers are joined
// before the result is read.
func solveThreads(g *core.Graph, k int, o Options) Result {
	start := time.Now()
	if res, done := fastPath(g, k, start); done {
		return res
	}

	degree := g.Degrees()
	deadline := deadlineFrom(start, o.timeout)
	queue := &workQueue{subs: GenerateSubproblems(g, k, degree, o.splitDepth)}
	xlog.Debugf("threads: n=%d m=%d k=%d split=%d subproblems=%d pool=%d",
		g.VertexCount(), g.EdgeCount(), k, o.splitDepth, len(queue.subs), o.threads)

	var (
		stop     atomic.Bool
		nodes    atomic.Int64
		backs    atomic.Int64
		solMu    sync.Mutex
		solution coloring.Assignment
	)

	worker := func() {
		for !stop.Load() {
			if !deadline.IsZero() && time.Now().After(deadline) {
				return
			}
			sp, ok := queue.pop()
			if !ok {
				return
			}

			s := &search{
				g:        g,
				k:        k,
				degree:   degree,
				color:    sp.Color.Clone(),
				stop:     &stop,
				deadline: deadline,
			}
			found := s.run()
			nodes.Add(s.nodes)
			backs.Add(s.backtracks)

			if found {
				if stop.CompareAndSwap(false, true) {
					solMu.Lock()
					solution = s.color
					solMu.Unlock()
				}
				return
			}
		}
	}

	pool, err := ants.NewPool(o.threads)
	if err != nil {
		// Pool size was validated by WithThreads; a failure here means
		// the process is out of resources. Fall back to in-place runs.
		xlog.Errorf("threads: pool creation failed, running inline: %v", err)
		for i := 0; i < o.threads; i++ {
			worker()
		}
	} else {
		defer pool.Release()
		var wg sync.WaitGroup
		for i := 0; i < o.threads; i++ {
			wg.Add(1)
			if submitErr := pool.Submit(func() {
				defer wg.Done()
				worker()
			}); submitErr != nil {
				wg.Done()
				xlog.Errorf("threads: submit failed: %v", submitErr)
			}
		}
		wg.Wait()
	}

	res := Result{
		Success:    stop.Load(),
		Nodes:      nodes.Load(),
		Backtracks: backs.Load(),
		Seconds:    time.Since(start).Seconds(),
	}
	if res.Success {
		solMu.Lock()
		res.Color = solution
		solMu.Unlock()
	}
	return res
}
