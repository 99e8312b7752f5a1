package cluster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/solver"
)

// Sentinel errors for transport construction and use.
var (
	// ErrBadSize indicates a cluster size below 1.
	ErrBadSize = errors.New("cluster: size must be at least 1")

	// ErrBadRank indicates a rank outside [0, size).
	ErrBadRank = errors.New("cluster: rank out of range")
)

// inboxSlack bounds the frames parked in an inbox beyond the protocol's
// working set: one in-flight sub-problem plus the final stop broadcast
// per peer.
const inboxSlack = 16

// localMesh is the shared state of an in-process cluster.
type localMesh struct {
	size    int
	inboxes []chan solver.Message
	barrier *barrier
}

// Local is one rank's endpoint of an in-process mesh. Each endpoint
// must be used by a single goroutine; distinct endpoints are
// independent.
type Local struct {
	rank    int
	mesh    *localMesh
	pending []solver.Message
}

// NewLocal builds a mesh of the given size and returns one endpoint
// per rank, index = rank.
func NewLocal(size int) ([]*Local, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	mesh := &localMesh{
		size:    size,
		inboxes: make([]chan solver.Message, size),
		barrier: newBarrier(size),
	}
	for i := range mesh.inboxes {
		mesh.inboxes[i] = make(chan solver.Message, 4*size+inboxSlack)
	}
	nodes := make([]*Local, size)
	for i := range nodes {
		nodes[i] = &Local{rank: i, mesh: mesh}
	}
	return nodes, nil
}

// Rank returns this endpoint's rank.
func (l *Local) Rank() int { return l.rank }

// Size returns the number of ranks in the mesh.
func (l *Local) Size() int { return l.mesh.size }

// Send delivers payload to dst's inbox. The payload is not copied; the
// solver never reuses a buffer after sending.
func (l *Local) Send(dst, tag int, payload []byte) error {
	if dst < 0 || dst >= l.mesh.size {
		return fmt.Errorf("%w: send to %d with size %d", ErrBadRank, dst, l.mesh.size)
	}
	l.mesh.inboxes[dst] <- solver.Message{From: l.rank, Tag: tag, Payload: payload}
	return nil
}

// Recv blocks for the next message matching src and tag (either may be
// a wildcard). Frames that arrive out of match order are parked and
// replayed in arrival order by later calls.
func (l *Local) Recv(src, tag int) (solver.Message, error) {
	for i, m := range l.pending {
		if matches(m, src, tag) {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return m, nil
		}
	}
	for {
		m := <-l.mesh.inboxes[l.rank]
		if matches(m, src, tag) {
			return m, nil
		}
		l.pending = append(l.pending, m)
	}
}

// Barrier blocks until every rank of the mesh has entered it.
func (l *Local) Barrier() error {
	l.mesh.barrier.wait()
	return nil
}

func matches(m solver.Message, src, tag int) bool {
	return (src == solver.AnySource || m.From == src) &&
		(tag == solver.AnyTag || m.Tag == tag)
}

// barrier is a reusable counting barrier.
type barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	size       int
	count      int
	generation int
}

func newBarrier(size int) *barrier {
	b := &barrier{size: size}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.generation
	b.count++
	if b.count == b.size {
		b.count = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation {
		b.cond.Wait()
	}
}
