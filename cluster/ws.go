package cluster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/internal/xlog"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/solver"
)

// Transport-internal frame tags. Solver protocol tags start at 10 and
// pass through untouched.
const (
	frameHello   = 0x01
	frameBarrier = 0x02
)

// connectTimeout bounds how long the master waits for the full worker
// set and how long a worker waits for the master to answer its dial.
const connectTimeout = 60 * time.Second

// Sentinel errors for the websocket substrate.
var (
	// ErrHandshake indicates a malformed or duplicate hello frame.
	ErrHandshake = errors.New("cluster: websocket handshake failed")

	// ErrConnectTimeout indicates the worker set did not assemble in time.
	ErrConnectTimeout = errors.New("cluster: timed out assembling cluster")

	// ErrBadDestination indicates a send outside the hub topology.
	ErrBadDestination = errors.New("cluster: destination not reachable over this transport")
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsPeer wraps one connection with a write lock; gorilla allows a
// single concurrent writer per connection.
type wsPeer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *wsPeer) write(tag int, payload []byte) error {
	frame := make([]byte, 1+len(payload))
	frame[0] = byte(tag)
	copy(frame[1:], payload)

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteMessage(websocket.BinaryMessage, frame)
}

func (p *wsPeer) read() (int, []byte, error) {
	_, data, err := p.conn.ReadMessage()
	if err != nil {
		return 0, nil, err
	}
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("%w: empty frame", ErrHandshake)
	}
	return int(data[0]), data[1:], nil
}

// Master is rank 0 of a hub-and-spoke websocket cluster. Listen binds
// and accepts in the background; Await blocks until size−1 workers
// have dialed in and identified themselves. The transport is usable
// only after Await returns nil.
type Master struct {
	size  int
	ln    net.Listener
	srv   *http.Server
	mu    sync.Mutex
	peers []*wsPeer
	joins chan joined

	inbox   chan solver.Message
	pending []solver.Message

	closeOnce sync.Once
}

type joined struct {
	rank int
	err  error
}

// Listen binds addr and starts accepting worker connections for a
// cluster of the given size, master included.
func Listen(addr string, size int) (*Master, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cluster: listen %s: %w", addr, err)
	}

	m := &Master{
		size:  size,
		ln:    ln,
		peers: make([]*wsPeer, size),
		joins: make(chan joined, size),
		inbox: make(chan solver.Message, 4*size+inboxSlack),
	}

	m.srv = &http.Server{Handler: http.HandlerFunc(m.handleJoin)}
	go func() { _ = m.srv.Serve(ln) }()
	return m, nil
}

func (m *Master) handleJoin(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.joins <- joined{err: fmt.Errorf("cluster: upgrade: %w", err)}
		return
	}
	peer := &wsPeer{conn: conn}
	rank, err := m.acceptHello(peer)

	m.mu.Lock()
	if err == nil && m.peers[rank] != nil {
		err = fmt.Errorf("%w: duplicate rank %d", ErrHandshake, rank)
	}
	if err != nil {
		m.mu.Unlock()
		_ = conn.Close()
		m.joins <- joined{err: err}
		return
	}
	m.peers[rank] = peer
	m.mu.Unlock()

	go m.readLoop(rank, peer)
	m.joins <- joined{rank: rank}
}

// Addr returns the bound listen address, useful with port 0.
func (m *Master) Addr() net.Addr { return m.ln.Addr() }

// Await blocks until the full worker set has joined, or the connect
// timeout elapses. On error the cluster is closed.
func (m *Master) Await() error {
	deadline := time.After(connectTimeout)
	for connected := 0; connected < m.size-1; {
		select {
		case j := <-m.joins:
			if j.err != nil {
				xlog.Warnf("master: rejected connection: %v", j.err)
				continue
			}
			xlog.Debugf("master: rank %d joined", j.rank)
			connected++
		case <-deadline:
			m.Close()
			return fmt.Errorf("%w: %d of %d workers", ErrConnectTimeout, m.connectedCount(), m.size-1)
		}
	}
	return nil
}

func (m *Master) acceptHello(peer *wsPeer) (int, error) {
	tag, payload, err := peer.read()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrHandshake, err)
	}
	if tag != frameHello || len(payload) != 4 {
		return 0, fmt.Errorf("%w: expected hello frame", ErrHandshake)
	}
	rank := int(int32(binary.BigEndian.Uint32(payload)))
	if rank < 1 || rank >= m.size {
		return 0, fmt.Errorf("%w: rank %d with size %d", ErrBadRank, rank, m.size)
	}
	return rank, nil
}

func (m *Master) readLoop(rank int, peer *wsPeer) {
	for {
		tag, payload, err := peer.read()
		if err != nil {
			return
		}
		m.inbox <- solver.Message{From: rank, Tag: tag, Payload: payload}
	}
}

func (m *Master) connectedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.peers {
		if p != nil {
			count++
		}
	}
	return count
}

// Rank returns 0.
func (m *Master) Rank() int { return 0 }

// Size returns the cluster size, master included.
func (m *Master) Size() int { return m.size }

// Send writes one frame to the worker dst.
func (m *Master) Send(dst, tag int, payload []byte) error {
	if dst < 1 || dst >= m.size || m.peers[dst] == nil {
		return fmt.Errorf("%w: rank %d", ErrBadDestination, dst)
	}
	return m.peers[dst].write(tag, payload)
}

// Recv blocks for the next worker frame matching src and tag.
func (m *Master) Recv(src, tag int) (solver.Message, error) {
	for i, msg := range m.pending {
		if matches(msg, src, tag) {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return msg, nil
		}
	}
	for {
		msg := <-m.inbox
		if matches(msg, src, tag) {
			return msg, nil
		}
		m.pending = append(m.pending, msg)
	}
}

// Barrier collects one barrier frame from every worker, then releases
// them all.
func (m *Master) Barrier() error {
	for i := 1; i < m.size; i++ {
		if _, err := m.Recv(solver.AnySource, frameBarrier); err != nil {
			return err
		}
	}
	for w := 1; w < m.size; w++ {
		if err := m.Send(w, frameBarrier, nil); err != nil {
			return err
		}
	}
	return nil
}

// Close tears the cluster down: all worker connections and the listener.
func (m *Master) Close() {
	m.closeOnce.Do(func() {
		for _, p := range m.peers {
			if p != nil {
				_ = p.conn.Close()
			}
		}
		_ = m.srv.Close()
	})
}

// Worker is one spoke of a websocket cluster. All of its traffic goes
// to the master; the protocol never needs worker↔worker messages.
type Worker struct {
	rank    int
	size    int
	peer    *wsPeer
	pending []solver.Message
}

// NewWorker dials the master at url (ws://host:port) and identifies
// itself as rank.
func NewWorker(url string, rank, size int) (*Worker, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if rank < 1 || rank >= size {
		return nil, fmt.Errorf("%w: rank %d with size %d", ErrBadRank, rank, size)
	}

	dialer := websocket.Dialer{HandshakeTimeout: connectTimeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("cluster: dial %s: %w", url, err)
	}

	hello := make([]byte, 4)
	binary.BigEndian.PutUint32(hello, uint32(int32(rank)))
	w := &Worker{rank: rank, size: size, peer: &wsPeer{conn: conn}}
	if err := w.peer.write(frameHello, hello); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrHandshake, err)
	}
	return w, nil
}

// Rank returns this worker's rank.
func (w *Worker) Rank() int { return w.rank }

// Size returns the cluster size, master included.
func (w *Worker) Size() int { return w.size }

// Send writes one frame to the master.
func (w *Worker) Send(dst, tag int, payload []byte) error {
	if dst != 0 {
		return fmt.Errorf("%w: rank %d", ErrBadDestination, dst)
	}
	return w.peer.write(tag, payload)
}

// Recv blocks for the next master frame matching tag. src may only be
// 0 or AnySource on this transport.
func (w *Worker) Recv(src, tag int) (solver.Message, error) {
	if src != 0 && src != solver.AnySource {
		return solver.Message{}, fmt.Errorf("%w: recv from rank %d", ErrBadDestination, src)
	}
	for i, msg := range w.pending {
		if tag == solver.AnyTag || msg.Tag == tag {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return msg, nil
		}
	}
	for {
		gotTag, payload, err := w.peer.read()
		if err != nil {
			return solver.Message{}, fmt.Errorf("cluster: read: %w", err)
		}
		msg := solver.Message{From: 0, Tag: gotTag, Payload: payload}
		if tag == solver.AnyTag || gotTag == tag {
			return msg, nil
		}
		w.pending = append(w.pending, msg)
	}
}

// Barrier announces entry to the master and blocks for the release
// frame. Protocol frames arriving in between are parked for later
// Recv calls.
func (w *Worker) Barrier() error {
	if err := w.Send(0, frameBarrier, nil); err != nil {
		return err
	}
	_, err := w.Recv(0, frameBarrier)
	return err
}

// Close shuts the connection to the master.
func (w *Worker) Close() { _ = w.peer.conn.Close() }
