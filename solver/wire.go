package solver

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
)

// Message tags of the distributed protocol.
const (
	// TagWork carries n int32 color slots: a sub-problem assignment.
	TagWork = 10
	// TagStop carries no payload and releases a worker.
	TagStop = 11
	// TagResult carries three int64 values: status, nodes, backtracks.
	TagResult = 12
	// TagSol carries n int32 color slots: the witness assignment.
	TagSol = 13
)

// ErrWirePayload indicates a payload whose size does not match its tag.
var ErrWirePayload = errors.New("solver: malformed wire payload")

// encodeColors packs an assignment as big-endian int32 color slots.
func encodeColors(a coloring.Assignment) []byte {
	buf := make([]byte, 4*len(a))
	for i, c := range a {
		binary.BigEndian.PutUint32(buf[4*i:], uint32(int32(c)))
	}
	return buf
}

// decodeColors unpacks n color slots.
func decodeColors(payload []byte, n int) (coloring.Assignment, error) {
	if len(payload) != 4*n {
		return nil, fmt.Errorf("%w: got %d bytes, want %d color slots", ErrWirePayload, len(payload), n)
	}
	a := make(coloring.Assignment, n)
	for i := range a {
		a[i] = int(int32(binary.BigEndian.Uint32(payload[4*i:])))
	}
	return a, nil
}

// encodeResult packs (status, nodes, backtracks) as big-endian int64.
// status is 1 when a witness was found, 0 otherwise.
func encodeResult(status, nodes, backtracks int64) []byte {
	buf := make([]byte, 24)
	binary.BigEndian.PutUint64(buf[0:], uint64(status))
	binary.BigEndian.PutUint64(buf[8:], uint64(nodes))
	binary.BigEndian.PutUint64(buf[16:], uint64(backtracks))
	return buf
}

// decodeResult unpacks a TagResult payload.
func decodeResult(payload []byte) (status, nodes, backtracks int64, err error) {
	if len(payload) != 24 {
		return 0, 0, 0, fmt.Errorf("%w: result payload is %d bytes, want 24", ErrWirePayload, len(payload))
	}
	status = int64(binary.BigEndian.Uint64(payload[0:]))
	nodes = int64(binary.BigEndian.Uint64(payload[8:]))
	backtracks = int64(binary.BigEndian.Uint64(payload[16:]))
	return status, nodes, backtracks, nil
}
