// Package graphio reads and writes graphs in the edge-list text
// format: a header line "n m" followed by m lines "u v". With oneBased
// set, vertex ids are decremented on read and incremented on write.
//
// Self-loops are dropped silently by the graph itself; repeated edges
// pass through unchanged in both directions, so a read/write round
// trip preserves multiplicity.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrBadHeader indicates a missing or malformed "n m" header.
	ErrBadHeader = errors.New("graphio: bad header (n m)")

	// ErrBadEdge indicates a missing or malformed edge line.
	ErrBadEdge = errors.New("graphio: bad edge line")
)

// ReadEdgeList parses the file at path into a graph. Tokens may be
// separated by any whitespace, line breaks included.
func ReadEdgeList(path string, oneBased bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	n, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrBadHeader, path, err)
	}
	m, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrBadHeader, path, err)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrBadHeader, path, err)
	}
	for i := 0; i < m; i++ {
		u, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("%w %d in %s: %v", ErrBadEdge, i, path, err)
		}
		v, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("%w %d in %s: %v", ErrBadEdge, i, path, err)
		}
		if oneBased {
			u--
			v--
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w %d in %s: %v", ErrBadEdge, i, path, err)
		}
	}
	return g, nil
}

// WriteEdgeList writes g to path, emitting each undirected edge once
// at its u < v orientation. Parallel edges are written as many times
// as they occur.
func WriteEdgeList(path string, g *core.Graph, oneBased bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	offset := 0
	if oneBased {
		offset = 1
	}

	fmt.Fprintf(w, "%d %d\n", g.VertexCount(), g.EdgeCount())
	for u := 0; u < g.VertexCount(); u++ {
		for _, v := range g.Neighbors(u) {
			if u < v {
				fmt.Fprintf(w, "%d %d\n", u+offset, v+offset)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}
	return nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, errors.New("unexpected end of file")
	}
	return strconv.Atoi(sc.Text())
}
