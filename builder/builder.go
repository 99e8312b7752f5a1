package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// Sentinel errors for generator parameters.
var (
	// ErrTooFewVertices indicates a topology that needs more vertices.
	ErrTooFewVertices = errors.New("builder: too few vertices for this topology")

	// ErrBadDimensions indicates non-positive grid dimensions.
	ErrBadDimensions = errors.New("builder: grid dimensions must be positive")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0, 1]")
)

// Complete builds K_n: every vertex pair joined. n ≥ 0.
func Complete(n int) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Cycle builds C_n for n ≥ 3.
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs n >= 3, got %d", ErrTooFewVertices, n)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Grid builds a rows×cols 4-neighborhood grid. Vertex (r, c) has index
// r*cols + c.
func Grid(rows, cols int) (*core.Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	g, err := core.NewGraph(rows * cols)
	if err != nil {
		return nil, err
	}
	id := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r+1 < rows {
				if err := g.AddEdge(id(r, c), id(r+1, c)); err != nil {
					return nil, err
				}
			}
			if c+1 < cols {
				if err := g.AddEdge(id(r, c), id(r, c+1)); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// RandomGnp builds G(n, p): each of the n(n−1)/2 pairs appears
// independently with probability p, drawn from a rand.Rand seeded with
// seed.
func RandomGnp(n int, p float64, seed int64) (*core.Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// RandomBipartite builds a random bipartite graph: vertices
// 0..left−1 on one side, left..left+right−1 on the other, each cross
// pair present with probability p.
func RandomBipartite(left, right int, p float64, seed int64) (*core.Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	g, err := core.NewGraph(left + right)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < left; i++ {
		for j := 0; j < right; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(i, left+j); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
