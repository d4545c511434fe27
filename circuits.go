package aoc

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

var (
	// ErrNoBridge is returned by Solve when no edge ever joins all points
	// into a single circuit. This happens only with fewer than two points.
	ErrNoBridge = errors.New("aoc: no edge connects all points")

	// ErrInsufficientComponents is returned when more circuit sizes are
	// requested than there are circuits.
	ErrInsufficientComponents = errors.New("aoc: not enough circuits")
)

// Edge is an unordered pair of point indices, I < J, and the Euclidean
// distance between the two points.
type Edge struct {
	Dist float64
	I, J int
}

// Edges is a list of edges sorted by ascending distance.
type Edges []Edge

// Hash returns a fingerprint of the edges and their order.
func (es Edges) Hash() deephash.Sum {
	return deephash.Hash(&es)
}

// BuildEdges returns every pair of pts sorted by distance. Pairs are
// generated in lexicographic (i, j) order and the sort is stable, so equal
// distances keep that order.
func BuildEdges[T constraints.Signed](pts []Pt3[T]) Edges {
	n := len(pts)
	if n < 2 {
		return Edges{}
	}
	edges := make(Edges, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{
				Dist: pts[i].Dist(pts[j]),
				I:    i,
				J:    j,
			})
		}
	}
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Dist, b.Dist)
	})
	return edges
}

// ClusterResult is the outcome of Solve.
type ClusterResult struct {
	// Sizes holds the circuit sizes after the bounded phase, largest first.
	Sizes []int
	// Attempts is the number of edges consumed by the bounded phase.
	Attempts int
	// Merges are the bounded-phase edges that joined two distinct circuits.
	Merges []Edge
	// Bridge is the edge whose merge left a single circuit, or nil.
	Bridge *Edge
}

// LargestProduct returns the product of the k largest circuit sizes.
func (r *ClusterResult) LargestProduct(k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("LargestProduct: negative count %d", k)
	}
	if len(r.Sizes) < k {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrInsufficientComponents, k, len(r.Sizes))
	}
	return Product(TopN(r.Sizes, k)...), nil
}

// BridgeXProduct returns the product of the X coordinates of the two
// endpoints of the bridge, computed in int64.
func BridgeXProduct[T constraints.Signed](r *ClusterResult, pts []Pt3[T]) (int64, error) {
	if r.Bridge == nil {
		return 0, ErrNoBridge
	}
	return int64(pts[r.Bridge.I].X) * int64(pts[r.Bridge.J].X), nil
}

// Forest returns the bounded-phase merges as a graph over point indices.
// Every point is a node. Edge weights are the distances rounded down.
func (r *ClusterResult) Forest() Graph[int] {
	var g Graph[int]
	n := Sum(r.Sizes...)
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for _, e := range r.Merges {
		g.AddEdge(e.I, e.J, int(e.Dist))
	}
	return g
}

type solveOptions struct {
	resume bool
}

// SolveOption configures Solve.
type SolveOption func(*solveOptions)

// WithResume makes the search for the bridge continue after the edges
// consumed by the bounded phase rather than scanning again from the
// shortest edge.
func WithResume() SolveOption {
	return func(o *solveOptions) {
		o.resume = true
	}
}

// Solve connects the closest pairs of pts, in order of distance.
//
// The first numConnections edges are each passed to Union whether or not
// they join distinct circuits, after which the circuit sizes are recorded.
// Solve then keeps merging along the same edge order until every point is
// in one circuit and records the edge that did it. If no such edge exists
// the result is still returned, with ErrNoBridge.
func Solve[T constraints.Signed](pts []Pt3[T], numConnections int, opts ...SolveOption) (*ClusterResult, error) {
	var o solveOptions
	for _, opt := range opts {
		opt(&o)
	}

	edges := BuildEdges(pts)
	ds := NewDisjointSet(len(pts))
	res := &ClusterResult{}

	bridge := func(e Edge) bool {
		if ds.NumCircuits() != 1 {
			return false
		}
		res.Bridge = &e
		return true
	}

	for _, e := range edges {
		if res.Attempts >= numConnections {
			break
		}
		res.Attempts++
		if ds.Union(e.I, e.J) {
			res.Merges = append(res.Merges, e)
			if res.Bridge == nil {
				bridge(e)
			}
		}
	}
	res.Sizes = ds.ComponentSizes()

	if res.Bridge != nil {
		return res, nil
	}
	rest := edges
	if o.resume {
		rest = edges[res.Attempts:]
	}
	for _, e := range rest {
		if ds.Union(e.I, e.J) && bridge(e) {
			return res, nil
		}
	}
	return res, ErrNoBridge
}
