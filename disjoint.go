package aoc

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// ErrInvalidIndex is the panic value (wrapped) when a DisjointSet is asked
// about an element outside [0, n).
var ErrInvalidIndex = errors.New("aoc: disjoint set index out of range")

// DisjointSet is a union-find forest over the elements 0..n-1 with path
// compression and union by size.
type DisjointSet struct {
	parent []int
	size   []int // only meaningful at a root
}

// NewDisjointSet returns a DisjointSet of n singleton sets.
// It panics if n is negative.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("NewDisjointSet: negative size %d", n))
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, x, len(d.parent)))
	}
}

// Find returns the root of the set containing x. Every node on the path
// from x is repointed at the root.
func (d *DisjointSet) Find(x int) int {
	d.check(x)
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y. It reports whether they were
// distinct. The smaller set is attached under the larger; on a tie the set
// of y goes under the set of x.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	return true
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// SizeOf returns the size of the set containing x.
func (d *DisjointSet) SizeOf(x int) int {
	return d.size[d.Find(x)]
}

// NumCircuits returns the number of distinct sets.
func (d *DisjointSet) NumCircuits() int {
	roots := make(map[int]bool)
	for i := range d.parent {
		roots[d.Find(i)] = true
	}
	return len(roots)
}

// ComponentSizes returns the size of every set, largest first.
func (d *DisjointSet) ComponentSizes() []int {
	counts := make(map[int]int)
	for i := range d.parent {
		counts[d.Find(i)]++
	}
	sizes := maps.Values(counts)
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}
