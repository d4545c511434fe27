package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrBadPoint is returned when a line is not an "x,y,z" triple.
var ErrBadPoint = errors.New("aoc: malformed point")

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

// Dist returns the Euclidean distance between a and b.
func (a Pt3[T]) Dist(b Pt3[T]) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	dz := float64(a.Z) - float64(b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (a Pt3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", a.X, a.Y, a.Z)
}

// ParsePt3 parses a line of the form "x,y,z".
func ParsePt3(line string) (Pt3Int, error) {
	f := strings.Split(strings.TrimSpace(line), ",")
	if len(f) != 3 {
		return Pt3Int{}, fmt.Errorf("%w: %q has %d fields", ErrBadPoint, line, len(f))
	}
	var v [3]int
	for i, s := range f {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Pt3Int{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, line, err)
		}
		v[i] = n
	}
	return Pt3Int{v[0], v[1], v[2]}, nil
}

// ReadPt3s parses one point per non-empty line of r, in input order.
func ReadPt3s(r io.Reader) ([]Pt3Int, error) {
	var pts []Pt3Int
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		p, err := ParsePt3(s.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}
