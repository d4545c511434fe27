package main

import (
	_ "embed"

	aoc "github.com/Bartekkur1/aoc2025"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed y2025.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) connections() int {
	if s.SampleMode {
		return 10
	}
	return 1000
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	pts := s.Pt3s()
	res, err := aoc.Solve(pts, s.connections())
	if err != nil {
		s.Debug("no bridge:", err)
	}
	s.Debugf("%d circuits after %d attempts: %v", len(res.Sizes), res.Attempts, aoc.TopN(res.Sizes, 5))
	return aoc.MustGet(res.LargestProduct(3))
}

// want=25272
func (s solver) D8p2() any {
	pts := s.Pt3s()
	edges := aoc.BuildEdges(pts)
	s.Debugf("%d edges, fingerprint %v", len(edges), edges.Hash())

	res := aoc.MustGet(aoc.Solve(pts, s.connections()))
	b := res.Bridge
	s.Debugf("Final connection: %v to %v", pts[b.I], pts[b.J])
	return aoc.MustGet(aoc.BridgeXProduct(res, pts))
}
