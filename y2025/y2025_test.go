package main

import (
	"testing"

	aoc "github.com/Bartekkur1/aoc2025"
)

func TestSamples(t *testing.T) {
	if err := aoc.CheckSamples(2025, source, &solver{}); err != nil {
		t.Fatal(err)
	}
}
