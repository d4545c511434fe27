package aoc

import "testing"

func TestProduct(t *testing.T) {
	tests := []struct {
		nums []int
		want int
	}{
		{nums: nil, want: 1},
		{nums: []int{7}, want: 7},
		{nums: []int{5, 4, 2}, want: 40},
		{nums: []int{3, -2, 0}, want: 0},
	}
	for _, tt := range tests {
		if got := Product(tt.nums...); got != tt.want {
			t.Errorf("Product(%v) = %v, want %v", tt.nums, got, tt.want)
		}
	}
}

func TestTopN(t *testing.T) {
	nums := []int{2, 9, 4, 9, 1}
	got := TopN(nums, 3)
	want := []int{9, 9, 4}
	if len(got) != len(want) {
		t.Fatalf("TopN = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TopN = %v, want %v", got, want)
		}
	}
	if nums[0] != 2 {
		t.Errorf("TopN modified its input: %v", nums)
	}
	if got := TopN(nums, 10); len(got) != len(nums) {
		t.Errorf("TopN(nums, 10) has %d values, want %d", len(got), len(nums))
	}
	if got := TopN(nums, -1); len(got) != 0 {
		t.Errorf("TopN(nums, -1) = %v, want none", got)
	}
}

func TestAbsDiff(t *testing.T) {
	if got := AbsDiff(3, 10); got != 7 {
		t.Errorf("AbsDiff(3, 10) = %v, want 7", got)
	}
	if got := AbsDiff(2.5, -1.0); got != 3.5 {
		t.Errorf("AbsDiff(2.5, -1) = %v, want 3.5", got)
	}
}
