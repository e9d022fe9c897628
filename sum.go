package main

import "golang.org/x/exp/constraints"

// fill returns lo, lo+1, ..., hi-1.
func fill[T constraints.Integer](lo, hi T) []T {
	var x []T
	for i := lo; i < hi; i++ {
		x = append(x, i)
	}
	return x
}

//go:noinline
func Sum[T constraints.Integer](nums []T) (s T) {
	if len(nums) == 0 {
		return
	}
	for _, n := range nums {
		s += n
	}
	return
}
