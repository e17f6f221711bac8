// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package stats

import (
	"cmp"
	"slices"
)

// Count is the number of occurrences of one value.
type Count[T cmp.Ordered] struct {
	Value T
	N     int
}

// Counts is a frequency table ordered by descending count, ties broken by
// ascending value.
type Counts[T cmp.Ordered] []Count[T]

// Tally builds the frequency table of values.
func Tally[T cmp.Ordered](values []T) Counts[T] {
	seen := make(map[T]int, len(values))
	for _, v := range values {
		seen[v]++
	}
	out := make(Counts[T], 0, len(seen))
	for v, n := range seen {
		out = append(out, Count[T]{Value: v, N: n})
	}
	slices.SortFunc(out, func(a, b Count[T]) int {
		if a.N != b.N {
			return cmp.Compare(b.N, a.N)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// Get returns the count recorded for v, or 0.
func (c Counts[T]) Get(v T) int {
	for _, e := range c {
		if e.Value == v {
			return e.N
		}
	}
	return 0
}

// Mode returns the most frequent value. Ties resolve to the smallest value so
// the result does not depend on input order. ok is false for empty input.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := Tally(values)
	if len(counts) == 0 {
		return mode, false
	}
	return counts[0].Value, true
}
