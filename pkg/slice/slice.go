// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter, TopBy) leveraging generics.
*/
package slice

import (
	"cmp"
	"slices"
)

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
//
// The result is never nil, so callers can range over it and encode it as an empty JSON array.
func Filter[T any](input []T, predicate func(T) bool) []T {

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	result := []T{}
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Order selects the direction used by [TopBy].
type Order int

const (
	// Ascending puts the smallest keys first.
	Ascending Order = iota
	// Descending puts the largest keys first.
	Descending
)

// TopBy returns the first n elements of input after a stable sort by key.
//
// The input slice is never reordered; sorting happens on a copy. Elements with
// equal keys keep their input order. When n exceeds len(input) the
// whole sorted copy is returned, and when n <= 0 the result is empty.
func TopBy[T any, K cmp.Ordered](input []T, n int, order Order, key func(T) K) []T {
	if n <= 0 {
		return []T{}
	}

	sorted := slices.Clone(input)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if order == Descending {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[:n:n]
}
