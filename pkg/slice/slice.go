// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice adds the generic helpers [slices] lacks. Results are never nil,
so catalogue responses always encode as JSON arrays.
*/
package slice

// Map applies transform to every element, keeping order.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, 0, len(input))
	for _, v := range input {
		result = append(result, transform(v))
	}
	return result
}

// Filter keeps the elements for which predicate holds, in order.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := []T{}
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce folds input into a single value, left to right.
func Reduce[T any, U any](input []T, initial U, reducer func(accumulator U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}

// Index builds a lookup map keyed by the result of key. Later elements win on
// duplicate keys.
func Index[T any, K comparable](input []T, key func(T) K) map[K]T {
	result := make(map[K]T, len(input))
	for _, v := range input {
		result[key(v)] = v
	}
	return result
}
