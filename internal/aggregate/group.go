// Package aggregate derives the analytics view-models from loaded records.
// Everything here is a pure function of its inputs: results are recomputed
// from scratch when filters change, never updated in place.
package aggregate

import "sort"

// Groups is an ordered partition of records: iteration over Keys() visits
// groups in the order their keys were first seen, which keeps downstream
// rankings deterministic.
type Groups[K comparable, T any] struct {
	keys    []K
	members map[K][]T
}

// GroupBy partitions records by keyFn, preserving first-seen key order
func GroupBy[K comparable, T any](records []T, keyFn func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{members: make(map[K][]T)}
	for _, r := range records {
		k := keyFn(r)
		if _, seen := g.members[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.members[k] = append(g.members[k], r)
	}
	return g
}

// Keys returns the group keys in first-seen order
func (g *Groups[K, T]) Keys() []K {
	return g.keys
}

// Get returns the members of one group
func (g *Groups[K, T]) Get(key K) []T {
	return g.members[key]
}

// Len returns the number of groups
func (g *Groups[K, T]) Len() int {
	return len(g.keys)
}

// TopN sorts items descending by score and returns the first n. The sort
// is stable, so ties keep their original insertion order. n <= 0 or
// n > len(items) returns the whole sorted list.
func TopN[T any](items []T, n int, score func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) > score(out[j])
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
