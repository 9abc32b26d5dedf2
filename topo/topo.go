// Package topo groups a dependency graph into parallel layers using
// Kahn's algorithm, the way the circuit evaluator groups chips into
// scheduling layers (SPEC_FULL.md §7).
package topo

import "sort"

// Layers groups n nodes (identified 0..n-1) into parallel layers such
// that every edge reported by successors goes from an earlier layer to
// a later one. It returns ok=false when a cycle prevents some nodes
// from ever reaching zero predecessors; in that case layers holds
// whatever layers were harvested before the cycle was detected and
// remaining holds the (unordered) node ids stuck in the cycle, so the
// caller can report which nodes are involved.
//
// The union of the returned layers is exactly the input node set when
// no cycle exists.
func Layers(n int, successors func(node int) []int) (layers [][]int, remaining []int, ok bool) {
	predCount := make([]int, n)
	for i := 0; i < n; i++ {
		for _, s := range successors(i) {
			predCount[s]++
		}
	}

	done := make([]bool, n)
	remainingCount := n

	for remainingCount > 0 {
		var layer []int
		for i := 0; i < n; i++ {
			if !done[i] && predCount[i] == 0 {
				layer = append(layer, i)
			}
		}
		if len(layer) == 0 {
			break
		}
		sort.Ints(layer)
		layers = append(layers, layer)
		for _, i := range layer {
			done[i] = true
			remainingCount--
		}
		for _, i := range layer {
			for _, s := range successors(i) {
				predCount[s]--
			}
		}
	}

	if remainingCount == 0 {
		return layers, nil, true
	}

	for i := 0; i < n; i++ {
		if !done[i] {
			remaining = append(remaining, i)
		}
	}
	return layers, remaining, false
}
