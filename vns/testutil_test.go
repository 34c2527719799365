package vns_test

import "iter"

// point is a position on a fixed number line; fitness is the value at its
// index, lower is better.
type point struct {
	index int
	value float64
}

func (p point) Evaluate() float64 { return p.value }

// lineNumbers is the shared fixture landscape: a local optimum at index 2,
// a better one at index 6 and the global optimum at index 7.
var lineNumbers = []float64{9, 8, 7, 8, 9, 7, 5, 0}

// neighborsWithin yields the points at distance exactly radius to the left
// and right of the solution, clipped to the line bounds, in that order.
// The radius is the neighborhood structure: larger radii can step over
// local optima that trap smaller ones.
type neighborsWithin struct {
	numbers []float64
	radius  int
}

func (o neighborsWithin) ConstructNeighborhood(s point) iter.Seq[point] {
	return func(yield func(point) bool) {
		for _, index := range [2]int{s.index - o.radius, s.index + o.radius} {
			if index < 0 || index >= len(o.numbers) {
				continue
			}
			if !yield(point{index: index, value: o.numbers[index]}) {
				return
			}
		}
	}
}

func pointAt(index int) point {
	return point{index: index, value: lineNumbers[index]}
}
