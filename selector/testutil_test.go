package selector_test

// objective is a bare fitness value acting as a solution stub.
type objective float64

func (o objective) Evaluate() float64 { return float64(o) }

// scriptedRand replays queued draws, making nondeterminism points
// observable: Float64 pops from floats, Intn pops from ints.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]

	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]

	return v % n
}
