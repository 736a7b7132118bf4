// Package city - precomputed symmetric distance table.
//
// Design:
//   - Distances are stored linearized (w[i*n+j]) for cache-friendly reads,
//     so the evaluator's hot loop performs no interface calls.
//   - The table is read-only after construction and safe to share between
//     goroutines; every engine in a benchmark can reuse one Matrix.
package city

// Matrix is a read-only n×n table of pairwise Euclidean distances.
type Matrix struct {
	n int
	w []float64
}

// NewMatrix computes all pairwise distances for cities.
// The diagonal is zero and the table is exactly symmetric.
//
// Complexity: O(n²) time and space.
func NewMatrix(cities []City) *Matrix {
	var n = len(cities)
	m := &Matrix{n: n, w: make([]float64, n*n)}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(cities[i], cities[j])
			m.w[i*n+j] = d
			m.w[j*n+i] = d
		}
	}

	return m
}

// N returns the number of cities covered by the table.
func (m *Matrix) N() int { return m.n }

// At returns the distance between cities i and j.
// Indices are not range-checked; callers pass validated permutations.
func (m *Matrix) At(i, j int) float64 { return m.w[i*m.n+j] }
