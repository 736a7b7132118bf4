// Package ga - stagnation detection over a trailing window of best distances.
//
// The window holds the last `size` best-distance values in a ring. It reports
// nothing until it is full. Once full, the relative improvement is
//
//	StagnationOldestNewest: (oldest − newest) / oldest
//	StagnationWindowMin:    (oldest − min(window)) / oldest
//
// and stagnation is reported when it falls below the threshold. A zero oldest
// value (every city coincident) cannot improve and counts as stagnation.
package ga

// StagnationWindow is a fixed-size sliding window of best-distance values.
type StagnationWindow struct {
	strategy  StagnationStrategy
	threshold float64
	values    []float64
	head      int // index of the oldest value once full
	full      bool
}

// NewStagnationWindow returns an empty window of the given size (clamped to ≥ 1).
func NewStagnationWindow(size int, threshold float64, strategy StagnationStrategy) *StagnationWindow {
	return &StagnationWindow{
		strategy:  strategy,
		threshold: threshold,
		values:    make([]float64, 0, max(size, 1)),
	}
}

// Push records the newest best distance and reports whether the window is
// full and its relative improvement is below the threshold.
//
// Complexity: O(1) for oldest-newest, O(size) for window-min.
func (w *StagnationWindow) Push(best float64) bool {
	var size = cap(w.values)
	if !w.full {
		w.values = append(w.values, best)
		if len(w.values) < size {
			return false
		}
		w.full = true
		w.head = 0
	} else {
		// Overwrite the oldest; the next slot becomes the oldest.
		w.values[w.head] = best
		w.head = (w.head + 1) % size
	}

	return w.improvement() < w.threshold
}

// Len returns the number of values currently held.
func (w *StagnationWindow) Len() int { return len(w.values) }

// Full reports whether the window has reached its configured size.
func (w *StagnationWindow) Full() bool { return w.full }

// Reset empties the window.
func (w *StagnationWindow) Reset() {
	w.values = w.values[:0]
	w.head = 0
	w.full = false
}

// improvement computes the relative improvement of a full window.
func (w *StagnationWindow) improvement() float64 {
	var (
		size   = len(w.values)
		oldest = w.values[w.head]
		newest = w.values[(w.head+size-1)%size]
		ref    float64
	)
	if oldest == 0 {
		return 0
	}

	switch w.strategy {
	case StagnationWindowMin:
		ref = oldest
		for _, v := range w.values {
			ref = min(ref, v)
		}
	default:
		ref = newest
	}

	return (oldest - ref) / oldest
}
