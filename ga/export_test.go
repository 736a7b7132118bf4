package ga

import "math/rand"

// SampleDistinct exposes sampleDistinct to the external test package.
func SampleDistinct(n, k int, rng *rand.Rand) []int {
	return sampleDistinct(n, k, rng, nil)
}

// PopulationShareStorage reports whether any two population slots, or a
// population slot and the best-ever route, share backing storage.
func PopulationShareStorage(e *Engine) bool {
	var seen = make(map[*int]struct{}, len(e.population)+1)
	if len(e.evaluator.best) > 0 {
		seen[&e.evaluator.best[0]] = struct{}{}
	}
	for _, r := range e.population {
		if len(r) == 0 {
			continue
		}
		if _, ok := seen[&r[0]]; ok {
			return true
		}
		seen[&r[0]] = struct{}{}
	}
	return false
}
