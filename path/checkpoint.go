package path

import (
	"fmt"
	"sort"
)

// CheckpointIndices maps the configured route-length fractions onto concrete
// route indices. The result is strictly increasing and interior: no index is
// ever 0 or the final index, so the rider never pauses on the start or end
// cell.
func CheckpointIndices(fractions []float64, routeLen int) ([]int, error) {
	if routeLen < len(fractions)+2 {
		return nil, fmt.Errorf("path: route of %d cells cannot hold %d interior checkpoints", routeLen, len(fractions))
	}

	sorted := append([]float64(nil), fractions...)
	sort.Float64s(sorted)

	out := make([]int, 0, len(sorted))
	prev := 0
	for _, f := range sorted {
		if f <= 0 || f >= 1 {
			return nil, fmt.Errorf("path: checkpoint fraction %v outside (0, 1)", f)
		}
		idx := int(f * float64(routeLen-1))
		if idx <= prev {
			idx = prev + 1
		}
		if idx >= routeLen-1 {
			return nil, fmt.Errorf("path: checkpoint fraction %v lands on or past the final index", f)
		}
		out = append(out, idx)
		prev = idx
	}
	return out, nil
}
