package tsp

import (
	"fmt"

	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
)

// validateSelection enforces the selection size policy and start
// membership before any graph is built.
//
// Complexity: O(n).
func validateSelection(selected []distance.Location, start distance.Location, o Options) error {
	n := len(selected)
	if n < o.MinLocations {
		return fmt.Errorf("%w: %d selected, at least %d required", ErrSelectionTooSmall, n, o.MinLocations)
	}
	if o.MaxLocations > 0 && n > o.MaxLocations {
		return fmt.Errorf("%w: %d selected, at most %d allowed", ErrSelectionTooLarge, n, o.MaxLocations)
	}
	for _, loc := range selected {
		if loc == start {
			return nil
		}
	}

	return fmt.Errorf("%w: %q (available: %v)", ErrStartNotFound, start, selected)
}

// validateStart checks that start is one of g's locations.
func validateStart(g *distance.Graph, start distance.Location) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Has(start) {
		return fmt.Errorf("%w: %q (available: %v)", ErrStartNotFound, start, g.Locations())
	}

	return nil
}
