// Package entities provides the movable and placeable things inside a maze:
// enemies, portals and the helpers that choose where they appear.
package entities

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mazeescape/pkg/engine/world"
)

// PickOpenCells chooses up to n distinct Open cells, skipping anything in
// avoid. Fewer than n cells are returned when the maze runs out of candidates.
func PickOpenCells(grid *world.Grid, n int, avoid mapset.Set[world.Position], rng *rand.Rand) []world.Position {
	var candidates []world.Position
	for _, p := range grid.CellsOfType(world.Open) {
		if !avoid.Has(p) {
			candidates = append(candidates, p)
		}
	}

	return sample(candidates, n, rng)
}

// PickDistantOpenCells chooses up to n distinct Open cells at least minDistance
// (Manhattan) from origin. When too few cells are far enough, the remainder is
// filled from any other Open cell not in avoid.
func PickDistantOpenCells(grid *world.Grid, n int, origin world.Position, minDistance int, avoid mapset.Set[world.Position], rng *rand.Rand) []world.Position {
	var far, near []world.Position
	for _, p := range grid.CellsOfType(world.Open) {
		if avoid.Has(p) {
			continue
		}
		if p.Manhattan(origin) >= minDistance {
			far = append(far, p)
		} else {
			near = append(near, p)
		}
	}

	picked := sample(far, n, rng)
	if len(picked) < n {
		picked = append(picked, sample(near, n-len(picked), rng)...)
	}
	return picked
}

// sample draws up to n elements without replacement
func sample(candidates []world.Position, n int, rng *rand.Rand) []world.Position {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	picked := make([]world.Position, 0, n)
	for _, idx := range rng.Perm(len(candidates))[:n] {
		picked = append(picked, candidates[idx])
	}
	return picked
}
