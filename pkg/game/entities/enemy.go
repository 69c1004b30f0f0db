package entities

import (
	"math/rand"

	"mazeescape/pkg/engine/world"
)

// Enemy represents a wandering maze dweller
type Enemy struct {
	Pos world.Position
}

// NewEnemy creates an enemy at the given position
func NewEnemy(pos world.Position) *Enemy {
	return &Enemy{Pos: pos}
}

// Step returns the next position for an entity at pos. The four unit
// directions are tried in random order and the first walkable neighbour wins.
// A cell with no walkable neighbour keeps the entity in place.
func Step(pos world.Position, grid *world.Grid, rng *rand.Rand) world.Position {
	dirs := world.AllDirections()
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, dir := range dirs {
		next := pos.Step(dir)
		if grid.IsWalkable(next) {
			return next
		}
	}

	return pos
}

// Move advances the enemy one step
func (e *Enemy) Move(grid *world.Grid, rng *rand.Rand) {
	e.Pos = Step(e.Pos, grid, rng)
}
