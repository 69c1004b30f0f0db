package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FOVRadius is the default field of view radius (Chebyshev distance).
const FOVRadius = 4

// CalculateFOV returns the set of positions visible from center within radius.
// Uses a square (Chebyshev) shape with Bresenham line-of-sight. Walls block
// sight but are themselves visible, so corridor edges stay drawn.
func CalculateFOV(grid *Grid, center Position, radius int) mapset.Set[Position] {
	visible := mapset.New[Position]()
	if grid == nil || !grid.IsValidPosition(center) {
		return visible
	}
	visible.Put(center)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if chebyshevDist(dx, dy) > radius {
				continue
			}

			target := Position{X: center.X + dx, Y: center.Y + dy}
			if !grid.IsValidPosition(target) {
				continue
			}

			if hasLineOfSight(grid, center, target) {
				visible.Put(target)
			}
		}
	}

	return visible
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dx, dy).
func chebyshevDist(dx, dy int) int {
	if abs(dx) > abs(dy) {
		return abs(dx)
	}
	return abs(dy)
}

// hasLineOfSight returns true if no wall lies strictly between from and to.
// Uses Bresenham's line algorithm.
func hasLineOfSight(grid *Grid, from, to Position) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)

	var stepX, stepY int
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}
	if dy > 0 {
		stepY = 1
	} else if dy < 0 {
		stepY = -1
	}

	x, y := from.X, from.Y

	if absDy >= absDx {
		// Step along rows
		err := 2*absDx - absDy
		for y != to.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx

			if y == to.Y && x == to.X {
				return true
			}
			if !grid.IsWalkable(Position{X: x, Y: y}) {
				return false
			}
		}
	} else {
		// Step along cols
		err := 2*absDy - absDx
		for x != to.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			if y == to.Y && x == to.X {
				return true
			}
			if !grid.IsWalkable(Position{X: x, Y: y}) {
				return false
			}
		}
	}

	return true
}
