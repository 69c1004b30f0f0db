package generator

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with a randomized depth-first
// search driven by an explicit stack. Passage cells sit on odd coordinates
// with unit walls between them.
type BacktrackerGenerator struct{}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Backtracker"
}

// Generate creates a new maze of rows x cols. Start is (1,1) and the exit is
// the far corner (cols-2, rows-2).
func (g *BacktrackerGenerator) Generate(rows, cols int, rng *rand.Rand) (*world.Grid, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrDimensionsTooSmall, rows, cols, MinDimension, MinDimension)
	}

	grid := world.NewGrid(rows, cols)
	grid.Info.Generator = g.Name()

	start := world.Pos(1, 1)
	grid.SetStart(start)
	grid.Info.CarveSteps = carve(grid, start, rng)

	exit := world.Pos(cols-2, rows-2)
	if grid.Tile(exit) == world.Wall {
		// Only reachable with even dimensions: the corner is off the lattice.
		grid.Info.Degenerate = true
		log.WithFields(log.Fields{
			"rows": rows,
			"cols": cols,
			"exit": exit.String(),
		}).Warn("Exit lies outside the carved maze; forcing it open")
	}
	grid.SetExit(exit)

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("generated invalid grid: %w", err)
	}

	return grid, nil
}

// carve opens passages from start and returns the number of cells it opened
// after the start cell. Each advance opens one wall and one fresh lattice
// cell, so the open cells form a tree with steps+1 nodes.
func carve(grid *world.Grid, start world.Position, rng *rand.Rand) int {
	maxX, maxY := grid.Cols()-2, grid.Rows()-2

	grid.SetTile(start, world.Open)
	stack := []world.Position{start}
	dirs := world.AllDirections()
	steps := 0

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		advanced := false
		for _, dir := range dirs {
			between := current.Step(dir)
			target := between.Step(dir)

			if target.X < 1 || target.X > maxX || target.Y < 1 || target.Y > maxY {
				continue
			}
			if grid.Tile(target) != world.Wall {
				continue
			}

			grid.SetTile(between, world.Open)
			grid.SetTile(target, world.Open)
			stack = append(stack, target)
			steps += 2
			advanced = true
			break
		}

		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return steps
}
