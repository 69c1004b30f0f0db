package gameplay

import (
	"math/rand"
	"testing"
	"time"

	"mazeescape/pkg/engine/clock"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/events"
	"mazeescape/pkg/game/mode"
	"mazeescape/pkg/game/state"
	"mazeescape/pkg/game/tier"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// corridorLevel builds a level on a 3-row grid whose middle row is a single
// corridor from (1,1) to the exit at (cols-2,1).
func corridorLevel(t *testing.T, cols int, m mode.Config) (*state.Level, *clock.Manual) {
	t.Helper()
	grid := world.NewGrid(3, cols)
	for x := 1; x < cols-1; x++ {
		grid.SetTile(world.Pos(x, 1), world.Open)
	}
	grid.SetStart(world.Pos(1, 1))
	grid.SetExit(world.Pos(cols-2, 1))
	return levelOn(t, grid, m)
}

// levelOn wraps grid in a fresh running level with a manual clock
func levelOn(t *testing.T, grid *world.Grid, m mode.Config) (*state.Level, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(epoch)
	l := &state.Level{
		Grid:        grid,
		Player:      grid.Start(),
		Tier:        tier.Get(tier.Easy),
		Mode:        m,
		Clock:       clk,
		Rng:         rand.New(rand.NewSource(1)),
		Scheduler:   events.NewScheduler(m.Events, m.Threshold),
		Darkness:    events.NewDarkness(),
		StartedAt:   clk.Now(),
		LastEventAt: clk.Now(),
		Outcome:     state.InProgress,
	}
	return l, clk
}
