// Package gameplay provides the level simulation: building a level, moving
// the player, firing events and advancing enemies one tick at a time.
package gameplay

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"mazeescape/pkg/engine/clock"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/entities"
	"mazeescape/pkg/game/events"
	"mazeescape/pkg/game/generator"
	"mazeescape/pkg/game/mode"
	"mazeescape/pkg/game/state"
	"mazeescape/pkg/game/tier"
)

// LevelSpec describes the level to build. Zero-valued collaborators fall
// back to the defaults (backtracker, system clock, time-seeded rng).
type LevelSpec struct {
	Tier      tier.Tier
	Mode      mode.Config
	Generator generator.GridGenerator
	Clock     clock.Clock
	Rng       *rand.Rand
}

// NewLevel generates the maze, places the player on the start cell, seeds
// the mode's initial enemies and starts the level timers.
func NewLevel(spec LevelSpec) (*state.Level, error) {
	gen := spec.Generator
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	clk := spec.Clock
	if clk == nil {
		clk = clock.System{}
	}
	rng := spec.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid, err := gen.Generate(spec.Tier.Rows, spec.Tier.Cols, rng)
	if err != nil {
		return nil, fmt.Errorf("generate %s maze: %w", spec.Tier.Name, err)
	}

	now := clk.Now()
	l := &state.Level{
		Grid:        grid,
		Player:      grid.Start(),
		Tier:        spec.Tier,
		Mode:        spec.Mode,
		Clock:       clk,
		Rng:         rng,
		Scheduler:   events.NewScheduler(spec.Mode.Events, spec.Mode.Threshold),
		Darkness:    events.NewDarkness(),
		StartedAt:   now,
		LastEventAt: now,
		Outcome:     state.InProgress,
		Messages:    make([]string, 0),
	}

	placeInitialEnemies(l)

	logMessage(l, "LEVEL_START", spec.Tier.DisplayName())
	if l.Scheduler.Enabled() {
		logMessage(l, "LEVEL_EVENTS_ENABLED")
	}

	log.WithFields(log.Fields{
		"tier":    spec.Tier.Name,
		"mode":    spec.Mode.Name,
		"rows":    grid.Rows(),
		"cols":    grid.Cols(),
		"enemies": len(l.Enemies),
		"events":  l.Scheduler.Kinds(),
	}).Info("Level started")

	return l, nil
}

// placeInitialEnemies puts the mode's starting enemies on open cells, as far
// from the player as the maze allows.
func placeInitialEnemies(l *state.Level) {
	if l.Mode.InitialEnemies <= 0 {
		return
	}

	avoid := mapset.New[world.Position]()
	avoid.Put(l.Player)

	cells := entities.PickDistantOpenCells(l.Grid, l.Mode.InitialEnemies, l.Player, l.Mode.EnemyMinDistance, avoid, l.Rng)
	for _, p := range cells {
		l.Enemies = append(l.Enemies, entities.NewEnemy(p))
	}
}
