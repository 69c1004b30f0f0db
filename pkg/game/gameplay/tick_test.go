package gameplay

import (
	"math/rand"
	"testing"
	"time"

	"mazeescape/pkg/engine/clock"
	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/entities"
	"mazeescape/pkg/game/events"
	"mazeescape/pkg/game/mode"
	"mazeescape/pkg/game/state"
	"mazeescape/pkg/game/tier"
)

var (
	none  = engineinput.Intent{}
	east  = engineinput.Intent{Action: engineinput.ActionMoveEast}
	west  = engineinput.Intent{Action: engineinput.ActionMoveWest}
	north = engineinput.Intent{Action: engineinput.ActionMoveNorth}
	quit  = engineinput.Intent{Action: engineinput.ActionQuit}
)

func TestMovePlayer_OnlyIntoWalkableCells(t *testing.T) {
	l, err := NewLevel(LevelSpec{
		Tier: tier.Get(tier.Easy),
		Mode: mode.Classic,
		Rng:  rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}

	l.Grid.ForEachCell(func(p world.Position, tile world.Tile) {
		if !tile.Walkable() {
			return
		}
		for _, dir := range world.AllDirections() {
			l.Player = p
			target := p.Step(dir)
			moved := MovePlayer(l, dir)

			if moved != l.Grid.IsWalkable(target) {
				t.Fatalf("MovePlayer from %v %v = %v, target walkable = %v", p, dir, moved, l.Grid.IsWalkable(target))
			}
			want := p
			if moved {
				want = target
			}
			if l.Player != want {
				t.Fatalf("player at %v after moving %v from %v, want %v", l.Player, dir, p, want)
			}
		}
	})
}

func TestMovePlayer_OffGridIsNoOp(t *testing.T) {
	l, _ := corridorLevel(t, 7, mode.Classic)
	l.Player = world.Pos(0, 0)

	if MovePlayer(l, world.North) || MovePlayer(l, world.West) {
		t.Error("moving off the grid should fail")
	}
	if l.Player != world.Pos(0, 0) {
		t.Errorf("player moved to %v", l.Player)
	}
}

func TestTick_EscapeRecordsElapsed(t *testing.T) {
	l, clk := corridorLevel(t, 5, mode.Classic) // corridor (1,1) (2,1) exit (3,1)

	clk.Advance(time.Second)
	if got := Tick(l, east); got != state.InProgress {
		t.Fatalf("after first step outcome = %v", got)
	}

	clk.Advance(2 * time.Second)
	if got := Tick(l, east); got != state.Escaped {
		t.Fatalf("stepping onto the exit: outcome = %v, want Escaped", got)
	}
	if l.Elapsed != 3*time.Second {
		t.Errorf("elapsed = %v, want 3s", l.Elapsed)
	}
	if l.Ticks != 2 {
		t.Errorf("ticks = %d, want 2", l.Ticks)
	}
}

func TestTick_EscapeElapsedWithinWallClock(t *testing.T) {
	before := time.Now()
	l, err := NewLevel(LevelSpec{
		Tier:  tier.Get(tier.Easy),
		Mode:  mode.Classic,
		Clock: clock.System{},
		Rng:   rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}

	l.Player = l.Grid.Exit().Step(world.West)
	if !l.Grid.IsWalkable(l.Player) {
		l.Player = l.Grid.Exit().Step(world.North)
		Tick(l, engineinput.Intent{Action: engineinput.ActionMoveSouth})
	} else {
		Tick(l, east)
	}
	wall := time.Since(before)

	if l.Outcome != state.Escaped {
		t.Fatalf("outcome = %v, want Escaped", l.Outcome)
	}
	if l.Elapsed < 0 || l.Elapsed > wall {
		t.Errorf("elapsed %v outside [0, %v]", l.Elapsed, wall)
	}
}

func TestTick_WalkingIntoEnemyIsCaught(t *testing.T) {
	l, _ := corridorLevel(t, 7, mode.Classic)
	l.Enemies = []*entities.Enemy{entities.NewEnemy(world.Pos(2, 1))}

	if got := Tick(l, east); got != state.Caught {
		t.Errorf("outcome = %v, want Caught", got)
	}
}

func TestTick_EnemyWalkingIntoPlayerIsCaught(t *testing.T) {
	// The enemy sits at the west dead end; its only move is onto the player.
	l, _ := corridorLevel(t, 7, mode.Classic)
	l.Player = world.Pos(2, 1)
	l.Enemies = []*entities.Enemy{entities.NewEnemy(world.Pos(1, 1))}

	if got := Tick(l, none); got != state.Caught {
		t.Errorf("outcome = %v, want Caught", got)
	}
}

func TestTick_EscapeBeforeCollision(t *testing.T) {
	l, _ := corridorLevel(t, 5, mode.Classic)
	l.Player = world.Pos(2, 1)
	l.Enemies = []*entities.Enemy{entities.NewEnemy(world.Pos(3, 1))}

	if got := Tick(l, east); got != state.Escaped {
		t.Errorf("outcome = %v, want Escaped", got)
	}
}

func TestTick_NeverRunningWithEnemyOnPlayer(t *testing.T) {
	moves := []engineinput.Intent{none, east, west, north, {Action: engineinput.ActionMoveSouth}}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := mode.Hunted
		m.EnemyMoveEvery = 1
		l, err := NewLevel(LevelSpec{Tier: tier.Get(tier.Easy), Mode: m, Rng: rng, Clock: clock.NewManual(epoch)})
		if err != nil {
			t.Fatalf("NewLevel: %v", err)
		}
		// Plenty of company
		SpawnEnemies(l)
		SpawnEnemies(l)

		for i := 0; i < 500 && !l.Outcome.Terminal(); i++ {
			Tick(l, moves[rng.Intn(len(moves))])
			if l.Outcome == state.InProgress && l.EnemyAt(l.Player) {
				t.Fatalf("seed %d tick %d: running with an enemy on the player", seed, l.Ticks)
			}
		}
	}
}

func TestTick_EnemyMoveCadence(t *testing.T) {
	m := mode.Classic
	m.EnemyMoveEvery = 2
	l, _ := corridorLevel(t, 9, m)
	l.Player = world.Pos(5, 1)
	l.Enemies = []*entities.Enemy{entities.NewEnemy(world.Pos(1, 1))} // west dead end

	Tick(l, none)
	if l.Enemies[0].Pos != world.Pos(1, 1) {
		t.Fatalf("enemy moved on tick 1: %v", l.Enemies[0].Pos)
	}
	Tick(l, none)
	if l.Enemies[0].Pos != world.Pos(2, 1) {
		t.Errorf("enemy should leave its dead end on tick 2, at %v", l.Enemies[0].Pos)
	}
}

func TestTick_QuitAborts(t *testing.T) {
	l, _ := corridorLevel(t, 7, mode.Classic)

	if got := Tick(l, quit); got != state.Aborted {
		t.Fatalf("outcome = %v, want Aborted", got)
	}
	if l.Player != world.Pos(1, 1) {
		t.Error("quit should not move the player")
	}
}

func TestTick_FinishedLevelIsNoOp(t *testing.T) {
	l, _ := corridorLevel(t, 7, mode.Classic)
	Abort(l)

	Tick(l, east)
	if l.Player != world.Pos(1, 1) || l.Ticks != 0 {
		t.Error("ticks after the level ended should do nothing")
	}

	Abort(l)
	if l.Outcome != state.Aborted {
		t.Errorf("outcome = %v, want Aborted", l.Outcome)
	}
}

func TestTick_FiresScheduledEvent(t *testing.T) {
	m := mode.Classic
	m.Events = []events.Kind{events.KindDarkness}
	l, clk := corridorLevel(t, 7, m)

	clk.Advance(events.MinInterval - time.Millisecond)
	Tick(l, none)
	if l.Darkness.Active(clk.Now()) {
		t.Fatal("no event may fire before the minimum interval")
	}

	clk.Advance(events.MaxInterval)
	Tick(l, none)
	if !l.Darkness.Active(clk.Now()) {
		t.Fatal("darkness should fire once the maximum interval has passed")
	}
	if !l.LastEventAt.Equal(clk.Now()) {
		t.Errorf("LastEventAt = %v, want %v", l.LastEventAt, clk.Now())
	}

	// Darkness does not block movement
	Tick(l, east)
	if l.Player != world.Pos(2, 1) {
		t.Errorf("player at %v during darkness, want (2,1)", l.Player)
	}
}
