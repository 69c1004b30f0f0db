package gameplay

import (
	"time"

	log "github.com/sirupsen/logrus"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/state"
)

// Tick advances the level by one simulation step and returns its outcome.
// Ticks on a finished level do nothing.
func Tick(l *state.Level, intent engineinput.Intent) state.Outcome {
	if l.Outcome.Terminal() {
		return l.Outcome
	}

	if intent.Action == engineinput.ActionQuit {
		Abort(l)
		return l.Outcome
	}

	now := l.Clock.Now()
	l.Ticks++

	pollEvents(l, now)

	if dir, ok := intent.Direction(); ok {
		MovePlayer(l, dir)
	}

	if l.Grid.Tile(l.Player) == world.Exit {
		escape(l, now)
		return l.Outcome
	}

	// Walking into an enemy
	if l.EnemyAt(l.Player) {
		caught(l)
		return l.Outcome
	}

	if enemiesMoveThisTick(l) {
		for _, e := range l.Enemies {
			e.Move(l.Grid, l.Rng)
		}
	}

	// An enemy walking into the player
	if l.EnemyAt(l.Player) {
		caught(l)
	}

	return l.Outcome
}

// Abort ends a running level at the player's request
func Abort(l *state.Level) {
	if l.Outcome.Terminal() {
		return
	}
	l.Outcome = state.Aborted
	logMessage(l, "LEVEL_ABORTED")
	log.WithField("tier", l.Tier.Name).Info("Level aborted")
}

func enemiesMoveThisTick(l *state.Level) bool {
	if len(l.Enemies) == 0 {
		return false
	}
	every := l.Mode.EnemyMoveEvery
	if every < 1 {
		every = 1
	}
	return l.Ticks%every == 0
}

func escape(l *state.Level, now time.Time) {
	l.Outcome = state.Escaped
	l.Elapsed = l.ElapsedAt(now)
	logMessage(l, "LEVEL_ESCAPED", l.Elapsed.Seconds())
	log.WithFields(log.Fields{
		"tier":    l.Tier.Name,
		"elapsed": l.Elapsed.Seconds(),
		"ticks":   l.Ticks,
	}).Info("Level escaped")
}

func caught(l *state.Level) {
	l.Outcome = state.Caught
	logMessage(l, "LEVEL_CAUGHT")
	log.WithFields(log.Fields{
		"tier":   l.Tier.Name,
		"player": l.Player.String(),
		"ticks":  l.Ticks,
	}).Info("Player caught")
}
