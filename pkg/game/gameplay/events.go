package gameplay

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/entities"
	"mazeescape/pkg/game/events"
	"mazeescape/pkg/game/state"
)

// SpawnEnemyCount is how many enemies a spawn event adds
const SpawnEnemyCount = 2

// pollEvents asks the scheduler whether an event fires this tick
func pollEvents(l *state.Level, now time.Time) {
	if !l.Scheduler.Enabled() {
		return
	}

	kind, fired := l.Scheduler.MaybeTrigger(now.Sub(l.LastEventAt), l.Rng)
	if !fired {
		return
	}

	l.LastEventAt = now
	ApplyEvent(l, kind, now)
}

// ApplyEvent performs the effect of an event on the level
func ApplyEvent(l *state.Level, kind events.Kind, now time.Time) {
	log.WithFields(log.Fields{
		"event": kind.String(),
		"tier":  l.Tier.Name,
		"tick":  l.Ticks,
	}).Debug("Event fired")

	switch kind {
	case events.KindDarkness:
		l.Darkness.Start(now)
		logMessage(l, "EVENT_DARKNESS")
	case events.KindSpawnPortals:
		if SpawnPortals(l) {
			logMessage(l, "EVENT_PORTALS")
		}
	case events.KindSpawnEnemies:
		if n := SpawnEnemies(l); n > 0 {
			logMessage(l, "EVENT_ENEMIES", n)
		}
	}
}

// SpawnPortals opens one linked portal pair on two distinct open cells that
// are neither an existing endpoint nor the player's cell. Nothing happens
// when a pair is already open or the maze has no room for one.
func SpawnPortals(l *state.Level) bool {
	if len(l.PortalEndpoints()) >= entities.MaxPortalEndpoints {
		return false
	}

	avoid := mapset.New[world.Position]()
	avoid.Put(l.Player)
	for _, p := range l.PortalEndpoints() {
		avoid.Put(p)
	}

	cells := entities.PickOpenCells(l.Grid, 2, avoid, l.Rng)
	if len(cells) < 2 {
		return false
	}

	l.Portals = append(l.Portals, entities.NewPortal(cells[0], cells[1]))
	return true
}

// SpawnEnemies adds up to SpawnEnemyCount enemies on distinct open cells
// other than the player's and returns how many were added.
func SpawnEnemies(l *state.Level) int {
	avoid := mapset.New[world.Position]()
	avoid.Put(l.Player)

	cells := entities.PickOpenCells(l.Grid, SpawnEnemyCount, avoid, l.Rng)
	for _, p := range cells {
		l.Enemies = append(l.Enemies, entities.NewEnemy(p))
	}
	return len(cells)
}
