// Package state holds the data of a single level. Gameplay logic that
// advances it lives in the gameplay package.
package state

import (
	"math/rand"
	"time"

	"mazeescape/pkg/engine/clock"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/entities"
	"mazeescape/pkg/game/events"
	"mazeescape/pkg/game/mode"
	"mazeescape/pkg/game/tier"
)

// Outcome is the result of a level
type Outcome int

const (
	InProgress Outcome = iota
	Escaped
	Caught
	Aborted
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "InProgress"
	case Escaped:
		return "Escaped"
	case Caught:
		return "Caught"
	case Aborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Terminal returns true once the level is over
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// maxMessages is the size of the level's message log
const maxMessages = 5

// Level represents the state of one level for The Maze
type Level struct {
	Grid *world.Grid

	Player  world.Position
	Enemies []*entities.Enemy // Spawn order
	Portals []*entities.Portal

	Tier tier.Tier
	Mode mode.Config

	Clock     clock.Clock
	Rng       *rand.Rand
	Scheduler *events.Scheduler
	Darkness  *events.Darkness

	StartedAt   time.Time
	LastEventAt time.Time
	Ticks       int

	Outcome Outcome
	Elapsed time.Duration // Set when the player escapes

	Messages []string
}

// AddMessage adds a message to the level's message log
func (l *Level) AddMessage(msg string) {
	l.Messages = append(l.Messages, msg)

	// Keep only the last maxMessages
	if len(l.Messages) > maxMessages {
		l.Messages = l.Messages[len(l.Messages)-maxMessages:]
	}
}

// EnemyAt returns true if any enemy stands on p
func (l *Level) EnemyAt(p world.Position) bool {
	for _, e := range l.Enemies {
		if e.Pos == p {
			return true
		}
	}
	return false
}

// PortalEndpoints returns every open portal endpoint
func (l *Level) PortalEndpoints() []world.Position {
	var endpoints []world.Position
	for _, p := range l.Portals {
		endpoints = append(endpoints, p.Endpoints()...)
	}
	return endpoints
}

// PortalAt returns the portal with an endpoint on p, or nil
func (l *Level) PortalAt(p world.Position) *entities.Portal {
	for _, portal := range l.Portals {
		if _, ok := portal.Partner(p); ok {
			return portal
		}
	}
	return nil
}

// ElapsedAt returns the time spent in the level at now, never negative
func (l *Level) ElapsedAt(now time.Time) time.Duration {
	elapsed := now.Sub(l.StartedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
