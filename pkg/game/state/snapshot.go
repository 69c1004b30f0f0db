package state

import (
	"time"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/tier"
)

// Snapshot is a read-only copy of what a renderer needs for one frame.
// The grid is shared: mazes are never mutated after generation.
type Snapshot struct {
	Grid     *world.Grid
	Player   world.Position
	Enemies  []world.Position
	Portals  []world.Position
	Darkness float64 // 0 = normal, 1 = fully dark

	Tier     tier.Tier
	ModeName string
	Elapsed  time.Duration
	Outcome  Outcome
	Messages []string
}

// Snapshot captures the level at now
func (l *Level) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		Grid:     l.Grid,
		Player:   l.Player,
		Enemies:  make([]world.Position, 0, len(l.Enemies)),
		Portals:  l.PortalEndpoints(),
		Tier:     l.Tier,
		ModeName: l.Mode.Name,
		Outcome:  l.Outcome,
		Messages: append([]string(nil), l.Messages...),
	}

	for _, e := range l.Enemies {
		s.Enemies = append(s.Enemies, e.Pos)
	}

	if l.Darkness != nil {
		s.Darkness = l.Darkness.Level(now)
	}

	if l.Outcome == Escaped {
		s.Elapsed = l.Elapsed
	} else {
		s.Elapsed = l.ElapsedAt(now)
	}

	return s
}

// Valid returns true if the snapshot has something to draw
func (s Snapshot) Valid() bool {
	return s.Grid != nil
}
