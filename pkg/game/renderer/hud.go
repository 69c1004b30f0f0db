// Package renderer defines the rendering backend interface and the pieces of
// presentation shared by every backend.
package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/state"
)

// SightRadius returns how far the player can see at the snapshot's darkness.
// It shrinks from the whole maze down to world.FOVRadius as darkness rises.
func SightRadius(s state.Snapshot) int {
	if !s.Valid() {
		return world.FOVRadius
	}

	full := s.Grid.Rows()
	if s.Grid.Cols() > full {
		full = s.Grid.Cols()
	}
	if full <= world.FOVRadius {
		return world.FOVRadius
	}

	r := full - int(math.Round(s.Darkness*float64(full-world.FOVRadius)))
	if r < world.FOVRadius {
		return world.FOVRadius
	}
	return r
}

// VisibleCells returns the cells the player can see. The second result is
// false when nothing is hidden and every cell should be drawn.
func VisibleCells(s state.Snapshot) (mapset.Set[world.Position], bool) {
	if !s.Valid() || s.Darkness <= 0 {
		return mapset.New[world.Position](), false
	}
	return world.CalculateFOV(s.Grid, s.Player, SightRadius(s)), true
}

// FormatElapsed renders a duration the way scores are shown
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// StatusLine returns the translated one-line level status
func StatusLine(s state.Snapshot) string {
	return fmt.Sprintf(gotext.Get("HUD_STATUS"), s.Tier.DisplayName(), s.ModeName, FormatElapsed(s.Elapsed))
}

// OutcomeLine returns the translated banner for a finished level, or ""
func OutcomeLine(s state.Snapshot) string {
	switch s.Outcome {
	case state.Escaped:
		return fmt.Sprintf(gotext.Get("HUD_ESCAPED"), FormatElapsed(s.Elapsed))
	case state.Caught:
		return gotext.Get("HUD_CAUGHT")
	case state.Aborted:
		return gotext.Get("HUD_ABORTED")
	default:
		return ""
	}
}
