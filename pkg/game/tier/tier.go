// Package tier defines the fixed difficulty ladder of a campaign. Tiers are
// played in order; each one has a fixed maze size.
package tier

import (
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Level is a difficulty tier
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

// Total is the number of tiers in a campaign
const Total = 3

// Tier describes one rung of the ladder
type Tier struct {
	Level Level
	Name  string // Stable identifier used in logs and records
	Rows  int
	Cols  int
}

// Ladder is the campaign order. Index is the Level.
var Ladder = [Total]Tier{
	{Level: Easy, Name: "easy", Rows: 15, Cols: 15},
	{Level: Medium, Name: "medium", Rows: 21, Cols: 21},
	{Level: Hard, Name: "hard", Rows: 31, Cols: 31},
}

// Get returns the tier for a level, falling back to Medium when out of range
func Get(level Level) Tier {
	if level < Easy || level > Hard {
		return Ladder[Medium]
	}
	return Ladder[level]
}

// From returns the tiers from level to the end of the ladder, in order
func From(level Level) []Tier {
	if level < Easy || level > Hard {
		level = Medium
	}
	return append([]Tier(nil), Ladder[level:]...)
}

// IsFinal returns true if the level is the last tier
func IsFinal(level Level) bool {
	return level >= Hard
}

// Next returns the following tier and true, or false if level is final
func Next(level Level) (Tier, bool) {
	if level < Easy || IsFinal(level) {
		return Tier{}, false
	}
	return Ladder[level+1], true
}

// Parse maps a menu choice ("1", "2", "3" or a tier name) to a level.
// Anything unrecognised selects Medium.
func Parse(choice string) Level {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "1", "easy":
		return Easy
	case "2", "medium":
		return Medium
	case "3", "hard":
		return Hard
	default:
		return Medium
	}
}

// DisplayName returns the translated tier name. Uses gotext.Get with constant keys to satisfy vet.
func (t Tier) DisplayName() string {
	switch t.Level {
	case Easy:
		return gotext.Get("TIER_EASY")
	case Hard:
		return gotext.Get("TIER_HARD")
	default:
		return gotext.Get("TIER_MEDIUM")
	}
}
