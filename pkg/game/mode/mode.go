// Package mode defines the game variants. Every variant runs the same level
// simulation; a Config only switches features on and off.
package mode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"mazeescape/pkg/game/events"
)

// ErrUnknownMode is returned by Lookup for an unregistered name
var ErrUnknownMode = errors.New("unknown game mode")

// Config is the enabled-feature set of a game variant
type Config struct {
	Name string

	// Events the scheduler may fire; empty disables random events
	Events    []events.Kind
	Threshold events.ThresholdPolicy

	InitialEnemies   int // Enemies placed when a level starts
	EnemyMinDistance int // Preferred Manhattan distance of initial enemies from the player
	EnemyMoveEvery   int // Enemies step once every N ticks (1 = every tick)

	Portals bool // Stepping on a portal endpoint teleports the player

	Persist          bool // Best total time is loaded and saved
	AllowEarlyStop   bool // Ask whether to continue after Easy and Medium
	SelectDifficulty bool // Ask which tier to start from
	RetryOnCaught    bool // Replay the tier instead of ending the campaign
	MaxRetries       int
}

// HasEvent returns true if the mode enables the given event kind
func (c Config) HasEvent(kind events.Kind) bool {
	for _, k := range c.Events {
		if k == kind {
			return true
		}
	}
	return false
}

// Preset variants
var (
	Classic = Config{
		Name:           "classic",
		EnemyMoveEvery: 1,
		Persist:        true,
	}

	Hunted = Config{
		Name:             "hunted",
		Events:           []events.Kind{events.KindDarkness, events.KindSpawnEnemies, events.KindNone},
		InitialEnemies:   2,
		EnemyMinDistance: 8,
		EnemyMoveEvery:   2,
		Persist:          true,
	}

	Blackout = Config{
		Name:             "blackout",
		Events:           []events.Kind{events.KindDarkness, events.KindNone},
		SelectDifficulty: true,
		AllowEarlyStop:   true,
		EnemyMoveEvery:   1,
		Persist:          true,
	}

	Warp = Config{
		Name:             "warp",
		Events:           []events.Kind{events.KindDarkness, events.KindSpawnPortals, events.KindNone},
		InitialEnemies:   1,
		EnemyMinDistance: 10,
		EnemyMoveEvery:   2,
		Portals:          true,
		AllowEarlyStop:   true,
		Persist:          true,
	}

	Endurance = Config{
		Name:             "endurance",
		Events:           []events.Kind{events.KindDarkness, events.KindSpawnEnemies, events.KindSpawnPortals},
		InitialEnemies:   3,
		EnemyMinDistance: 8,
		EnemyMoveEvery:   2,
		Portals:          true,
		RetryOnCaught:    true,
		MaxRetries:       3,
	}
)

var registry = map[string]Config{
	Classic.Name:   Classic,
	Hunted.Name:    Hunted,
	Blackout.Name:  Blackout,
	Warp.Name:      Warp,
	Endurance.Name: Endurance,
}

// Lookup returns the preset with the given name (case-insensitive)
func Lookup(name string) (Config, error) {
	cfg, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownMode, name, strings.Join(Names(), ", "))
	}
	cfg.Events = append([]events.Kind(nil), cfg.Events...)
	return cfg, nil
}

// Names returns the registered mode names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
