// Package events decides when random environmental events fire and which one.
package events

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Kind identifies an environmental event
type Kind int

// Event kinds
const (
	KindNone Kind = iota
	KindDarkness
	KindSpawnPortals
	KindSpawnEnemies
)

// String returns the event name
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindDarkness:
		return "Darkness"
	case KindSpawnPortals:
		return "SpawnPortals"
	case KindSpawnEnemies:
		return "SpawnEnemies"
	default:
		return "Unknown"
	}
}

// Bounds of the randomly drawn interval between events
const (
	MinInterval = 5 * time.Second
	MaxInterval = 7 * time.Second
)

// ThresholdPolicy controls when the firing threshold is redrawn
type ThresholdPolicy int

const (
	// RedrawEachPoll draws a fresh threshold on every poll. Firing is biased
	// towards MinInterval because every poll past it is another chance.
	RedrawEachPoll ThresholdPolicy = iota
	// RerollAfterFire keeps one threshold until the event fires.
	RerollAfterFire
)

// ErrUnknownPolicy is returned by ParseThresholdPolicy
var ErrUnknownPolicy = errors.New("unknown event threshold policy")

// ParseThresholdPolicy maps a config string to a policy
func ParseThresholdPolicy(s string) (ThresholdPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "redraw":
		return RedrawEachPoll, nil
	case "reroll":
		return RerollAfterFire, nil
	default:
		return RedrawEachPoll, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Scheduler fires events on a randomized cadence
type Scheduler struct {
	kinds  []Kind
	policy ThresholdPolicy

	threshold time.Duration
	armed     bool
}

// NewScheduler creates a scheduler choosing uniformly among kinds.
// An empty kind list never fires.
func NewScheduler(kinds []Kind, policy ThresholdPolicy) *Scheduler {
	return &Scheduler{
		kinds:  append([]Kind(nil), kinds...),
		policy: policy,
	}
}

// Enabled returns true if the scheduler has any event to fire
func (s *Scheduler) Enabled() bool {
	return len(s.kinds) > 0
}

// Kinds returns the enabled event kinds
func (s *Scheduler) Kinds() []Kind {
	return append([]Kind(nil), s.kinds...)
}

// MaybeTrigger is polled once per tick with the time since the last event.
// It returns the chosen kind and true when an event fires.
func (s *Scheduler) MaybeTrigger(sinceLast time.Duration, rng *rand.Rand) (Kind, bool) {
	if !s.Enabled() {
		return KindNone, false
	}

	if s.policy == RedrawEachPoll || !s.armed {
		s.threshold = drawThreshold(rng)
		s.armed = true
	}

	if sinceLast <= s.threshold {
		return KindNone, false
	}

	s.armed = false
	return s.kinds[rng.Intn(len(s.kinds))], true
}

// drawThreshold returns a duration in [MinInterval, MaxInterval)
func drawThreshold(rng *rand.Rand) time.Duration {
	return MinInterval + time.Duration(rng.Int63n(int64(MaxInterval-MinInterval)))
}
