// Package campaign sequences levels across the difficulty tiers, sums the
// escape times and keeps the best total.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/engine/clock"
	"mazeescape/pkg/game/gameplay"
	"mazeescape/pkg/game/generator"
	"mazeescape/pkg/game/mode"
	"mazeescape/pkg/game/records"
	"mazeescape/pkg/game/state"
	"mazeescape/pkg/game/tier"
)

// Prompter asks the player the between-level questions
type Prompter interface {
	// SelectDifficulty returns the tier to start from
	SelectDifficulty(ctx context.Context) tier.Tier
	// Continue returns true to play next. A cancelled ctx declines.
	Continue(ctx context.Context, next tier.Tier) bool
}

// MessageSink shows campaign progress to the player
type MessageSink interface {
	ShowMessage(msg string)
}

// LevelRunner plays a level until its outcome is terminal
type LevelRunner func(ctx context.Context, l *state.Level) state.Outcome

// LevelResult is the outcome of one attempt at a tier
type LevelResult struct {
	Tier    tier.Tier
	Attempt int
	Outcome state.Outcome
	Elapsed time.Duration
}

// State owns the mutable totals of one campaign run
type State struct {
	Tiers   []tier.Tier
	Total   time.Duration
	Best    float64 // Seconds; records.NoRecord when nothing was saved
	Escaped int
	Levels  []LevelResult
}

// Record adds a finished attempt; escapes count towards the total
func (s *State) Record(r LevelResult) {
	s.Levels = append(s.Levels, r)
	if r.Outcome == state.Escaped {
		s.Escaped++
		s.Total += r.Elapsed
	}
}

// Result is the summary reported when the campaign ends
type Result struct {
	Total    time.Duration
	Escaped  int
	Levels   []LevelResult
	Best     float64       // Best total before this run
	NewBest  bool          // Total beat Best and was written
	Final    state.Outcome // Outcome of the last attempt
	Stopped  bool          // Player declined to continue
	Complete bool          // Every tier was escaped
	SaveErr  error         // Non-fatal persistence failure
}

// TotalSeconds returns the total as stored in the records file
func (r Result) TotalSeconds() float64 {
	return r.Total.Seconds()
}

// Controller runs a campaign for one mode
type Controller struct {
	Mode     mode.Config
	Store    records.Store
	Prompter Prompter
	Messages MessageSink
	Play     LevelRunner

	Generator generator.GridGenerator
	Clock     clock.Clock
	Rng       *rand.Rand
}

// ErrNoRunner is returned by Run when Play is not set
var ErrNoRunner = errors.New("campaign has no level runner")

// Run plays the tiers in order until the campaign ends. The returned error
// is only set when a level cannot be built.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	if c.Play == nil {
		return Result{}, ErrNoRunner
	}

	st := &State{Best: records.NoRecord}
	if c.Mode.Persist && c.Store != nil {
		st.Best = c.Store.Load()
	}

	start := tier.Easy
	if c.Mode.SelectDifficulty && c.Prompter != nil {
		start = c.Prompter.SelectDifficulty(ctx).Level
	}
	st.Tiers = tier.From(start)

	res := Result{Best: st.Best}

	log.WithFields(log.Fields{
		"mode":  c.Mode.Name,
		"start": st.Tiers[0].Name,
		"best":  st.Best,
	}).Info("Campaign started")

	for t := st.Tiers[0]; ; {
		outcome, err := c.playTier(ctx, st, t)
		res.Final = outcome
		if err != nil {
			c.finish(st, &res)
			return res, err
		}

		if outcome != state.Escaped {
			break
		}

		next, ok := tier.Next(t.Level)
		if !ok {
			res.Complete = true
			break
		}

		if c.Mode.AllowEarlyStop && c.Prompter != nil && !c.Prompter.Continue(ctx, next) {
			res.Stopped = true
			break
		}
		t = next
	}

	c.finish(st, &res)
	return res, nil
}

// playTier builds and plays levels of tier t until one is not retried
func (c *Controller) playTier(ctx context.Context, st *State, t tier.Tier) (state.Outcome, error) {
	for attempt := 1; ; attempt++ {
		l, err := gameplay.NewLevel(gameplay.LevelSpec{
			Tier:      t,
			Mode:      c.Mode,
			Generator: c.Generator,
			Clock:     c.Clock,
			Rng:       c.Rng,
		})
		if err != nil {
			return state.Aborted, fmt.Errorf("build %s level: %w", t.Name, err)
		}

		outcome := c.Play(ctx, l)
		st.Record(LevelResult{Tier: t, Attempt: attempt, Outcome: outcome, Elapsed: l.Elapsed})

		switch outcome {
		case state.Escaped:
			c.show(fmt.Sprintf(gotext.Get("CAMPAIGN_ESCAPED"), t.DisplayName(), l.Elapsed.Seconds()))
		case state.Caught:
			c.show(fmt.Sprintf(gotext.Get("CAMPAIGN_CAUGHT"), t.DisplayName()))
		}

		if outcome == state.Caught && c.canRetry(ctx, attempt) {
			c.show(fmt.Sprintf(gotext.Get("CAMPAIGN_RETRY"), attempt, c.Mode.MaxRetries))
			continue
		}
		return outcome, nil
	}
}

func (c *Controller) canRetry(ctx context.Context, attempt int) bool {
	return c.Mode.RetryOnCaught && attempt <= c.Mode.MaxRetries && ctx.Err() == nil
}

// finish fills in the totals and saves the total when it beats the record
func (c *Controller) finish(st *State, res *Result) {
	res.Total = st.Total
	res.Escaped = st.Escaped
	res.Levels = st.Levels

	fields := log.Fields{
		"mode":    c.Mode.Name,
		"escaped": st.Escaped,
		"total":   records.Format(st.Total.Seconds()),
	}

	if st.Escaped == 0 || !c.Mode.Persist || c.Store == nil {
		log.WithFields(fields).Info("Campaign finished")
		return
	}

	// Totals compare at the precision the store keeps
	total := records.Round(st.Total.Seconds())
	if total >= st.Best {
		log.WithFields(fields).Info("Campaign finished")
		return
	}

	if err := c.Store.Save(total); err != nil {
		res.SaveErr = err
		log.WithFields(fields).WithError(err).Warn("Could not save best time")
		return
	}

	res.NewBest = true
	log.WithFields(fields).Info("Campaign finished with a new best time")
}

func (c *Controller) show(msg string) {
	if c.Messages != nil {
		c.Messages.ShowMessage(msg)
	}
}
