package campaign

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/mode"
	"mazeescape/pkg/game/records"
	"mazeescape/pkg/game/state"
	"mazeescape/pkg/game/tier"
)

// scripted ends each level with the next outcome in order
type scripted struct {
	outcomes []state.Outcome
	elapsed  []time.Duration
	played   []tier.Tier
}

func (s *scripted) play(_ context.Context, l *state.Level) state.Outcome {
	i := len(s.played)
	s.played = append(s.played, l.Tier)
	l.Outcome = s.outcomes[i]
	if l.Outcome == state.Escaped {
		l.Elapsed = s.elapsed[i]
	}
	return l.Outcome
}

type fakePrompter struct {
	start     tier.Level
	answers   []bool
	continues []tier.Tier
}

func (p *fakePrompter) SelectDifficulty(context.Context) tier.Tier {
	return tier.Get(p.start)
}

func (p *fakePrompter) Continue(_ context.Context, next tier.Tier) bool {
	p.continues = append(p.continues, next)
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer
}

type fakeStore struct {
	best  float64
	saved []float64
	err   error
}

func (s *fakeStore) Load() float64 { return s.best }

func (s *fakeStore) Save(seconds float64) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, seconds)
	return nil
}

type failingGenerator struct{}

func (failingGenerator) Generate(int, int, *rand.Rand) (*world.Grid, error) {
	return nil, errors.New("no maze today")
}

func (failingGenerator) Name() string { return "failing" }

func newController(m mode.Config, store records.Store, p Prompter, run *scripted) *Controller {
	return &Controller{
		Mode:     m,
		Store:    store,
		Prompter: p,
		Play:     run.play,
		Rng:      rand.New(rand.NewSource(1)),
	}
}

func secs(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

func TestRun_EasyThenDeclineSavesTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_time.txt")
	m := mode.Classic
	m.AllowEarlyStop = true

	run := &scripted{outcomes: []state.Outcome{state.Escaped}, elapsed: []time.Duration{secs(12.34)}}
	p := &fakePrompter{answers: []bool{false}}

	res, err := newController(m, records.NewFileStore(path), p, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if math.Abs(res.TotalSeconds()-12.34) > 1e-6 {
		t.Errorf("total = %v, want 12.34", res.TotalSeconds())
	}
	if !res.Stopped || res.Complete || !res.NewBest {
		t.Errorf("result = %+v", res)
	}
	if len(p.continues) != 1 || p.continues[0].Level != tier.Medium {
		t.Errorf("continue asked for %v, want Medium", p.continues)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("best time not written: %v", err)
	}
	if string(data) != "12.34" {
		t.Errorf("file = %q, want %q", data, "12.34")
	}
}

func TestRun_AllTiersSumsTimes(t *testing.T) {
	store := &fakeStore{best: records.NoRecord}
	run := &scripted{
		outcomes: []state.Outcome{state.Escaped, state.Escaped, state.Escaped},
		elapsed:  []time.Duration{secs(10), secs(20), secs(30)},
	}

	res, err := newController(mode.Classic, store, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Total != secs(60) || !res.Complete || res.Escaped != 3 {
		t.Errorf("result = %+v", res)
	}
	wantOrder := []tier.Level{tier.Easy, tier.Medium, tier.Hard}
	for i, tt := range run.played {
		if tt.Level != wantOrder[i] {
			t.Errorf("level %d played %v, want %v", i, tt.Level, wantOrder[i])
		}
	}
	if len(store.saved) != 1 || store.saved[0] != 60 {
		t.Errorf("saved = %v, want [60]", store.saved)
	}
}

func TestRun_CaughtEndsCampaign(t *testing.T) {
	store := &fakeStore{best: records.NoRecord}
	run := &scripted{
		outcomes: []state.Outcome{state.Escaped, state.Caught},
		elapsed:  []time.Duration{secs(5), 0},
	}

	res, err := newController(mode.Classic, store, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(run.played) != 2 || res.Final != state.Caught || res.Complete {
		t.Errorf("played %d levels, result = %+v", len(run.played), res)
	}
	// The escaped Easy level still counts
	if res.Total != secs(5) || len(store.saved) != 1 {
		t.Errorf("total = %v, saved = %v", res.Total, store.saved)
	}
}

func TestRun_AbortEndsWithoutSaving(t *testing.T) {
	store := &fakeStore{best: records.NoRecord}
	run := &scripted{outcomes: []state.Outcome{state.Aborted}}

	res, err := newController(mode.Classic, store, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Final != state.Aborted || res.Total != 0 || len(store.saved) != 0 {
		t.Errorf("result = %+v, saved = %v", res, store.saved)
	}
}

func TestRun_OnlySavesImprovement(t *testing.T) {
	store := &fakeStore{best: 50}
	run := &scripted{
		outcomes: []state.Outcome{state.Escaped, state.Escaped, state.Escaped},
		elapsed:  []time.Duration{secs(20), secs(20), secs(20)},
	}

	res, err := newController(mode.Classic, store, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.NewBest || len(store.saved) != 0 || res.Best != 50 {
		t.Errorf("result = %+v, saved = %v", res, store.saved)
	}
}

func TestRun_SaveFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{best: records.NoRecord, err: errors.New("disk full")}
	run := &scripted{outcomes: []state.Outcome{state.Escaped, state.Caught}, elapsed: []time.Duration{secs(3), 0}}

	res, err := newController(mode.Classic, store, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.SaveErr == nil || res.NewBest {
		t.Errorf("result = %+v, want SaveErr", res)
	}
	if res.Total != secs(3) {
		t.Errorf("total = %v, the run is still reported", res.Total)
	}
}

func TestRun_NoPersistence(t *testing.T) {
	m := mode.Classic
	m.Persist = false
	store := &fakeStore{best: 1}
	run := &scripted{outcomes: []state.Outcome{state.Escaped, state.Aborted}, elapsed: []time.Duration{secs(9), 0}}

	res, err := newController(m, store, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !math.IsInf(res.Best, 1) || len(store.saved) != 0 {
		t.Errorf("best = %v, saved = %v", res.Best, store.saved)
	}
}

func TestRun_SelectDifficulty(t *testing.T) {
	m := mode.Blackout
	run := &scripted{outcomes: []state.Outcome{state.Escaped}, elapsed: []time.Duration{secs(40)}}
	p := &fakePrompter{start: tier.Hard}

	res, err := newController(m, &fakeStore{best: records.NoRecord}, p, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(run.played) != 1 || run.played[0].Level != tier.Hard {
		t.Errorf("played %v, want only Hard", run.played)
	}
	if !res.Complete || len(p.continues) != 0 {
		t.Errorf("result = %+v, continues = %v", res, p.continues)
	}
}

func TestRun_RetryOnCaught(t *testing.T) {
	m := mode.Endurance // 3 retries
	run := &scripted{
		outcomes: []state.Outcome{state.Caught, state.Caught, state.Escaped, state.Escaped, state.Escaped},
		elapsed:  []time.Duration{0, 0, secs(1), secs(2), secs(3)},
	}

	res, err := newController(m, nil, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Complete || res.Total != secs(6) {
		t.Errorf("result = %+v", res)
	}
	if len(res.Levels) != 5 || res.Levels[2].Attempt != 3 || res.Levels[2].Tier.Level != tier.Easy {
		t.Errorf("levels = %+v", res.Levels)
	}
}

func TestRun_RetriesExhausted(t *testing.T) {
	m := mode.Endurance
	run := &scripted{outcomes: []state.Outcome{state.Caught, state.Caught, state.Caught, state.Caught}}

	res, err := newController(m, nil, nil, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(run.played) != m.MaxRetries+1 || res.Final != state.Caught {
		t.Errorf("played %d levels, final = %v", len(run.played), res.Final)
	}
}

func TestRun_BuildFailure(t *testing.T) {
	run := &scripted{}
	c := newController(mode.Classic, nil, nil, run)
	c.Generator = failingGenerator{}

	if _, err := c.Run(context.Background()); err == nil {
		t.Error("expected an error when the maze cannot be built")
	}
}

func TestRun_NoRunner(t *testing.T) {
	c := &Controller{Mode: mode.Classic}
	if _, err := c.Run(context.Background()); !errors.Is(err, ErrNoRunner) {
		t.Errorf("err = %v, want ErrNoRunner", err)
	}
}

func TestRun_EqualAtStoredPrecisionIsNotARecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_time.txt")
	if err := os.WriteFile(path, []byte("12.34"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := mode.Classic
	m.AllowEarlyStop = true

	run := &scripted{outcomes: []state.Outcome{state.Escaped}, elapsed: []time.Duration{12336 * time.Millisecond}}
	p := &fakePrompter{answers: []bool{false}}

	res, err := newController(m, records.NewFileStore(path), p, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.NewBest {
		t.Errorf("12.336s should not beat a stored 12.34, result = %+v", res)
	}
}

func TestRun_SavesRoundedTotal(t *testing.T) {
	store := &fakeStore{best: 12.34}
	m := mode.Classic
	m.AllowEarlyStop = true

	run := &scripted{outcomes: []state.Outcome{state.Escaped}, elapsed: []time.Duration{12334 * time.Millisecond}}
	p := &fakePrompter{answers: []bool{false}}

	res, err := newController(m, store, p, run).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.NewBest || len(store.saved) != 1 || store.saved[0] != 12.33 {
		t.Errorf("result = %+v, saved = %v, want [12.33]", res, store.saved)
	}
}
