package gameplay

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/devtools"
	"mazeescape/pkg/game/state"
)

// Presenter receives a snapshot after every tick
type Presenter interface {
	RenderFrame(s state.Snapshot)
}

// Loop drives a level at the pace of Tick
type Loop struct {
	Source    engineinput.Source
	Presenter Presenter
	Tick      <-chan time.Time
	DumpDir   string // Where DebugMapDump writes map.txt
}

// RunLevel runs l until it ends or ctx is cancelled
func RunLevel(ctx context.Context, l *state.Level, source engineinput.Source, presenter Presenter, tick <-chan time.Time) state.Outcome {
	return Loop{Source: source, Presenter: presenter, Tick: tick}.Run(ctx, l)
}

// Run polls one intent per tick, advances the level and presents it.
// Cancelling ctx aborts the level between ticks.
func (lp Loop) Run(ctx context.Context, l *state.Level) state.Outcome {
	lp.present(l)

	for {
		if ctx.Err() != nil {
			Abort(l)
			lp.present(l)
			return l.Outcome
		}

		var intent engineinput.Intent
		if lp.Source != nil {
			intent, _ = lp.Source.Poll()
		}

		if intent.Action == engineinput.ActionDebugMapDump {
			lp.dumpMap(l)
			intent = engineinput.Intent{}
		}

		Tick(l, intent)
		lp.present(l)

		if l.Outcome.Terminal() {
			return l.Outcome
		}

		select {
		case <-ctx.Done():
			Abort(l)
			lp.present(l)
			return l.Outcome
		case <-lp.Tick:
		}
	}
}

func (lp Loop) present(l *state.Level) {
	if lp.Presenter == nil {
		return
	}
	lp.Presenter.RenderFrame(l.Snapshot(l.Clock.Now()))
}

func (lp Loop) dumpMap(l *state.Level) {
	path, err := devtools.DumpMapToFile(l, lp.DumpDir)
	if err != nil {
		log.WithError(err).Warn("Map dump failed")
		logMessage(l, "MAP_DUMP_FAILED", err)
		return
	}
	logMessage(l, "MAP_DUMPED", path)
}
