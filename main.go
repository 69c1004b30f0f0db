package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"mazeescape/pkg/engine/clock"
	"mazeescape/pkg/engine/input"
	"mazeescape/pkg/engine/logging"
	"mazeescape/pkg/game/campaign"
	"mazeescape/pkg/game/config"
	"mazeescape/pkg/game/gameplay"
	"mazeescape/pkg/game/menu"
	"mazeescape/pkg/game/mode"
	"mazeescape/pkg/game/records"
	"mazeescape/pkg/game/renderer"
	ebitenrenderer "mazeescape/pkg/game/renderer/ebiten"
	"mazeescape/pkg/game/renderer/tui"
	"mazeescape/pkg/game/state"
)

// Pending intents buffered between the Ebiten event loop and the simulation
const intentQueueSize = 8

// How long the Ebiten window stays open to show the final summary
const summaryHold = 3 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	level, err := cfg.Level()
	if err != nil {
		level = log.InfoLevel
	}
	logFile, err := logging.Setup(level, cfg.LogFile, cfg.Renderer == config.RendererTUI)
	if err != nil {
		log.Fatalf("Cannot set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")

	m, err := cfg.ModeConfig()
	if err != nil {
		logging.Fatal(err, "Cannot resolve mode")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := &campaign.Controller{
		Mode:  m,
		Store: recordStore(cfg, m),
		Clock: clock.System{},
		Rng:   newRng(cfg.Seed),
	}

	log.WithFields(log.Fields{
		"mode":     m.Name,
		"renderer": cfg.Renderer,
		"tickRate": cfg.TickRate,
		"seed":     cfg.Seed,
	}).Info("Starting maze escape")

	switch cfg.Renderer {
	case config.RendererEbiten:
		err = runEbiten(ctx, cfg, ctrl)
	default:
		err = runTUI(ctx, cfg, ctrl)
	}
	if err != nil {
		stop()
		if logFile != nil {
			logFile.Close()
		}
		logging.Fatal(err, "Game ended with an error")
	}
}

func recordStore(cfg config.Config, m mode.Config) records.Store {
	if !m.Persist {
		return records.Nop{}
	}
	return records.NewFileStore(cfg.RecordsPath)
}

func newRng(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// runTUI plays the campaign in the terminal. One key reader feeds both the
// level input and the between-level prompts.
func runTUI(ctx context.Context, cfg config.Config, ctrl *campaign.Controller) error {
	r := tui.New(os.Stdout)
	if err := r.Init(); err != nil {
		return err
	}
	defer r.Close()

	keys := input.NewKeyReader(os.Stdin)
	if err := keys.Start(); err != nil {
		return fmt.Errorf("start key reader: %w", err)
	}
	defer keys.Stop()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	prompter := menu.NewKeyPrompter(keys.Codes(), os.Stdout)
	r.Clear()
	prompter.ShowControls()

	ctrl.Prompter = prompter
	ctrl.Messages = r
	ctrl.Play = gameplay.Loop{
		Source:    input.NewCodeSource(keys.Codes(), input.DeviceTerminal),
		Presenter: r,
		Tick:      ticker.C,
		DumpDir:   cfg.DumpDir,
	}.Run

	res, err := ctrl.Run(ctx)
	reportResult(r, res)
	return err
}

// runEbiten opens the game window on the main goroutine and plays the
// campaign beside it. Questions between levels are asked on stdin.
func runEbiten(ctx context.Context, cfg config.Config, ctrl *campaign.Controller) error {
	queue := input.NewQueue(intentQueueSize)
	r := ebitenrenderer.New(cfg.TileSize, queue)
	if err := r.Init(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prompter := menu.NewLinePrompter(os.Stdin, os.Stdout)
	prompter.ShowControls()

	ctrl.Prompter = prompter
	ctrl.Messages = r

	errc := make(chan error, 1)
	go func() {
		ticker := time.NewTicker(cfg.TickInterval())
		defer ticker.Stop()

		loop := gameplay.Loop{
			Source:    queue,
			Presenter: r,
			Tick:      ticker.C,
			DumpDir:   cfg.DumpDir,
		}
		ctrl.Play = func(ctx context.Context, l *state.Level) state.Outcome {
			// Keys pressed while the previous level ended or a prompt was open
			queue.Drain()
			return loop.Run(ctx, l)
		}

		res, err := ctrl.Run(ctx)
		reportResult(r, res)
		for _, line := range summaryLines(res) {
			fmt.Fprintln(os.Stdout, line)
		}

		select {
		case <-time.After(summaryHold):
		case <-ctx.Done():
		}
		r.Close()
		errc <- err
	}()

	if err := r.Run(); err != nil {
		return err
	}

	// Window closed: stop the campaign if it is still running
	cancel()
	select {
	case err := <-errc:
		return err
	case <-time.After(time.Second):
		return nil
	}
}

// reportResult shows the end-of-campaign summary
func reportResult(sink campaign.MessageSink, res campaign.Result) {
	for _, line := range summaryLines(res) {
		sink.ShowMessage(line)
	}
}

func summaryLines(res campaign.Result) []string {
	lines := []string{
		fmt.Sprintf(gotext.Get("RESULT_TOTAL"), res.Escaped, renderer.FormatElapsed(res.Total)),
	}

	switch {
	case res.NewBest:
		lines = append(lines, fmt.Sprintf(gotext.Get("RESULT_NEW_BEST"), records.Format(res.TotalSeconds())))
	case res.Best != records.NoRecord:
		lines = append(lines, fmt.Sprintf(gotext.Get("RESULT_BEST"), records.Format(res.Best)))
	}

	if res.SaveErr != nil {
		lines = append(lines, fmt.Sprintf(gotext.Get("RESULT_SAVE_FAILED"), res.SaveErr))
	}
	return lines
}
