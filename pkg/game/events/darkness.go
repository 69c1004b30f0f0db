package events

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Darkness timing. The fade reaches full dark in DarknessFadeSteps discrete
// steps over DarknessFade, then holds for DarknessHold.
const (
	DarknessFadeSteps = 10
	DarknessFade      = 1 * time.Second
	DarknessHold      = 2 * time.Second
	DarknessTotal     = DarknessFade + DarknessHold
)

// Darkness is a timed visibility overlay. It never blocks the simulation;
// renderers read Level each frame.
type Darkness struct {
	started time.Time
	active  bool
	fade    *gween.Tween
}

// NewDarkness creates an inactive overlay
func NewDarkness() *Darkness {
	return &Darkness{
		fade: gween.New(0, 1, float32(DarknessFade.Seconds()), ease.InQuad),
	}
}

// Start begins (or restarts) the overlay at now
func (d *Darkness) Start(now time.Time) {
	d.started = now
	d.active = true
}

// Active reports whether the overlay is still running at now
func (d *Darkness) Active(now time.Time) bool {
	return d.active && now.Sub(d.started) < DarknessTotal
}

// Level returns how dark the maze is at now, from 0 (normal) to 1 (pitch black)
func (d *Darkness) Level(now time.Time) float64 {
	if !d.Active(now) {
		d.active = false
		return 0
	}

	elapsed := now.Sub(d.started)
	if elapsed < 0 {
		return 0
	}
	if elapsed >= DarknessFade {
		return 1
	}

	stepLen := DarknessFade / DarknessFadeSteps
	step := int(elapsed/stepLen) + 1
	if step > DarknessFadeSteps {
		step = DarknessFadeSteps
	}

	level, _ := d.fade.Set(float32((stepLen * time.Duration(step)).Seconds()))
	return float64(level)
}
