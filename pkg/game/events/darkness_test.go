package events

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestDarkness_InactiveIsZero(t *testing.T) {
	d := NewDarkness()
	if d.Level(t0) != 0 || d.Active(t0) {
		t.Error("fresh overlay should be inactive")
	}
}

func TestDarkness_FadeIsSteppedAndMonotonic(t *testing.T) {
	d := NewDarkness()
	d.Start(t0)

	prev := 0.0
	distinct := make(map[float64]bool)
	for el := time.Duration(0); el < DarknessFade; el += 5 * time.Millisecond {
		level := d.Level(t0.Add(el))
		if level <= 0 || level > 1 {
			t.Fatalf("level at %v = %v, want in (0,1]", el, level)
		}
		if level < prev {
			t.Fatalf("level decreased at %v: %v < %v", el, level, prev)
		}
		prev = level
		distinct[level] = true
	}
	if len(distinct) != DarknessFadeSteps {
		t.Errorf("fade produced %d distinct levels, want %d", len(distinct), DarknessFadeSteps)
	}
}

func TestDarkness_HoldsThenClears(t *testing.T) {
	d := NewDarkness()
	d.Start(t0)

	for _, el := range []time.Duration{DarknessFade, DarknessFade + time.Second, DarknessTotal - time.Millisecond} {
		if level := d.Level(t0.Add(el)); level != 1 {
			t.Errorf("level at %v = %v, want 1", el, level)
		}
	}
	if level := d.Level(t0.Add(DarknessTotal)); level != 0 {
		t.Errorf("level at end = %v, want 0", level)
	}
	if d.Active(t0.Add(DarknessTotal)) {
		t.Error("overlay still active after its total duration")
	}
}

func TestDarkness_RestartExtends(t *testing.T) {
	d := NewDarkness()
	d.Start(t0)
	d.Start(t0.Add(2 * time.Second))
	if !d.Active(t0.Add(4 * time.Second)) {
		t.Error("restarted overlay should still be active")
	}
}
