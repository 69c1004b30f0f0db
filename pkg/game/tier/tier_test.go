package tier

import "testing"

func TestLadder_OddDimensions(t *testing.T) {
	for _, tr := range Ladder {
		if tr.Rows%2 == 0 || tr.Cols%2 == 0 || tr.Rows < 5 || tr.Cols < 5 {
			t.Errorf("%s: %dx%d is not a valid odd maze size", tr.Name, tr.Rows, tr.Cols)
		}
	}
	if Ladder[Easy].Rows != 15 || Ladder[Easy].Cols != 15 {
		t.Errorf("easy = %dx%d, want 15x15", Ladder[Easy].Rows, Ladder[Easy].Cols)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Level{
		"1": Easy, " 2 ": Medium, "3": Hard,
		"HARD": Hard, "easy": Easy,
		"": Medium, "4": Medium, "x": Medium,
	}
	for in, want := range cases {
		if got := Parse(in); got != want {
			t.Errorf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromAndNext(t *testing.T) {
	if got := From(Medium); len(got) != 2 || got[0].Level != Medium || got[1].Level != Hard {
		t.Errorf("From(Medium) = %+v", got)
	}
	if got := From(Level(9)); len(got) != 2 {
		t.Errorf("From(out of range) should fall back to Medium, got %+v", got)
	}
	if next, ok := Next(Easy); !ok || next.Level != Medium {
		t.Errorf("Next(Easy) = %+v, %v", next, ok)
	}
	if _, ok := Next(Hard); ok {
		t.Error("Next(Hard) should report no next tier")
	}
	if !IsFinal(Hard) || IsFinal(Medium) {
		t.Error("IsFinal mismatch")
	}
}

func TestGet_FallsBackToMedium(t *testing.T) {
	if Get(Level(-1)).Level != Medium {
		t.Error("Get(-1) should fall back to Medium")
	}
}

func TestDisplayName_FallsBackToKey(t *testing.T) {
	if Ladder[Easy].DisplayName() == "" {
		t.Error("DisplayName should never be empty")
	}
}
