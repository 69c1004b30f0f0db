package world

import (
	"errors"
	"testing"
)

func TestNewGrid_AllWalls(t *testing.T) {
	g := NewGrid(5, 7)
	if g.Rows() != 5 || g.Cols() != 7 {
		t.Fatalf("dimensions = %dx%d, want 5x7", g.Rows(), g.Cols())
	}
	g.ForEachCell(func(p Position, tile Tile) {
		if tile != Wall {
			t.Errorf("tile at %v = %v, want Wall", p, tile)
		}
	})
}

func TestNewGrid_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5)
}

func TestGrid_TileOutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetTile(Pos(1, 1), Open)
	for _, p := range []Position{Pos(-1, 0), Pos(0, -1), Pos(3, 0), Pos(0, 3)} {
		if got := g.Tile(p); got != Wall {
			t.Errorf("Tile(%v) = %v, want Wall", p, got)
		}
		if g.SetTile(p, Open) {
			t.Errorf("SetTile(%v) = true, want false", p)
		}
	}
}

func TestGrid_XIsColumnYIsRow(t *testing.T) {
	g := NewGrid(3, 5)
	if !g.SetTile(Pos(4, 2), Open) {
		t.Fatal("SetTile(4,2) rejected on a 3x5 grid")
	}
	if g.SetTile(Pos(2, 4), Open) {
		t.Error("SetTile(2,4) accepted on a 3x5 grid; rows and columns swapped")
	}
}

func TestGrid_PerimeterAndPlayable(t *testing.T) {
	g := NewGrid(5, 5)
	if g.IsPlayablePosition(Pos(0, 2)) {
		t.Error("(0,2) should not be playable")
	}
	if !g.IsOnPerimeter(Pos(4, 4)) {
		t.Error("(4,4) should be on the perimeter")
	}
	if !g.IsPlayablePosition(Pos(3, 3)) {
		t.Error("(3,3) should be playable")
	}
}

func TestGrid_SetExitMarksTile(t *testing.T) {
	g := NewGrid(5, 5)
	if !g.SetExit(Pos(3, 3)) {
		t.Fatal("SetExit failed")
	}
	if g.Tile(Pos(3, 3)) != Exit {
		t.Errorf("exit tile = %v, want Exit", g.Tile(Pos(3, 3)))
	}
	if g.Exit() != Pos(3, 3) {
		t.Errorf("Exit() = %v, want (3,3)", g.Exit())
	}
}

func TestGrid_Validate(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetStart(Pos(1, 1))
	if err := g.Validate(); !errors.Is(err, ErrStartNotWalkable) {
		t.Errorf("Validate() = %v, want ErrStartNotWalkable", err)
	}
	g.SetTile(Pos(1, 1), Open)
	if err := g.Validate(); !errors.Is(err, ErrExitNotMarked) {
		t.Errorf("Validate() = %v, want ErrExitNotMarked", err)
	}
	g.SetExit(Pos(3, 3))
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestGrid_WalkableNeighbors(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetTile(Pos(1, 1), Open)
	g.SetTile(Pos(1, 0), Open)
	g.SetExit(Pos(2, 1))

	got := g.WalkableNeighbors(Pos(1, 1))
	want := []Position{Pos(1, 0), Pos(2, 1)}
	if len(got) != len(want) {
		t.Fatalf("WalkableNeighbors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WalkableNeighbors[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if g.CountWalkable() != 3 {
		t.Errorf("CountWalkable = %d, want 3", g.CountWalkable())
	}
}

func TestDirection_Offset(t *testing.T) {
	for _, dir := range AllDirections() {
		if got := Pos(5, 5).Step(dir).Manhattan(Pos(5, 5)); got != 1 {
			t.Errorf("%v moved %d cells, want 1", dir, got)
		}
	}
	if North.Offset() != Pos(0, -1) {
		t.Errorf("North offset = %v, want (0,-1)", North.Offset())
	}
	if Direction(9).Offset() != (Position{}) {
		t.Error("invalid direction should have zero offset")
	}
}
