package world

import (
	"errors"
	"fmt"
)

// Grid validation errors
var (
	ErrInvalidDimensions = errors.New("grid has invalid dimensions")
	ErrStartNotWalkable  = errors.New("start cell is not walkable")
	ErrExitNotMarked     = errors.New("exit cell is not marked as exit")
)

// GenerationInfo records how a grid was produced
type GenerationInfo struct {
	Generator  string
	CarveSteps int  // Cells opened by carving after the start cell
	Degenerate bool // Exit had to be forced open outside the carved tree
}

// Grid represents the game map with encapsulated tile storage.
// Tiles are stored row-major.
type Grid struct {
	tiles []Tile
	rows  int
	cols  int

	start Position
	exit  Position

	Info GenerationInfo
}

// NewGrid creates a new grid of solid walls with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions, every tile a Wall
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.tiles = make([]Tile, rows*cols)
	g.start = Position{}
	g.exit = Position{}
	g.Info = GenerationInfo{}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Start returns the starting position
func (g *Grid) Start() Position {
	return g.start
}

// Exit returns the exit position
func (g *Grid) Exit() Position {
	return g.exit
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p Position) bool {
	return p.Y >= 0 && p.Y < g.rows && p.X >= 0 && p.X < g.cols
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
// This ensures a 1-cell wall border around the entire map
func (g *Grid) IsPlayablePosition(p Position) bool {
	return p.Y >= 1 && p.Y < g.rows-1 && p.X >= 1 && p.X < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Position) bool {
	return g.IsValidPosition(p) && !g.IsPlayablePosition(p)
}

// Tile returns the tile at p. Out of bounds reads as Wall.
func (g *Grid) Tile(p Position) Tile {
	if !g.IsValidPosition(p) {
		return Wall
	}
	return g.tiles[p.Y*g.cols+p.X]
}

// SetTile sets the tile at p. Returns false if out of bounds.
func (g *Grid) SetTile(p Position, t Tile) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.tiles[p.Y*g.cols+p.X] = t
	return true
}

// IsWalkable reports whether p is in bounds and not a Wall
func (g *Grid) IsWalkable(p Position) bool {
	return g.Tile(p).Walkable()
}

// SetStart sets the starting position. Returns false if out of bounds.
func (g *Grid) SetStart(p Position) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.start = p
	return true
}

// SetExit sets the exit position and marks its tile as Exit. Returns false if out of bounds.
func (g *Grid) SetExit(p Position) bool {
	if !g.SetTile(p, Exit) {
		return false
	}
	g.exit = p
	return true
}

// WalkableNeighbors returns the walkable cells adjacent to p in N/E/S/W order
func (g *Grid) WalkableNeighbors(p Position) []Position {
	var neighbors []Position
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if g.IsWalkable(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ForEachCell iterates over all cells in the grid, row by row
func (g *Grid) ForEachCell(fn func(p Position, t Tile)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			fn(Position{X: x, Y: y}, g.tiles[y*g.cols+x])
		}
	}
}

// CellsOfType returns every position holding the given tile, row by row
func (g *Grid) CellsOfType(t Tile) []Position {
	var cells []Position
	g.ForEachCell(func(p Position, tile Tile) {
		if tile == t {
			cells = append(cells, p)
		}
	})
	return cells
}

// CountWalkable returns the number of Open and Exit cells
func (g *Grid) CountWalkable() int {
	n := 0
	for _, t := range g.tiles {
		if t.Walkable() {
			n++
		}
	}
	return n
}

// Validate checks the grid for common issues
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return ErrInvalidDimensions
	}

	if !g.IsWalkable(g.start) {
		return fmt.Errorf("%w: %v", ErrStartNotWalkable, g.start)
	}

	if g.Tile(g.exit) != Exit {
		return fmt.Errorf("%w: %v", ErrExitNotMarked, g.exit)
	}

	return nil
}
