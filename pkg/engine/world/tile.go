// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Tile is the type of a single grid cell
type Tile uint8

// Tile kinds. The zero value is Wall so a fresh grid is solid rock.
const (
	Wall Tile = iota
	Open
	Exit
)

// String returns the tile name
func (t Tile) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Walkable returns true for tiles an entity may stand on
func (t Tile) Walkable() bool {
	return t == Open || t == Exit
}
