package generator

import (
	"errors"
	"math/rand"

	"mazeescape/pkg/engine/world"
)

// MinDimension is the smallest row or column count that can hold a carving lattice
const MinDimension = 5

// ErrDimensionsTooSmall is returned when a maze cannot be carved at the requested size
var ErrDimensionsTooSmall = errors.New("maze dimensions too small")

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(rows, cols int, rng *rand.Rand) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Backtracker
