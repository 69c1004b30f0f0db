// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/state"
)

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix timestamp in milliseconds when message was added
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer. The campaign runs on
// its own goroutine and hands frames over through RenderFrame; Ebiten reads
// them back in Draw on the main thread.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize        int
	defaultTileSize int

	monoFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace

	// Latest level frame
	snapshot      state.Snapshot
	snapshotMutex sync.RWMutex

	// Out-of-level messages with timestamps for fade-out
	trackedMessages []messageEntry
	messagesMutex   sync.RWMutex

	// Intents for the simulation, drained once per tick
	intents *engineinput.Queue

	// Key repeat state tracking
	// Maps key/button codes to their repeat state
	keyRepeatState map[string]keyRepeatInfo

	windowOpenedLogged bool
	closed             atomic.Bool
}
