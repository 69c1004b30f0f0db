package ebiten

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	engineinput "mazeescape/pkg/engine/input"
	"mazeescape/pkg/game/renderer"
	"mazeescape/pkg/game/state"
)

// New creates a new Ebiten renderer that pushes player intents onto intents
func New(tileSize int, intents *engineinput.Queue) *EbitenRenderer {
	if tileSize < minTileSize || tileSize > maxTileSize {
		tileSize = 24
	}
	return &EbitenRenderer{
		windowWidth:     1024,
		windowHeight:    768,
		tileSize:        tileSize,
		defaultTileSize: tileSize,
		intents:         intents,
		keyRepeatState:  make(map[string]keyRepeatInfo),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop. It must be called from the main goroutine
// and returns once the window closes or Close is called.
func (e *EbitenRenderer) Run() error {
	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Clear drops the current frame and any pending messages
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	e.snapshot = state.Snapshot{}
	e.snapshotMutex.Unlock()

	e.messagesMutex.Lock()
	e.trackedMessages = nil
	e.messagesMutex.Unlock()
}

// Close makes the next Update end the game loop
func (e *EbitenRenderer) Close() {
	e.closed.Store(true)
}

// RenderFrame stores the snapshot drawn on the next Draw
func (e *EbitenRenderer) RenderFrame(s state.Snapshot) {
	e.snapshotMutex.Lock()
	e.snapshot = s
	e.snapshotMutex.Unlock()
}

// ShowMessage adds a message to the message panel
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.messagesMutex.Lock()
	defer e.messagesMutex.Unlock()

	e.trackedMessages = append(e.trackedMessages, messageEntry{
		Text:      msg,
		Timestamp: time.Now().UnixMilli(),
	})
	if len(e.trackedMessages) > maxVisibleLines {
		e.trackedMessages = e.trackedMessages[len(e.trackedMessages)-maxVisibleLines:]
	}

	log.WithFields(log.Fields{"message": msg}).Debug("Renderer message")
}

// StyleText applies a style to text
// Ebiten draws colors per cell, so text passes through unchanged.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}
