package renderer

import (
	"mazeescape/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleOpen
	StyleExit
	StylePlayer
	StyleEnemy
	StylePortal
	StyleSubtle
	StyleAction
	StyleDenied
)

// Renderer defines the interface for game rendering backends
// Implementations can include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init acquires the rendering surface (terminal, window, fonts)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame from a level snapshot.
	// This includes the maze, entities, status line and messages.
	RenderFrame(s state.Snapshot)

	// ShowMessage displays a message outside of a level
	ShowMessage(msg string)

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it returns the text as-is
	StyleText(text string, style TextStyle) string

	// Close releases the rendering surface
	Close()
}
