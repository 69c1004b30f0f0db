package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazeescape/pkg/engine/terminal"
	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/renderer"
	"mazeescape/pkg/game/state"
)

// Icon constants for the maze
const (
	PlayerIcon = "@"
	IconWall   = "▒"
	IconOpen   = " "
	IconExit   = "△"
	IconEnemy  = "X"
	IconPortal = "◎"
	IconVoid   = " "
)

// Lines drawn around the maze: status + blank, blank + messages, controls
const chromeLines = 10

// Raw-mode terminals need explicit carriage returns
const newline = "\r\n"

// ANSI sequences for frame redraw
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// ErrNotTerminal is returned by Init when stdout is not a terminal
var ErrNotTerminal = errors.New("output is not a terminal")

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	terminal bool // out is a real terminal; enables size checks and cursor control

	colorWall   color.Style
	colorOpen   color.Style
	colorExit   color.Style
	colorPlayer color.Style
	colorEnemy  color.Style
	colorPortal color.Style
	colorSubtle color.Style
	colorAction color.Style
	colorDenied color.Style
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, terminal checks)
func (t *TUIRenderer) Init() error {
	t.colorWall = color.Style{color.FgGray}
	t.colorOpen = color.Style{color.FgDefault}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorPortal = color.Style{color.FgCyan, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	if f, ok := t.out.(*os.File); ok {
		if !terminal.IsTerminal(f) {
			return fmt.Errorf("tui: %w", ErrNotTerminal)
		}
		t.terminal = true
		fmt.Fprint(t.out, hideCursor)
	}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, cursorHome+clearScreen)
}

// Close restores the cursor
func (t *TUIRenderer) Close() {
	if t.terminal {
		fmt.Fprint(t.out, showCursor)
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleOpen:
		return t.colorOpen.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StylePortal:
		return t.colorPortal.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprint(t.out, msg+newline)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s state.Snapshot) {
	if !s.Valid() {
		return
	}

	var b strings.Builder
	b.WriteString(cursorHome + clearScreen)

	// Status line
	b.WriteString(t.colorAction.Sprint(renderer.StatusLine(s)) + newline + newline)

	if t.terminal && !terminal.Fits(s.Grid.Rows()+chromeLines, s.Grid.Cols()) {
		b.WriteString(t.colorDenied.Sprint(gotext.Get("TERMINAL_TOO_SMALL")) + newline)
	} else {
		t.writeMap(&b, s)
	}

	if banner := renderer.OutcomeLine(s); banner != "" {
		b.WriteString(newline + t.colorDenied.Sprint(banner) + newline)
	}

	// Messages pane
	b.WriteString(newline)
	for _, msg := range s.Messages {
		b.WriteString("- " + msg + newline)
	}

	b.WriteString(newline + t.colorSubtle.Sprint(gotext.Get("HUD_CONTROLS")) + newline)

	fmt.Fprint(t.out, b.String())
}

// writeMap draws the maze row by row with entity overlays
func (t *TUIRenderer) writeMap(b *strings.Builder, s state.Snapshot) {
	visible, hidden := renderer.VisibleCells(s)

	enemies := make(map[world.Position]bool, len(s.Enemies))
	for _, p := range s.Enemies {
		enemies[p] = true
	}
	portals := make(map[world.Position]bool, len(s.Portals))
	for _, p := range s.Portals {
		portals[p] = true
	}

	for y := 0; y < s.Grid.Rows(); y++ {
		for x := 0; x < s.Grid.Cols(); x++ {
			p := world.Pos(x, y)
			b.WriteString(t.renderCell(s, p, enemies[p], portals[p], hidden && !visible.Has(p)))
		}
		b.WriteString(newline)
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(s state.Snapshot, p world.Position, enemy, portal, dark bool) string {
	// Player position
	if p == s.Player {
		return t.colorPlayer.Sprint(PlayerIcon)
	}

	if dark {
		return IconVoid
	}

	switch {
	case enemy:
		return t.colorEnemy.Sprint(IconEnemy)
	case portal:
		return t.colorPortal.Sprint(IconPortal)
	}

	switch s.Grid.Tile(p) {
	case world.Exit:
		return t.colorExit.Sprint(IconExit)
	case world.Open:
		return IconOpen
	default:
		return t.colorWall.Sprint(IconWall)
	}
}
