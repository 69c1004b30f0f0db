package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/renderer"
	"mazeescape/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.monoFontSource == nil {
		// Can't draw without fonts
		return
	}

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	headerHeight := int(e.getUIFontSize()) + 20

	if snap.Valid() {
		e.drawText(screen, renderer.StatusLine(snap), mapMargin, 10, colorAction, 1)

		mapAreaWidth := snap.Grid.Cols() * e.tileSize
		mapAreaHeight := snap.Grid.Rows() * e.tileSize
		mapX := (screenWidth - mapAreaWidth) / 2
		mapY := headerHeight + mapMargin

		vector.DrawFilledRect(screen, float32(mapX-mapMargin), float32(mapY-mapMargin),
			float32(mapAreaWidth+mapMargin*2), float32(mapAreaHeight+mapMargin*2),
			colorMapBackground, false)

		e.drawMap(screen, snap, mapX, mapY)

		if banner := renderer.OutcomeLine(snap); banner != "" {
			e.drawBanner(screen, banner, screenWidth, mapY+mapAreaHeight+mapMargin*2)
		}
	}

	e.drawMessages(screen, snap.Messages, screenWidth, screenHeight)
}

// drawMap renders every cell of the maze with entity overlays
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap state.Snapshot, mapX, mapY int) {
	visible, hidden := renderer.VisibleCells(snap)

	occupants := make(map[world.Position]string, len(snap.Enemies)+len(snap.Portals))
	for _, p := range snap.Portals {
		occupants[p] = IconPortal
	}
	for _, p := range snap.Enemies {
		occupants[p] = IconEnemy
	}
	occupants[snap.Player] = PlayerIcon

	snap.Grid.ForEachCell(func(p world.Position, t world.Tile) {
		x := mapX + p.X*e.tileSize
		y := mapY + p.Y*e.tileSize

		if hidden && !visible.Has(p) && p != snap.Player {
			return
		}

		if t == world.Wall {
			e.drawTileWithBg(screen, IconWall, x, y, colorWall, colorWallBg)
			return
		}
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(e.tileSize), float32(e.tileSize), colorOpen, false)

		if icon, ok := occupants[p]; ok {
			e.drawColoredChar(screen, icon, x, y, iconColor(icon))
		} else if t == world.Exit {
			e.drawColoredChar(screen, IconExit, x, y, colorExit)
		}
	})

	// Darkness dims whatever is still in sight
	if snap.Darkness > 0 {
		shade := color.RGBA{0, 0, 0, uint8(snap.Darkness * 120)}
		vector.DrawFilledRect(screen, float32(mapX), float32(mapY),
			float32(snap.Grid.Cols()*e.tileSize), float32(snap.Grid.Rows()*e.tileSize),
			shade, false)
	}
}

func iconColor(icon string) color.Color {
	switch icon {
	case PlayerIcon:
		return colorPlayer
	case IconEnemy:
		return colorEnemy
	case IconPortal:
		return colorPortal
	default:
		return colorText
	}
}

// drawTileWithBg draws an icon on a block background inset from the tile edge
func (e *EbitenRenderer) drawTileWithBg(screen *ebiten.Image, icon string, x, y int, col, bgColor color.Color) {
	margin := float32(1)
	vector.DrawFilledRect(screen, float32(x)+margin, float32(y)+margin,
		float32(e.tileSize)-margin*2, float32(e.tileSize)-margin*2,
		bgColor, false)
	e.drawColoredChar(screen, icon, x, y, col)
}

// drawColoredChar draws a single glyph centred in a tile
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, icon string, x, y int, col color.Color) {
	if icon == IconVoid || icon == "" {
		return
	}
	face := e.getMonoFontFace()
	w, h := text.Measure(icon, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(float64(e.tileSize)-w)/2, float64(y)+(float64(e.tileSize)-h)/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, icon, face, op)
}

// drawText draws UI text with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y int, col color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, e.getUIFontFace(), op)
}

// drawBanner draws the level outcome centred below the map
func (e *EbitenRenderer) drawBanner(screen *ebiten.Image, banner string, screenWidth, y int) {
	w := text.Advance(banner, e.getUIFontFace())
	e.drawText(screen, banner, (screenWidth-int(w))/2, y, colorDenied, 1)
}

// drawMessages draws the level log followed by out-of-level messages as a
// bottom-aligned panel. Out-of-level messages fade out over their lifetime.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, levelMessages []string, screenWidth, screenHeight int) {
	type line struct {
		text  string
		alpha float64
	}
	lines := make([]line, 0, maxVisibleLines*2)
	for _, msg := range levelMessages {
		lines = append(lines, line{text: msg, alpha: 1})
	}

	now := time.Now().UnixMilli()
	e.messagesMutex.RLock()
	for _, m := range e.trackedMessages {
		if alpha := messageAlpha(now - m.Timestamp); alpha > 0 {
			lines = append(lines, line{text: m.Text, alpha: alpha})
		}
	}
	e.messagesMutex.RUnlock()

	if len(lines) > maxVisibleLines {
		lines = lines[len(lines)-maxVisibleLines:]
	}
	if len(lines) == 0 {
		return
	}

	face := e.getUIFontFace()
	fontSize := e.getUIFontSize()
	lineHeight := int(fontSize) + 4

	header := gotext.Get("HUD_MESSAGES")
	maxTextWidth := text.Advance(header, face)
	for _, l := range lines {
		if w := text.Advance(l.text, face); w > maxTextWidth {
			maxTextWidth = w
		}
	}

	panelWidth := int(maxTextWidth) + 20
	if panelWidth > screenWidth-40 {
		panelWidth = screenWidth - 40
	}
	panelHeight := (len(lines)+1)*lineHeight + 16

	bgX := float32((screenWidth - panelWidth) / 2)
	bgY := float32(screenHeight - mapMargin - panelHeight)
	if bgY < 0 {
		bgY = 0
	}

	vector.DrawFilledRect(screen, bgX-1, bgY-1, float32(panelWidth)+2, float32(panelHeight)+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, bgX, bgY, float32(panelWidth), float32(panelHeight), colorPanelBackground, false)

	x := int(bgX) + 10
	y := int(bgY) + 8
	e.drawText(screen, header, x, y, colorSubtle, 1)
	for i, l := range lines {
		e.drawText(screen, l.text, x, y+(i+1)*lineHeight, colorText, l.alpha)
	}
}

// messageAlpha fades a message from fully opaque at 70% of its lifetime to
// transparent at the end of it.
func messageAlpha(ageMillis int64) float64 {
	if ageMillis >= messageLifetime {
		return 0
	}
	fadeStart := int64(messageLifetime * 7 / 10)
	if ageMillis <= fadeStart {
		return 1
	}
	return 1 - float64(ageMillis-fadeStart)/float64(messageLifetime-fadeStart)
}
