package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue for wall text
	colorWallBg          = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorOpen            = color.RGBA{35, 35, 55, 255}    // Corridor floor
	colorExit            = color.RGBA{100, 255, 100, 255} // Bright green
	colorEnemy           = color.RGBA{255, 80, 80, 255}   // Bright red
	colorPortal          = color.RGBA{100, 150, 255, 255} // Bright blue
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
)

// Icon constants - Unicode characters for proper font rendering
const (
	PlayerIcon = "@"
	IconWall   = "▒"
	IconExit   = "△"
	IconEnemy  = "X"
	IconPortal = "◎"
	IconVoid   = " "
)

// Tile size constraints
const (
	minTileSize  = 12
	maxTileSize  = 96
	tileSizeStep = 4
	baseFontSize = 16.0 // Base font size at a 24px tile
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)

const (
	messageLifetime = 10000 // Out-of-level messages disappear after 10 seconds
	maxVisibleLines = 5
	mapMargin       = 20
)
