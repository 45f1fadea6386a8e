package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Palette used by the platformer renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorBrown
	ColorGray
)

// Semantic aliases so game code names what it draws, not how it looks.
const (
	ColorWall   = ColorGray
	ColorLava   = ColorBrightRed
	ColorPlayer = ColorBrightCyan
	ColorFish   = ColorBrightYellow
	ColorDog    = ColorBrown
	ColorHUD    = ColorWhite
)
