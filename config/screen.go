package config

// Screen layout configuration
const (
	// Logical screen size in pixels
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600

	// Lines of the message log shown under the board
	MessageLines = 5
	// Height of one debug-font text line
	LineHeight = 16
	// Padding around HUD text
	HUDMargin = 8

	// Board geometry for levels that do not set a size
	DefaultGridSize = 8
)

// MessagePanelTop returns the y of the first message log line
func MessagePanelTop(screenHeight int) int {
	return screenHeight - HUDMargin - MessageLines*LineHeight
}
