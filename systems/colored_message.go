package systems

import "image/color"

// MessageType selects how a log line is coloured
type MessageType int

const (
	MessageTypeNormal MessageType = iota
	MessageTypeCombat
	MessageTypeTurn
	MessageTypeAlert
)

var messagePalette = [...]color.RGBA{
	MessageTypeNormal: {200, 200, 200, 255},
	MessageTypeCombat: {255, 100, 100, 255},
	MessageTypeTurn:   {100, 149, 237, 255},
	MessageTypeAlert:  {255, 255, 0, 255},
}

// ColoredMessage is one line of the message log
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the line colour. Unknown types draw as normal text.
func (cm ColoredMessage) GetColor() color.RGBA {
	if cm.Type < 0 || int(cm.Type) >= len(messagePalette) {
		return messagePalette[MessageTypeNormal]
	}
	return messagePalette[cm.Type]
}
