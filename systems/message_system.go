package systems

import "dicewalk/ecs"

// DefaultMaxMessages bounds a new log
const DefaultMaxMessages = 100

// MessageLog is the player facing event history. It is a world resource so
// each world, and so each restart, has its own.
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// GetMessageLog returns the world's message log, creating it on first use
func GetMessageLog(world *ecs.World) *MessageLog {
	return ecs.EnsureResource(world, NewMessageLog)
}

// NewMessageLog creates an empty log
func NewMessageLog() *MessageLog {
	return &MessageLog{MaxMessages: DefaultMaxMessages}
}

// Add logs plain text
func (ml *MessageLog) Add(message string) { ml.AddTyped(MessageTypeNormal, message) }

// AddCombat logs a hit
func (ml *MessageLog) AddCombat(message string) { ml.AddTyped(MessageTypeCombat, message) }

// AddAlert logs a defeat or a failure the player must notice
func (ml *MessageLog) AddAlert(message string) { ml.AddTyped(MessageTypeAlert, message) }

// AddTyped appends a line, dropping the oldest ones past MaxMessages
func (ml *MessageLog) AddTyped(t MessageType, message string) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})
	if over := len(ml.Messages) - ml.MaxMessages; ml.MaxMessages > 0 && over > 0 {
		ml.Messages = append(ml.Messages[:0], ml.Messages[over:]...)
	}
}

// RecentMessages returns up to n lines, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	n = min(n, len(ml.Messages))
	if n <= 0 {
		return nil
	}
	out := make([]ColoredMessage, 0, n)
	for k := len(ml.Messages) - 1; len(out) < n; k-- {
		out = append(out, ml.Messages[k])
	}
	return out
}

// Clear empties the log
func (ml *MessageLog) Clear() {
	ml.Messages = ml.Messages[:0]
}
