package systems

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicewalk/ecs"
)

func TestMessageLogKeepsNewestFirst(t *testing.T) {
	w := ecs.NewWorld()
	log := GetMessageLog(w)
	require.Same(t, log, GetMessageLog(w))

	log.Add("one")
	log.AddCombat("two")
	log.AddAlert("three")

	assert.Equal(t, []ColoredMessage{
		{Text: "three", Type: MessageTypeAlert},
		{Text: "two", Type: MessageTypeCombat},
	}, log.RecentMessages(2))
	assert.Len(t, log.RecentMessages(10), 3)

	log.Clear()
	assert.Empty(t, log.RecentMessages(5))
}

func TestMessageLogIsBounded(t *testing.T) {
	log := NewMessageLog()
	for i := 0; i < log.MaxMessages+20; i++ {
		log.Add(fmt.Sprintf("msg %d", i))
	}
	require.Len(t, log.Messages, log.MaxMessages)
	assert.Equal(t, "msg 20", log.Messages[0].Text)
	assert.Equal(t, fmt.Sprintf("msg %d", log.MaxMessages+19), log.RecentMessages(1)[0].Text)
}

func TestMessageColors(t *testing.T) {
	assert.NotEqual(t, ColoredMessage{Type: MessageTypeCombat}.GetColor(), ColoredMessage{Type: MessageTypeNormal}.GetColor())
	assert.NotEqual(t, ColoredMessage{Type: MessageTypeAlert}.GetColor(), ColoredMessage{Type: MessageTypeTurn}.GetColor())
}

func TestUnknownMessageTypeDrawsAsNormal(t *testing.T) {
	normal := ColoredMessage{Type: MessageTypeNormal}.GetColor()
	assert.Equal(t, normal, ColoredMessage{Type: MessageType(42)}.GetColor())
	assert.Equal(t, normal, ColoredMessage{Type: -1}.GetColor())
}
