package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageLog_EvictsOldest(t *testing.T) {
	l := NewMessageLog(2, 40)
	l.Add("one", MsgInfo)
	l.Add("two", MsgWarning)
	l.Add("three", MsgCritical)

	assert.Equal(t, []Message{{"two", MsgWarning}, {"three", MsgCritical}}, l.Messages)
	last, ok := l.Last()
	assert.True(t, ok)
	assert.Equal(t, "three", last.Text)
	assert.Len(t, l.Recent(5), 2)
}

func TestMessageLog_Wraps(t *testing.T) {
	l := NewMessageLog(10, 10)
	l.Add("hull breach on deck two", MsgCritical)
	texts := make([]string, 0, len(l.Messages))
	for _, m := range l.Messages {
		texts = append(texts, m.Text)
	}
	assert.Equal(t, []string{"hull", "breach on", "deck two"}, texts)
}

func TestMessageLog_Empty(t *testing.T) {
	l := NewMessageLog(3, 10)
	_, ok := l.Last()
	assert.False(t, ok)
	assert.Empty(t, l.Recent(2))
}
