package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagesBuilder(t *testing.T) {
	msgs := MessagesBuilder()
	assert.Len(t, msgs.Items(), 0)

	msgs = msgs.
		Append(MessageTo("a", []byte("1"))).
		Append(MessageToAll([]byte("2"))).
		Append(MessageToDrop())
	items := msgs.Items()
	assert.Len(t, items, 3)
	assert.Equal(t, Message{Key: "a", Value: []byte("1")}, items[0])
	assert.Equal(t, ALL, items[1].Key)
	assert.Equal(t, DROP, items[2].Key)
	assert.Equal(t, []byte{}, items[2].Value)
}
