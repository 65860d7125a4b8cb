package function

import "fmt"

var (
	DROP = fmt.Sprintf("%U__DROP__", '\\') // U+005C__DROP__
	ALL  = fmt.Sprintf("%U__ALL__", '\\')  // U+005C__ALL__
)

// Message is used to wrap the data returned by map functions.
type Message struct {
	Key   string
	Value []byte
}

// MessageToDrop creates a Message to be dropped.
func MessageToDrop() Message {
	return Message{Key: DROP, Value: []byte{}}
}

// MessageToAll creates a Message that will be forwarded to all.
func MessageToAll(value []byte) Message {
	return Message{Key: ALL, Value: value}
}

// MessageTo creates a Message that will be forwarded to the specified "to".
func MessageTo(to string, value []byte) Message {
	return Message{Key: to, Value: value}
}

// Messages is an ordered list of Message, returned by a map invocation.
type Messages []Message

// MessagesBuilder returns an empty instance of Messages.
func MessagesBuilder() Messages {
	return Messages{}
}

// Append appends a Message.
func (m Messages) Append(msg Message) Messages {
	m = append(m, msg)
	return m
}

// Items returns the message list.
func (m Messages) Items() []Message {
	return m
}
