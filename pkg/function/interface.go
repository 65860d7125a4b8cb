package function

import (
	"context"
	"time"
)

// Datum contains methods to get the payload information of one element.
type Datum interface {
	// Value returns the payload of the message.
	Value() []byte
	// EventTime returns the event time of the message.
	EventTime() time.Time
	// Watermark returns the watermark of the message.
	Watermark() time.Time
}

// MapHandler is the interface of the map function implementation.
type MapHandler interface {
	// Map is the function to process each coming message.
	Map(ctx context.Context, key string, datum Datum) Messages
}

// MapFunc is a utility type used to convert a map function to a MapHandler.
type MapFunc func(ctx context.Context, key string, datum Datum) Messages

// Map implements the function of map function.
func (mf MapFunc) Map(ctx context.Context, key string, datum Datum) Messages {
	return mf(ctx, key, datum)
}
