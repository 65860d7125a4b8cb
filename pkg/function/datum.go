package function

import "time"

// handlerDatum implements the Datum interface and carries one element
// through a map invocation.
type handlerDatum struct {
	value     []byte
	eventTime time.Time
	watermark time.Time
}

// NewHandlerDatum creates a Datum from the wire fields of one request.
func NewHandlerDatum(value []byte, eventTime time.Time, watermark time.Time) Datum {
	return &handlerDatum{
		value:     value,
		eventTime: eventTime,
		watermark: watermark,
	}
}

func (h *handlerDatum) Value() []byte {
	return h.value
}

func (h *handlerDatum) EventTime() time.Time {
	return h.eventTime
}

func (h *handlerDatum) Watermark() time.Time {
	return h.watermark
}
