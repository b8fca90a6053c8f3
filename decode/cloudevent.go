package decode

import (
	"encoding/json"

	"github.com/cloudevents/sdk-go/v2/event"
)

// CloudEvent decodes a line as a JSON-encoded CloudEvents envelope and
// validates the required context attributes. A structurally valid JSON
// document that is not a valid event still counts as a decode failure.
func CloudEvent() Decoder[*event.Event] {
	return DecoderFunc[*event.Event](func(line string) (*event.Event, error) {
		var e event.Event
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, err
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		return &e, nil
	})
}
