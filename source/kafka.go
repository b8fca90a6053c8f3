package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/kafka-go"

	"github.com/fxsml/gopull"
)

// Kafka produces the values of messages from r, one FetchMessage per
// demand. Offsets are not committed here; commit with the reader's own
// facilities once a value has been fully processed, or configure the
// reader without a consumer group. Closing the reader ends the stream
// cleanly.
func Kafka(r *kafka.Reader) gopull.Source[[]byte, gopull.Unit] {
	return pull(func(ctx context.Context) ([]byte, bool, error) {
		msg, err := r.FetchMessage(ctx)
		if errors.Is(err, io.EOF) {
			// The reader was closed.
			return nil, true, nil
		}
		if err != nil {
			return nil, false, fmt.Errorf("fetch message: %w", err)
		}
		return msg.Value, false, nil
	})
}
