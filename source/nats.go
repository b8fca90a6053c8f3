package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/fxsml/gopull"
)

// NATS produces the payloads of messages arriving on sub, one
// NextMsgWithContext per demand. Unsubscribing or closing the
// connection ends the stream cleanly; any other receive error
// terminates the stage with that error.
func NATS(sub *nats.Subscription) gopull.Source[[]byte, gopull.Unit] {
	return pull(func(ctx context.Context) ([]byte, bool, error) {
		msg, err := sub.NextMsgWithContext(ctx)
		if errors.Is(err, nats.ErrBadSubscription) || errors.Is(err, nats.ErrConnectionClosed) {
			return nil, true, nil
		}
		if err != nil {
			return nil, false, fmt.Errorf("next msg: %w", err)
		}
		return msg.Data, false, nil
	})
}
