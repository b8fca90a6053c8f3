package source

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fxsml/gopull"
)

// AMQP produces the bodies of deliveries from a consume channel, one
// receive per demand. The closed channel, which the client closes when
// the consumer is canceled or the connection drops, ends the stream
// cleanly. Use manual acknowledgment on the consumer only if a
// downstream stage acknowledges out of band; nothing is acked here.
func AMQP(deliveries <-chan amqp.Delivery) gopull.Source[[]byte, gopull.Unit] {
	return pull(func(ctx context.Context) ([]byte, bool, error) {
		select {
		case d, ok := <-deliveries:
			if !ok {
				return nil, true, nil
			}
			return d.Body, false, nil
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	})
}
