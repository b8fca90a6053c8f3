package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fxsml/gopull"
)

// RedisList produces the elements of the list stored at key, one LPOP
// per demand, and terminates cleanly when the list is exhausted.
// Elements pushed while the pipeline runs are picked up by later
// demands; only an empty list at the moment of a demand ends the
// stream.
func RedisList(client redis.Cmdable, key string) gopull.Source[string, gopull.Unit] {
	return pull(func(ctx context.Context) (string, bool, error) {
		v, err := client.LPop(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return "", true, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("lpop %s: %w", key, err)
		}
		return v, false, nil
	})
}
