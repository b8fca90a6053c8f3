package decode

import "encoding/json"

// JSON decodes a line as a JSON document into a value of type T.
func JSON[T any]() Decoder[T] {
	return DecoderFunc[T](func(line string) (T, error) {
		var v T
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}
