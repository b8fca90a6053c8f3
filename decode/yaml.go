package decode

import "github.com/goccy/go-yaml"

// YAML decodes a line as a YAML document into a value of type T.
// Flow-style documents fit on one line; use it with sources that
// deliver one document per value.
func YAML[T any]() Decoder[T] {
	return DecoderFunc[T](func(line string) (T, error) {
		var v T
		if err := yaml.Unmarshal([]byte(line), &v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}
