package decode

import (
	"strconv"
	"strings"
)

// Int decodes a line as a base-10 integer. Surrounding whitespace is
// ignored.
func Int() Decoder[int] {
	return DecoderFunc[int](func(line string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(line))
	})
}

// Float decodes a line as a float64. Surrounding whitespace is
// ignored.
func Float() Decoder[float64] {
	return DecoderFunc[float64](func(line string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(line), 64)
	})
}
