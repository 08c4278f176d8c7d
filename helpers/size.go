package helpers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidSize is returned when a byte count cannot be formatted.
var ErrInvalidSize = errors.New("invalid byte size")

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSize converts a byte count to a human readable string such as
// "1.5 KB". Values are rounded to two decimals and printed without trailing
// zeros. Zero is rendered as "0B".
func FormatSize(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if n == 0 {
		return "0B", nil
	}

	// Repeated division by 1024 is exact for powers of two, where
	// floor(log(n)/log(1024)) is not.
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}

	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i], nil
}

// MustFormatSize is like FormatSize but panics on invalid input.
func MustFormatSize(n int64) string {
	s, err := FormatSize(n)
	if err != nil {
		panic(err)
	}
	return s
}
