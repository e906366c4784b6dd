package skilledhelpers

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseAmount parses a form field holding a rate or price. Anything that
// is not a finite number yields 0 so callers can apply their own default.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
