package reveal

import (
	"fmt"
	"strconv"
	"strings"
)

// Insets adjusts the observed viewport per edge, in cells
// Positive values grow the root, negative values shrink it (CSS rootMargin semantics)
type Insets struct {
	Top, Right, Bottom, Left int
}

// Options configures one observation
type Options struct {
	// Threshold is the visible fraction of the element required to reveal, in [0, 1]
	// Zero reveals on any intersection
	Threshold float64
	Margin    Insets
}

// DefaultOptions reveals at 10% visibility, two rows before the bottom edge
func DefaultOptions() Options {
	return Options{
		Threshold: 0.1,
		Margin:    Insets{Bottom: -2},
	}
}

// ParseInsets parses CSS-ordered margin values: "all", "v h", "t h b" or "t r b l"
// Values are integers in cells, an optional "px" suffix is ignored
func ParseInsets(s string) (Insets, error) {
	fields := strings.Fields(s)
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSuffix(f, "px"))
		if err != nil {
			return Insets{}, fmt.Errorf("invalid margin value %q: %w", f, err)
		}
		vals = append(vals, n)
	}

	switch len(vals) {
	case 1:
		return Insets{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Insets{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Insets{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return Insets{vals[0], vals[1], vals[2], vals[3]}, nil
	default:
		return Insets{}, fmt.Errorf("margin %q: expected 1 to 4 values, got %d", s, len(vals))
	}
}

// String formats insets in 4-value CSS order
func (i Insets) String() string {
	return fmt.Sprintf("%d %d %d %d", i.Top, i.Right, i.Bottom, i.Left)
}

// Validate checks the threshold range
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("threshold %v outside [0, 1]", o.Threshold)
	}
	return nil
}
