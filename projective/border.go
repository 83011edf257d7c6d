package projective

import "fmt"

// BorderColor selects the color brought in where the source has no data.
type BorderColor int

const (
	// BringInWhite fills uncovered pixels with white.
	BringInWhite BorderColor = iota + 1
	// BringInBlack fills uncovered pixels with black.
	BringInBlack
)

func (b BorderColor) String() string {
	switch b {
	case BringInWhite:
		return "white"
	case BringInBlack:
		return "black"
	default:
		return fmt.Sprintf("BorderColor(%d)", int(b))
	}
}

func (b BorderColor) valid() bool {
	return b == BringInWhite || b == BringInBlack
}

// ParseBorderColor accepts "white" or "black".
func ParseBorderColor(s string) (BorderColor, error) {
	switch s {
	case "white":
		return BringInWhite, nil
	case "black":
		return BringInBlack, nil
	default:
		return 0, fmt.Errorf("projective: border %q: %w", s, ErrInvalidBorder)
	}
}

// Border values used by the interpolated pass. Color white leaves the low
// byte clear to match the packed RGB layout.
const (
	grayWhite  uint8  = 0xff
	colorWhite uint32 = 0xffffff00
)

func grayBorder(b BorderColor) uint8 {
	if b == BringInWhite {
		return grayWhite
	}
	return 0
}

func colorBorder(b BorderColor) uint32 {
	if b == BringInWhite {
		return colorWhite
	}
	return 0
}
