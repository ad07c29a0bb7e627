package touchscreen

// Width of the panel in pixels in portrait orientation. The calibration
// formula folds the X axis around it.
const screenWidth = 240

// Point is a touch position in display pixel space.
type Point struct {
	X uint16
	Y uint16
}

// Calibration holds the fixed linear mapping from raw controller units to
// screen pixels: a per-axis translation divisor, offset and magnitude
// multiplier. The translation divisors must be non-zero.
type Calibration struct {
	XTranslation uint16
	YTranslation uint16
	XOffset      uint16
	YOffset      uint16
	XMagnitude   uint16
	YMagnitude   uint16
}

// Map converts a pair of averaged raw samples to screen pixels. The controller
// reports inverted magnitudes in this wiring, so both values are negated
// (two's complement) before the linear mapping is applied. All arithmetic is
// unsigned 16-bit with truncating division.
func (c Calibration) Map(rawX, rawY uint16) Point {
	rawX = -rawX
	rawY = -rawY

	return Point{
		X: ((screenWidth - rawX/c.XTranslation) - c.XOffset) * c.XMagnitude,
		Y: (rawY/c.YTranslation - c.YOffset) * c.YMagnitude,
	}
}
