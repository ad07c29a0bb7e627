package touchscreen

// XPT2046 control bytes: start bit, channel select, 12-bit differential
// conversion, power down between conversions.
const (
	cmdReadX = 0xD0 // X position
	cmdReadY = 0x90 // Y position
)

// DefaultSamples is the number of position reads averaged per touch point when
// Config.Samples is left zero.
const DefaultSamples = 100

// DefaultCalibration matches the common 240x320 ILI9341 boards in portrait
// orientation. Individual panels vary; adjust per board if touches land offset
// from the pen.
var DefaultCalibration = Calibration{
	XTranslation: 15,
	YTranslation: 11,
	XOffset:      24,
	YOffset:      0,
	XMagnitude:   1,
	YMagnitude:   1,
}
