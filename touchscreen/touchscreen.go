// Package touchscreen provides a driver for the resistive touch panel fitted to
// the common ILI9341 240x320 display boards. The panel's XPT2046-style controller
// speaks a simple synchronous serial protocol which this driver bit-bangs over
// five basic GPIO lines, so no SPI peripheral is required.
//
// The driver assumes the panel is used in portrait orientation. If the display is
// rotated, the X and Y mapping in Calibration needs to be adjusted to match.
//
// Pin modes are not configured here: the platform is expected to set the clock,
// data-out and chip-select lines to output and the data-in and pen-interrupt
// lines to input before the driver is used.
//
// Datasheet: https://www.buydisplay.com/download/ic/XPT2046.pdf
package touchscreen

import (
	"errors"
)

// ErrNoisyData is returned by ReadTouchPoint when sampling did not complete with
// a stable, sustained touch, for example when the pen was lifted mid-read.
var ErrNoisyData = errors.New("touchscreen: noisy or incomplete sample data")

// Pin is the capability the driver needs from a single GPIO line. machine.Pin
// satisfies it, as does any simulated line used for testing.
type Pin interface {
	Set(high bool)
	Get() bool
}

type Device struct {
	clk  Pin
	cs   Pin
	din  Pin
	dout Pin
	irq  Pin

	samples int
	cal     Calibration
}

type Config struct {
	// Samples is the number of position reads averaged per touch point. More
	// samples reduce noise but increase read time.
	Samples int
	// Calibration maps raw controller units to screen pixels.
	Calibration Calibration
}

// New creates a driver on the given GPIO lines. clk, cs and dout are driven by
// the driver; din and irq are only read. No I/O is performed here.
func New(clk, cs, din, dout, irq Pin) *Device {
	return &Device{
		clk:  clk,
		cs:   cs,
		din:  din,
		dout: dout,
		irq:  irq,
	}
}

func (d *Device) Configure(c Config) {
	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}
	if c.Calibration == (Calibration{}) {
		c.Calibration = DefaultCalibration
	}

	d.samples = c.Samples
	d.cal = c.Calibration
}

// Pressed reports whether the panel is currently being touched. The pen
// interrupt line is active low. This is a plain level read with no side
// effects, cheap enough to poll at any rate.
func (d *Device) Pressed() bool {
	return !d.irq.Get()
}

// ReadTouchPoint samples the panel and returns the averaged touch position in
// screen pixels. The touch must be held for the whole sampling pass: if the pen
// is lifted before all samples are taken, or is already up again right after,
// the zero Point and ErrNoisyData are returned and the caller may simply retry.
//
// The call blocks for the full duration of the exchange, up to Samples pairs of
// command/response transfers.
func (d *Device) ReadTouchPoint() (Point, error) {
	// Known idle state before selecting the controller.
	d.clk.Set(true)
	d.dout.Set(true)
	d.cs.Set(true)

	var sumX, sumY uint32
	count := 0

	d.cs.Set(false)

	for count < d.samples && !d.irq.Get() {
		d.write8(cmdReadY)
		sumY += uint32(d.read16())

		d.write8(cmdReadX)
		sumX += uint32(d.read16())

		count++
	}

	d.cs.Set(true)

	// A pass only counts when every sample was taken with the pen down and the
	// pen is still down afterwards. Anything else is noise.
	if count == 0 || count != d.samples || d.irq.Get() {
		return Point{}, ErrNoisyData
	}

	rawX := uint16(sumX / uint32(count))
	rawY := uint16(sumY / uint32(count))

	return d.cal.Map(rawX, rawY), nil
}

// read16 shifts in a 16-bit response, most significant bit first. Each bit is
// clocked by a rising then falling edge and sampled after the falling edge.
// The clock is left low.
func (d *Device) read16() uint16 {
	var value uint16

	for i := 0; i < 16; i++ {
		value <<= 1

		d.clk.Set(true)
		d.clk.Set(false)

		if d.din.Get() {
			value++
		}
	}

	return value
}

// write8 shifts out a command byte, most significant bit first. The data line
// is driven before each clock pulse. The clock is forced low before the first
// bit and left low at the end.
func (d *Device) write8(value uint8) {
	d.clk.Set(false)

	for i := 0; i < 8; i++ {
		d.dout.Set(value&0x80 != 0)
		value <<= 1

		d.clk.Set(true)
		d.clk.Set(false)
	}
}
