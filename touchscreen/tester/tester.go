// Package tester provides a simulated resistive touch panel controller for
// exercising the touchscreen driver without hardware. The simulation decodes
// the bit-banged serial protocol edge by edge: while chip-select is held low it
// shifts an 8-bit command in from the data-out line, then serves a 16-bit
// response on the data-in line, most significant bit first.
package tester

import (
	"github.com/Shehroz30/stm32f3-ili9341/touchscreen"
)

// Length in clock pulses of one command/response exchange.
const exchangePulses = 8 + 16

// Touchpad is a scriptable stand-in for the touch controller. The exported
// fields may be adjusted between reads; the counters record everything the
// driver did to the lines.
type Touchpad struct {
	// RawX and RawY are the values served in response to the X and Y position
	// commands.
	RawX uint16
	RawY uint16

	// PenDown drives the pen interrupt line, which reads low while the pen is
	// down.
	PenDown bool

	// ReleaseAfter, when non-zero, lifts the pen once that many command
	// exchanges have completed. Two exchanges make up one position sample.
	ReleaseAfter int

	// ClockPulses counts rising clock edges seen while selected.
	ClockPulses int
	// CSAsserts and CSDeasserts count chip-select falling and rising
	// transitions.
	CSAsserts   int
	CSDeasserts int
	// Commands records every completed command byte in arrival order.
	Commands []uint8
	// SetCalls counts every Set on any line, including the input lines the
	// driver has no business writing to.
	SetCalls int

	clk  bool
	cs   bool
	dout bool
	din  bool

	phase     int
	cmd       uint8
	resp      uint16
	exchanges int
}

// New returns a Touchpad with the pen down and both chip-select and clock in
// their idle states, serving the given raw axis values.
func New(rawX, rawY uint16) *Touchpad {
	return &Touchpad{
		RawX:    rawX,
		RawY:    rawY,
		PenDown: true,
		cs:      true,
	}
}

// CLK returns the clock line as seen by the driver.
func (t *Touchpad) CLK() touchscreen.Pin {
	return funcPin{t, t.setClock, func() bool { return t.clk }}
}

// CS returns the chip-select line as seen by the driver.
func (t *Touchpad) CS() touchscreen.Pin {
	return funcPin{t, t.setSelect, func() bool { return t.cs }}
}

// DOUT returns the driver's data-out line.
func (t *Touchpad) DOUT() touchscreen.Pin {
	return funcPin{t, func(high bool) { t.dout = high }, func() bool { return t.dout }}
}

// DIN returns the driver's data-in line, carrying response bits.
func (t *Touchpad) DIN() touchscreen.Pin {
	return funcPin{t, nil, func() bool { return t.din }}
}

// IRQ returns the pen interrupt line, low while the pen is down.
func (t *Touchpad) IRQ() touchscreen.Pin {
	return funcPin{t, nil, func() bool { return !t.PenDown }}
}

func (t *Touchpad) setSelect(high bool) {
	if t.cs && !high {
		t.CSAsserts++
		// Selecting resets the exchange framing.
		t.phase = 0
		t.cmd = 0
	}
	if !t.cs && high {
		t.CSDeasserts++
	}
	t.cs = high
}

func (t *Touchpad) setClock(high bool) {
	rising := high && !t.clk
	t.clk = high

	// Pulses only mean anything while selected.
	if !rising || t.cs {
		return
	}

	t.ClockPulses++
	t.step()
}

// step advances the exchange by one clock pulse: eight command bits shifted in
// from data-out, then sixteen response bits served on data-in.
func (t *Touchpad) step() {
	if t.phase < 8 {
		t.cmd <<= 1
		if t.dout {
			t.cmd |= 1
		}
		if t.phase == 7 {
			t.completeCommand()
		}
	} else {
		bit := 15 - (t.phase - 8)
		t.din = t.resp&(1<<uint(bit)) != 0
	}

	t.phase++
	if t.phase == exchangePulses {
		t.phase = 0
		t.cmd = 0
	}
}

func (t *Touchpad) completeCommand() {
	t.Commands = append(t.Commands, t.cmd)

	// Control bytes as the XPT2046 defines them: X position, Y position.
	switch t.cmd {
	case 0xD0:
		t.resp = t.RawX
	case 0x90:
		t.resp = t.RawY
	default:
		t.resp = 0
	}

	t.exchanges++
	if t.ReleaseAfter > 0 && t.exchanges >= t.ReleaseAfter {
		t.PenDown = false
	}
}

// funcPin adapts a Touchpad line to the driver's Pin interface. Writes to
// input lines are counted but otherwise ignored.
type funcPin struct {
	t   *Touchpad
	set func(high bool)
	get func() bool
}

func (p funcPin) Set(high bool) {
	p.t.SetCalls++
	if p.set != nil {
		p.set(high)
	}
}

func (p funcPin) Get() bool {
	return p.get()
}
