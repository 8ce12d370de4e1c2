package dualshock4

import (
	"encoding/binary"
	"fmt"
)

const InputReportSize = 64

const (
	stickCenter             = 127.5
	stickNormalizedInterval = 2.0
	stickNormalizedCenter   = stickNormalizedInterval / 2.0
)

// InputReport is one 64-byte input snapshot as delivered by the controller.
// It is decoded positionally and never mutated after a read; the next read
// supersedes it.
type InputReport struct {
	buf [InputReportSize]byte
}

func (d *InputReport) LeftStick() StickPosition {
	return StickPosition{X: d.buf[1], Y: d.buf[2]}
}

func (d *InputReport) RightStick() StickPosition {
	return StickPosition{X: d.buf[3], Y: d.buf[4]}
}

func (d *InputReport) Triangle() bool { return d.buf[5]&0x80 != 0 }
func (d *InputReport) Circle() bool   { return d.buf[5]&0x40 != 0 }
func (d *InputReport) Cross() bool    { return d.buf[5]&0x20 != 0 }
func (d *InputReport) Square() bool   { return d.buf[5]&0x10 != 0 }

// DPad decodes the low nibble of byte 5 as an 8-way compass. Any nibble
// outside the eight compass codes means released.
func (d *InputReport) DPad() DPadState {
	switch d.buf[5] & 0x0f {
	case 0x00:
		return DPadUp
	case 0x01:
		return DPadUpRight
	case 0x02:
		return DPadRight
	case 0x03:
		return DPadDownRight
	case 0x04:
		return DPadDown
	case 0x05:
		return DPadDownLeft
	case 0x06:
		return DPadLeft
	case 0x07:
		return DPadUpLeft
	}
	return DPadReleased
}

func (d *InputReport) R3() bool      { return d.buf[6]&0x80 != 0 }
func (d *InputReport) L3() bool      { return d.buf[6]&0x40 != 0 }
func (d *InputReport) Options() bool { return d.buf[6]&0x20 != 0 }
func (d *InputReport) Share() bool   { return d.buf[6]&0x10 != 0 }
func (d *InputReport) R2() bool      { return d.buf[6]&0x08 != 0 }
func (d *InputReport) L2() bool      { return d.buf[6]&0x04 != 0 }
func (d *InputReport) R1() bool      { return d.buf[6]&0x02 != 0 }
func (d *InputReport) L1() bool      { return d.buf[6]&0x01 != 0 }

// Counter is the rolling 6-bit packet counter in the top bits of byte 7.
func (d *InputReport) Counter() byte { return d.buf[7] >> 2 }

func (d *InputReport) TPadClick() bool { return d.buf[7]&0x02 != 0 }
func (d *InputReport) PS() bool        { return d.buf[7]&0x01 != 0 }

func (d *InputReport) L2Trigger() byte { return d.buf[8] }
func (d *InputReport) R2Trigger() byte { return d.buf[9] }

func (d *InputReport) Timestamp() uint16 {
	return binary.LittleEndian.Uint16(d.buf[10:12])
}

func (d *InputReport) Battery() byte { return d.buf[12] }

func (d *InputReport) motionAxis(offset int) int16 {
	return int16(binary.LittleEndian.Uint16(d.buf[offset : offset+2]))
}

func (d *InputReport) GyroscopeX() int16     { return d.motionAxis(13) }
func (d *InputReport) GyroscopeY() int16     { return d.motionAxis(15) }
func (d *InputReport) GyroscopeZ() int16     { return d.motionAxis(17) }
func (d *InputReport) AccelerometerX() int16 { return d.motionAxis(19) }
func (d *InputReport) AccelerometerY() int16 { return d.motionAxis(21) }
func (d *InputReport) AccelerometerZ() int16 { return d.motionAxis(23) }

type DPadState byte

const (
	DPadReleased DPadState = iota
	DPadUp
	DPadUpRight
	DPadRight
	DPadDownRight
	DPadDown
	DPadDownLeft
	DPadLeft
	DPadUpLeft
)

func (s DPadState) String() string {
	switch s {
	case DPadUp:
		return "Up"
	case DPadUpRight:
		return "Up-Right"
	case DPadRight:
		return "Right"
	case DPadDownRight:
		return "Down-Right"
	case DPadDown:
		return "Down"
	case DPadDownLeft:
		return "Down-Left"
	case DPadLeft:
		return "Left"
	case DPadUpLeft:
		return "Up-Left"
	}
	return "Released"
}

// StickPosition is one raw analog stick sample, 0-255 per axis with the
// mechanical center at 127.5.
type StickPosition struct {
	X byte
	Y byte
}

// NormalizedX maps the raw axis onto [-1, 1].
func (p StickPosition) NormalizedX() float64 {
	return float64(p.X)/stickCenter - stickNormalizedCenter
}

// NormalizedY maps the raw axis onto [-1, 1], inverted so that a growing
// raw value plots downward.
func (p StickPosition) NormalizedY() float64 {
	return stickNormalizedCenter - float64(p.Y)/stickCenter
}

func (p StickPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
