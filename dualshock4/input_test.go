package dualshock4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputReportSticks(t *testing.T) {
	var r InputReport
	r.buf[1] = 0x10
	r.buf[2] = 0x20
	r.buf[3] = 0x30
	r.buf[4] = 0x40

	assert.Equal(t, StickPosition{X: 0x10, Y: 0x20}, r.LeftStick())
	assert.Equal(t, StickPosition{X: 0x30, Y: 0x40}, r.RightStick())
}

func TestStickPositionNormalization(t *testing.T) {
	tests := []struct {
		name string
		pos  StickPosition
		x, y float64
	}{
		{"full left up", StickPosition{X: 0, Y: 0}, -1.0, 1.0},
		{"full right down", StickPosition{X: 255, Y: 255}, 1.0, -1.0},
		{"near center", StickPosition{X: 128, Y: 128}, 0.5 / 127.5, -0.5 / 127.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.x, tt.pos.NormalizedX(), 1e-9)
			assert.InDelta(t, tt.y, tt.pos.NormalizedY(), 1e-9)
		})
	}
}

func TestInputReportShapeButtons(t *testing.T) {
	var r InputReport
	r.buf[5] = 0x80 | 0x20

	assert.True(t, r.Triangle())
	assert.False(t, r.Circle())
	assert.True(t, r.Cross())
	assert.False(t, r.Square())
}

func TestInputReportDPad(t *testing.T) {
	tests := []struct {
		nibble byte
		want   DPadState
	}{
		{0x00, DPadUp},
		{0x01, DPadUpRight},
		{0x02, DPadRight},
		{0x03, DPadDownRight},
		{0x04, DPadDown},
		{0x05, DPadDownLeft},
		{0x06, DPadLeft},
		{0x07, DPadUpLeft},
		{0x08, DPadReleased},
		{0x0f, DPadReleased},
	}
	for _, tt := range tests {
		var r InputReport
		r.buf[5] = 0xf0 | tt.nibble
		assert.Equal(t, tt.want, r.DPad(), "nibble %x", tt.nibble)
	}
}

func TestInputReportMiscButtons(t *testing.T) {
	var r InputReport
	r.buf[6] = 0x40 | 0x08 | 0x01

	assert.True(t, r.L3())
	assert.True(t, r.R2())
	assert.True(t, r.L1())
	assert.False(t, r.R3())
	assert.False(t, r.Options())
	assert.False(t, r.Share())
	assert.False(t, r.L2())
	assert.False(t, r.R1())
}

func TestInputReportCounterAndFlags(t *testing.T) {
	var r InputReport
	r.buf[7] = 0x2a<<2 | 0x02 | 0x01

	assert.Equal(t, byte(0x2a), r.Counter())
	assert.True(t, r.TPadClick())
	assert.True(t, r.PS())
}

func TestInputReportTriggersAndBattery(t *testing.T) {
	var r InputReport
	r.buf[8] = 0x7f
	r.buf[9] = 0xff
	r.buf[10] = 0x34
	r.buf[11] = 0x12
	r.buf[12] = 0x0b

	assert.Equal(t, byte(0x7f), r.L2Trigger())
	assert.Equal(t, byte(0xff), r.R2Trigger())
	assert.Equal(t, uint16(0x1234), r.Timestamp())
	assert.Equal(t, byte(0x0b), r.Battery())
}

func TestInputReportMotionAxes(t *testing.T) {
	var r InputReport
	// Gyroscope X = -2 little-endian, accelerometer Z = 0x0102.
	r.buf[13] = 0xfe
	r.buf[14] = 0xff
	r.buf[23] = 0x02
	r.buf[24] = 0x01

	assert.Equal(t, int16(-2), r.GyroscopeX())
	assert.Equal(t, int16(0), r.GyroscopeY())
	assert.Equal(t, int16(0x0102), r.AccelerometerZ())
}
