package dualshock4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPermanentCommand(t *testing.T) {
	assert.Equal(t, []byte{0xa0, 0x0a, 0x02, 0x3e, 0x71, 0x7f, 0x89},
		SetPermanentCommand(true).Report().Data())
	assert.Equal(t, []byte{0xa0, 0x0a, 0x01, 0x00},
		SetPermanentCommand(false).Report().Data())
}

func TestRecordTriggerMinMaxCommand(t *testing.T) {
	tests := []struct {
		side TriggerKeySide
		min  bool
		want []byte
	}{
		{TriggerKeyLeft, true, []byte{0xa0, 0x08, 0x01, 0x01, 0x01}},
		{TriggerKeyLeft, false, []byte{0xa0, 0x08, 0x01, 0x01, 0x00}},
		{TriggerKeyRight, true, []byte{0xa0, 0x08, 0x01, 0x02, 0x01}},
		{TriggerKeyRight, false, []byte{0xa0, 0x08, 0x01, 0x02, 0x00}},
		{TriggerKeyBoth, true, []byte{0xa0, 0x08, 0x01, 0x00, 0x01}},
		{TriggerKeyBoth, false, []byte{0xa0, 0x08, 0x01, 0x00, 0x00}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RecordTriggerMinMaxCommand(tt.side, tt.min).Report().Data())
	}

	assert.Panics(t, func() {
		RecordTriggerMinMaxCommand(TriggerKeySideUnknown, true)
	})
}

func TestReloadTriggerMinMaxCommand(t *testing.T) {
	assert.Equal(t, []byte{0xa0, 0x08, 0x02}, ReloadTriggerMinMaxCommand().Report().Data())
}

func TestRawTestCommandCopies(t *testing.T) {
	payload := []byte{0x01, 0x02}
	cmd := RawTestCommand(payload)
	payload[0] = 0xee

	assert.Equal(t, []byte{0xa0, 0x01, 0x02}, cmd.Report().Data())
}

func TestSetIeepAddressCommand(t *testing.T) {
	assert.Equal(t, []byte{0x08, 0xff, 0x00, 0x00}, SetIeepAddressCommand(0).Report().Data())
	assert.Equal(t, []byte{0x08, 0xff, 0x00, 0x0c}, SetIeepAddressCommand(12).Report().Data())
	assert.Equal(t, []byte{0x08, 0xff, 0x07, 0xfe}, SetIeepAddressCommand(0x07fe).Report().Data())
}

func TestTriggerMinMaxCalibrationCommand(t *testing.T) {
	tests := []struct {
		op   TriggerMinMaxOp
		side TriggerKeySide
		arg  byte
	}{
		{TriggerMinMaxStart, TriggerKeyLeft, 0x42},
		{TriggerMinMaxStart, TriggerKeyRight, 0x48},
		{TriggerMinMaxStart, TriggerKeyBoth, 0x4a},
		{TriggerMinMaxStart, TriggerKeySideUnknown, 0x40},
		{TriggerMinMaxSaveMin, TriggerKeyLeft, 0x82},
		{TriggerMinMaxSaveMin, TriggerKeyBoth, 0x8a},
		{TriggerMinMaxSaveMax, TriggerKeyRight, 0x08},
		{TriggerMinMaxSaveMax, TriggerKeyBoth, 0x0a},
		{TriggerMinMaxSaveMax, TriggerKeySideUnknown, 0x00},
	}
	for _, tt := range tests {
		want := []byte{0x08, 0x02, tt.arg, tt.arg}
		assert.Equal(t, want, TriggerMinMaxCalibrationCommand(tt.op, tt.side).Report().Data(),
			"%s %s", tt.op, tt.side)
	}

	assert.Panics(t, func() {
		TriggerMinMaxCalibrationCommand(TriggerMinMaxOp(99), TriggerKeyLeft)
	})
}
