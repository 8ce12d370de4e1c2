package dualshock4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrationDeviceTypeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		device  CalibrationDeviceType
		encoded [4]byte
	}{
		{"stick center", AnalogStickDevice(AnalogStickCenter), [4]byte{0x01, 0x01, 0x00, 0x00}},
		{"stick min/max", AnalogStickDevice(AnalogStickMinMax), [4]byte{0x01, 0x02, 0x00, 0x00}},
		{"stick none", AnalogStickDevice(AnalogStickNone), [4]byte{0x01, 0xff, 0x00, 0x00}},
		{"motion sensor", MotionSensorDevice(), [4]byte{0x02, 0x00, 0x00, 0x00}},
		{"trigger record max left", TriggerKeyDevice(TriggerKeyRecordMax, TriggerKeyLeft), [4]byte{0x03, 0x01, 0x01, 0x00}},
		{"trigger record min both", TriggerKeyDevice(TriggerKeyRecordMin, TriggerKeyBoth), [4]byte{0x03, 0x03, 0x03, 0x00}},
		{"trigger unknown phase", TriggerKeyDevice(TriggerKeyPhaseUnknown, TriggerKeyRight), [4]byte{0x03, 0x00, 0x02, 0x00}},
		{"none", NoDevice(), [4]byte{0xff, 0xff, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.encoded, tt.device.Encode())
			parsed, err := ParseCalibrationDeviceType(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.device, parsed)
		})
	}
}

func TestParseCalibrationDeviceTypeInvalid(t *testing.T) {
	_, err := ParseCalibrationDeviceType([4]byte{0x04, 0x00, 0x00, 0x00})
	assert.Error(t, err)

	_, err = ParseCalibrationDeviceType([4]byte{0x01, 0x03, 0x00, 0x00})
	assert.Error(t, err, "analog stick type 0x03 is not in the catalog")

	_, err = ParseCalibrationDeviceType([4]byte{0x03, 0x04, 0x00, 0x00})
	assert.Error(t, err, "trigger phase 0x04 is not in the catalog")
}

func TestCalibrationTypeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		command CalibrationType
		encoded [5]byte
	}{
		{"start stick center", StartCalibration(AnalogStickDevice(AnalogStickCenter)), [5]byte{0x01, 0x01, 0x01, 0x00, 0x00}},
		{"measure stick center", MeasureCalibration(AnalogStickDevice(AnalogStickCenter)), [5]byte{0x03, 0x01, 0x01, 0x00, 0x00}},
		{"stop motion sensor", StopCalibration(MotionSensorDevice()), [5]byte{0x02, 0x02, 0x00, 0x00, 0x00}},
		{"start trigger", StartCalibration(TriggerKeyDevice(TriggerKeyPhaseUnknown, TriggerKeyBoth)), [5]byte{0x01, 0x03, 0x00, 0x03, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.encoded, tt.command.Encode())
			parsed, err := ParseCalibrationType(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.command, parsed)
		})
	}
}

func TestCalibrationTypeNone(t *testing.T) {
	none := CalibrationType{Op: CalibrationOpNone, Device: NoDevice()}
	assert.Equal(t, [5]byte{0xff, 0xff, 0xff, 0x00, 0x00}, none.Encode())

	parsed, err := ParseCalibrationType([5]byte{0xff, 0xff, 0xff, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, none, parsed)
}

func TestParseCalibrationTypeInvalid(t *testing.T) {
	_, err := ParseCalibrationType([5]byte{0x04, 0x01, 0x01, 0x00, 0x00})
	assert.Error(t, err)
}

func TestParseCalibrationState(t *testing.T) {
	state, err := ParseCalibrationState([3]byte{0x01, 0x01, 0x01})
	require.NoError(t, err)
	assert.Equal(t, CalibrationStarted, state.Status)
	assert.Equal(t, AnalogStickDevice(AnalogStickCenter), state.Device)

	state, err = ParseCalibrationState([3]byte{0x02, 0x00, 0x02})
	require.NoError(t, err)
	assert.Equal(t, CalibrationFinished, state.Status)
	assert.Equal(t, MotionSensorDevice(), state.Device)

	state, err = ParseCalibrationState([3]byte{0x00, 0x00, 0xff})
	require.NoError(t, err)
	assert.Equal(t, CalibrationStatusUnknown, state.Status)
	assert.Equal(t, NoDevice(), state.Device)

	_, err = ParseCalibrationState([3]byte{0x01, 0x01, 0x03})
	assert.Error(t, err)
}

func TestParseCalibrationResult(t *testing.T) {
	result, err := ParseCalibrationResult([3]byte{0x01, 0x02, 0x01})
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, AnalogStickDevice(AnalogStickMinMax), result.Device)

	result, err = ParseCalibrationResult([3]byte{0xff, 0xff, 0xff})
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.Equal(t, NoDevice(), result.Device)

	_, err = ParseCalibrationResult([3]byte{0x01, 0x01, 0x02})
	assert.Error(t, err)
}

func TestParseMotionCalibration(t *testing.T) {
	_, err := ParseMotionCalibration(make([]byte, 39))
	assert.ErrorIs(t, err, ErrOutOfRange)

	data := make([]byte, MotionCalibrationDataSize)
	data[0] = 0xde
	m, err := ParseMotionCalibration(data)
	require.NoError(t, err)
	assert.Equal(t, data, m.Bytes())
}

func TestDecodeCalibrationDataStickMinMax(t *testing.T) {
	data := make([]byte, stickMinMaxCalibrationSize)
	// Left X min = -100, max = +100.
	data[0] = byte((2048 - 100) & 0xff)
	data[1] = byte((2048 - 100) >> 8)
	data[2] = byte((2048 + 100) & 0xff)
	data[3] = byte((2048 + 100) >> 8)

	cd, err := decodeCalibrationData(AnalogStickDevice(AnalogStickMinMax), data)
	require.NoError(t, err)
	assert.Equal(t, CalibrationDataStickMinMax, cd.Kind)
	assert.Equal(t, -100, cd.StickMinMax.LeftMinX())
	assert.Equal(t, 100, cd.StickMinMax.LeftMaxX())
}

func TestDecodeCalibrationDataTruncated(t *testing.T) {
	_, err := decodeCalibrationData(AnalogStickDevice(AnalogStickCenter), make([]byte, 5))
	assert.Error(t, err)

	_, err = decodeCalibrationData(AnalogStickDevice(AnalogStickMinMax), make([]byte, 15))
	assert.Error(t, err)

	// Declared sample count runs past the data.
	data := make([]byte, 9)
	data[8] = 2
	_, err = decodeCalibrationData(AnalogStickDevice(AnalogStickCenter), data)
	assert.Error(t, err)
}

func TestDecodeCalibrationDataOpaqueKinds(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}

	cd, err := decodeCalibrationData(TriggerKeyDevice(TriggerKeyRecordMax, TriggerKeyLeft), raw)
	require.NoError(t, err)
	assert.Equal(t, CalibrationDataTriggers, cd.Kind)
	assert.Equal(t, raw, cd.Raw)

	cd, err = decodeCalibrationData(MotionSensorDevice(), raw)
	require.NoError(t, err)
	assert.Equal(t, CalibrationDataRaw, cd.Kind)
	assert.Equal(t, raw, cd.Raw)
}
