package dualshock4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReportFrame(t *testing.T) {
	r := NewReport(ReportIDGetCalibFlag, 4)
	assert.Equal(t, ReportIDGetCalibFlag, r.ID())
	assert.Equal(t, []byte{0x10, 0x00, 0x00, 0x00, 0x00}, r.Data())
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, r.Payload())
	assert.True(t, r.Valid())
}

func TestReportFromPayloadCopies(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	r := ReportFromPayload(ReportIDSetTestCommand, payload)
	payload[0] = 0xee

	assert.Equal(t, []byte{0xa0, 0x01, 0x02, 0x03}, r.Data())
}

func TestReportValid(t *testing.T) {
	r := NewReport(ReportIDGetIeepData, 2)
	assert.True(t, r.Valid())

	// A read that overwrote the frame with another identifier.
	r.Data()[0] = byte(ReportIDGetCalibFlag)
	assert.False(t, r.Valid())
}

func TestReportIDString(t *testing.T) {
	assert.Equal(t, "SET CALIBRATION COMMAND", ReportIDSetCalibrationCommand.String())
	assert.Equal(t, "GET IEEP DATA", ReportIDGetIeepData.String())
	assert.Contains(t, ReportID(0x42).String(), "42")
}
