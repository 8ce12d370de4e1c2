package dualshock4

import "fmt"

// ReportID identifies a feature report of the DualShock 4 vendor protocol.
// The catalog is closed and versioned by firmware; passing an identifier
// outside it is a programming error, not a runtime condition.
type ReportID byte

const (
	ReportIDInput                  ReportID = 0x01
	ReportIDGetMotionCalibData     ReportID = 0x02
	ReportIDSetMotionCalibData     ReportID = 0x04
	ReportIDOutputDevice           ReportID = 0x05
	ReportIDSetFactoryCommand      ReportID = 0x08
	ReportIDGetCalibFlag           ReportID = 0x10
	ReportIDGetIeepData            ReportID = 0x11
	ReportIDGetPairingInfo         ReportID = 0x12
	ReportIDSetPairingInfo         ReportID = 0x13
	ReportIDSetUsbBtControl        ReportID = 0x14
	ReportIDSetBdAdr               ReportID = 0x80
	ReportIDGetBdAdr               ReportID = 0x81
	ReportIDSetFactoryData         ReportID = 0x82
	ReportIDSetAdrToGetFactoryData ReportID = 0x83
	ReportIDGetFactoryData         ReportID = 0x84
	ReportIDSetPcbaID              ReportID = 0x85
	ReportIDGetPcbaID              ReportID = 0x86
	ReportIDGetTrackRecord         ReportID = 0x87
	ReportIDSetCalibrationCommand  ReportID = 0x90
	ReportIDGetCalibrationState    ReportID = 0x91
	ReportIDGetCalibrationResult   ReportID = 0x92
	ReportIDGetCalibrationData     ReportID = 0x93
	ReportIDSetTestCommand         ReportID = 0xa0
	ReportIDSetBtEnable            ReportID = 0xa1
	ReportIDSetDfuEnable           ReportID = 0xa2
	ReportIDGetFirmInfo            ReportID = 0xa3
	ReportIDGetTestData            ReportID = 0xa4
)

func (id ReportID) String() string {
	switch id {
	case ReportIDInput:
		return "INPUT REPORT"
	case ReportIDGetMotionCalibData:
		return "GET MOTION CALIB DATA"
	case ReportIDSetMotionCalibData:
		return "SET MOTION CALIB DATA"
	case ReportIDOutputDevice:
		return "OUTPUT DEVICE"
	case ReportIDSetFactoryCommand:
		return "SET FACTORY COMMAND"
	case ReportIDGetCalibFlag:
		return "GET CALIB FLAG"
	case ReportIDGetIeepData:
		return "GET IEEP DATA"
	case ReportIDGetPairingInfo:
		return "GET PAIRING INFO"
	case ReportIDSetPairingInfo:
		return "SET PAIRING INFO"
	case ReportIDSetUsbBtControl:
		return "SET USB/BT CONTROL"
	case ReportIDSetBdAdr:
		return "SET BD ADDRESS"
	case ReportIDGetBdAdr:
		return "GET BD ADDRESS"
	case ReportIDSetFactoryData:
		return "SET FACTORY DATA"
	case ReportIDSetAdrToGetFactoryData:
		return "SET ADDRESS TO GET FACTORY DATA"
	case ReportIDGetFactoryData:
		return "GET FACTORY DATA"
	case ReportIDSetPcbaID:
		return "SET PCBA ID"
	case ReportIDGetPcbaID:
		return "GET PCBA ID"
	case ReportIDGetTrackRecord:
		return "GET TRACK RECORD"
	case ReportIDSetCalibrationCommand:
		return "SET CALIBRATION COMMAND"
	case ReportIDGetCalibrationState:
		return "GET CALIBRATION STATE"
	case ReportIDGetCalibrationResult:
		return "GET CALIBRATION RESULT"
	case ReportIDGetCalibrationData:
		return "GET CALIBRATION DATA"
	case ReportIDSetTestCommand:
		return "SET TEST COMMAND"
	case ReportIDSetBtEnable:
		return "SET BT ENABLE"
	case ReportIDSetDfuEnable:
		return "SET DFU ENABLE"
	case ReportIDGetFirmInfo:
		return "GET FIRM INFO"
	case ReportIDGetTestData:
		return "GET TEST DATA"
	}
	return fmt.Sprintf("Unknown report ID %02x", byte(id))
}

// Report is a feature report wire frame: one identifier byte followed by a
// fixed-length payload. The whole frame, identifier included, is handed to
// the transport.
type Report struct {
	id   ReportID
	data []byte
}

// NewReport builds a frame with a zero-filled payload of the given size,
// ready to be filled in place by a feature report read.
func NewReport(id ReportID, payloadSize int) *Report {
	data := make([]byte, payloadSize+1)
	data[0] = byte(id)
	return &Report{id: id, data: data}
}

// ReportFromPayload builds a frame carrying a copy of the given payload.
func ReportFromPayload(id ReportID, payload []byte) *Report {
	data := make([]byte, len(payload)+1)
	data[0] = byte(id)
	copy(data[1:], payload)
	return &Report{id: id, data: data}
}

func (r *Report) ID() ReportID {
	return r.id
}

// Data returns the full frame including the identifier byte.
func (r *Report) Data() []byte {
	return r.data
}

func (r *Report) Payload() []byte {
	return r.data[1:]
}

// Valid reports whether the frame still carries the identifier it was
// requested with. A feature report read that returns a different leading
// byte is a stale or garbage response and must not be trusted.
func (r *Report) Valid() bool {
	return r.data[0] == byte(r.id)
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: % 02x", r.id, r.data)
}
