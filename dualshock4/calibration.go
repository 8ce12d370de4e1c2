package dualshock4

import (
	"fmt"
)

const (
	MotionCalibrationDataSize = 40

	calibrationFlagSize   = 4
	calibrationStateSize  = 3
	calibrationResultSize = 3
	calibrationDataSize   = 13
)

// CalibrationFlag reports which calibration categories are currently valid
// on the device. Read-only snapshot of report 0x10.
type CalibrationFlag struct {
	buf [calibrationFlagSize]byte
}

func (f *CalibrationFlag) GyroscopeOK() bool     { return f.buf[0]&0x01 != 0 }
func (f *CalibrationFlag) AccelerometerOK() bool { return f.buf[0]&0x02 != 0 }
func (f *CalibrationFlag) StickMinMaxOK() bool   { return f.buf[2]&0x01 != 0 }
func (f *CalibrationFlag) StickCenterOK() bool   { return f.buf[2]&0x02 != 0 }
func (f *CalibrationFlag) L2OK() bool            { return f.buf[2]&0x04 != 0 }
func (f *CalibrationFlag) R2OK() bool            { return f.buf[2]&0x08 != 0 }

// MotionCalibration is the opaque 40-byte motion sensor calibration blob.
// The firmware-internal layout is not decoded; it is read and written
// verbatim.
type MotionCalibration struct {
	buf [MotionCalibrationDataSize]byte
}

func ParseMotionCalibration(data []byte) (*MotionCalibration, error) {
	if len(data) != MotionCalibrationDataSize {
		return nil, fmt.Errorf("motion calibration data must be %d bytes, got %d: %w",
			MotionCalibrationDataSize, len(data), ErrOutOfRange)
	}
	m := &MotionCalibration{}
	copy(m.buf[:], data)
	return m, nil
}

func (m *MotionCalibration) Bytes() []byte {
	return m.buf[:]
}

// DeviceClass is the leading tag byte of a CalibrationDeviceType encoding.
type DeviceClass byte

const (
	DeviceClassAnalogStick  DeviceClass = 0x01
	DeviceClassMotionSensor DeviceClass = 0x02
	DeviceClassTriggerKey   DeviceClass = 0x03
	DeviceClassNone         DeviceClass = 0xff
)

func (c DeviceClass) String() string {
	switch c {
	case DeviceClassAnalogStick:
		return "Analog Stick"
	case DeviceClassMotionSensor:
		return "Motion Sensor"
	case DeviceClassTriggerKey:
		return "Trigger Key"
	case DeviceClassNone:
		return "None"
	}
	return fmt.Sprintf("Unknown device class %02x", byte(c))
}

type AnalogStickCalibrationType byte

const (
	AnalogStickCenter AnalogStickCalibrationType = 0x01
	AnalogStickMinMax AnalogStickCalibrationType = 0x02
	AnalogStickNone   AnalogStickCalibrationType = 0xff
)

func (t AnalogStickCalibrationType) String() string {
	switch t {
	case AnalogStickCenter:
		return "Center"
	case AnalogStickMinMax:
		return "Min/Max"
	case AnalogStickNone:
		return "None"
	}
	return fmt.Sprintf("Unknown analog stick calibration type %02x", byte(t))
}

func parseAnalogStickCalibrationType(b byte) (AnalogStickCalibrationType, error) {
	switch AnalogStickCalibrationType(b) {
	case AnalogStickCenter, AnalogStickMinMax, AnalogStickNone:
		return AnalogStickCalibrationType(b), nil
	}
	return 0, fmt.Errorf("invalid analog stick calibration type %02x", b)
}

// TriggerKeyPhase is the sampling phase of a trigger key calibration run.
type TriggerKeyPhase byte

const (
	TriggerKeyPhaseUnknown TriggerKeyPhase = 0x00
	TriggerKeyRecordMax    TriggerKeyPhase = 0x01
	TriggerKeyRecordRange  TriggerKeyPhase = 0x02
	TriggerKeyRecordMin    TriggerKeyPhase = 0x03
	TriggerKeyPhaseNone    TriggerKeyPhase = 0xff
)

func (p TriggerKeyPhase) String() string {
	switch p {
	case TriggerKeyPhaseUnknown:
		return "Unknown"
	case TriggerKeyRecordMax:
		return "Record Max Sample"
	case TriggerKeyRecordRange:
		return "Record Range Sample"
	case TriggerKeyRecordMin:
		return "Record Min Sample"
	case TriggerKeyPhaseNone:
		return "None"
	}
	return fmt.Sprintf("Unknown trigger key phase %02x", byte(p))
}

func parseTriggerKeyPhase(b byte) (TriggerKeyPhase, error) {
	switch TriggerKeyPhase(b) {
	case TriggerKeyPhaseUnknown, TriggerKeyRecordMax, TriggerKeyRecordRange,
		TriggerKeyRecordMin, TriggerKeyPhaseNone:
		return TriggerKeyPhase(b), nil
	}
	return 0, fmt.Errorf("invalid trigger key calibration phase %02x", b)
}

// TriggerKeySide selects which trigger(s) a command applies to.
type TriggerKeySide byte

const (
	TriggerKeySideUnknown TriggerKeySide = 0x00
	TriggerKeyLeft        TriggerKeySide = 0x01
	TriggerKeyRight       TriggerKeySide = 0x02
	TriggerKeyBoth        TriggerKeySide = 0x03
)

func (s TriggerKeySide) String() string {
	switch s {
	case TriggerKeyLeft:
		return "Left"
	case TriggerKeyRight:
		return "Right"
	case TriggerKeyBoth:
		return "Left and Right"
	}
	return "Unknown"
}

func parseTriggerKeySide(b byte) (TriggerKeySide, error) {
	switch TriggerKeySide(b) {
	case TriggerKeySideUnknown, TriggerKeyLeft, TriggerKeyRight, TriggerKeyBoth:
		return TriggerKeySide(b), nil
	}
	return 0, fmt.Errorf("invalid trigger key side %02x", b)
}

// CalibrationDeviceType is the tagged device descriptor used both as a
// calibration command argument and as a response discriminator. The wire
// encoding is 4 bytes; Encode and ParseCalibrationDeviceType are inverse for
// every variant including the terminal None sentinel.
type CalibrationDeviceType struct {
	Class DeviceClass

	// Stick is meaningful only when Class is DeviceClassAnalogStick.
	Stick AnalogStickCalibrationType

	// Phase and Side are meaningful only when Class is DeviceClassTriggerKey.
	Phase TriggerKeyPhase
	Side  TriggerKeySide
}

func AnalogStickDevice(t AnalogStickCalibrationType) CalibrationDeviceType {
	return CalibrationDeviceType{Class: DeviceClassAnalogStick, Stick: t}
}

func MotionSensorDevice() CalibrationDeviceType {
	return CalibrationDeviceType{Class: DeviceClassMotionSensor}
}

func TriggerKeyDevice(phase TriggerKeyPhase, side TriggerKeySide) CalibrationDeviceType {
	return CalibrationDeviceType{Class: DeviceClassTriggerKey, Phase: phase, Side: side}
}

func NoDevice() CalibrationDeviceType {
	return CalibrationDeviceType{Class: DeviceClassNone}
}

func (t CalibrationDeviceType) Encode() [4]byte {
	switch t.Class {
	case DeviceClassAnalogStick:
		return [4]byte{0x01, byte(t.Stick), 0x00, 0x00}
	case DeviceClassMotionSensor:
		return [4]byte{0x02, 0x00, 0x00, 0x00}
	case DeviceClassTriggerKey:
		return [4]byte{0x03, byte(t.Phase), byte(t.Side), 0x00}
	case DeviceClassNone:
		return [4]byte{0xff, 0xff, 0x00, 0x00}
	}
	panic(fmt.Sprintf("dualshock4: cannot encode calibration device class %02x", byte(t.Class)))
}

func (t CalibrationDeviceType) String() string {
	switch t.Class {
	case DeviceClassAnalogStick:
		return fmt.Sprintf("Analog Stick %s", t.Stick)
	case DeviceClassTriggerKey:
		return fmt.Sprintf("Trigger Key %s (%s)", t.Phase, t.Side)
	}
	return t.Class.String()
}

// ParseCalibrationDeviceType decodes the 4-byte wire shape. Patterns outside
// the closed catalog yield a descriptive parse error.
func ParseCalibrationDeviceType(b [4]byte) (CalibrationDeviceType, error) {
	switch {
	case b[0] == 0x01 && b[2] == 0x00 && b[3] == 0x00:
		stick, err := parseAnalogStickCalibrationType(b[1])
		if err != nil {
			return CalibrationDeviceType{}, err
		}
		return AnalogStickDevice(stick), nil
	case b == [4]byte{0x02, 0x00, 0x00, 0x00}:
		return MotionSensorDevice(), nil
	case b[0] == 0x03 && b[3] == 0x00:
		phase, err := parseTriggerKeyPhase(b[1])
		if err != nil {
			return CalibrationDeviceType{}, err
		}
		side, err := parseTriggerKeySide(b[2])
		if err != nil {
			return CalibrationDeviceType{}, err
		}
		return TriggerKeyDevice(phase, side), nil
	case b[0] == 0xff:
		return NoDevice(), nil
	}
	return CalibrationDeviceType{}, fmt.Errorf("invalid calibration device type % 02x", b[:])
}

// CalibrationOp is the opcode byte of a calibration command.
type CalibrationOp byte

const (
	CalibrationStart   CalibrationOp = 0x01
	CalibrationStop    CalibrationOp = 0x02
	CalibrationMeasure CalibrationOp = 0x03
	CalibrationOpNone  CalibrationOp = 0xff
)

func (o CalibrationOp) String() string {
	switch o {
	case CalibrationStart:
		return "Start"
	case CalibrationStop:
		return "Stop"
	case CalibrationMeasure:
		return "Measure"
	case CalibrationOpNone:
		return "None"
	}
	return fmt.Sprintf("Unknown calibration op %02x", byte(o))
}

// CalibrationType is a calibration command: an opcode plus the device it
// targets. Wire encoding is 5 bytes.
type CalibrationType struct {
	Op     CalibrationOp
	Device CalibrationDeviceType
}

func StartCalibration(device CalibrationDeviceType) CalibrationType {
	return CalibrationType{Op: CalibrationStart, Device: device}
}

func StopCalibration(device CalibrationDeviceType) CalibrationType {
	return CalibrationType{Op: CalibrationStop, Device: device}
}

func MeasureCalibration(device CalibrationDeviceType) CalibrationType {
	return CalibrationType{Op: CalibrationMeasure, Device: device}
}

func (t CalibrationType) Encode() [5]byte {
	if t.Op == CalibrationOpNone {
		return [5]byte{0xff, 0xff, 0xff, 0x00, 0x00}
	}
	d := t.Device.Encode()
	return [5]byte{byte(t.Op), d[0], d[1], d[2], d[3]}
}

func (t CalibrationType) String() string {
	return fmt.Sprintf("%s %s", t.Op, t.Device)
}

func ParseCalibrationType(b [5]byte) (CalibrationType, error) {
	switch CalibrationOp(b[0]) {
	case CalibrationStart, CalibrationStop, CalibrationMeasure:
		device, err := ParseCalibrationDeviceType([4]byte{b[1], b[2], b[3], b[4]})
		if err != nil {
			return CalibrationType{}, err
		}
		return CalibrationType{Op: CalibrationOp(b[0]), Device: device}, nil
	case CalibrationOpNone:
		return CalibrationType{Op: CalibrationOpNone, Device: NoDevice()}, nil
	}
	return CalibrationType{}, fmt.Errorf("invalid calibration type % 02x", b[:])
}

// CalibrationStatus is the trailer byte of a calibration state response.
type CalibrationStatus byte

const (
	CalibrationStarted       CalibrationStatus = 0x01
	CalibrationFinished      CalibrationStatus = 0x02
	CalibrationStatusUnknown CalibrationStatus = 0xff
)

func (s CalibrationStatus) String() string {
	switch s {
	case CalibrationStarted:
		return "Started"
	case CalibrationFinished:
		return "Finished"
	case CalibrationStatusUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("Unknown calibration status %02x", byte(s))
}

// CalibrationState is what the device reports on a state read. The device
// alone drives transitions; this layer only decodes what it reports.
type CalibrationState struct {
	Status CalibrationStatus
	Device CalibrationDeviceType
}

func ParseCalibrationState(b [3]byte) (CalibrationState, error) {
	switch CalibrationStatus(b[2]) {
	case CalibrationStarted, CalibrationFinished:
		device, err := ParseCalibrationDeviceType([4]byte{b[0], b[1], 0x00, 0x00})
		if err != nil {
			return CalibrationState{}, err
		}
		return CalibrationState{Status: CalibrationStatus(b[2]), Device: device}, nil
	case CalibrationStatusUnknown:
		return CalibrationState{Status: CalibrationStatusUnknown, Device: NoDevice()}, nil
	}
	return CalibrationState{}, fmt.Errorf("invalid calibration state % 02x", b[:])
}

func (s CalibrationState) String() string {
	if s.Status == CalibrationStatusUnknown {
		return s.Status.String()
	}
	return fmt.Sprintf("%s (%s)", s.Status, s.Device)
}

// CalibrationResult is what the device reports once a run has finished:
// either the run completed and data can be read back, or it did not.
type CalibrationResult struct {
	Completed bool
	Device    CalibrationDeviceType
}

func ParseCalibrationResult(b [3]byte) (CalibrationResult, error) {
	switch b[2] {
	case 0x01, 0xff:
		device, err := ParseCalibrationDeviceType([4]byte{b[0], b[1], 0x00, 0x00})
		if err != nil {
			return CalibrationResult{}, err
		}
		return CalibrationResult{Completed: b[2] == 0x01, Device: device}, nil
	}
	return CalibrationResult{}, fmt.Errorf("invalid calibration result % 02x", b[:])
}

func (r CalibrationResult) String() string {
	if r.Completed {
		return fmt.Sprintf("Completed (%s)", r.Device)
	}
	return fmt.Sprintf("Not Completed (%s)", r.Device)
}

// CalibrationDataKind discriminates the decoded shape of a calibration data
// read-back.
type CalibrationDataKind int

const (
	CalibrationDataStickCenter CalibrationDataKind = iota
	CalibrationDataStickMinMax
	CalibrationDataTriggers
	CalibrationDataRaw
)

// CalibrationData is the reassembled calibration payload, shaped per the
// device type reported by the chunks. Shapes that are not reverse-engineered
// (triggers, unknown device types) are preserved as raw bytes.
type CalibrationData struct {
	Kind   CalibrationDataKind
	Device CalibrationDeviceType

	// StickCenter/StickCenterSamples are set for CalibrationDataStickCenter.
	StickCenter        StickCenterCalibration
	StickCenterSamples []StickCenterCalibration

	// StickMinMax is set for CalibrationDataStickMinMax.
	StickMinMax StickMinMaxCalibration

	// Raw is set for CalibrationDataTriggers and CalibrationDataRaw.
	Raw []byte
}

func decodeCalibrationData(device CalibrationDeviceType, data []byte) (CalibrationData, error) {
	switch {
	case device.Class == DeviceClassAnalogStick && device.Stick == AnalogStickCenter:
		if len(data) < stickCenterCalibrationSize {
			return CalibrationData{}, fmt.Errorf("stick center calibration data too short: %d bytes", len(data))
		}
		cd := CalibrationData{Kind: CalibrationDataStickCenter, Device: device}
		copy(cd.StickCenter.buf[:], data[:stickCenterCalibrationSize])
		if len(data) > stickCenterCalibrationSize {
			count := int(data[stickCenterCalibrationSize])
			for i := 0; i < count; i++ {
				start := 9 + i*stickCenterCalibrationSize
				end := start + stickCenterCalibrationSize
				if end > len(data) {
					return CalibrationData{}, fmt.Errorf("stick center sample %d truncated: have %d bytes", i, len(data))
				}
				var sample StickCenterCalibration
				copy(sample.buf[:], data[start:end])
				cd.StickCenterSamples = append(cd.StickCenterSamples, sample)
			}
		}
		return cd, nil
	case device.Class == DeviceClassAnalogStick && device.Stick == AnalogStickMinMax:
		if len(data) < stickMinMaxCalibrationSize {
			return CalibrationData{}, fmt.Errorf("stick min/max calibration data too short: %d bytes", len(data))
		}
		cd := CalibrationData{Kind: CalibrationDataStickMinMax, Device: device}
		copy(cd.StickMinMax.buf[:], data[:stickMinMaxCalibrationSize])
		return cd, nil
	case device.Class == DeviceClassTriggerKey:
		return CalibrationData{Kind: CalibrationDataTriggers, Device: device, Raw: data}, nil
	}
	// Calibration data shapes for the remaining device types are not
	// reverse-engineered; keep the bytes opaque instead of failing.
	return CalibrationData{Kind: CalibrationDataRaw, Device: device, Raw: data}, nil
}
