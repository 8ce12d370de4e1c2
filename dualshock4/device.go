package dualshock4

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrInvalidReport is returned when a feature report read comes back
	// with a different identifier than requested.
	ErrInvalidReport = errors.New("invalid report")

	// ErrOutOfRange is returned when a buffer has the wrong size for the
	// structure it is parsed into.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNoDevice is returned when no matching controller is attached.
	ErrNoDevice = errors.New("no DualShock 4 device found")
)

// Transport is the feature report surface the protocol runs over. It is
// satisfied by *hid.Device and by test doubles.
type Transport interface {
	SendFeatureReport(b []byte) (int, error)
	GetFeatureReport(b []byte) (int, error)
	Read(b []byte) (int, error)
}

// DualShock4 drives the vendor feature report protocol of one controller.
type DualShock4 struct {
	dev  Transport
	path string
}

func NewDualShock4(dev Transport, path string) *DualShock4 {
	return &DualShock4{dev: dev, path: path}
}

func (d *DualShock4) Path() string {
	return d.path
}

// Close releases the underlying transport if it can be closed.
func (d *DualShock4) Close() error {
	if c, ok := d.dev.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (d *DualShock4) sendReport(report *Report) error {
	if _, err := d.dev.SendFeatureReport(report.Data()); err != nil {
		return fmt.Errorf("send feature report %s: %w", report.ID(), err)
	}
	log.Debugf("Report sent: %s", report)
	return nil
}

func (d *DualShock4) getReport(id ReportID, payloadSize int) (*Report, error) {
	report := NewReport(id, payloadSize)
	if _, err := d.dev.GetFeatureReport(report.Data()); err != nil {
		return nil, fmt.Errorf("get feature report %s: %w", id, err)
	}
	log.Debugf("Report received: %s", report)
	if !report.Valid() {
		return nil, ErrInvalidReport
	}
	return report, nil
}

// ReadLastData drains the interrupt pipe and returns the freshest input
// snapshot, or nil when the device has produced none. Draining stops once the
// sequence counter repeats, or once a zero read follows a kept snapshot; a
// zero read before anything was kept only skips the slot. The pass is capped
// so a chattering device cannot spin it forever.
func (d *DualShock4) ReadLastData() (*InputReport, error) {
	var kept, cur InputReport
	haveKept := false

	if _, err := d.dev.Read(cur.buf[:]); err != nil {
		return nil, fmt.Errorf("read input report: %w", err)
	}
	for i := 0; i < 16; i++ {
		if cur.buf[0] == 0 {
			if haveKept {
				break
			}
		} else {
			if haveKept && cur.Counter() == kept.Counter() {
				break
			}
			kept = cur
			haveKept = true
		}
		if _, err := d.dev.Read(cur.buf[:]); err != nil {
			return nil, fmt.Errorf("read input report: %w", err)
		}
	}

	if !haveKept {
		return nil, nil
	}
	return &kept, nil
}

func (d *DualShock4) ReadCalibrationFlag() (*CalibrationFlag, error) {
	report, err := d.getReport(ReportIDGetCalibFlag, calibrationFlagSize)
	if err != nil {
		return nil, err
	}
	flag := &CalibrationFlag{}
	copy(flag.buf[:], report.Payload())
	return flag, nil
}

func (d *DualShock4) ReadCalibrationState() (CalibrationState, error) {
	report, err := d.getReport(ReportIDGetCalibrationState, calibrationStateSize)
	if err != nil {
		return CalibrationState{}, err
	}
	p := report.Payload()
	return ParseCalibrationState([3]byte{p[0], p[1], p[2]})
}

func (d *DualShock4) ReadCalibrationResult() (CalibrationResult, error) {
	report, err := d.getReport(ReportIDGetCalibrationResult, calibrationResultSize)
	if err != nil {
		return CalibrationResult{}, err
	}
	p := report.Payload()
	return ParseCalibrationResult([3]byte{p[0], p[1], p[2]})
}

func (d *DualShock4) SetCalibrationCommand(command CalibrationType) error {
	payload := command.Encode()
	return d.sendReport(ReportFromPayload(ReportIDSetCalibrationCommand, payload[:]))
}

// ReadCalibrationData reassembles the chunked calibration read-back. Each
// chunk carries the device type, the total chunk count, its own index and up
// to 8 data bytes; the device signals the end with a None chunk. All chunks
// of one read-back must name the same device.
func (d *DualShock4) ReadCalibrationData() (CalibrationData, error) {
	var data []byte
	lastDevice := NoDevice()

	for {
		report, err := d.getReport(ReportIDGetCalibrationData, calibrationDataSize)
		if err != nil {
			return CalibrationData{}, err
		}
		p := report.Payload()
		chunks := p[2]
		current := p[3]
		dataLen := p[4]

		device, err := ParseCalibrationDeviceType([4]byte{p[0], p[1], 0x00, 0x00})
		if err != nil {
			return CalibrationData{}, err
		}
		if device.Class == DeviceClassNone || current >= chunks {
			break
		}
		if lastDevice.Class != DeviceClassNone && lastDevice != device {
			return CalibrationData{}, fmt.Errorf("calibration data device type changed mid-read: %s then %s",
				lastDevice, device)
		}
		if dataLen > 8 {
			return CalibrationData{}, fmt.Errorf("invalid calibration data chunk length %d", dataLen)
		}
		data = append(data, p[5:5+dataLen]...)
		lastDevice = device
	}

	return decodeCalibrationData(lastDevice, data)
}

func (d *DualShock4) ReadMotionCalibrationData() (*MotionCalibration, error) {
	report, err := d.getReport(ReportIDGetMotionCalibData, MotionCalibrationDataSize)
	if err != nil {
		return nil, err
	}
	m := &MotionCalibration{}
	copy(m.buf[:], report.Payload())
	return m, nil
}

func (d *DualShock4) SetMotionCalibrationData(calibration *MotionCalibration) error {
	return d.sendReport(ReportFromPayload(ReportIDSetMotionCalibData, calibration.buf[:]))
}

// GetIeepData reads the two bytes at the flash mirror cursor set by the last
// SetIeepAddress factory command.
func (d *DualShock4) GetIeepData() ([2]byte, error) {
	report, err := d.getReport(ReportIDGetIeepData, 2)
	if err != nil {
		return [2]byte{}, err
	}
	p := report.Payload()
	return [2]byte{p[0], p[1]}, nil
}

// ReadFlashMirror reads the entire flash mirror, one word per seek-and-read
// round trip.
func (d *DualShock4) ReadFlashMirror() (*FlashMirror, error) {
	m := &FlashMirror{}
	for offset := 0; offset < FlashMirrorSize/2; offset++ {
		if err := d.SendFactoryCommand(SetIeepAddressCommand(uint16(offset * 2))); err != nil {
			return nil, err
		}
		word, err := d.GetIeepData()
		if err != nil {
			return nil, err
		}
		m.buf[offset*2] = word[0]
		m.buf[offset*2+1] = word[1]
	}
	return m, nil
}

func (d *DualShock4) SendFactoryCommand(command FactoryCommand) error {
	return d.sendReport(command.Report())
}

func (d *DualShock4) SetTestCommand(command TestCommand) error {
	return d.sendReport(command.Report())
}

// ReadPermanent reports whether writes currently go to permanent flash. The
// device exposes the mode at byte offset 12 of the mirror; zero means
// permanent.
func (d *DualShock4) ReadPermanent() (bool, error) {
	if err := d.SendFactoryCommand(SetIeepAddressCommand(12)); err != nil {
		return false, err
	}
	word, err := d.GetIeepData()
	if err != nil {
		return false, err
	}
	return word[0] == 0, nil
}

// SendCustomReport frames and sends a caller-supplied payload, for probing
// reports this package does not model.
func (d *DualShock4) SendCustomReport(id ReportID, payload []byte) error {
	return d.sendReport(ReportFromPayload(id, payload))
}

// GetCustomReport requests a report of the given payload size and returns the
// validated frame.
func (d *DualShock4) GetCustomReport(id ReportID, payloadSize int) (*Report, error) {
	return d.getReport(id, payloadSize)
}
