package dualshock4

import "fmt"

// TriggerMinMaxCalibrationSamples is how many input report samples the trigger
// wizard collects during each recording phase.
const TriggerMinMaxCalibrationSamples = 0x04e2

// TestCommand is an opaque payload for the test command report. The known
// payloads were captured from the vendor tool; unknown ones can be sent raw.
type TestCommand struct {
	payload []byte
}

// SetPermanentCommand switches writes between the flash mirror and permanent
// flash. Enabling permanent writes requires the unlock sequence.
func SetPermanentCommand(permanent bool) TestCommand {
	if permanent {
		return TestCommand{payload: []byte{0x0a, 0x02, 0x3e, 0x71, 0x7f, 0x89}}
	}
	return TestCommand{payload: []byte{0x0a, 0x01, 0x00}}
}

// RecordTriggerMinMaxCommand latches the current trigger reading as the min or
// max travel point for the given side.
func RecordTriggerMinMaxCommand(side TriggerKeySide, min bool) TestCommand {
	var sideArg byte
	switch side {
	case TriggerKeyLeft:
		sideArg = 0x01
	case TriggerKeyRight:
		sideArg = 0x02
	case TriggerKeyBoth:
		sideArg = 0x00
	default:
		panic(fmt.Sprintf("dualshock4: cannot record trigger min/max for side %02x", byte(side)))
	}
	minArg := byte(0x00)
	if min {
		minArg = 0x01
	}
	return TestCommand{payload: []byte{0x08, 0x01, sideArg, minArg}}
}

// ReloadTriggerMinMaxCommand discards unsaved trigger calibration and reloads
// the values stored in flash.
func ReloadTriggerMinMaxCommand() TestCommand {
	return TestCommand{payload: []byte{0x08, 0x02}}
}

// RawTestCommand wraps caller-supplied bytes for protocol exploration.
func RawTestCommand(payload []byte) TestCommand {
	p := make([]byte, len(payload))
	copy(p, payload)
	return TestCommand{payload: p}
}

// Report frames the command for the transport.
func (c TestCommand) Report() *Report {
	return ReportFromPayload(ReportIDSetTestCommand, c.payload)
}

// TriggerMinMaxOp selects the action of a trigger min/max factory command.
type TriggerMinMaxOp int

const (
	TriggerMinMaxStart TriggerMinMaxOp = iota
	TriggerMinMaxSaveMin
	TriggerMinMaxSaveMax
)

func (o TriggerMinMaxOp) String() string {
	switch o {
	case TriggerMinMaxStart:
		return "Start Record Min/Max"
	case TriggerMinMaxSaveMin:
		return "Save Min"
	case TriggerMinMaxSaveMax:
		return "Save Max"
	}
	return fmt.Sprintf("Unknown trigger min/max op %d", int(o))
}

// FactoryCommand is the fixed 3-byte payload of the factory command report.
type FactoryCommand struct {
	payload [3]byte
}

// SetIeepAddressCommand seeks the flash mirror read cursor to the given byte
// offset. The address goes out big-endian, unlike the rest of the protocol.
func SetIeepAddressCommand(addr uint16) FactoryCommand {
	return FactoryCommand{payload: [3]byte{0xff, byte(addr >> 8), byte(addr)}}
}

// TriggerMinMaxCalibrationCommand drives the factory-side trigger calibration
// sequence. The side mask is doubled into both argument bytes.
func TriggerMinMaxCalibrationCommand(op TriggerMinMaxOp, side TriggerKeySide) FactoryCommand {
	var base byte
	switch op {
	case TriggerMinMaxStart:
		base = 0x40
	case TriggerMinMaxSaveMin:
		base = 0x80
	case TriggerMinMaxSaveMax:
		base = 0x00
	default:
		panic(fmt.Sprintf("dualshock4: cannot encode trigger min/max op %d", int(op)))
	}
	var mask byte
	switch side {
	case TriggerKeyLeft:
		mask = 0x02
	case TriggerKeyRight:
		mask = 0x08
	case TriggerKeyBoth:
		mask = 0x02 | 0x08
	}
	arg := base | mask
	return FactoryCommand{payload: [3]byte{0x02, arg, arg}}
}

// Report frames the command for the transport.
func (c FactoryCommand) Report() *Report {
	return ReportFromPayload(ReportIDSetFactoryCommand, c.payload[:])
}
