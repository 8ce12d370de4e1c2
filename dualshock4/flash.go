package dualshock4

import (
	"encoding/binary"
	"fmt"
)

const (
	// FlashMirrorSize is the full size of the RAM mirror of calibration
	// flash, read out word by word over the factory interface.
	FlashMirrorSize = 0x800

	flashStickCenterOffset = 0x11a
)

// FlashMirror is a full copy of the device's calibration flash mirror. Word 0
// holds the checksum over the remaining 1023 words.
type FlashMirror struct {
	buf [FlashMirrorSize]byte
}

func ParseFlashMirror(data []byte) (*FlashMirror, error) {
	if len(data) != FlashMirrorSize {
		return nil, fmt.Errorf("flash mirror must be %d bytes, got %d: %w",
			FlashMirrorSize, len(data), ErrOutOfRange)
	}
	m := &FlashMirror{}
	copy(m.buf[:], data)
	return m, nil
}

func (m *FlashMirror) Bytes() []byte {
	return m.buf[:]
}

// CalcCRC computes the checksum the firmware expects at word 0: the signed
// 16-bit wrapping sum of words 1 through 1023, bitwise complemented. The
// two's-complement wraparound is part of the scheme and must not be widened.
func (m *FlashMirror) CalcCRC() uint16 {
	var sum int16
	for i := 1; i < FlashMirrorSize/2; i++ {
		sum += int16(binary.LittleEndian.Uint16(m.buf[2*i:]))
	}
	return uint16(^sum)
}

// CRC returns the checksum stored at word 0.
func (m *FlashMirror) CRC() uint16 {
	return binary.LittleEndian.Uint16(m.buf[:])
}

// CheckCRC reports whether the stored checksum matches the mirror contents.
func (m *FlashMirror) CheckCRC() bool {
	return m.CRC() == m.CalcCRC()
}

// UpdateCRC recomputes the checksum and stores it at word 0.
func (m *FlashMirror) UpdateCRC() {
	binary.LittleEndian.PutUint16(m.buf[:], m.CalcCRC())
}

// StickCenterCalibration extracts the stick center block stored in the
// mirror.
func (m *FlashMirror) StickCenterCalibration() *StickCenterCalibration {
	c := &StickCenterCalibration{}
	copy(c.buf[:], m.buf[flashStickCenterOffset:flashStickCenterOffset+stickCenterCalibrationSize])
	return c
}
