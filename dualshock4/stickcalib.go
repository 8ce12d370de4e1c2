package dualshock4

import (
	"encoding/binary"
	"fmt"
)

const (
	// StickCalibrationRange is the full span of a raw 12-bit stick sample.
	StickCalibrationRange = 0xfff

	// StickCalibrationHalfRange centers the stored unsigned word so that a
	// value of 0 maps to a centered stick. Values cover [-2048, 2047].
	StickCalibrationHalfRange = 2048

	stickCenterCalibrationSize = 8
	stickMinMaxCalibrationSize = 16
)

// calibValueAt decodes the little-endian word at slot i as a signed 16-bit
// value and recenters it around zero.
func calibValueAt(buf []byte, i int) int {
	return int(int16(binary.LittleEndian.Uint16(buf[2*i:]))) - StickCalibrationHalfRange
}

// setCalibValueAt stores v at slot i, clamping the raw word to the sample
// range so out-of-span values degrade to the nearest representable one.
func setCalibValueAt(buf []byte, i, v int) {
	raw := v + StickCalibrationHalfRange
	if raw < 0 {
		raw = 0
	}
	if raw > StickCalibrationRange {
		raw = StickCalibrationRange
	}
	binary.LittleEndian.PutUint16(buf[2*i:], uint16(raw))
}

// StickCenterCalibration holds the four center offsets, one signed value per
// axis, stored as recentered little-endian words.
type StickCenterCalibration struct {
	buf [stickCenterCalibrationSize]byte
}

func ParseStickCenterCalibration(data []byte) (*StickCenterCalibration, error) {
	if len(data) != stickCenterCalibrationSize {
		return nil, fmt.Errorf("stick center calibration must be %d bytes, got %d: %w",
			stickCenterCalibrationSize, len(data), ErrOutOfRange)
	}
	c := &StickCenterCalibration{}
	copy(c.buf[:], data)
	return c, nil
}

func (c *StickCenterCalibration) Bytes() []byte { return c.buf[:] }

func (c *StickCenterCalibration) LeftX() int  { return calibValueAt(c.buf[:], 0) }
func (c *StickCenterCalibration) LeftY() int  { return calibValueAt(c.buf[:], 1) }
func (c *StickCenterCalibration) RightX() int { return calibValueAt(c.buf[:], 2) }
func (c *StickCenterCalibration) RightY() int { return calibValueAt(c.buf[:], 3) }

func (c *StickCenterCalibration) SetLeftX(v int)  { setCalibValueAt(c.buf[:], 0, v) }
func (c *StickCenterCalibration) SetLeftY(v int)  { setCalibValueAt(c.buf[:], 1, v) }
func (c *StickCenterCalibration) SetRightX(v int) { setCalibValueAt(c.buf[:], 2, v) }
func (c *StickCenterCalibration) SetRightY(v int) { setCalibValueAt(c.buf[:], 3, v) }

// Normalized offsets map the signed span onto [-1.0, 1.0).
func (c *StickCenterCalibration) NormalizedLeftX() float64 {
	return float64(c.LeftX()) / StickCalibrationHalfRange
}
func (c *StickCenterCalibration) NormalizedLeftY() float64 {
	return float64(c.LeftY()) / StickCalibrationHalfRange
}
func (c *StickCenterCalibration) NormalizedRightX() float64 {
	return float64(c.RightX()) / StickCalibrationHalfRange
}
func (c *StickCenterCalibration) NormalizedRightY() float64 {
	return float64(c.RightY()) / StickCalibrationHalfRange
}

func (c *StickCenterCalibration) String() string {
	return fmt.Sprintf("L(%+d,%+d) R(%+d,%+d)", c.LeftX(), c.LeftY(), c.RightX(), c.RightY())
}

// StickMinMaxCalibration holds the travel extents: min then max for each of
// the four axes, in the same recentered word encoding.
type StickMinMaxCalibration struct {
	buf [stickMinMaxCalibrationSize]byte
}

func ParseStickMinMaxCalibration(data []byte) (*StickMinMaxCalibration, error) {
	if len(data) != stickMinMaxCalibrationSize {
		return nil, fmt.Errorf("stick min/max calibration must be %d bytes, got %d: %w",
			stickMinMaxCalibrationSize, len(data), ErrOutOfRange)
	}
	c := &StickMinMaxCalibration{}
	copy(c.buf[:], data)
	return c, nil
}

func (c *StickMinMaxCalibration) Bytes() []byte { return c.buf[:] }

func (c *StickMinMaxCalibration) LeftMinX() int  { return calibValueAt(c.buf[:], 0) }
func (c *StickMinMaxCalibration) LeftMaxX() int  { return calibValueAt(c.buf[:], 1) }
func (c *StickMinMaxCalibration) LeftMinY() int  { return calibValueAt(c.buf[:], 2) }
func (c *StickMinMaxCalibration) LeftMaxY() int  { return calibValueAt(c.buf[:], 3) }
func (c *StickMinMaxCalibration) RightMinX() int { return calibValueAt(c.buf[:], 4) }
func (c *StickMinMaxCalibration) RightMaxX() int { return calibValueAt(c.buf[:], 5) }
func (c *StickMinMaxCalibration) RightMinY() int { return calibValueAt(c.buf[:], 6) }
func (c *StickMinMaxCalibration) RightMaxY() int { return calibValueAt(c.buf[:], 7) }

func (c *StickMinMaxCalibration) SetLeftMinX(v int)  { setCalibValueAt(c.buf[:], 0, v) }
func (c *StickMinMaxCalibration) SetLeftMaxX(v int)  { setCalibValueAt(c.buf[:], 1, v) }
func (c *StickMinMaxCalibration) SetLeftMinY(v int)  { setCalibValueAt(c.buf[:], 2, v) }
func (c *StickMinMaxCalibration) SetLeftMaxY(v int)  { setCalibValueAt(c.buf[:], 3, v) }
func (c *StickMinMaxCalibration) SetRightMinX(v int) { setCalibValueAt(c.buf[:], 4, v) }
func (c *StickMinMaxCalibration) SetRightMaxX(v int) { setCalibValueAt(c.buf[:], 5, v) }
func (c *StickMinMaxCalibration) SetRightMinY(v int) { setCalibValueAt(c.buf[:], 6, v) }
func (c *StickMinMaxCalibration) SetRightMaxY(v int) { setCalibValueAt(c.buf[:], 7, v) }

func (c *StickMinMaxCalibration) String() string {
	return fmt.Sprintf("L X[%+d,%+d] Y[%+d,%+d] R X[%+d,%+d] Y[%+d,%+d]",
		c.LeftMinX(), c.LeftMaxX(), c.LeftMinY(), c.LeftMaxY(),
		c.RightMinX(), c.RightMaxX(), c.RightMinY(), c.RightMaxY())
}
