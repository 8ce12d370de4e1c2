package dualshock4

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashMirrorCRCZeroed(t *testing.T) {
	var m FlashMirror
	assert.Equal(t, uint16(0xffff), m.CalcCRC())
	assert.False(t, m.CheckCRC())

	binary.LittleEndian.PutUint16(m.buf[:], 0xffff)
	assert.True(t, m.CheckCRC())
}

func TestFlashMirrorCRCKnownValues(t *testing.T) {
	var m FlashMirror
	binary.LittleEndian.PutUint16(m.buf[2:], 0x0001)
	assert.Equal(t, uint16(0xfffe), m.CalcCRC())

	// The sum is signed 16-bit and wraps instead of widening.
	var w FlashMirror
	binary.LittleEndian.PutUint16(w.buf[2:], 0x7fff)
	binary.LittleEndian.PutUint16(w.buf[4:], 0x0001)
	assert.Equal(t, uint16(0x7fff), w.CalcCRC())
}

func TestFlashMirrorUpdateAndCheckCRC(t *testing.T) {
	var m FlashMirror
	for i := 2; i < FlashMirrorSize; i++ {
		m.buf[i] = byte(i * 31)
	}
	assert.False(t, m.CheckCRC())

	m.UpdateCRC()
	assert.True(t, m.CheckCRC())
	assert.Equal(t, m.CalcCRC(), m.CRC())

	m.buf[100] ^= 0x01
	assert.False(t, m.CheckCRC())
}

func TestParseFlashMirrorSize(t *testing.T) {
	_, err := ParseFlashMirror(make([]byte, FlashMirrorSize-1))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseFlashMirror(make([]byte, FlashMirrorSize+1))
	assert.ErrorIs(t, err, ErrOutOfRange)

	data := make([]byte, FlashMirrorSize)
	data[42] = 0xab
	m, err := ParseFlashMirror(data)
	require.NoError(t, err)
	assert.Equal(t, byte(0xab), m.Bytes()[42])
}

func TestFlashMirrorStickCenterCalibration(t *testing.T) {
	var m FlashMirror
	// Left X offset of +5 stored at the stick center block.
	binary.LittleEndian.PutUint16(m.buf[flashStickCenterOffset:], 2048+5)
	binary.LittleEndian.PutUint16(m.buf[flashStickCenterOffset+2:], 2048)
	binary.LittleEndian.PutUint16(m.buf[flashStickCenterOffset+4:], 2048-7)
	binary.LittleEndian.PutUint16(m.buf[flashStickCenterOffset+6:], 2048)

	c := m.StickCenterCalibration()
	assert.Equal(t, 5, c.LeftX())
	assert.Equal(t, 0, c.LeftY())
	assert.Equal(t, -7, c.RightX())
	assert.Equal(t, 0, c.RightY())
}
