package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteBits(t *testing.T) {
	tests := []struct {
		value    byte
		expected string
	}{
		{0x00, "00000000"},
		{0xff, "11111111"},
		{0x89, "10001001"},
		{0xd8, "11011000"},
		{0x01, "00000001"},
		{0x80, "10000000"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			bits := ByteBits(test.value)
			assert.Equal(t, test.expected, FormatBits(bits[:]))
		})
	}
}

func TestByteBits_AllValues(t *testing.T) {
	for value := 0; value < 256; value++ {
		bits := ByteBits(byte(value))
		assert.Equal(t, uint8(value), BitField(bits, 0, BitsPerByte))
	}
}

func TestBitField(t *testing.T) {
	bits := ByteBits(0xd8)

	assert.Equal(t, uint8(0b11), BitField(bits, 0, 2))
	assert.Equal(t, uint8(0b011), BitField(bits, 2, 5))
	assert.Equal(t, uint8(0b000), BitField(bits, 5, 8))
	assert.Equal(t, uint8(0), BitField(bits, 3, 3))
}

func TestBitView(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		value := uint16(0x89d8)
		view := CreateBitView(&value)

		assert.Equal(t, uint16(0b100010), view.Read(10, 6))
		assert.Equal(t, uint16(0), view.Read(9, 1))
		assert.Equal(t, uint16(1), view.Read(8, 1))
		assert.Equal(t, uint16(0b011), view.Read(3, 3))
		assert.Equal(t, 16, view.SizeofBits())
	})

	t.Run("write overwrites range", func(t *testing.T) {
		value := uint8(0xff)
		view := CreateBitView(&value)

		view.Write(0b010, 3, 3)
		assert.Equal(t, uint8(0b11010111), view.Value())

		view.ClearBit(0)
		assert.Equal(t, uint8(0b11010110), view.Value())

		view.SetBits(3, 3)
		assert.Equal(t, uint8(0xfe), view.Value())
	})

	t.Run("write truncates value", func(t *testing.T) {
		value := uint8(0)
		view := CreateBitView(&value)

		view.Write(0xff, 0, 2)
		assert.Equal(t, uint8(0b11), view.Value())
	})
}

func TestChunks(t *testing.T) {
	chunks, remainder := Chunks([]byte{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]byte{{1, 2}, {3, 4}}, chunks)
	assert.Equal(t, []byte{5}, remainder)

	chunks, remainder = Chunks([]byte{}, 2)
	assert.Empty(t, chunks)
	assert.Empty(t, remainder)
}

func TestFormatUint(t *testing.T) {
	assert.Equal(t, "00100010", FormatUintBinary(0b100010, 8))
	assert.Equal(t, "0x09", FormatUintHex(9, 2))
}
