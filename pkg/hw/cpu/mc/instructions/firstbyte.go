package instructions

import (
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Fields encoded in the first instruction byte
type FirstByte struct {
	OpCode    OpCode
	Direction Direction
	Width     registers.Width
}

// Decodes the opcode, direction and width fields of the first instruction byte.
// Fails with [ErrUnsupportedOpcode] if the 6 most significant bits are not a known opcode.
func DecodeFirstByte(b byte) (FirstByte, error) {
	bits := utils.ByteBits(b)

	opCode, err := Opcodes.DecodeOpCode(uint64(FieldOf(Field_OpCode).Extract(bits)))
	if err != nil {
		return FirstByte{}, err
	}

	return FirstByte{
		OpCode:    opCode,
		Direction: DirectionFromBit(FieldOf(Field_Direction).Extract(bits) != 0),
		Width:     registers.WidthFromBit(FieldOf(Field_Width).Extract(bits) != 0),
	}, nil
}

// Returns the binary representation of the first instruction byte
func (f FirstByte) Encode() byte {
	var result uint8 = 0
	view := utils.CreateBitView(&result)

	write(view, Field_OpCode, uint8(Opcodes.EncodeOpCode(f.OpCode)))
	write(view, Field_Direction, bit(f.Direction.Bit()))
	write(view, Field_Width, bit(f.Width.Bit()))

	return result
}

func write(view utils.BitView[uint8], field Field, value uint8) {
	d := FieldOf(field)
	view.Write(value, utils.BitsPerByte-d.End, d.EncodingBits())
}

func bit(value bool) uint8 {
	if value {
		return 1
	}

	return 0
}
