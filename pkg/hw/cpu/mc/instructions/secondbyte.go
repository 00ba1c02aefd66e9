package instructions

import (
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Fields encoded in the second instruction byte
type SecondByte struct {
	Mode Mode
	Reg  uint8
	Rm   uint8
}

// Decodes the mode, register and register/memory fields of the second instruction byte
func DecodeSecondByte(b byte) SecondByte {
	bits := utils.ByteBits(b)

	return SecondByte{
		Mode: Mode(FieldOf(Field_Mode).Extract(bits)),
		Reg:  FieldOf(Field_Reg).Extract(bits),
		Rm:   FieldOf(Field_Rm).Extract(bits),
	}
}

// Returns the binary representation of the second instruction byte
func (s SecondByte) Encode() byte {
	var result uint8 = 0
	view := utils.CreateBitView(&result)

	write(view, Field_Mode, uint8(s.Mode))
	write(view, Field_Reg, s.Reg)
	write(view, Field_Rm, s.Rm)

	return result
}
