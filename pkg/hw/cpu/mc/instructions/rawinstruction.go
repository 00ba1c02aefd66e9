package instructions

import (
	"errors"
	"fmt"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Stores a partially decoded instruction
//
// Raw instructions are generated as a middle step in the instruction decoding process, when
// all the instruction fields have been split from the encoding bytes but the operands have not
// been resolved into registers yet
type RawInstruction struct {
	// Position of the first instruction byte within the decoded stream
	Offset int

	FirstByte
	SecondByte
}

// Splits the two encoding bytes of an instruction into its fields
func DecodeRaw(offset int, first byte, second byte) (RawInstruction, error) {
	firstByte, err := DecodeFirstByte(first)
	if err != nil {
		return RawInstruction{}, err
	}

	raw := RawInstruction{
		Offset:     offset,
		FirstByte:  firstByte,
		SecondByte: DecodeSecondByte(second),
	}

	if err := raw.validate(); err != nil {
		panic(fmt.Errorf("decoded fields of %v out of range: %w", raw, err))
	}

	return raw, nil
}

func (instr RawInstruction) validate() error {
	return errors.Join(
		instr.Direction.validate(),
		instr.Mode.validate(),
	)
}

// Returns the binary representation of the instruction
func (instr RawInstruction) Bytes() [InstructionBytes]byte {
	return [InstructionBytes]byte{instr.FirstByte.Encode(), instr.SecondByte.Encode()}
}

// Returns the operand selected by the REG field
func (instr RawInstruction) RegOperand() registers.Register {
	return registers.Resolve(instr.Reg, instr.Width)
}

// Returns the operand selected by the R/M field
func (instr RawInstruction) RmOperand() registers.Register {
	return registers.Resolve(instr.Rm, instr.Width)
}

func (instr RawInstruction) String() string {
	bytes := instr.Bytes()

	return fmt.Sprintf("%v %v %v %v %v REG=%v R/M=%v",
		utils.FormatUintHex(uint64(bytes[0]), 2),
		utils.FormatUintHex(uint64(bytes[1]), 2),
		instr.OpCode,
		instr.Direction,
		instr.Width,
		utils.FormatUintBinary(uint64(instr.Reg), registers.RegisterCodeBits),
		utils.FormatUintBinary(uint64(instr.Rm), registers.RegisterCodeBits),
	)
}

// Generates an ASCII frame representation of the instruction, showing all its fields
func (instr RawInstruction) PrettyPrint(leftpad int) (string, error) {
	values := [TOTAL_FIELDS]string{
		Field_OpCode:    fmt.Sprintf("%v (%v)", utils.FormatUintBinary(Opcodes.EncodeOpCode(instr.OpCode), Opcodes.OpCodeBits()), instr.OpCode),
		Field_Direction: fmt.Sprint(bit(instr.Direction.Bit())),
		Field_Width:     fmt.Sprint(bit(instr.Width.Bit())),
		Field_Mode:      utils.FormatUintBinary(uint64(instr.Mode), FieldOf(Field_Mode).EncodingBits()),
		Field_Reg:       fmt.Sprintf("%v (%v)", utils.FormatUintBinary(uint64(instr.Reg), registers.RegisterCodeBits), instr.RegOperand()),
		Field_Rm:        fmt.Sprintf("%v (%v)", utils.FormatUintBinary(uint64(instr.Rm), registers.RegisterCodeBits), instr.RmOperand()),
	}

	return layout(leftpad, func(d *FieldDescriptor) string {
		return fmt.Sprintf("%v %v", d.Name, values[d.Field])
	})
}

// Draws the instruction fields as an ASCII frame, least significant field first
func layout(leftpad int, name func(*FieldDescriptor) string) (string, error) {
	all := AllFields()
	frame := make([]utils.AsciiFrameField, len(all))

	for i, d := range all {
		frame[len(all)-1-i] = utils.AsciiFrameField{
			Name:  name(d),
			Begin: d.EncodingPosition(),
			Width: d.EncodingBits(),
		}
	}

	return utils.AsciiFrame(frame, utils.Bits(InstructionBytes), "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}
