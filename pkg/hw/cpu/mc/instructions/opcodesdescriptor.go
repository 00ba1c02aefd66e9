package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// Returns information about the implemented opcodes
type OpCodesDescriptor struct {
	opcodes          map[OpCode]*OpCodeDescriptor
	binaryToOpCode   map[uint64]OpCode
	mnemonicToOpCode map[string]OpCode
}

func (d *OpCodesDescriptor) Descriptor(op OpCode) *OpCodeDescriptor {
	return d.opcodes[op]
}

// Returns the descriptors of all implemented opcodes
func (d *OpCodesDescriptor) AllOpCodes() []*OpCodeDescriptor {
	return utils.Map(utils.Keys(d.opcodes), d.Descriptor)
}

// Number of opcodes implemented
func (d *OpCodesDescriptor) TotalOpCodes() int {
	return len(d.opcodes)
}

// Number of bits used to encode an opcode. Opcodes take the most significant bits of the first instruction byte
func (d *OpCodesDescriptor) OpCodeBits() int {
	return 6
}

var ErrUnsupportedOpcode error = errors.New("unsupported instruction opcode")

// Decodes an opcode from its binary representation
func (d *OpCodesDescriptor) DecodeOpCode(binaryRepresentation uint64) (OpCode, error) {
	if opCode, hasOpCode := d.binaryToOpCode[binaryRepresentation]; hasOpCode {
		return opCode, nil
	}

	return 0, utils.MakeError(ErrUnsupportedOpcode, "%v (hex: %v)", utils.FormatUintBinary(binaryRepresentation, d.OpCodeBits()), utils.FormatUintHex(binaryRepresentation, 2))
}

// Encodes an opcode into its binary representation
func (d *OpCodesDescriptor) EncodeOpCode(op OpCode) uint64 {
	return d.opcodes[op].BinaryRepresentation
}

// Returns the mnemonic string representation of the opcode
func (d *OpCodesDescriptor) Mnemonic(op OpCode) string {
	if descriptor, hasOpCode := d.opcodes[op]; hasOpCode {
		return descriptor.Mnemonic
	}

	return fmt.Sprintf("OpCode(%d)", uint(op))
}

// Returns the opcode corresponding to the given mnemonic
func (d *OpCodesDescriptor) ParseOpCode(mnemonic string) (OpCode, error) {
	if opcode, hasOpCode := d.mnemonicToOpCode[strings.ToLower(mnemonic)]; hasOpCode {
		return opcode, nil
	} else {
		return 0, utils.MakeError(ErrUnsupportedOpcode, "'%v'", mnemonic)
	}
}

// Initializes an opcodes descriptor with all the given opcodes
func NewOpCodesDescriptor(opcodes []*OpCodeDescriptor) OpCodesDescriptor {
	d := OpCodesDescriptor{
		opcodes:          utils.GenMap(opcodes, func(op *OpCodeDescriptor) OpCode { return op.OpCode }),
		binaryToOpCode:   make(map[uint64]OpCode, len(opcodes)),
		mnemonicToOpCode: make(map[string]OpCode, len(opcodes)),
	}

	for _, op := range opcodes {
		if _, duplicated := d.binaryToOpCode[op.BinaryRepresentation]; duplicated {
			panic(fmt.Sprintf("opcode %v shares its binary representation with another opcode", op.Mnemonic))
		}

		d.binaryToOpCode[op.BinaryRepresentation] = op.OpCode
		d.mnemonicToOpCode[strings.ToLower(op.Mnemonic)] = op.OpCode
	}

	if d.TotalOpCodes() != int(TOTAL_OPCODES) {
		panic("missing entry in opcodes table??? Make sure you've added all opcode descriptors in the NewOpCodesDescriptor() call")
	}

	return d
}
