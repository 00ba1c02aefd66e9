package registers

import (
	"errors"
	"slices"
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// One of the 16 named 8086 general purpose registers
type Register uint

const (
	AL Register = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH

	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI

	// Number of named registers
	TOTAL_REGISTERS
)

// Number of bits used to encode a register operand (REG and R/M fields)
const RegisterCodeBits = 3

// Number of registers addressable with a register code
const RegistersPerWidth = 1 << RegisterCodeBits

// Register lookup table, indexed by width and register code
var registerTable = [TOTAL_WIDTHS][RegistersPerWidth]Register{
	Width_Byte: {AL, CL, DL, BL, AH, CH, DH, BH},
	Width_Word: {AX, CX, DX, BX, SP, BP, SI, DI},
}

var registerNames = [TOTAL_REGISTERS]string{
	AL: "al", CL: "cl", DL: "dl", BL: "bl",
	AH: "ah", CH: "ch", DH: "dh", BH: "bh",
	AX: "ax", CX: "cx", DX: "dx", BX: "bx",
	SP: "sp", BP: "bp", SI: "si", DI: "di",
}

var namesToRegister = utils.GenMap(AllRegisters(), Register.Name)

// Returns the register selected by a 3 bit register code for the given width.
// Only the 3 least significant bits of the code are used.
func Resolve(code uint8, width Width) Register {
	return registerTable[width][code&(RegistersPerWidth-1)]
}

// Returns the register lowercase assembly name
func (r Register) Name() string {
	return registerNames[r]
}

func (r Register) String() string {
	return r.Name()
}

// Returns the width of the register set the register belongs to
func (r Register) Width() Width {
	return Width(r / RegistersPerWidth)
}

// Returns the 3 bit code that selects the register within its register set
func (r Register) Code() uint8 {
	return uint8(r % RegistersPerWidth)
}

var ErrUnknownRegister = errors.New("unknown register")

// Returns the register with the given assembly name (case insensitive)
func Parse(name string) (Register, error) {
	if register, hasRegister := namesToRegister[strings.ToLower(strings.TrimSpace(name))]; hasRegister {
		return register, nil
	}

	return 0, utils.MakeError(ErrUnknownRegister, "'%v'", name)
}

// Returns all the registers of the given width, ordered by register code
func RegistersOfWidth(width Width) []Register {
	return slices.Clone(registerTable[width][:])
}

// Returns all the named registers, byte registers first
func AllRegisters() []Register {
	return utils.Iota(int(TOTAL_REGISTERS), func(i int) Register { return Register(i) })
}
