package registers

// Selects the register set operands are resolved from
type Width uint

const (
	// 8 bit registers (W bit clear)
	Width_Byte Width = iota
	// 16 bit registers (W bit set)
	Width_Word

	// Number of register widths
	TOTAL_WIDTHS
)

func (w Width) String() string {
	switch w {
	case Width_Byte:
		return "byte"
	case Width_Word:
		return "word"
	}

	panic("unreachable")
}

// Returns the size in bits of the registers of this width
func (w Width) Bits() int {
	switch w {
	case Width_Byte:
		return 8
	case Width_Word:
		return 16
	}

	panic("unreachable")
}

// Returns the width selected by the W bit of an instruction
func WidthFromBit(w bool) Width {
	if w {
		return Width_Word
	}

	return Width_Byte
}

// Returns the value of the W bit selecting this width
func (w Width) Bit() bool {
	return w == Width_Word
}
