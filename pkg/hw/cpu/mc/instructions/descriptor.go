package instructions

var Opcodes OpCodesDescriptor = NewOpCodesDescriptor([]*OpCodeDescriptor{
	Mov(),
})

func Mov() *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:               OpCode_MOV,
		BinaryRepresentation: 0b100010,
		Mnemonic:             "mov",
		Description:          "Copies the value of a register into another register of the same width",
	}
}
