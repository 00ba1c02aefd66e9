package mc

import (
	"errors"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
)

// Receives the decoded listing, in decoding order
type Sink interface {
	// Writes the listing header. Called once, before any instruction
	WriteHeader() error
	// Writes one decoded instruction
	WriteInstruction(instr *instructions.Instruction) error
}

var ErrSinkWrite = errors.New("error writing listing")
