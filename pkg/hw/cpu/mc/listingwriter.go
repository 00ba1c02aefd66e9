package mc

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Header declaring the operand size of the listing, so nasm can assemble it back
const DefaultHeader = "bits 16"

// Configures the text listing output
type ListingConfig struct {
	// First line of the listing. [DefaultHeader] if empty
	Header string
	// Colors the listing with terminal escape codes
	Highlight bool
}

// Writes decoded instructions as lowercase assembly text, one instruction per line
type ListingWriter struct {
	w      io.Writer
	config ListingConfig
}

func NewListingWriter(w io.Writer, config ListingConfig) *ListingWriter {
	if config.Header == "" {
		config.Header = DefaultHeader
	}

	return &ListingWriter{w: w, config: config}
}

// Writes the header line followed by an empty line
func (lw *ListingWriter) WriteHeader() error {
	if err := lw.writeLine(lw.config.Header); err != nil {
		return err
	}

	return lw.writeLine("")
}

func (lw *ListingWriter) WriteInstruction(instr *instructions.Instruction) error {
	return lw.writeLine(strings.ToLower(instr.String()))
}

func (lw *ListingWriter) writeLine(line string) error {
	if lw.config.Highlight {
		line = utils.HighlightAsm(line)
	}

	if _, err := fmt.Fprintln(lw.w, line); err != nil {
		return utils.MakeError(ErrSinkWrite, "%v", err)
	}

	return nil
}
