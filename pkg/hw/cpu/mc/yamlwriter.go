package mc

import (
	"io"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/sim8086/pkg/utils"
	"gopkg.in/yaml.v3"
)

// YAML document written before the decoded instructions
type YamlHeader struct {
	Header string `yaml:"header"`
}

// YAML document describing one decoded instruction and all its fields
type YamlInstruction struct {
	Offset      int    `yaml:"offset"`
	Bytes       string `yaml:"bytes"`
	Asm         string `yaml:"asm"`
	OpCode      string `yaml:"opcode"`
	Direction   string `yaml:"direction"`
	Width       string `yaml:"width"`
	Mode        string `yaml:"mode"`
	Reg         string `yaml:"reg"`
	Rm          string `yaml:"rm"`
	Destination string `yaml:"destination"`
	Source      string `yaml:"source"`
}

// Writes the listing as a stream of YAML documents, one per instruction
type YamlWriter struct {
	encoder *yaml.Encoder
	header  string
}

func NewYamlWriter(w io.Writer, config ListingConfig) *YamlWriter {
	if config.Header == "" {
		config.Header = DefaultHeader
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	return &YamlWriter{encoder: encoder, header: config.Header}
}

func (yw *YamlWriter) WriteHeader() error {
	return yw.encode(YamlHeader{Header: yw.header})
}

func (yw *YamlWriter) WriteInstruction(instr *instructions.Instruction) error {
	raw := instr.Raw
	bytes := raw.Bytes()

	return yw.encode(YamlInstruction{
		Offset:      raw.Offset,
		Bytes:       utils.FormatSlice(utils.Map(bytes[:], func(b byte) string { return utils.FormatUintHex(uint64(b), 2) }), " "),
		Asm:         instr.String(),
		OpCode:      instr.OpCode.String(),
		Direction:   raw.Direction.String(),
		Width:       raw.Width.String(),
		Mode:        raw.Mode.String(),
		Reg:         utils.FormatUintBinary(uint64(raw.Reg), registers.RegisterCodeBits),
		Rm:          utils.FormatUintBinary(uint64(raw.Rm), registers.RegisterCodeBits),
		Destination: instr.Destination.String(),
		Source:      instr.Source.String(),
	})
}

// Terminates the YAML stream
func (yw *YamlWriter) Close() error {
	if err := yw.encoder.Close(); err != nil {
		return utils.MakeError(ErrSinkWrite, "%v", err)
	}

	return nil
}

func (yw *YamlWriter) encode(document any) error {
	if err := yw.encoder.Encode(document); err != nil {
		return utils.MakeError(ErrSinkWrite, "%v", err)
	}

	return nil
}
