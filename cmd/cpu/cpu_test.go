package cpu

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/registers"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestParseHexBytes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []byte
	}{
		{"separate", []string{"89", "d8"}, []byte{0x89, 0xd8}},
		{"prefixed", []string{"0x89", "0xD8"}, []byte{0x89, 0xd8}},
		{"packed", []string{"89d8"}, []byte{0x89, 0xd8}},
		{"spaced in one arg", []string{"89 d8, 8b d8"}, []byte{0x89, 0xd8, 0x8b, 0xd8}},
		{"single digit", []string{"0x8", "c0"}, []byte{0x08, 0xc0}},
		{"empty", nil, []byte{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := parseHexBytes(test.args)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestParseHexBytes_Invalid(t *testing.T) {
	_, err := parseHexBytes([]string{"zz"})
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestEncode(t *testing.T) {
	result, err := encode("bx,", "ax")
	require.NoError(t, err)
	assert.Equal(t, [instructions.InstructionBytes]byte{0x8b, 0xd8}, result)

	_, err = encode("bx", "al")
	assert.ErrorIs(t, err, instructions.ErrWidthMismatch)

	_, err = encode("eax", "ax")
	assert.ErrorIs(t, err, registers.ErrUnknownRegister)
}

func TestExplain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, explain(&out, []byte{0x89, 0xd8}))

	text := out.String()
	assert.Contains(t, text, "89 d8")
	assert.Contains(t, text, "mov ax, bx")
	assert.Contains(t, text, "destination: ax")
	assert.Contains(t, text, "source:      bx")
}

func TestExplain_Errors(t *testing.T) {
	var out bytes.Buffer

	assert.ErrorIs(t, explain(&out, []byte{0x89}), ErrWrongInstructionLength)
	assert.ErrorIs(t, explain(&out, []byte{0xb1, 0x0c}), instructions.ErrUnsupportedOpcode)
}

func TestEvalLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"89 d8", "mov ax, bx"},
		{"89d88bd8", "mov ax, bx\nmov bx, ax"},
		{"88 c1 90", "mov cl, al\n; ignored trailing byte 0x90"},
		{"mov bx, ax", "8b d8"},
		{"MOV cl,al", "8a c8"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			output, err := evalLine(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, output)
		})
	}
}

func TestEvalLine_Commands(t *testing.T) {
	output, err := evalLine("help")
	require.NoError(t, err)
	assert.Contains(t, output, "mov <dst>, <src>")

	for _, quit := range []string{"quit", "q", "EXIT"} {
		_, err := evalLine(quit)
		assert.ErrorIs(t, err, errQuit)
	}
}

func TestEvalLine_Errors(t *testing.T) {
	_, err := evalLine("mov ax")
	assert.Error(t, err)

	_, err = evalLine("mov ax, bl")
	assert.ErrorIs(t, err, instructions.ErrWidthMismatch)

	_, err = evalLine("nop")
	assert.ErrorIs(t, err, ErrInvalidHex)

	output, err := evalLine("89 d8 b1 0c")
	assert.ErrorIs(t, err, instructions.ErrUnsupportedOpcode)
	assert.Equal(t, "mov ax, bx", output)
}

func TestDecodeProgram_Asm(t *testing.T) {
	var out bytes.Buffer

	err := decodeProgram(context.Background(), []byte{0x89, 0xd9, 0x88, 0xe5}, &out, decodeOptions{
		Format: "asm",
		Header: "bits 16",
	})
	require.NoError(t, err)
	assert.Equal(t, "bits 16\n\nmov cx, bx\nmov ch, ah\n", out.String())
}

func TestDecodeProgram_Yaml(t *testing.T) {
	var out bytes.Buffer

	err := decodeProgram(context.Background(), []byte{0x89, 0xd8}, &out, decodeOptions{
		Format: "yaml",
		Header: "bits 16",
	})
	require.NoError(t, err)

	decoder := yaml.NewDecoder(&out)
	var header map[string]any
	require.NoError(t, decoder.Decode(&header))
	assert.Equal(t, "bits 16", header["header"])

	var instruction map[string]any
	require.NoError(t, decoder.Decode(&instruction))
	assert.Equal(t, "mov ax, bx", instruction["asm"])
}

func TestDecodeProgram_KeepGoing(t *testing.T) {
	var out bytes.Buffer

	err := decodeProgram(context.Background(), []byte{0xb1, 0x0c, 0x89, 0xd8}, &out, decodeOptions{
		Format:    "asm",
		Header:    "bits 16",
		KeepGoing: true,
	})
	assert.ErrorIs(t, err, instructions.ErrUnsupportedOpcode)
	assert.Equal(t, "bits 16\n\nmov ax, bx\n", out.String())
}

func TestDecodeProgram_UnknownFormat(t *testing.T) {
	var out bytes.Buffer

	err := decodeProgram(context.Background(), []byte{0x89, 0xd8}, &out, decodeOptions{Format: "json"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, out.String())
}

func TestUseColor(t *testing.T) {
	defer func(noColor bool) { color.NoColor = noColor }(color.NoColor)

	var buffer bytes.Buffer

	highlight, err := useColor("auto", &buffer)
	require.NoError(t, err)
	assert.False(t, highlight)

	file, err := os.Create(filepath.Join(t.TempDir(), "out.asm"))
	require.NoError(t, err)
	defer file.Close()

	highlight, err = useColor("auto", file)
	require.NoError(t, err)
	assert.False(t, highlight)

	highlight, err = useColor("always", &buffer)
	require.NoError(t, err)
	assert.True(t, highlight)

	highlight, err = useColor("never", &buffer)
	require.NoError(t, err)
	assert.False(t, highlight)

	_, err = useColor("sometimes", &buffer)
	assert.ErrorIs(t, err, ErrUnknownColorMode)
}
