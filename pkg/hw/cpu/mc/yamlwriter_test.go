package mc

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYamlWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewYamlWriter(&buf, ListingConfig{})

	err := NewDecoder(DecoderConfig{}).Decode(context.Background(), []byte{0x89, 0xd8, 0x8a, 0xc8}, writer)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	decoder := yaml.NewDecoder(&buf)

	var header YamlHeader
	require.NoError(t, decoder.Decode(&header))
	assert.Equal(t, DefaultHeader, header.Header)

	var first YamlInstruction
	require.NoError(t, decoder.Decode(&first))
	assert.Equal(t, YamlInstruction{
		Offset:      0,
		Bytes:       "0x89 0xd8",
		Asm:         "mov ax, bx",
		OpCode:      "mov",
		Direction:   "reg is source",
		Width:       "word",
		Mode:        "register",
		Reg:         "011",
		Rm:          "000",
		Destination: "ax",
		Source:      "bx",
	}, first)

	var second YamlInstruction
	require.NoError(t, decoder.Decode(&second))
	assert.Equal(t, 2, second.Offset)
	assert.Equal(t, "mov cl, al", second.Asm)
	assert.Equal(t, "reg is destination", second.Direction)
	assert.Equal(t, "byte", second.Width)
}
