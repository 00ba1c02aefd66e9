package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, contents []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "listing_0037_single_register_mov", []byte{0x89, 0xd9})

	result, err := LoadFile(path, nil)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x89, 0xd9}, result.Program)
	assert.Equal(t, path, result.Path)
	assert.Empty(t, result.Warnings)
}

func TestLoadFile_OddLength(t *testing.T) {
	path := writeFile(t, "odd.bin", []byte{0x89, 0xd9, 0x89})

	result, err := LoadFile(path, nil)
	require.NoError(t, err)

	assert.Len(t, result.Warnings, 1)
}

func TestLoadFile_AssemblySource(t *testing.T) {
	path := writeFile(t, "listing.asm", []byte("bits 16\n"))

	_, err := LoadFile(path, nil)
	assert.ErrorIs(t, err, ErrNotObjectFile)
}

func TestLoadFile_TooLarge(t *testing.T) {
	path := writeFile(t, "big.bin", make([]byte, 16))

	_, err := LoadFile(path, &Options{MaxSize: 8})
	assert.ErrorIs(t, err, ErrProgramTooLarge)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsObjectFile(t *testing.T) {
	assert.True(t, IsObjectFile("listing_0038"))
	assert.True(t, IsObjectFile("program.bin"))
	assert.False(t, IsObjectFile("listing_0038.ASM"))
	assert.False(t, IsObjectFile(""))
}
