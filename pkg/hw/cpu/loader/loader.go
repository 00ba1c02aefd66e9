// Package loader provides high-level APIs for loading 8086 programs.
//
// Programs are flat binaries as produced by nasm (no headers, no relocations),
// so loading is reading the whole file after checking it is not an assembly source.
//
// Typical usage:
//
//	result, err := loader.LoadFile("listing_0038", nil)
//	if err != nil { ... }
//	decoder.Decode(ctx, result.Program, sink)
package loader

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
)

// Size of the 8086 address space
const DefaultMaxSize = 1 << 20

// Options configures the program loading process
type Options struct {
	// MaxSize is the biggest accepted program, in bytes. DefaultMaxSize if zero
	MaxSize int64

	// Logger for loading diagnostics. Discarded if nil
	Logger *slog.Logger
}

// Result contains the result of a load operation
type Result struct {
	// Program contains the raw program bytes
	Program []byte

	// Path is the file path provided
	Path string

	// Warnings contains non-fatal warnings that occurred during loading
	Warnings []string
}

var (
	ErrNotObjectFile   = errors.New("not an object file")
	ErrProgramTooLarge = errors.New("program too large")
)

// Assembly source extensions, these must be assembled with nasm before decoding
var sourceExtensions = map[string]bool{
	".asm":  true,
	".s":    true,
	".nasm": true,
}

// IsObjectFile returns true if the path names a file that can be decoded
func IsObjectFile(path string) bool {
	return path != "" && !sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// LoadFile loads a program from the given path
func LoadFile(path string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	if !IsObjectFile(path) {
		return nil, utils.MakeError(ErrNotObjectFile, "'%v' looks like an assembly source, assemble it with nasm first", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.Size() > maxSize {
		return nil, utils.MakeError(ErrProgramTooLarge, "'%v' is %v bytes long, max size is %v bytes", path, info.Size(), maxSize)
	}

	program, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Program: program,
		Path:    path,
	}

	if len(program)%2 != 0 {
		result.Warnings = append(result.Warnings, "program has an odd number of bytes, the last byte will be ignored")
	}

	logger.Debug("program loaded", "path", path, "bytes", len(program))

	return result, nil
}
