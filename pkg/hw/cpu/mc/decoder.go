package mc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/sim8086/pkg/utils"
)

// Configures a [Decoder]
type DecoderConfig struct {
	// Skip instructions that cannot be decoded instead of stopping at the first one.
	// All decoding errors are returned joined once the whole program has been decoded
	KeepGoing bool

	// Logger for decoding diagnostics. Discarded if nil
	Logger *slog.Logger
}

// Reports an instruction that could not be decoded
type DecodeError struct {
	// Position of the first instruction byte within the program
	Offset int
	// Instruction encoding bytes
	Bytes [instructions.InstructionBytes]byte
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("offset %v (%v %v): %v", utils.FormatUintHex(uint64(e.Offset), 4), utils.FormatUintHex(uint64(e.Bytes[0]), 2), utils.FormatUintHex(uint64(e.Bytes[1]), 2), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decodes programs made of 2 byte register to register instructions
type Decoder struct {
	config DecoderConfig
	logger *slog.Logger
}

func NewDecoder(config DecoderConfig) *Decoder {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Decoder{
		config: config,
		logger: logger,
	}
}

// Decodes a program and writes the header and every decoded instruction to the sink, in program order.
//
// The program is split in consecutive 2 byte instructions, a trailing odd byte is ignored.
// Decoding stops at the first instruction that cannot be decoded and returns a [*DecodeError],
// unless the decoder is configured to keep going.
func (d *Decoder) Decode(ctx context.Context, program []byte, sink Sink) error {
	if err := sink.WriteHeader(); err != nil {
		return err
	}

	pairs, remainder := utils.Chunks(program, instructions.InstructionBytes)
	var errs []error

	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}

		offset := i * instructions.InstructionBytes

		instr, err := instructions.Decode(offset, pair[0], pair[1])
		if err != nil {
			decodeErr := &DecodeError{
				Offset: offset,
				Bytes:  [instructions.InstructionBytes]byte{pair[0], pair[1]},
				Err:    err,
			}

			if !d.config.KeepGoing {
				return decodeErr
			}

			d.logger.Warn("skipping instruction", "offset", offset, "error", err)
			errs = append(errs, decodeErr)
			continue
		}

		d.logger.Debug("decoded instruction", "offset", offset, "instruction", instr.Raw)

		if !instr.Raw.Mode.IsRegister() {
			d.logger.Debug("memory addressing mode, operands resolved as registers", "offset", offset, "mode", instr.Raw.Mode)
		}

		if err := sink.WriteInstruction(instr); err != nil {
			return err
		}
	}

	if len(remainder) > 0 {
		d.logger.Debug("ignoring trailing byte", "offset", len(program)-len(remainder), "byte", utils.FormatUintHex(uint64(remainder[0]), 2))
	}

	d.logger.Info("program decoded", "bytes", len(program), "instructions", len(pairs)-len(errs), "errors", len(errs))

	return errors.Join(errs...)
}

// Reads a whole program from r and decodes it (See [Decoder.Decode])
func (d *Decoder) DecodeReader(ctx context.Context, r io.Reader, sink Sink) error {
	program, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return d.Decode(ctx, program, sink)
}
