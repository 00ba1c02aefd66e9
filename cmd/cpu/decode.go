package cpu

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/loader"
	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	decodeOutputPath string
	decodeMaxSize    int64
)

var DecodeCmd = &cobra.Command{
	Use:   "decode <object-file>",
	Short: "Decode 8086 machine code into nasm assembly",
	Long: `Decodes a binary file of 8086 register to register mov instructions
and writes the equivalent assembly listing.

The listing starts with a "bits 16" header followed by one line per
instruction, so it can be assembled back with nasm. A trailing odd byte
is ignored.

Output formats:
  asm   - nasm assembly listing (default)
  yaml  - one document per instruction with all the decoded fields

By default decoding stops at the first unsupported instruction. With
--keep-going the offending byte pairs are skipped and reported at the end.

Examples:
  # Decode to stdout
  sim8086 decode listing_0037_single_register_mov

  # Decode to a file, skipping unsupported instructions
  sim8086 decode -k -o out.asm listing_0038_many_register_mov

  # Dump every decoded field
  sim8086 decode -f yaml listing_0038_many_register_mov`,
	Args: cobra.ExactArgs(1),
	Run:  runDecode,
}

func init() {
	DecodeCmd.Flags().StringVarP(&decodeOutputPath, "output", "o", "", "Output file path (default: stdout)")
	DecodeCmd.Flags().StringP("format", "f", "asm", "Output format: asm, yaml")
	DecodeCmd.Flags().BoolP("keep-going", "k", false, "Skip unsupported instructions instead of stopping")
	DecodeCmd.Flags().String("header", mc.DefaultHeader, "First line of the assembly listing")
	DecodeCmd.Flags().Int64Var(&decodeMaxSize, "max-size", loader.DefaultMaxSize, "Maximum size in bytes of the object file")

	cobra.CheckErr(viper.BindPFlag("listing.format", DecodeCmd.Flags().Lookup("format")))
	cobra.CheckErr(viper.BindPFlag("listing.header", DecodeCmd.Flags().Lookup("header")))
	cobra.CheckErr(viper.BindPFlag("decode.keep_going", DecodeCmd.Flags().Lookup("keep-going")))
}

type decodeOptions struct {
	Format    string
	Header    string
	Highlight bool
	KeepGoing bool
	Logger    *slog.Logger
}

// Decodes the program and writes the listing to out in the requested format
func decodeProgram(ctx context.Context, program []byte, out io.Writer, opts decodeOptions) error {
	sink, closeSink, err := newSink(out, opts.Format, mc.ListingConfig{
		Header:    opts.Header,
		Highlight: opts.Highlight,
	})
	if err != nil {
		return err
	}

	decoder := mc.NewDecoder(mc.DecoderConfig{
		KeepGoing: opts.KeepGoing,
		Logger:    opts.Logger,
	})

	decodeErr := decoder.Decode(ctx, program, sink)

	if err := closeSink(); err != nil && decodeErr == nil {
		return err
	}

	return decodeErr
}

func runDecode(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	result, err := loader.LoadFile(inputPath, &loader.Options{
		MaxSize: decodeMaxSize,
		Logger:  slog.Default(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, warning := range result.Warnings {
		slog.Warn(warning, "path", result.Path)
	}

	var out io.Writer = os.Stdout

	if decodeOutputPath != "" {
		file, err := os.Create(decodeOutputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	highlight, err := useColor(viper.GetString("color"), out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = decodeProgram(ctx, result.Program, out, decodeOptions{
		Format:    viper.GetString("listing.format"),
		Header:    viper.GetString("listing.header"),
		Highlight: highlight,
		KeepGoing: viper.GetBool("decode.keep_going"),
		Logger:    slog.Default(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", colorError.Sprint("Error decoding program:"), err)
		stop()
		os.Exit(2)
	}

	if decodeOutputPath != "" {
		slog.Info("listing written", "input", result.Path, "output", decodeOutputPath, "bytes", len(result.Program))
	}
}
