package cpu

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/sim8086/pkg/hw/cpu/mc"
	"github.com/Manu343726/sim8086/pkg/utils"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	colorError   = color.New(color.FgRed, color.Bold)
	colorHex     = color.New(color.FgMagenta)
	colorHiBlack = color.New(color.FgHiBlack)
)

var ErrUnknownFormat = errors.New("unknown output format")
var ErrUnknownColorMode = errors.New("unknown color mode")

// Returns whether assembly written to out should be highlighted, given the color mode (auto, always, never)
func useColor(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		file, isFile := out.(*os.File)
		return isFile && term.IsTerminal(int(file.Fd())), nil
	case "always":
		color.NoColor = false
		return true, nil
	case "never":
		color.NoColor = true
		return false, nil
	}

	return false, utils.MakeError(ErrUnknownColorMode, "'%v' (supported: auto, always, never)", mode)
}

// Creates the listing sink for the given output format. The returned function terminates the listing
func newSink(w io.Writer, format string, config mc.ListingConfig) (mc.Sink, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "asm", "assembly":
		return mc.NewListingWriter(w, config), func() error { return nil }, nil
	case "yaml", "yml":
		writer := mc.NewYamlWriter(w, config)
		return writer, writer.Close, nil
	}

	return nil, nil, utils.MakeError(ErrUnknownFormat, "'%v' (supported: asm, yaml)", format)
}
