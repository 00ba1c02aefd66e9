package cpu

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/Manu343726/sim8086/pkg/utils"
)

var ErrInvalidHex = errors.New("invalid hex bytes")

// Parses bytes written in hex, either as separate arguments ("89 d8", "0x89 0xd8") or packed ("89d8")
func parseHexBytes(args []string) ([]byte, error) {
	var packed strings.Builder

	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }) {
			field = strings.ToLower(field)
			field = strings.TrimPrefix(field, "0x")

			if len(field)%2 != 0 {
				field = "0" + field
			}

			packed.WriteString(field)
		}
	}

	bytes, err := hex.DecodeString(packed.String())
	if err != nil {
		return nil, utils.MakeError(ErrInvalidHex, "%v", err)
	}

	return bytes, nil
}
