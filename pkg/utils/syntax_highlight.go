// Package utils provides utility functions for the sim8086 project.
package utils

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// 8086 assembly syntax highlighting colors
var (
	// Instruction mnemonics
	asmMnemonicColor = color.New(color.FgMagenta, color.Bold)
	// Register names
	asmRegisterColor = color.New(color.FgGreen)
	// Assembler directives
	asmDirectiveColor = color.New(color.FgBlue)
	// Numbers
	asmNumberColor = color.New(color.FgYellow)
	// Comments
	asmCommentColor = color.New(color.FgHiBlack)
)

// 8086 register names
var asmRegisters = map[string]bool{
	"al": true, "cl": true, "dl": true, "bl": true,
	"ah": true, "ch": true, "dh": true, "bh": true,
	"ax": true, "cx": true, "dx": true, "bx": true,
	"sp": true, "bp": true, "si": true, "di": true,
}

// Assembler directives understood by nasm
var asmDirectives = map[string]bool{
	"bits": true, "org": true, "db": true, "dw": true,
}

// Patterns for syntax elements
var (
	// Matches nasm-style line comments
	asmCommentPattern = regexp.MustCompile(`;.*$`)
	// Matches numbers (hex, binary, decimal)
	asmNumberPattern = regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F]+|[0-9][0-9a-fA-F]*[hH]|[01]+[bB]|[0-9]+)\b`)
	// Matches identifiers
	asmIdentifierPattern = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)
)

// token represents a syntax-highlighted token
type token struct {
	text  string
	color *color.Color
	start int
	end   int
}

// HighlightAsm applies syntax highlighting to one line of 8086 assembly and returns the colored string
func HighlightAsm(line string) string {
	if line == "" {
		return ""
	}

	var tokens []token

	// Comments first, nothing inside them is highlighted
	for _, match := range asmCommentPattern.FindAllStringIndex(line, -1) {
		tokens = append(tokens, token{
			text:  line[match[0]:match[1]],
			color: asmCommentColor,
			start: match[0],
			end:   match[1],
		})
	}

	for _, match := range asmNumberPattern.FindAllStringIndex(line, -1) {
		if !overlapsAny(match[0], match[1], tokens) {
			tokens = append(tokens, token{
				text:  line[match[0]:match[1]],
				color: asmNumberColor,
				start: match[0],
				end:   match[1],
			})
		}
	}

	// The first identifier of the line is the mnemonic or directive, the rest are operands
	first := true
	for _, match := range asmIdentifierPattern.FindAllStringIndex(line, -1) {
		if overlapsAny(match[0], match[1], tokens) {
			continue
		}

		word := strings.ToLower(line[match[0]:match[1]])
		var c *color.Color

		switch {
		case first && asmDirectives[word]:
			c = asmDirectiveColor
		case first:
			c = asmMnemonicColor
		case asmRegisters[word]:
			c = asmRegisterColor
		}

		first = false

		if c != nil {
			tokens = append(tokens, token{
				text:  line[match[0]:match[1]],
				color: c,
				start: match[0],
				end:   match[1],
			})
		}
	}

	return buildHighlightedString(line, tokens)
}

// overlapsAny checks if a range overlaps with any existing token
func overlapsAny(start, end int, tokens []token) bool {
	for _, t := range tokens {
		if start < t.end && end > t.start {
			return true
		}
	}
	return false
}

// buildHighlightedString constructs the final string with color codes
func buildHighlightedString(code string, tokens []token) string {
	if len(tokens) == 0 {
		return code
	}

	sortTokens(tokens)

	var result strings.Builder
	pos := 0

	for _, t := range tokens {
		if t.start > pos {
			result.WriteString(code[pos:t.start])
		}
		result.WriteString(t.color.Sprint(t.text))
		pos = t.end
	}

	if pos < len(code) {
		result.WriteString(code[pos:])
	}

	return result.String()
}

// sortTokens sorts tokens by start position (simple insertion sort for small arrays)
func sortTokens(tokens []token) {
	for i := 1; i < len(tokens); i++ {
		key := tokens[i]
		j := i - 1
		for j >= 0 && tokens[j].start > key.start {
			tokens[j+1] = tokens[j]
			j--
		}
		tokens[j+1] = key
	}
}
