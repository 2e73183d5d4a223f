// Package gen turns a parsed SPIR-V grammar into an abstract set of type and
// function declarations: one value enumeration per ValueEnum operand kind, one
// bit-flag enumeration per BitEnum operand kind, the opcode enumeration of the
// core instruction table and standalone opcode enumerations for extended
// instruction sets. Rendering the declarations to source text is the job of
// pkg/spv/render.
package gen

import (
	"errors"
	"strings"
	"unicode"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/utils"
)

// A raw grammar symbol containing characters that cannot become part of an
// identifier invalidates the whole generation run
var ErrMalformedSymbol error = errors.New("malformed grammar symbol")

// Marker prefix carried by every opcode symbol of the core instruction table
const opMarkerPrefix = "Op"

// The one operand kind whose enumerant symbols may begin with a digit ("1D",
// "2D", …). Those symbols are prefixed with the kind's own name before
// canonicalization
const digitPrefixedKind = "Dim"

// TypeIdent canonicalizes a raw grammar symbol for a type-level declaration
// position. Symbols stay as given; anything outside letters, digits and
// underscores, or a leading digit, is a defect in the grammar
func TypeIdent(symbol string) (string, error) {
	if symbol == "" {
		return "", utils.MakeError(ErrMalformedSymbol, "empty symbol")
	}

	for i, r := range symbol {
		if !identRune(r) {
			return "", utils.MakeError(ErrMalformedSymbol, "'%v' contains '%c'", symbol, r)
		}

		if i == 0 && unicode.IsDigit(r) {
			return "", utils.MakeError(ErrMalformedSymbol, "'%v' starts with a digit", symbol)
		}
	}

	return symbol, nil
}

// FlagIdent canonicalizes a raw grammar symbol for a flag-constant declaration
// position, rendered in upper-case-with-separators form. "NotNaN" would
// naively split into "NOT_NA_N", colliding with the floating point constant
// naming convention, so the "NA_N" fragment collapses back into one word
func FlagIdent(symbol string) (string, error) {
	if symbol == "" {
		return "", utils.MakeError(ErrMalformedSymbol, "empty symbol")
	}

	for _, r := range symbol {
		if !identRune(r) {
			return "", utils.MakeError(ErrMalformedSymbol, "'%v' contains '%c'", symbol, r)
		}
	}

	return strings.ReplaceAll(shoutySnake(symbol), "NA_N", "NAN"), nil
}

// OpcodeIdent canonicalizes a core instruction table opcode symbol, stripping
// the "Op" marker prefix first. Extended instruction set opcode symbols are
// unprefixed and go through TypeIdent() directly
func OpcodeIdent(opname string) (string, error) {
	if !strings.HasPrefix(opname, opMarkerPrefix) {
		return "", utils.MakeError(ErrMalformedSymbol, "opcode symbol '%v' lacks the '%v' marker", opname, opMarkerPrefix)
	}

	return TypeIdent(opname[len(opMarkerPrefix):])
}

func identRune(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}

// Splits camel-case words with underscores and upper-cases everything:
// "MakeTexelAvailable" -> "MAKE_TEXEL_AVAILABLE". A new word starts at a
// lower-to-upper boundary and at the last capital of an acronym run
func shoutySnake(symbol string) string {
	var builder strings.Builder
	runes := []rune(symbol)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
				builder.WriteByte('_')
			}
		}

		builder.WriteRune(unicode.ToUpper(r))
	}

	return builder.String()
}

// Lower-case variant of shoutySnake(), used for registry reference links
func snakeCase(symbol string) string {
	return strings.ToLower(shoutySnake(symbol))
}
