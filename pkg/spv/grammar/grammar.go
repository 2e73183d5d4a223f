// Package grammar holds the in-memory model of the machine-readable SPIR-V
// grammar files published by the Khronos registry, plus their JSON loaders.
// The model is read-only input to the generation engine in pkg/spv/gen.
package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Category of an operand kind. Only BitEnum and ValueEnum kinds participate in
// code generation; every other category is carried through untouched.
type Category string

const (
	Category_BitEnum   Category = "BitEnum"
	Category_ValueEnum Category = "ValueEnum"
)

// Quantifier states how many times a logical operand may appear
type Quantifier int

const (
	Quantifier_One Quantifier = iota
	Quantifier_ZeroOrOne
	Quantifier_ZeroOrMore
)

func (q Quantifier) String() string {
	switch q {
	case Quantifier_One:
		return "One"
	case Quantifier_ZeroOrOne:
		return "ZeroOrOne"
	case Quantifier_ZeroOrMore:
		return "ZeroOrMore"
	}

	panic("unreachable")
}

var ErrInvalidQuantifier error = errors.New("invalid operand quantifier")

// The grammar encodes quantifiers as "" (exactly one), "?" (zero or one) and
// "*" (zero or more); an absent field means exactly one.
func (q *Quantifier) UnmarshalJSON(data []byte) error {
	var token string
	if err := unmarshalString(data, &token); err != nil {
		return err
	}

	switch token {
	case "":
		*q = Quantifier_One
	case "?":
		*q = Quantifier_ZeroOrOne
	case "*":
		*q = Quantifier_ZeroOrMore
	default:
		return fmt.Errorf("%w: '%v'", ErrInvalidQuantifier, token)
	}

	return nil
}

// Value is a numeric grammar value. The grammar files encode bit-enum values
// and the magic number as "0x…" strings and everything else as plain JSON
// numbers; both decode into the same 32 bit word.
type Value uint32

var ErrInvalidValue error = errors.New("invalid numeric grammar value")

func (v *Value) UnmarshalJSON(data []byte) error {
	text := string(data)

	if strings.HasPrefix(text, "\"") {
		var literal string
		if err := unmarshalString(data, &literal); err != nil {
			return err
		}

		// Quoted values are exclusively "0x…" hex literals; anything else
		// quoted is malformed, not decimal
		if !strings.HasPrefix(literal, "0x") {
			return fmt.Errorf("%w: '%v'", ErrInvalidValue, literal)
		}

		parsed, err := strconv.ParseUint(strings.TrimPrefix(literal, "0x"), 16, 32)
		if err != nil {
			return fmt.Errorf("%w: '%v'", ErrInvalidValue, literal)
		}

		*v = Value(parsed)
		return nil
	}

	parsed, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: '%v'", ErrInvalidValue, text)
	}

	*v = Value(parsed)
	return nil
}

// Parameter references an operand kind by name, with a quantifier
type Parameter struct {
	Kind       string     `json:"kind"`
	Quantifier Quantifier `json:"quantifier"`
	Name       string     `json:"name"`
}

// Enumerant is one named, valued member of an operand kind
type Enumerant struct {
	// Raw grammar symbol, before any identifier canonicalization
	Symbol string `json:"enumerant"`
	// Numeric value. A single-bit mask (or zero) for bit enums, an arbitrary
	// discriminator for value enums
	Value Value `json:"value"`
	// Capabilities gating the enumerant
	Capabilities []string `json:"capabilities"`
	// Extensions gating the enumerant
	Extensions []string `json:"extensions"`
	// Extra operands the enumerant contributes when present
	Parameters []Parameter `json:"parameters"`
}

// OperandKind is one named operand category of the instruction set
type OperandKind struct {
	Category   Category    `json:"category"`
	Kind       string      `json:"kind"`
	Doc        string      `json:"doc"`
	Enumerants []Enumerant `json:"enumerants"`
}

// Instruction is one opcode of an instruction table
type Instruction struct {
	// Opcode symbol. Carries the "Op" marker prefix in the core table,
	// unprefixed in extended instruction set tables
	OpName string `json:"opname"`
	Opcode uint32 `json:"opcode"`
	// Logical operands of the instruction. Parsed for completeness; the
	// definition generator only consumes the name/opcode pair
	Operands     []Parameter `json:"operands"`
	Capabilities []string    `json:"capabilities"`
	Extensions   []string    `json:"extensions"`
}

// Grammar is the parsed core SPIR-V grammar file
type Grammar struct {
	MagicNumber  Value         `json:"magic_number"`
	MajorVersion uint8         `json:"major_version"`
	MinorVersion uint8         `json:"minor_version"`
	Revision     uint8         `json:"revision"`
	Instructions []Instruction `json:"instructions"`
	OperandKinds []OperandKind `json:"operand_kinds"`
}

// ExtInstGrammar is the parsed grammar of one extended instruction set. Each
// set owns an independent opcode space with no format constants of its own
type ExtInstGrammar struct {
	Copyright    []string      `json:"copyright"`
	Version      uint32        `json:"version"`
	Revision     uint32        `json:"revision"`
	Instructions []Instruction `json:"instructions"`
}
