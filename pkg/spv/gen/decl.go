package gen

import (
	"errors"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
)

// Declaration is one abstract generated declaration, handed to the renderer.
// The contract is purely structural: declaration name, discriminants or flags,
// and an attached human readable doc string
type Declaration interface {
	// Declared type name
	DeclName() string
	// Human readable reference comment naming the operand kind or table
	DocString() string
}

// Discriminant is one canonical numeric-value-to-symbol binding of a value
// enumeration
type Discriminant struct {
	// Canonical identifier
	Name string
	// Numeric value
	Value uint32
	// Logical operands the enumerant contributes. Nil when it has none
	Operands []LogicalOperand
}

// AliasConst is a named constant bound to the value of a canonical
// discriminant, emitted for every later enumerant sharing that value
type AliasConst struct {
	// Canonical identifier of the alias symbol
	Name string
	// Canonical identifier of the discriminant the alias compiles to
	Target string
}

// StringCase maps one accepted spelling to the canonical identifier it
// resolves to. Aliases contribute their raw grammar spelling here
type StringCase struct {
	Raw    string
	Target string
}

// CapabilityClause groups the canonical enumerants gated by one exact
// capability sequence. Sequence identity, not set identity: distinct orderings
// of the same capabilities form distinct clauses, mirroring the grammar
type CapabilityClause struct {
	Capabilities []string
	Enumerants   []string
}

// ExtensionClause groups the canonical enumerants gated by one exact
// extension sequence
type ExtensionClause struct {
	Extensions []string
	Enumerants []string
}

// ValueEnumDecl is one exhaustive, non-combinable enumeration: a ValueEnum
// operand kind or an instruction opcode table
type ValueEnumDecl struct {
	Name string
	Doc  string
	// Canonical discriminants, in grammar order
	Enumerants []Discriminant
	// Alias constants, in grammar order
	Aliases []AliasConst
	// Accepted spellings for string conversion: every canonical name plus
	// every alias's raw name. Nil for opcode tables, which convert numbers
	// only
	StringCases []StringCase
	// Gating metadata grouped by exact capability/extension sequence
	CapabilityClauses []CapabilityClause
	ExtensionClauses  []ExtensionClause
}

func (d *ValueEnumDecl) DeclName() string  { return d.Name }
func (d *ValueEnumDecl) DocString() string { return d.Doc }

// FromNumber resolves a numeric value to its canonical symbol. Values not
// bound to any discriminant report false; alias values resolve to the
// canonical symbol, never to the alias
func (d *ValueEnumDecl) FromNumber(n uint32) (string, bool) {
	for i := range d.Enumerants {
		if d.Enumerants[i].Value == n {
			return d.Enumerants[i].Name, true
		}
	}

	return "", false
}

var ErrUnknownEnumerantName error = errors.New("unknown enumerant name")

// FromName resolves a spelling to its canonical symbol. Exact case-sensitive
// match only; both canonical names and alias raw names are accepted
func (d *ValueEnumDecl) FromName(name string) (string, error) {
	for i := range d.StringCases {
		if d.StringCases[i].Raw == name {
			return d.StringCases[i].Target, nil
		}
	}

	return "", ErrUnknownEnumerantName
}

// FlagConst is one named flag of a combinable enumeration, at its literal
// grammar value. Zero and multi-bit masks are legal
type FlagConst struct {
	Name  string
	Value uint32
	// Logical operands the flag contributes when set. Nil for flags without
	// parameters
	Operands []LogicalOperand
}

// BitEnumDecl is one combinable (mask) enumeration generated from a BitEnum
// operand kind
type BitEnumDecl struct {
	Name  string
	Doc   string
	Flags []FlagConst
}

func (d *BitEnumDecl) DeclName() string  { return d.Name }
func (d *BitEnumDecl) DocString() string { return d.Doc }

// FlagOperands looks up the operand list a single flag contributes to an
// already-constructed flag set. The flag participates when its bits are
// contained in the set (subset test, not equality) and it carries parameters;
// parameterless flags never resolve
func (d *BitEnumDecl) FlagOperands(set uint32, flag string) ([]LogicalOperand, bool) {
	for i := range d.Flags {
		f := &d.Flags[i]

		if f.Name == flag && len(f.Operands) > 0 && set&f.Value == f.Value {
			return f.Operands, true
		}
	}

	return nil, false
}

// Header is the assembled output unit for one core grammar: format constants,
// operand kind declarations in grammar order, and the opcode enumeration
type Header struct {
	MagicNumber  uint32
	MajorVersion uint8
	MinorVersion uint8
	Revision     uint8
	// One declaration per BitEnum/ValueEnum operand kind, grammar order
	Kinds []Declaration
	// Core instruction opcode enumeration, named "Op"
	Opcodes *ValueEnumDecl
}

// ExtInstSet is the self-contained output unit for one extended instruction
// set: an opcode enumeration plus its caller-supplied documentation string
type ExtInstSet struct {
	Name    string
	Doc     string
	Opcodes *ValueEnumDecl
}

// LogicalOperand describes one positional argument an instruction or
// enumerant may carry
type LogicalOperand struct {
	// Operand kind name, validated against the grammar's kind set
	Kind       string
	Quantifier grammar.Quantifier
}
