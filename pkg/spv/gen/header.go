package gen

import (
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/utils"
)

// Header assembles the full output unit for the core grammar: format
// constants, one declaration per BitEnum/ValueEnum operand kind in grammar
// order (other categories are skipped without a gap), then the opcode
// enumeration. Any fatal error aborts the pass with no partial output
func (g *Generator) Header() (*Header, error) {
	header := &Header{
		MagicNumber:  uint32(g.grammar.MagicNumber),
		MajorVersion: g.grammar.MajorVersion,
		MinorVersion: g.grammar.MinorVersion,
		Revision:     g.grammar.Revision,
	}

	for i := range g.grammar.OperandKinds {
		kind := &g.grammar.OperandKinds[i]

		var decl Declaration
		var err error

		switch kind.Category {
		case grammar.Category_BitEnum:
			decl, err = g.BitEnum(kind)
		case grammar.Category_ValueEnum:
			decl, err = g.ValueEnum(kind)
		default:
			continue
		}

		if err != nil {
			return nil, err
		}

		header.Kinds = append(header.Kinds, decl)
	}

	opcodes, err := g.Opcodes()
	if err != nil {
		return nil, err
	}

	header.Opcodes = opcodes
	return header, nil
}

// MagicNumberLiteral renders the module magic number as an 8 digit uppercase
// hexadecimal literal
func (h *Header) MagicNumberLiteral() string {
	return utils.FormatUintHex(uint64(h.MagicNumber), 8)
}
