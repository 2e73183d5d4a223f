package gen

import (
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
)

// BitEnum generates the combinable flag enumeration declaration for one
// BitEnum operand kind. Flag values are taken from the grammar verbatim: zero
// and multi-bit masks are legal and no power-of-two validation applies
func (g *Generator) BitEnum(kind *grammar.OperandKind) (*BitEnumDecl, error) {
	name, err := TypeIdent(kind.Kind)
	if err != nil {
		return nil, err
	}

	decl := &BitEnumDecl{
		Name:  name,
		Doc:   kindDoc(kind.Kind),
		Flags: make([]FlagConst, 0, len(kind.Enumerants)),
	}

	for i := range kind.Enumerants {
		e := &kind.Enumerants[i]

		flag, err := FlagIdent(e.Symbol)
		if err != nil {
			return nil, err
		}

		// Only parameter-carrying flags enter the per-flag operand lookup;
		// the others keep a nil operand list and never resolve there
		operands, err := g.buildOperandList(e.Parameters)
		if err != nil {
			return nil, err
		}

		decl.Flags = append(decl.Flags, FlagConst{
			Name:     flag,
			Value:    uint32(e.Value),
			Operands: operands,
		})
	}

	return decl, nil
}
