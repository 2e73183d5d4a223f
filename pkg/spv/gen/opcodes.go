package gen

import (
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
)

// Opcodes generates the value enumeration for the core instruction table,
// named "Op". Opcode symbols lose their "Op" marker prefix, and opcodes
// sharing a numeric value alias to the first-seen symbol exactly like value
// enum discriminants. Opcode tables convert numbers only, so no string
// conversion cases are attached
func (g *Generator) Opcodes() (*ValueEnumDecl, error) {
	return opcodeTable("Op", opcodeDoc(), g.grammar.Instructions, OpcodeIdent)
}

// MakeExtInstSet generates the self-contained opcode enumeration unit for one
// extended instruction set. Extended opcode symbols carry no marker prefix
// and each set owns an independent discriminator space; the doc string is the
// caller's. The enumeration type is named after the set
func MakeExtInstSet(name string, doc string, g *grammar.ExtInstGrammar) (*ExtInstSet, error) {
	typeName, err := TypeIdent(name)
	if err != nil {
		return nil, err
	}

	opcodes, err := opcodeTable(typeName, doc, g.Instructions, TypeIdent)
	if err != nil {
		return nil, err
	}

	return &ExtInstSet{
		Name:    typeName,
		Doc:     doc,
		Opcodes: opcodes,
	}, nil
}

// Shared opcode table scan: first symbol per opcode value becomes the
// discriminant, later ones become alias constants
func opcodeTable(name string, doc string, instructions []grammar.Instruction, canonicalize func(string) (string, error)) (*ValueEnumDecl, error) {
	decl := &ValueEnumDecl{
		Name: name,
		Doc:  doc,
	}

	seen := discriminatorTable{}

	for i := range instructions {
		inst := &instructions[i]

		symbol, err := canonicalize(inst.OpName)
		if err != nil {
			return nil, err
		}

		if canonical, aliased := seen[inst.Opcode]; aliased {
			decl.Aliases = append(decl.Aliases, AliasConst{Name: symbol, Target: canonical})
			continue
		}

		seen[inst.Opcode] = symbol
		decl.Enumerants = append(decl.Enumerants, Discriminant{
			Name:  symbol,
			Value: inst.Opcode,
		})
	}

	return decl, nil
}
