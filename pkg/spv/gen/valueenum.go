package gen

import (
	"strings"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
)

// discriminatorTable tracks which symbol owns each numeric value within one
// enumeration. The first enumerant seen for a value becomes canonical; every
// later one with the same value is an alias. Scoped to a single declaration
type discriminatorTable map[uint32]string

// ValueEnum generates the value enumeration declaration for one ValueEnum
// operand kind, scanning enumerants in grammar order
func (g *Generator) ValueEnum(kind *grammar.OperandKind) (*ValueEnumDecl, error) {
	name, err := TypeIdent(kind.Kind)
	if err != nil {
		return nil, err
	}

	decl := &ValueEnumDecl{
		Name: name,
		Doc:  kindDoc(kind.Kind),
	}

	seen := discriminatorTable{}
	capabilityIndex := map[string]int{}
	extensionIndex := map[string]int{}

	for i := range kind.Enumerants {
		e := &kind.Enumerants[i]
		value := uint32(e.Value)

		if canonical, aliased := seen[value]; aliased {
			// Later enumerant on an already-bound value: a named constant
			// plus an extra string conversion key, never a new discriminant.
			// Its parameters do not participate; the first-seen enumerant's
			// operand list stays authoritative for the value
			alias, err := TypeIdent(e.Symbol)
			if err != nil {
				return nil, err
			}

			decl.Aliases = append(decl.Aliases, AliasConst{Name: alias, Target: canonical})
			decl.StringCases = append(decl.StringCases, StringCase{Raw: e.Symbol, Target: canonical})
			continue
		}

		symbol := e.Symbol
		if kind.Kind == digitPrefixedKind {
			// Enumerants of this kind may begin with a digit, which no
			// identifier position tolerates
			symbol = kind.Kind + symbol
		}

		canonical, err := TypeIdent(symbol)
		if err != nil {
			return nil, err
		}

		operands, err := g.buildOperandList(e.Parameters)
		if err != nil {
			return nil, err
		}

		seen[value] = canonical
		decl.Enumerants = append(decl.Enumerants, Discriminant{
			Name:     canonical,
			Value:    value,
			Operands: operands,
		})
		decl.StringCases = append(decl.StringCases, StringCase{Raw: symbol, Target: canonical})

		groupClause(&decl.CapabilityClauses, capabilityIndex, e.Capabilities, canonical,
			func(gating []string) CapabilityClause {
				return CapabilityClause{Capabilities: gating}
			},
			func(clause *CapabilityClause) *[]string { return &clause.Enumerants })
		groupClause(&decl.ExtensionClauses, extensionIndex, e.Extensions, canonical,
			func(gating []string) ExtensionClause {
				return ExtensionClause{Extensions: gating}
			},
			func(clause *ExtensionClause) *[]string { return &clause.Enumerants })
	}

	return decl, nil
}

// Appends a canonical symbol to the clause owning its exact gating sequence,
// creating the clause on first sight. Clauses keep insertion order and compare
// gating by literal sequence, not by set
func groupClause[Clause any](clauses *[]Clause, index map[string]int, gating []string, symbol string, makeClause func([]string) Clause, members func(*Clause) *[]string) {
	key := strings.Join(gating, " ")

	i, ok := index[key]
	if !ok {
		i = len(*clauses)
		index[key] = i
		*clauses = append(*clauses, makeClause(gating))
	}

	list := members(&(*clauses)[i])
	*list = append(*list, symbol)
}
