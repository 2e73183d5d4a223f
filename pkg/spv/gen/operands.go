package gen

import (
	"errors"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/utils"
)

var ErrUnknownOperandKind error = errors.New("parameter references unknown operand kind")

// Translates a grammar parameter list into the ordered logical operand
// sequence attached to an enumerant. Straight one-to-one structural mapping,
// except that every referenced kind name must exist in the grammar
func (g *Generator) buildOperandList(parameters []grammar.Parameter) ([]LogicalOperand, error) {
	if len(parameters) == 0 {
		return nil, nil
	}

	operands := make([]LogicalOperand, len(parameters))

	for i, parameter := range parameters {
		if _, known := g.kinds[parameter.Kind]; !known {
			return nil, utils.MakeError(ErrUnknownOperandKind, "'%v' (known kinds: %v)", parameter.Kind, utils.FormatSlice(utils.SortedKeys(g.kinds), ", "))
		}

		operands[i] = LogicalOperand{
			Kind:       parameter.Kind,
			Quantifier: parameter.Quantifier,
		}
	}

	return operands, nil
}
