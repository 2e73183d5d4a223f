package gen

import (
	"fmt"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
)

// Generator produces declarations from one parsed core grammar. It holds no
// mutable state across declarations apart from the grammar itself; a
// generation run is a pure function of its input
type Generator struct {
	grammar *grammar.Grammar
	// Names of every operand kind in the grammar, for parameter resolution
	kinds map[string]struct{}
}

func NewGenerator(g *grammar.Grammar) *Generator {
	kinds := make(map[string]struct{}, len(g.OperandKinds))

	for i := range g.OperandKinds {
		kinds[g.OperandKinds[i].Kind] = struct{}{}
	}

	return &Generator{
		grammar: g,
		kinds:   kinds,
	}
}

const registryURL = "https://www.khronos.org/registry/spir-v/specs/unified1/SPIRV.html"

// Reference comment for an operand kind declaration, pointing at the kind's
// anchor in the SPIR-V registry
func kindDoc(kind string) string {
	anchor := snakeCase(kind)
	return fmt.Sprintf("SPIR-V operand kind %v (%v#_a_id_%v_a_%v)", kind, registryURL, anchor, anchor)
}

// Reference comment for an instruction opcode table
func opcodeDoc() string {
	return fmt.Sprintf("SPIR-V instruction opcodes (%v#_a_id_instructions_a_instructions)", registryURL)
}
