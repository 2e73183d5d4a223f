package gen

import (
	"errors"
	"testing"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
	"github.com/stretchr/testify/assert"
)

func imageOperandsKind() (grammar.OperandKind, grammar.OperandKind) {
	ref := grammar.OperandKind{Category: "Id", Kind: "IdRef"}
	kind := grammar.OperandKind{
		Category: grammar.Category_BitEnum,
		Kind:     "ImageOperands",
		Enumerants: []grammar.Enumerant{
			{Symbol: "None", Value: 0x0},
			{Symbol: "Bias", Value: 0x1, Parameters: []grammar.Parameter{{Kind: "IdRef"}}},
			{Symbol: "Lod", Value: 0x2, Parameters: []grammar.Parameter{{Kind: "IdRef"}}},
			{Symbol: "ConstOffsets", Value: 0x8},
		},
	}
	return ref, kind
}

func TestBitEnumEmitsFlagsAtTheirLiteralValues(t *testing.T) {
	ref, kind := imageOperandsKind()

	decl, err := testGenerator(ref, kind).BitEnum(&kind)

	assert.Nil(t, err)
	assert.Equal(t, "ImageOperands", decl.Name)
	assert.Equal(t, "NONE", decl.Flags[0].Name)
	assert.Equal(t, uint32(0), decl.Flags[0].Value)
	assert.Equal(t, "BIAS", decl.Flags[1].Name)
	assert.Equal(t, uint32(1), decl.Flags[1].Value)
	assert.Equal(t, "CONST_OFFSETS", decl.Flags[3].Name)
	assert.Equal(t, uint32(8), decl.Flags[3].Value)
}

func TestBitEnumFlagOperandLookupUsesBitContainment(t *testing.T) {
	ref, kind := imageOperandsKind()

	decl, err := testGenerator(ref, kind).BitEnum(&kind)
	assert.Nil(t, err)

	expected := []LogicalOperand{{Kind: "IdRef", Quantifier: grammar.Quantifier_One}}

	// Exact flag set
	operands, ok := decl.FlagOperands(0x1, "BIAS")
	assert.True(t, ok)
	assert.Equal(t, expected, operands)

	// Superset still resolves: subset test, not equality
	operands, ok = decl.FlagOperands(0x1|0x2|0x8, "BIAS")
	assert.True(t, ok)
	assert.Equal(t, expected, operands)

	// The flag's bits must be contained in the set
	_, ok = decl.FlagOperands(0x2|0x8, "BIAS")
	assert.False(t, ok)
}

func TestBitEnumParameterlessFlagsNeverResolveOperands(t *testing.T) {
	ref, kind := imageOperandsKind()

	decl, err := testGenerator(ref, kind).BitEnum(&kind)
	assert.Nil(t, err)

	// "None" is a legal named constant but has no parameters, so it stays out
	// of the per-flag operand lookup even though 0 is contained in every set
	_, ok := decl.FlagOperands(0xB, "NONE")
	assert.False(t, ok)

	_, ok = decl.FlagOperands(0x8, "CONST_OFFSETS")
	assert.False(t, ok)
}

func TestBitEnumRenamesNaNFlags(t *testing.T) {
	kind := grammar.OperandKind{
		Category: grammar.Category_BitEnum,
		Kind:     "FPFastMathMode",
		Enumerants: []grammar.Enumerant{
			{Symbol: "NotNaN", Value: 0x1},
			{Symbol: "NotInf", Value: 0x2},
		},
	}

	decl, err := testGenerator(kind).BitEnum(&kind)

	assert.Nil(t, err)
	assert.Equal(t, "NOT_NAN", decl.Flags[0].Name)
	assert.Equal(t, "NOT_INF", decl.Flags[1].Name)
}

func TestBitEnumRejectsUnknownOperandKindReferences(t *testing.T) {
	kind := grammar.OperandKind{
		Category: grammar.Category_BitEnum,
		Kind:     "ImageOperands",
		Enumerants: []grammar.Enumerant{
			{Symbol: "Bias", Value: 0x1, Parameters: []grammar.Parameter{{Kind: "Missing"}}},
		},
	}

	_, err := testGenerator(kind).BitEnum(&kind)

	assert.True(t, errors.Is(err, ErrUnknownOperandKind))
}
