package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const coreGrammarJSON = `{
	"magic_number": "0x07230203",
	"major_version": 1,
	"minor_version": 6,
	"revision": 1,
	"instructions": [
		{
			"opname": "OpExtInst",
			"opcode": 12,
			"operands": [
				{"kind": "IdResultType"},
				{"kind": "IdRef", "quantifier": "*"}
			]
		}
	],
	"operand_kinds": [
		{
			"category": "BitEnum",
			"kind": "ImageOperands",
			"enumerants": [
				{"enumerant": "None", "value": "0x0000"},
				{
					"enumerant": "Bias",
					"value": "0x0001",
					"capabilities": ["Shader"],
					"parameters": [{"kind": "IdRef"}]
				}
			]
		},
		{
			"category": "ValueEnum",
			"kind": "SourceLanguage",
			"enumerants": [
				{"enumerant": "Unknown", "value": 0},
				{"enumerant": "ESSL", "value": 1}
			]
		}
	]
}`

func TestParseCoreGrammar(t *testing.T) {
	g, err := Parse(strings.NewReader(coreGrammarJSON))

	assert.Nil(t, err)
	assert.Equal(t, Value(0x07230203), g.MagicNumber)
	assert.Equal(t, uint8(1), g.MajorVersion)
	assert.Equal(t, uint8(6), g.MinorVersion)
	assert.Equal(t, uint8(1), g.Revision)

	assert.Equal(t, "OpExtInst", g.Instructions[0].OpName)
	assert.Equal(t, uint32(12), g.Instructions[0].Opcode)
	assert.Equal(t, Quantifier_One, g.Instructions[0].Operands[0].Quantifier)
	assert.Equal(t, Quantifier_ZeroOrMore, g.Instructions[0].Operands[1].Quantifier)

	imageOperands := g.OperandKinds[0]
	assert.Equal(t, Category_BitEnum, imageOperands.Category)
	// Bit enum values come as hex string literals
	assert.Equal(t, Value(0), imageOperands.Enumerants[0].Value)
	assert.Equal(t, Value(1), imageOperands.Enumerants[1].Value)
	assert.Equal(t, []string{"Shader"}, imageOperands.Enumerants[1].Capabilities)
	assert.Equal(t, "IdRef", imageOperands.Enumerants[1].Parameters[0].Kind)

	sourceLanguage := g.OperandKinds[1]
	assert.Equal(t, Category_ValueEnum, sourceLanguage.Category)
	// Value enum values come as plain numbers
	assert.Equal(t, Value(1), sourceLanguage.Enumerants[1].Value)
}

func TestParseExtInstGrammar(t *testing.T) {
	const extInstJSON = `{
		"copyright": ["Copyright (c) 2014-2016 The Khronos Group Inc."],
		"version": 100,
		"revision": 2,
		"instructions": [
			{"opname": "Round", "opcode": 1, "operands": [{"kind": "IdRef", "name": "'x'"}]}
		]
	}`

	g, err := ParseExtInst(strings.NewReader(extInstJSON))

	assert.Nil(t, err)
	assert.Equal(t, uint32(100), g.Version)
	assert.Equal(t, uint32(2), g.Revision)
	assert.Equal(t, "Round", g.Instructions[0].OpName)
	assert.Equal(t, "'x'", g.Instructions[0].Operands[0].Name)
}

func TestParseRejectsMalformedGrammars(t *testing.T) {
	cases := []string{
		`not json`,
		`{"magic_number": "0xNOPE"}`,
		// Quoted values without the 0x prefix are malformed, never base 16
		`{"magic_number": "123"}`,
		`{"operand_kinds": [{"category": "BitEnum", "kind": "K", "enumerants": [{"enumerant": "A", "value": "123"}]}]}`,
		`{"instructions": [{"opname": "OpNop", "opcode": 0, "operands": [{"kind": "IdRef", "quantifier": "+"}]}]}`,
	}

	for _, body := range cases {
		_, err := Parse(strings.NewReader(body))

		assert.True(t, errors.Is(err, ErrInvalidGrammar), "grammar %v", body)
	}
}
