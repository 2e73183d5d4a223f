package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeIdentKeepsSymbolsAsGiven(t *testing.T) {
	ident, err := TypeIdent("FPRoundingMode")

	assert.Nil(t, err)
	assert.Equal(t, "FPRoundingMode", ident)
}

func TestTypeIdentRejectsIllegalCharacters(t *testing.T) {
	for _, symbol := range []string{"", "Foo-Bar", "Foo Bar", "Foö", "1D"} {
		_, err := TypeIdent(symbol)

		assert.True(t, errors.Is(err, ErrMalformedSymbol), "symbol %q", symbol)
	}
}

func TestFlagIdentRendersUpperCaseWithSeparators(t *testing.T) {
	cases := map[string]string{
		"None":               "NONE",
		"Bias":               "BIAS",
		"MakeTexelAvailable": "MAKE_TEXEL_AVAILABLE",
		"ConstOffsets":       "CONST_OFFSETS",
		"SignExtend":         "SIGN_EXTEND",
		"RayFlagsNoneKHR":    "RAY_FLAGS_NONE_KHR",
	}

	for symbol, expected := range cases {
		ident, err := FlagIdent(symbol)

		assert.Nil(t, err)
		assert.Equal(t, expected, ident)
	}
}

func TestFlagIdentKeepsNaNOneWord(t *testing.T) {
	ident, err := FlagIdent("NotNaN")

	assert.Nil(t, err)
	assert.Equal(t, "NOT_NAN", ident)

	ident, err = FlagIdent("NSZ")
	assert.Nil(t, err)
	assert.Equal(t, "NSZ", ident)
}

func TestOpcodeIdentStripsMarkerPrefix(t *testing.T) {
	ident, err := OpcodeIdent("OpFoo")

	assert.Nil(t, err)
	assert.Equal(t, "Foo", ident)
}

func TestOpcodeIdentRequiresMarkerPrefix(t *testing.T) {
	_, err := OpcodeIdent("Foo")

	assert.True(t, errors.Is(err, ErrMalformedSymbol))
}
