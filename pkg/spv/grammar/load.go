package grammar

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/utils"
)

var ErrInvalidGrammar error = errors.New("invalid grammar file")

// Parses the core SPIR-V grammar from its JSON representation
func Parse(reader io.Reader) (*Grammar, error) {
	var g Grammar

	if err := json.NewDecoder(reader).Decode(&g); err != nil {
		return nil, utils.MakeError(ErrInvalidGrammar, "%v", err)
	}

	return &g, nil
}

// Parses an extended instruction set grammar from its JSON representation
func ParseExtInst(reader io.Reader) (*ExtInstGrammar, error) {
	var g ExtInstGrammar

	if err := json.NewDecoder(reader).Decode(&g); err != nil {
		return nil, utils.MakeError(ErrInvalidGrammar, "%v", err)
	}

	return &g, nil
}

// Loads and parses the core SPIR-V grammar from a file
func LoadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Loads and parses an extended instruction set grammar from a file
func LoadExtInstFile(path string) (*ExtInstGrammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseExtInst(f)
}

// json.Unmarshal wrapper shared by the custom field decoders
func unmarshalString(data []byte, out *string) error {
	return json.Unmarshal(data, out)
}
