// Package render serializes the abstract declarations produced by pkg/spv/gen
// into Go source text. Templates carry the full output shape; the engine's
// contract with this package is purely structural
package render

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/gen"
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/utils"
)

//go:embed templates
var Templates embed.FS

type Generator struct {
	template *template.Template
}

func NewGenerator() (*Generator, error) {
	funcs := template.FuncMap{
		"Hex": func(value uint32) string {
			return utils.FormatUintHex(uint64(value), 8)
		},
		"Join": func(separator string, items []string) string {
			return strings.Join(items, separator)
		},
		"IsBitEnum": func(decl gen.Declaration) bool {
			_, ok := decl.(*gen.BitEnumDecl)
			return ok
		},
		"HasFlagOperands": func(decl *gen.BitEnumDecl) bool {
			for i := range decl.Flags {
				if len(decl.Flags[i].Operands) > 0 {
					return true
				}
			}

			return false
		},
		"OperandList": func(operands []gen.LogicalOperand) string {
			items := utils.Map(operands, func(op gen.LogicalOperand) string {
				return fmt.Sprintf("{Kind: %q, Quantifier: OperandQuantifier%v}", op.Kind, op.Quantifier)
			})

			return "[]LogicalOperand{" + strings.Join(items, ", ") + "}"
		},
	}

	t, err := template.New("spirv").Funcs(funcs).ParseFS(Templates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	return &Generator{
		template: t,
	}, nil
}

type headerContext struct {
	Package string
	Header  *gen.Header
}

type extInstContext struct {
	Package string
	Set     *gen.ExtInstSet
}

// RenderHeaderTo writes the core header source file for an assembled grammar
func (g *Generator) RenderHeaderTo(writer io.Writer, packageName string, header *gen.Header) error {
	return g.template.ExecuteTemplate(writer, "header.go.tmpl", &headerContext{
		Package: packageName,
		Header:  header,
	})
}

// RenderHeader writes the core header source file to the given path
func (g *Generator) RenderHeader(outputFile string, packageName string, header *gen.Header) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return g.RenderHeaderTo(f, packageName, header)
}

// RenderExtInstTo writes the source file of one extended instruction set unit
func (g *Generator) RenderExtInstTo(writer io.Writer, packageName string, set *gen.ExtInstSet) error {
	return g.template.ExecuteTemplate(writer, "extinst.go.tmpl", &extInstContext{
		Package: packageName,
		Set:     set,
	})
}

// RenderExtInst writes an extended instruction set source file to the given path
func (g *Generator) RenderExtInst(outputFile string, packageName string, set *gen.ExtInstSet) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return g.RenderExtInstTo(f, packageName, set)
}
