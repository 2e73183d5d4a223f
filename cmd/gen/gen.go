// Command group turning grammar files into generated Go source.
package gen

import (
	"log/slog"
	"os"

	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/render"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	spvgen "github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/gen"
)

var (
	grammarFile string
	outputFile  string
	packageName string

	extInstName string
	extInstDoc  string
)

var HeaderCmd = &cobra.Command{
	Use:   "header",
	Short: "Generate the core SPIR-V header definitions",
	Long: `Parses the core SPIR-V grammar file (spirv.core.grammar.json) and generates
a Go source file with the format constants, one enumeration per operand kind
and the opcode enumeration.`,
	RunE: runHeader,
}

var ExtInstCmd = &cobra.Command{
	Use:   "extinst",
	Short: "Generate the opcode definitions of one extended instruction set",
	Long: `Parses one extended instruction set grammar file (e.g.
extinst.glsl.std.450.grammar.json) and generates a self-contained Go source
file with the set's opcode enumeration.`,
	RunE: runExtInst,
}

func init() {
	for _, command := range []*cobra.Command{HeaderCmd, ExtInstCmd} {
		command.Flags().StringVar(&grammarFile, "grammar", "", "grammar JSON file (required)")
		command.Flags().StringVar(&outputFile, "out", "stdout", "output Go source file")
		command.Flags().StringVar(&packageName, "pkg", "spirv", "package name of the generated source")
		command.MarkFlagRequired("grammar")
	}

	ExtInstCmd.Flags().StringVar(&extInstName, "name", "", "enumeration type name for the set (required)")
	ExtInstCmd.Flags().StringVar(&extInstDoc, "doc", "", "doc string attached to the enumeration")
	ExtInstCmd.MarkFlagRequired("name")
}

func runHeader(cmd *cobra.Command, args []string) error {
	g, err := grammar.LoadFile(grammarFile)
	if err != nil {
		return err
	}

	slog.Debug("parsed core grammar", "kinds", len(g.OperandKinds), "instructions", len(g.Instructions))

	header, err := spvgen.NewGenerator(g).Header()
	if err != nil {
		return err
	}

	renderer, err := render.NewGenerator()
	if err != nil {
		return err
	}

	if outputFile == "stdout" {
		return renderer.RenderHeaderTo(os.Stdout, packageName, header)
	}

	if err := renderer.RenderHeader(outputFile, packageName, header); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, "wrote %v (%v operand kinds, %v opcodes)\n", outputFile, len(header.Kinds), len(header.Opcodes.Enumerants))
	return nil
}

func runExtInst(cmd *cobra.Command, args []string) error {
	g, err := grammar.LoadExtInstFile(grammarFile)
	if err != nil {
		return err
	}

	slog.Debug("parsed extended instruction set grammar", "instructions", len(g.Instructions))

	set, err := spvgen.MakeExtInstSet(extInstName, extInstDoc, g)
	if err != nil {
		return err
	}

	renderer, err := render.NewGenerator()
	if err != nil {
		return err
	}

	if outputFile == "stdout" {
		return renderer.RenderExtInstTo(os.Stdout, packageName, set)
	}

	if err := renderer.RenderExtInst(outputFile, packageName, set); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, "wrote %v (%v opcodes)\n", outputFile, len(set.Opcodes.Enumerants))
	return nil
}
