package tools

import (
	"github.com/Matthias-Fauconneau/spirv-gen/pkg/spv/grammar"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	dumpGrammarFile string
	dumpExtInst     bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Parse a grammar file and dump the in-memory model",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpExtInst {
			g, err := grammar.LoadExtInstFile(dumpGrammarFile)
			if err != nil {
				return err
			}

			spew.Dump(g)
			return nil
		}

		g, err := grammar.LoadFile(dumpGrammarFile)
		if err != nil {
			return err
		}

		spew.Dump(g)
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpGrammarFile, "grammar", "", "grammar JSON file (required)")
	dumpCmd.Flags().BoolVar(&dumpExtInst, "extinst", false, "parse as an extended instruction set grammar")
	dumpCmd.MarkFlagRequired("grammar")
}
