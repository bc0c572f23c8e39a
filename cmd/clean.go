package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnoverse/kleene/internal/corpus"
	"github.com/gnoverse/kleene/internal/rewrite"
)

var simplify bool

var cleanCmd = &cobra.Command{
	Use:   "clean [corpus files...]",
	Short: "print the normalized form of every corpus expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			f, err := corpus.Load(path)
			if err != nil {
				return err
			}
			for _, c := range f.Cases {
				expr := c.Expr.Term()
				normalized := rewrite.Clean(expr)
				if simplify {
					normalized = rewrite.Simplify(expr)
				}
				fmt.Printf("%s: %s => %s\n", c.Name, expr, normalized)
			}
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&simplify, "simplify", false, "also fold identity sub-terms")
}
