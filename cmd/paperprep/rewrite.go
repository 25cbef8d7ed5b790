// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperprep/internal/rewrite"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [input.tex]",
	Short: "Rewrite custom LaTeX macros into pandoc-friendly LaTeX",
	Long: `Rewrite applies the macro substitution table to a LaTeX source file and
collects \author and \affil declarations into a single byline emitted at
\maketitle. Reads stdin when no input file is given; writes stdout unless
--output is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		if len(args) == 1 && output != "" {
			return rewrite.RewriteFile(args[0], output)
		}

		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening source %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		out := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output %s: %w", output, err)
			}
			defer f.Close()
			out = f
		}

		return rewrite.New().Rewrite(in, out)
	},
}

func init() {
	rewriteCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(rewriteCmd)
}
