// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperprep/internal/convert"
	"github.com/pdiddy/paperprep/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert input.tex",
	Short: "Convert a LaTeX paper to the output format via pandoc",
	Long: `Convert runs the full pipeline: the macro rewriter produces a
pandoc-friendly intermediate file, then pandoc converts it with this
binary registered as the document filter. The output document lands next
to the source. Requires pandoc on PATH, and pdftoppm when the paper embeds
vector images.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.ConvertConfig{
			FilterConfig: filterConfig(),
			PandocBin:    viper.GetString("pandoc_bin"),
			Format:       viper.GetString("format"),
			PandocArgs:   viper.GetStringSlice("pandoc_args"),
		}
		cfg.Force, _ = cmd.Flags().GetBool("force")
		if format, _ := cmd.Flags().GetString("format"); format != "" {
			cfg.Format = format
		}
		if report, _ := cmd.Flags().GetString("report"); report != "" {
			cfg.ReportFile = report
		}
		cfg.ApplyDefaults()

		c, err := convert.New(cfg)
		if err != nil {
			return err
		}
		_, err = c.Convert(args[0], os.Stderr)
		return err
	},
}

func init() {
	convertCmd.Flags().String("format", "", "pandoc output format (default: docx)")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")
	convertCmd.Flags().Bool("force", false, "overwrite an existing output document")

	rootCmd.AddCommand(convertCmd)
}
