// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperprep/internal/filter"
	"github.com/pdiddy/paperprep/internal/raster"
	"github.com/pdiddy/paperprep/pkg/pandoc"
	"github.com/pdiddy/paperprep/pkg/types"
)

var filterCmd = &cobra.Command{
	Use:   "filter [target-format]",
	Short: "Post-process a pandoc document tree (JSON on stdin)",
	Long: `Filter reads a pandoc document as JSON from stdin, applies the paper
post-processing passes (acronym expansion, citation spacing, float
numbering, cross-reference resolution, image rasterization, unit-range
cleanup, references heading), and writes the transformed document as JSON
to stdout. Pandoc passes the target output format as the only argument;
the passes do not depend on it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(args)
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

// filterConfig assembles the filter settings from config file, environment,
// and defaults.
func filterConfig() types.FilterConfig {
	cfg := types.FilterConfig{
		AcronymsFile: viper.GetString("acronyms_file"),
		ImageDir:     viper.GetString("image_dir"),
		RasterWidth:  viper.GetInt("raster_width"),
		ReportFile:   viper.GetString("report_file"),
	}
	cfg.ApplyDefaults()
	return cfg
}

// runFilter is the pandoc filter entry point: document JSON on stdin,
// transformed document JSON on stdout.
func runFilter(args []string) error {
	if len(args) > 0 {
		logger.Debug("filtering for target format", "format", args[0])
	}

	cfg := filterConfig()
	state, err := filter.New(cfg, raster.NewPdftoppm(cfg.RasterWidth), logger)
	if err != nil {
		return err
	}

	doc, err := pandoc.ReadDoc(os.Stdin)
	if err != nil {
		return err
	}

	result, err := state.Run(doc)
	if err != nil {
		return err
	}

	if err := pandoc.WriteDoc(os.Stdout, doc); err != nil {
		return err
	}

	if cfg.ReportFile != "" {
		if err := result.WriteReport(cfg.ReportFile); err != nil {
			return err
		}
		logger.Info("wrote run report", "path", cfg.ReportFile)
	}
	return nil
}
