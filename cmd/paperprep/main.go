// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperprep CLI.
//
// paperprep prepares LaTeX academic papers for pandoc conversion: the
// rewrite subcommand translates the paper class's custom macros into plain
// LaTeX, the filter subcommand post-processes pandoc's document tree, and
// convert runs the whole pipeline through pandoc in one go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes leveled progress to stderr; stdout is reserved for the
// filter's JSON output.
var logger = log.New(os.Stderr)

// rootCmd is the base command for the paperprep CLI. When pandoc invokes
// this binary as a filter it passes only the target format as an argument,
// so a bare invocation with at most one positional argument runs the
// filter.
var rootCmd = &cobra.Command{
	Use:   "paperprep",
	Short: "Prepare LaTeX academic papers for pandoc conversion",
	Long: `paperprep transforms LaTeX paper source into a form pandoc can convert,
and post-processes pandoc's document tree: custom macros are rewritten,
acronyms expanded on first use, figures and tables numbered, cross
references resolved, and vector images rasterized for formats that cannot
embed them.

Invoked by pandoc as "--filter paperprep", the binary receives the target
format as its only argument and the document JSON on stdin; that bare
invocation runs the filter directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(args)
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperprep.yaml or ~/.config/paperprep/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperprep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperprep"))
		}
	}

	viper.SetEnvPrefix("PAPERPREP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
