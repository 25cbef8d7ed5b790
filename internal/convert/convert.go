// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates a full paper conversion: rewrite the LaTeX
// source into pandoc-friendly form, then run pandoc with this executable
// registered as its document filter.
package convert

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperprep/internal/rewrite"
	"github.com/pdiddy/paperprep/pkg/types"
)

// rewrittenSuffix is appended to the source basename for the intermediate
// pandoc-friendly LaTeX file.
const rewrittenSuffix = "_pandoc.tex"

// runner abstracts pandoc invocation for testing.
type runner interface {
	Run(name string, args []string, extraEnv []string) error
}

// osRunner executes pandoc with stdio passed through and the parent
// environment extended, so the filter subprocess inherits configuration.
type osRunner struct{}

func (osRunner) Run(name string, args []string, extraEnv []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extraEnv...)
	return cmd.Run()
}

// Converter runs the rewrite-then-pandoc pipeline.
type Converter struct {
	cfg  types.ConvertConfig
	run  runner
	self string // path to this executable, registered as the pandoc filter
}

// New returns a Converter for the given configuration. The current
// executable's path is resolved once so pandoc can call it back as the
// document filter.
func New(cfg types.ConvertConfig) (*Converter, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving own executable: %w", err)
	}
	return &Converter{cfg: cfg, run: osRunner{}, self: self}, nil
}

// Convert rewrites the LaTeX source at texPath and converts it to the
// configured output format. The output document lands next to the source
// with the format's extension. Progress lines are written to w. When the
// output already exists and Force is unset, the conversion is skipped.
// It returns the output path.
func (c *Converter) Convert(texPath string, w io.Writer) (string, error) {
	base := strings.TrimSuffix(texPath, filepath.Ext(texPath))
	outPath := base + "." + c.cfg.Format

	if !c.cfg.Force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", outPath)
			return outPath, nil
		}
	}

	rewritten := base + rewrittenSuffix
	if err := rewrite.RewriteFile(texPath, rewritten); err != nil {
		return "", err
	}
	fmt.Fprintf(w, "rewrote: %s -> %s\n", texPath, rewritten)

	args := []string{rewritten, "--filter", c.self, "-o", outPath}
	args = append(args, c.cfg.PandocArgs...)

	// The filter subprocess reads its configuration from the environment.
	env := []string{
		"PAPERPREP_ACRONYMS_FILE=" + c.cfg.AcronymsFile,
		"PAPERPREP_IMAGE_DIR=" + c.cfg.ImageDir,
		fmt.Sprintf("PAPERPREP_RASTER_WIDTH=%d", c.cfg.RasterWidth),
	}
	if c.cfg.ReportFile != "" {
		env = append(env, "PAPERPREP_REPORT_FILE="+c.cfg.ReportFile)
	}

	if err := c.run.Run(c.cfg.PandocBin, args, env); err != nil {
		return "", fmt.Errorf("running %s: %w", c.cfg.PandocBin, err)
	}
	fmt.Fprintf(w, "converted: %s\n", outPath)
	return outPath, nil
}
