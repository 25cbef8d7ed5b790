// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter post-processes the pandoc document tree of a converted
// paper: acronym expansion, citation spacing, figure and table numbering,
// cross-reference resolution, vector image rasterization, unit-range
// cleanup, and a heading for the references section.
//
// Each transform runs as its own complete pass over the tree, in a fixed
// order. Because numbering finishes before cross-reference resolution
// starts, references to floats defined later in the document still
// resolve. All lookup state lives in a State value scoped to one run;
// nothing is package-global, so runs are independent and re-entrant.
package filter

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperprep/internal/raster"
	"github.com/pdiddy/paperprep/pkg/pandoc"
	"github.com/pdiddy/paperprep/pkg/types"
)

// State carries the per-run lookup tables through the tree walks: the
// immutable acronym table, the acronym first-use flags, and the two float
// registries. It is mutated only by the single sequential walker.
type State struct {
	// Acronyms maps a label to its long-form expansion. Loaded once
	// before tree processing, read-only afterwards.
	Acronyms map[string]string

	// Figures and Tables map a float identifier to its display label
	// ("Figure 3"). An identifier's label is immutable once assigned.
	Figures map[string]string
	Tables  map[string]string

	used                    map[string]bool
	figureCount, tableCount int
	unresolved              []string
	rasterized              []string

	imageDir   string
	rasterizer raster.Rasterizer
	logger     *log.Logger
}

// New builds the run state for one conversion: it loads the acronym table
// (a missing acronyms file is fatal; an empty configured path means the
// document uses no acronyms) and wires the rasterizer used for vector
// images.
func New(cfg types.FilterConfig, r raster.Rasterizer, logger *log.Logger) (*State, error) {
	if logger == nil {
		logger = log.Default()
	}

	acronyms := map[string]string{}
	if cfg.AcronymsFile != "" {
		var err error
		acronyms, err = LoadAcronyms(cfg.AcronymsFile)
		if err != nil {
			return nil, err
		}
	}

	return &State{
		Acronyms:   acronyms,
		Figures:    make(map[string]string),
		Tables:     make(map[string]string),
		used:       make(map[string]bool),
		imageDir:   cfg.ImageDir,
		rasterizer: r,
		logger:     logger,
	}, nil
}

// Run applies the transform passes to doc in order, each pass walking the
// whole tree before the next starts, and returns a summary of the run.
func (s *State) Run(doc *pandoc.Doc) (*Result, error) {
	passes := []struct {
		name   string
		action pandoc.Action
	}{
		{"acronyms", s.resolveAcronyms},
		{"citation spacing", spaceCitations},
		{"float numbering", s.numberFloats},
		{"cross-references", s.resolveAutoref},
		{"image rasterization", s.rasterizeImages},
		{"unit ranges", fixSIRanges},
		{"references heading", addReferencesHeading},
	}
	for _, p := range passes {
		if err := pandoc.Walk(doc, p.action); err != nil {
			return nil, fmt.Errorf("%s pass: %w", p.name, err)
		}
	}
	return s.result(), nil
}

// Result summarizes one filter run for the optional YAML report.
type Result struct {
	Figures          map[string]string `yaml:"figures,omitempty"`
	Tables           map[string]string `yaml:"tables,omitempty"`
	AcronymsExpanded []string          `yaml:"acronyms_expanded,omitempty"`
	Unresolved       []string          `yaml:"unresolved_references,omitempty"`
	Rasterized       []string          `yaml:"rasterized_images,omitempty"`
}

func (s *State) result() *Result {
	expanded := make([]string, 0, len(s.used))
	for label := range s.used {
		expanded = append(expanded, label)
	}
	sort.Strings(expanded)
	return &Result{
		Figures:          s.Figures,
		Tables:           s.Tables,
		AcronymsExpanded: expanded,
		Unresolved:       s.unresolved,
		Rasterized:       s.rasterized,
	}
}

// WriteReport saves the run summary as YAML.
func (r *Result) WriteReport(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
