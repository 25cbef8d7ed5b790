// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared configuration records for paperprep.
package types

// FilterConfig holds settings for the document-tree filter passes.
type FilterConfig struct {
	// AcronymsFile is the path to the \newacronym definitions file. An
	// empty path means the document uses no acronyms.
	AcronymsFile string `json:"acronyms_file" yaml:"acronyms_file"`

	// ImageDir is the directory image urls in the document resolve
	// against (default ".").
	ImageDir string `json:"image_dir" yaml:"image_dir"`

	// RasterWidth is the pixel width rasterized images are scaled to
	// (default 1024).
	RasterWidth int `json:"raster_width" yaml:"raster_width"`

	// ReportFile, when set, is where the filter writes a YAML summary of
	// the run (float numbers, expanded acronyms, unresolved references).
	ReportFile string `json:"report_file,omitempty" yaml:"report_file,omitempty"`
}

// ConvertConfig holds settings for the end-to-end conversion run.
type ConvertConfig struct {
	FilterConfig `yaml:",inline"`

	// PandocBin is the pandoc executable name or path (default "pandoc").
	PandocBin string `json:"pandoc_bin" yaml:"pandoc_bin"`

	// Format is the pandoc output format (default "docx").
	Format string `json:"format" yaml:"format"`

	// PandocArgs are extra arguments passed through to pandoc, e.g.
	// ["--citeproc", "--bibliography", "paper/references.bib"].
	PandocArgs []string `json:"pandoc_args,omitempty" yaml:"pandoc_args,omitempty"`

	// Force overwrites an existing output document instead of skipping.
	Force bool `json:"force" yaml:"force"`
}

// Default values applied when the config file and environment leave a
// field unset.
const (
	DefaultImageDir    = "."
	DefaultRasterWidth = 1024
	DefaultPandocBin   = "pandoc"
	DefaultFormat      = "docx"
)

// ApplyDefaults fills zero-valued fields with package defaults.
func (c *FilterConfig) ApplyDefaults() {
	if c.ImageDir == "" {
		c.ImageDir = DefaultImageDir
	}
	if c.RasterWidth <= 0 {
		c.RasterWidth = DefaultRasterWidth
	}
}

// ApplyDefaults fills zero-valued fields with package defaults.
func (c *ConvertConfig) ApplyDefaults() {
	c.FilterConfig.ApplyDefaults()
	if c.PandocBin == "" {
		c.PandocBin = DefaultPandocBin
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}
