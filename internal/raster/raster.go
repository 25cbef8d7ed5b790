// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster converts vector PDF figures into PNG rasters for output
// formats that cannot embed vector graphics. The production implementation
// shells out to poppler's pdftoppm; the command seam is an interface so
// tests can run without the binary installed.
package raster

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const binPdftoppm = "pdftoppm"

// Rasterizer renders a vector PDF image into a raster PNG.
type Rasterizer interface {
	// Rasterize renders the PDF at src into a single PNG at dst.
	Rasterize(src, dst string) error
}

// executor abstracts command execution for testing.
type executor interface {
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec. The child's
// stderr is passed through so pdftoppm diagnostics reach the user.
type osExecutor struct{}

func (osExecutor) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// validator checks that a PDF file is structurally sound. The production
// validator is pdfcpu; tests substitute a no-op.
type validator func(path string) error

func pdfcpuValidate(path string) error {
	return api.ValidateFile(path, nil)
}

// Pdftoppm rasterizes PDFs by invoking the poppler pdftoppm tool with a
// fixed target width, single-file PNG output, and the destination's
// basename as the output prefix.
type Pdftoppm struct {
	width    int
	exec     executor
	validate validator
}

// NewPdftoppm returns a pdftoppm-backed rasterizer scaling output to the
// given pixel width.
func NewPdftoppm(width int) *Pdftoppm {
	return newPdftoppm(width, osExecutor{}, pdfcpuValidate)
}

func newPdftoppm(width int, exec executor, validate validator) *Pdftoppm {
	return &Pdftoppm{width: width, exec: exec, validate: validate}
}

// Rasterize validates the source PDF and renders it to dst. Any failure is
// fatal for the surrounding run and propagates as-is.
func (p *Pdftoppm) Rasterize(src, dst string) error {
	if err := p.validate(src); err != nil {
		return fmt.Errorf("validating %s: %w", src, err)
	}

	// pdftoppm -singlefile takes an output prefix and appends .png itself.
	prefix := strings.TrimSuffix(dst, ".png")
	args := []string{
		"-scale-to", strconv.Itoa(p.width),
		"-png",
		"-singlefile",
		src,
		prefix,
	}
	if err := p.exec.Run(binPdftoppm, args...); err != nil {
		return fmt.Errorf("rasterizing %s with %s: %w", src, binPdftoppm, err)
	}
	return nil
}
