// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records the command it was asked to run.
type fakeExecutor struct {
	name string
	args []string
	err  error
}

func (f *fakeExecutor) Run(name string, args ...string) error {
	f.name = name
	f.args = args
	return f.err
}

func okValidator(string) error { return nil }

func TestRasterizeInvokesPdftoppm(t *testing.T) {
	exec := &fakeExecutor{}
	p := newPdftoppm(1024, exec, okValidator)

	err := p.Rasterize("paper/fig.pdf", "paper/fig.png")
	require.NoError(t, err)

	assert.Equal(t, "pdftoppm", exec.name)
	// The output prefix drops .png: pdftoppm -singlefile appends it.
	assert.Equal(t, []string{
		"-scale-to", "1024",
		"-png",
		"-singlefile",
		"paper/fig.pdf",
		"paper/fig",
	}, exec.args)
}

func TestRasterizeHonorsWidth(t *testing.T) {
	exec := &fakeExecutor{}
	p := newPdftoppm(512, exec, okValidator)

	require.NoError(t, p.Rasterize("fig.pdf", "fig.png"))
	assert.Equal(t, "512", exec.args[1])
}

func TestRasterizePropagatesCommandFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	p := newPdftoppm(1024, exec, okValidator)

	err := p.Rasterize("fig.pdf", "fig.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fig.pdf")
}

func TestRasterizeRejectsInvalidPDF(t *testing.T) {
	exec := &fakeExecutor{}
	p := newPdftoppm(1024, exec, func(string) error {
		return errors.New("xref table broken")
	})

	err := p.Rasterize("fig.pdf", "fig.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating")
	assert.Empty(t, exec.name, "command must not run when validation fails")
}
