// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperprep/pkg/pandoc"
	"github.com/pdiddy/paperprep/pkg/types"
)

func TestNewLoadsAcronymsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "acronyms.tex")
	require.NoError(t, os.WriteFile(path,
		[]byte(`\newacronym{MEG}{MEG}{magnetoencephalography}`+"\n"), 0o644))

	s, err := New(types.FilterConfig{AcronymsFile: path, ImageDir: dir}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "magnetoencephalography", s.Acronyms["MEG"])
}

func TestNewFailsOnMissingAcronymsFile(t *testing.T) {
	_, err := New(types.FilterConfig{AcronymsFile: "does-not-exist.tex"}, nil, nil)
	assert.Error(t, err)
}

// TestRunAppliesAllPasses drives a small but complete document through the
// pipeline: an acronym, a figure with a reference preceding it, a unit
// range, and a bibliography container.
func TestRunAppliesAllPasses(t *testing.T) {
	s := newState(t, map[string]string{"TIL": "temporally invariant linear"})
	doc := mustDoc(t, `[
		{"t":"Para","c":[
			`+acronymSpan("TIL", "singular+short")+`,
			{"t":"RawInline","c":["latex","\\autoref{fig:plot}"]},
			{"t":"Str","c":"1\u00a0ms\u20132\u00a0ms"}
		]},
		`+figureJSON("fig:plot", "My Plot")+`,
		{"t":"Div","c":[["refs",[],[]],[]]}
	]`)

	result, err := s.Run(doc)
	require.NoError(t, err)

	inlines := doc.Blocks[0].C.([]any)
	assert.Equal(t, "temporally invariant linear (TIL)", pandoc.FirstStr(inlines[0]).Text())
	assert.Equal(t, "Figure 1", pandoc.FirstStr(inlines[1]).Text())
	assert.Equal(t, "1\u20132\u00a0ms", inlines[2].(*pandoc.Elem).Text())

	assert.Equal(t, "Figure 1: My Plot", captionText(t, doc.Blocks[1]))

	require.Len(t, doc.Blocks, 4, "references heading should be spliced in")
	assert.Equal(t, pandoc.TypeHeader, doc.Blocks[2].Type)
	assert.Equal(t, pandoc.TypeDiv, doc.Blocks[3].Type)

	assert.Equal(t, []string{"TIL"}, result.AcronymsExpanded)
	assert.Equal(t, map[string]string{"fig:plot": "Figure 1"}, result.Figures)
	assert.Empty(t, result.Unresolved)
}

func TestWriteReport(t *testing.T) {
	s := newState(t, map[string]string{"TIL": "temporally invariant linear"})
	doc := mustDoc(t, `[
		{"t":"Para","c":[`+acronymSpan("TIL", "singular+short")+`]},
		`+figureJSON("fig:a", "A")+`
	]`)

	result, err := s.Run(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, result.WriteReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Result
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, []string{"TIL"}, loaded.AcronymsExpanded)
	assert.Equal(t, "Figure 1", loaded.Figures["fig:a"])
}
