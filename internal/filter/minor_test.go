// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperprep/pkg/pandoc"
)

func citeJSON(rendered string) string {
	return `{"t":"Cite","c":[[{"citationId":"smith2020","citationPrefix":[],"citationSuffix":[],` +
		`"citationMode":{"t":"NormalCitation"},"citationNoteNum":0,"citationHash":0}],` +
		`[{"t":"Str","c":"` + rendered + `"}]]}`
}

func TestParentheticalCitationGetsLeadingSpace(t *testing.T) {
	doc := mustDoc(t, `[{"t":"Para","c":[`+citeJSON("(Smith 2020)")+`]}]`)

	require.NoError(t, pandoc.Walk(doc, spaceCitations))

	cite := doc.Blocks[0].C.([]any)[0].(*pandoc.Elem)
	assert.Equal(t, "\u00a0(Smith 2020)", pandoc.FirstStr(cite.C).Text())
}

func TestNarrativeCitationUntouched(t *testing.T) {
	doc := mustDoc(t, `[{"t":"Para","c":[`+citeJSON("Smith (2020)")+`]}]`)

	require.NoError(t, pandoc.Walk(doc, spaceCitations))

	cite := doc.Blocks[0].C.([]any)[0].(*pandoc.Elem)
	assert.Equal(t, "Smith (2020)", pandoc.FirstStr(cite.C).Text())
}

func TestSIRangeReformatted(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "unit range collapses to single trailing unit",
			in:   "1\u00a0ms\u20132\u00a0ms",
			want: "1\u20132\u00a0ms",
		},
		{
			name: "multi-digit values",
			in:   "10\u00a0Hz\u2013400\u00a0Hz",
			want: "10\u2013400\u00a0Hz",
		},
		{
			name: "plain text untouched",
			in:   "no range here",
			want: "no range here",
		},
		{
			name: "dash without non-breaking space untouched",
			in:   "1 ms\u20132 ms",
			want: "1 ms\u20132 ms",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			str := pandoc.Str(tt.in)
			doc := &pandoc.Doc{Blocks: []*pandoc.Elem{{Type: "Plain", C: []any{str}}}}
			require.NoError(t, pandoc.Walk(doc, fixSIRanges))
			assert.Equal(t, tt.want, str.Text())
		})
	}
}

func TestReferencesHeadingInjected(t *testing.T) {
	doc := mustDoc(t, `[
		{"t":"Para","c":[{"t":"Str","c":"body"}]},
		{"t":"Div","c":[["refs",[],[]],[]]}
	]`)

	require.NoError(t, pandoc.Walk(doc, addReferencesHeading))

	require.Len(t, doc.Blocks, 3)
	heading := doc.Blocks[1]
	assert.Equal(t, pandoc.TypeHeader, heading.Type)
	assert.Equal(t, "references", heading.Identifier())
	assert.Equal(t, "References", pandoc.FirstStr(heading).Text())
	assert.Equal(t, pandoc.TypeDiv, doc.Blocks[2].Type)
}

func TestOtherDivsGetNoHeading(t *testing.T) {
	doc := mustDoc(t, `[{"t":"Div","c":[["appendix",[],[]],[]]}]`)

	require.NoError(t, pandoc.Walk(doc, addReferencesHeading))

	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, pandoc.TypeDiv, doc.Blocks[0].Type)
}
