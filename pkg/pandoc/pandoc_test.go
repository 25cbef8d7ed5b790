// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleDoc is a trimmed pandoc AST exercising tagged nodes, contentless
// nodes, untagged citation records, nulls, and nested lists.
const sampleDoc = `{
  "pandoc-api-version": [1, 23, 1],
  "meta": {"title": {"t": "MetaString", "c": "A Paper"}},
  "blocks": [
    {"t": "Para", "c": [
      {"t": "Str", "c": "Hello"},
      {"t": "Space"},
      {"t": "Cite", "c": [
        [{"citationId": "smith2020",
          "citationPrefix": [],
          "citationSuffix": [],
          "citationMode": {"t": "NormalCitation"},
          "citationNoteNum": 0,
          "citationHash": 0}],
        [{"t": "Str", "c": "(Smith 2020)"}]
      ]}
    ]},
    {"t": "Figure", "c": [
      ["fig:plot", [], []],
      [null, [{"t": "Plain", "c": [{"t": "Str", "c": "My Plot"}]}]],
      [{"t": "Plain", "c": [
        {"t": "Image", "c": [["", [], [["width", "0.8"]]], [], ["fig.pdf", ""]]}
      ]}]
    ]},
    {"t": "HorizontalRule"}
  ]
}`

func TestReadDoc(t *testing.T) {
	doc, err := ReadDoc(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 3)
	assert.Equal(t, []int{1, 23, 1}, doc.APIVersion)

	para := doc.Blocks[0]
	assert.Equal(t, "Para", para.Type)
	inlines, ok := para.C.([]any)
	require.True(t, ok)
	require.Len(t, inlines, 3)

	str, ok := inlines[0].(*Elem)
	require.True(t, ok)
	assert.Equal(t, "Str", str.Type)
	assert.Equal(t, "Hello", str.Text())

	space, ok := inlines[1].(*Elem)
	require.True(t, ok)
	assert.Equal(t, "Space", space.Type)
	assert.Nil(t, space.C)

	// Citation records stay untagged maps with decoded values.
	cite, ok := inlines[2].(*Elem)
	require.True(t, ok)
	citations, ok := cite.C.([]any)[0].([]any)
	require.True(t, ok)
	record, ok := citations[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "smith2020", record["citationId"])
	mode, ok := record["citationMode"].(*Elem)
	require.True(t, ok)
	assert.Equal(t, "NormalCitation", mode.Type)

	fig := doc.Blocks[1]
	assert.Equal(t, "Figure", fig.Type)
	assert.Equal(t, "fig:plot", fig.Identifier())
}

func TestRoundTrip(t *testing.T) {
	doc, err := ReadDoc(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteDoc(&out, doc))

	// Semantic equality: re-decode both sides into generic JSON.
	var want, got any
	require.NoError(t, json.Unmarshal([]byte(sampleDoc), &want))
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestReadDocRejectsGarbage(t *testing.T) {
	_, err := ReadDoc(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestContentlessNodeMarshalsWithoutC(t *testing.T) {
	data, err := json.Marshal(&Elem{Type: "Space"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"Space"}`, string(data))
}
