// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc models the pandoc JSON document tree and provides a
// generic walker over it. The tree format is owned by pandoc; this package
// only mirrors it faithfully enough to read a document from a filter's
// stdin, rewrite nodes, and write it back out unchanged everywhere else.
//
// Nodes are represented as tagged variants (Elem) whose content is decoded
// generically: nested tagged objects become *Elem, arrays become []any,
// untagged objects (such as citations) become map[string]any, and scalars
// keep their JSON types. This survives round-tripping of node kinds the
// filter never touches.
package pandoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Doc is a complete pandoc document. Meta is kept opaque: the filter never
// rewrites metadata, and re-encoding it would risk perturbing it.
type Doc struct {
	APIVersion []int           `json:"pandoc-api-version"`
	Meta       json.RawMessage `json:"meta"`
	Blocks     []*Elem         `json:"blocks"`
}

// Elem is one tagged node of the document tree: {"t": <Type>, "c": <C>}.
// Nodes without content (Space, SoftBreak, ...) have C == nil and marshal
// without a "c" key.
type Elem struct {
	Type string
	C    any
}

// ReadDoc decodes a pandoc JSON document from r.
func ReadDoc(r io.Reader) (*Doc, error) {
	var doc Doc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding pandoc document: %w", err)
	}
	return &doc, nil
}

// WriteDoc encodes doc as pandoc JSON to w.
func WriteDoc(w io.Writer, doc *Doc) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding pandoc document: %w", err)
	}
	return nil
}

// UnmarshalJSON decodes a tagged node, recursively converting its content
// into the generic representation described in the package comment.
func (e *Elem) UnmarshalJSON(data []byte) error {
	var raw struct {
		T string          `json:"t"`
		C json.RawMessage `json:"c"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.T == "" {
		return fmt.Errorf("node %s has no tag", compact(data))
	}
	e.Type = raw.T
	if raw.C == nil {
		e.C = nil
		return nil
	}
	c, err := decodeValue(raw.C)
	if err != nil {
		return fmt.Errorf("decoding %s content: %w", raw.T, err)
	}
	e.C = c
	return nil
}

// MarshalJSON encodes the node back into pandoc's {"t": ..., "c": ...}
// shape, omitting "c" for contentless nodes.
func (e *Elem) MarshalJSON() ([]byte, error) {
	if e.C == nil {
		return json.Marshal(struct {
			T string `json:"t"`
		}{e.Type})
	}
	return json.Marshal(struct {
		T string `json:"t"`
		C any    `json:"c"`
	}{e.Type, e.C})
}

// decodeValue converts raw JSON into the generic content representation.
// Objects carrying a "t" key are tagged nodes; any other object (citation
// records, for instance) stays a map with recursively decoded values.
func decodeValue(data json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty JSON value")
	}
	switch trimmed[0] {
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, err
		}
		if _, tagged := fields["t"]; tagged {
			var e Elem
			if err := json.Unmarshal(trimmed, &e); err != nil {
				return nil, err
			}
			return &e, nil
		}
		m := make(map[string]any, len(fields))
		for k, v := range fields {
			dv, err := decodeValue(v)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			m[k] = dv
		}
		return m, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i, item := range items {
			dv, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = dv
		}
		return out, nil
	case 'n': // null
		return nil, nil
	default:
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// compact renders a short prefix of raw JSON for error messages.
func compact(data []byte) string {
	const max = 40
	s := string(bytes.TrimSpace(data))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
