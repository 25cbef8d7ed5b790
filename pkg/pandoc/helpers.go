// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

// Node kind names used by the filter passes. The full set of pandoc kinds
// is larger; unlisted kinds round-trip through the generic representation.
const (
	TypeStr       = "Str"
	TypeSpan      = "Span"
	TypeCite      = "Cite"
	TypeRawInline = "RawInline"
	TypeImage     = "Image"
	TypeFigure    = "Figure"
	TypeTable     = "Table"
	TypeDiv       = "Div"
	TypeHeader    = "Header"
)

// Str returns a Str inline carrying text.
func Str(text string) *Elem {
	return &Elem{Type: TypeStr, C: text}
}

// Span returns a Span inline with empty attributes wrapping the given
// inlines.
func Span(inlines ...*Elem) *Elem {
	content := make([]any, len(inlines))
	for i, inl := range inlines {
		content[i] = inl
	}
	return &Elem{Type: TypeSpan, C: []any{emptyAttr(), content}}
}

// Header returns a Header block of the given level and identifier.
func Header(level int, identifier string, inlines ...*Elem) *Elem {
	content := make([]any, len(inlines))
	for i, inl := range inlines {
		content[i] = inl
	}
	return &Elem{Type: TypeHeader, C: []any{level, []any{identifier, []any{}, []any{}}, content}}
}

func emptyAttr() []any {
	return []any{"", []any{}, []any{}}
}

// attr returns the node's attribute triple [identifier, classes, kvpairs],
// or nil when the node kind carries no attributes.
func (e *Elem) attr() []any {
	list, ok := e.C.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	idx := 0
	if e.Type == TypeHeader {
		idx = 1 // Header content is [level, Attr, inlines]
	}
	if idx >= len(list) {
		return nil
	}
	a, ok := list[idx].([]any)
	if !ok || len(a) != 3 {
		return nil
	}
	if _, ok := a[0].(string); !ok {
		return nil
	}
	return a
}

// Identifier returns the node's attribute identifier, or "" when the node
// has none.
func (e *Elem) Identifier() string {
	a := e.attr()
	if a == nil {
		return ""
	}
	id, _ := a[0].(string)
	return id
}

// Attribute returns the value of the named key-value attribute.
func (e *Elem) Attribute(key string) (string, bool) {
	a := e.attr()
	if a == nil {
		return "", false
	}
	kvs, _ := a[2].([]any)
	for _, kv := range kvs {
		pair, ok := kv.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		if k, _ := pair[0].(string); k == key {
			v, _ := pair[1].(string)
			return v, true
		}
	}
	return "", false
}

// DeleteAttribute removes the named key-value attribute if present.
func (e *Elem) DeleteAttribute(key string) {
	a := e.attr()
	if a == nil {
		return
	}
	kvs, _ := a[2].([]any)
	out := make([]any, 0, len(kvs))
	for _, kv := range kvs {
		if pair, ok := kv.([]any); ok && len(pair) == 2 {
			if k, _ := pair[0].(string); k == key {
				continue
			}
		}
		out = append(out, kv)
	}
	a[2] = out
}

// Text returns the node's string payload. Only Str nodes carry one.
func (e *Elem) Text() string {
	s, _ := e.C.(string)
	return s
}

// SetText replaces the node's string payload.
func (e *Elem) SetText(text string) {
	e.C = text
}

// RawText returns the raw text of a RawInline or RawBlock node, whose
// content is [format, text].
func (e *Elem) RawText() string {
	list, ok := e.C.([]any)
	if !ok || len(list) != 2 {
		return ""
	}
	s, _ := list[1].(string)
	return s
}

// Caption returns the caption component of a Figure or Table node. For
// both kinds the caption sits at content index 1.
func (e *Elem) Caption() any {
	list, ok := e.C.([]any)
	if !ok || len(list) < 2 {
		return nil
	}
	return list[1]
}

// ImageURL returns the url of an Image node, whose content is
// [Attr, inlines, [url, title]].
func (e *Elem) ImageURL() string {
	target := e.imageTarget()
	if target == nil {
		return ""
	}
	url, _ := target[0].(string)
	return url
}

// SetImageURL rewrites the url of an Image node.
func (e *Elem) SetImageURL(url string) {
	target := e.imageTarget()
	if target == nil {
		return
	}
	target[0] = url
}

func (e *Elem) imageTarget() []any {
	list, ok := e.C.([]any)
	if !ok || len(list) != 3 {
		return nil
	}
	target, ok := list[2].([]any)
	if !ok || len(target) != 2 {
		return nil
	}
	return target
}

// FirstStr returns the first Str node under v in document order, or nil.
// Untagged maps (citation records) are not descended into, so for a Cite
// node this finds the first rendered character, not citation metadata.
func FirstStr(v any) *Elem {
	switch val := v.(type) {
	case *Elem:
		if val.Type == TypeStr {
			return val
		}
		return FirstStr(val.C)
	case []any:
		for _, item := range val {
			if s := FirstStr(item); s != nil {
				return s
			}
		}
	}
	return nil
}
