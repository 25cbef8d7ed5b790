// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/paperprep/pkg/pandoc"
)

// autorefPattern matches raw \autoref{kind:identifier} commands left
// untranslated by pandoc, where kind is a 3-letter code (fig or tab).
var autorefPattern = regexp.MustCompile(`^\\autoref\{(...):(.*)\}`)

// numberFloats assigns sequential display numbers to figures and tables,
// numbered independently and starting at 1, in document-traversal order.
// The display label is prepended to the first text leaf of the caption.
//
// Figures carry their identifier themselves; a table's identifier lives on
// the node enclosing the table, a quirk of how pandoc parses the paper
// class's table environments.
func (s *State) numberFloats(e, parent *pandoc.Elem) ([]*pandoc.Elem, error) {
	switch e.Type {
	case pandoc.TypeFigure:
		s.figureCount++
		label := fmt.Sprintf("Figure %d", s.figureCount)
		s.register(s.Figures, e.Identifier(), label)
		prependToCaption(e, label)
	case pandoc.TypeTable:
		s.tableCount++
		label := fmt.Sprintf("Table %d", s.tableCount)
		id := ""
		if parent != nil {
			id = parent.Identifier()
		}
		s.register(s.Tables, id, label)
		prependToCaption(e, label)
	}
	return nil, nil
}

// register records an identifier → display label mapping. The first
// registration wins: a duplicate identifier keeps its original number.
func (s *State) register(registry map[string]string, id, label string) {
	if id == "" {
		return
	}
	if _, seen := registry[id]; seen {
		s.logger.Debug("duplicate float identifier keeps its first number", "identifier", id)
		return
	}
	registry[id] = label
}

// prependToCaption rewrites the first text leaf of a float's caption to
// start with "label: ", leaving the rest of the caption structure intact.
// Captionless floats keep their number but get no visible text.
func prependToCaption(e *pandoc.Elem, label string) {
	if t := pandoc.FirstStr(e.Caption()); t != nil {
		t.SetText(label + ": " + t.Text())
	}
}

// resolveAutoref replaces raw \autoref{fig:ID} and \autoref{tab:ID}
// commands with the plain display label of the referenced float. Unknown
// identifiers and kinds other than fig/tab are left as raw text.
func (s *State) resolveAutoref(e, _ *pandoc.Elem) ([]*pandoc.Elem, error) {
	if e.Type != pandoc.TypeRawInline {
		return nil, nil
	}
	m := autorefPattern.FindStringSubmatch(e.RawText())
	if m == nil {
		return nil, nil
	}

	kind := m[1]
	identifier := kind + ":" + m[2]
	var registry map[string]string
	switch kind {
	case "fig":
		registry = s.Figures
	case "tab":
		registry = s.Tables
	default:
		return nil, nil
	}

	label, ok := registry[identifier]
	if !ok {
		s.logger.Debug("unresolved float reference", "identifier", identifier)
		s.unresolved = append(s.unresolved, identifier)
		return nil, nil
	}
	return []*pandoc.Elem{pandoc.Str(label)}, nil
}
