// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paperprep/pkg/pandoc"
)

// spaceCitations prepends a non-breaking space to citations rendered in
// parenthetical form. The paper class writes \cite{} with no preceding
// space, so without this the citation glues onto the previous word.
func spaceCitations(e, _ *pandoc.Elem) ([]*pandoc.Elem, error) {
	if e.Type != pandoc.TypeCite {
		return nil, nil
	}
	if t := pandoc.FirstStr(e.C); t != nil && strings.HasPrefix(t.Text(), "(") {
		t.SetText("\u00a0" + t.Text())
	}
	return nil, nil
}

// siRangePattern matches the text pandoc produces for \SIrange:
// value, non-breaking space, unit, en-dash, value-and-unit.
var siRangePattern = regexp.MustCompile(`^(.+)\x{00a0}(.+)\x{2013}(.+)`)

// fixSIRanges rewrites "1 ms–2 ms" style ranges to "1–2 ms": the dash
// joins the bare values and a single unit trails the range.
func fixSIRanges(e, _ *pandoc.Elem) ([]*pandoc.Elem, error) {
	if e.Type != pandoc.TypeStr {
		return nil, nil
	}
	if m := siRangePattern.FindStringSubmatch(e.Text()); m != nil {
		e.SetText(m[1] + "\u2013" + m[3])
	}
	return nil, nil
}

// referencesDivID is the identifier pandoc gives the bibliography container.
const referencesDivID = "refs"

// addReferencesHeading injects a top-level "References" heading in front of
// the bibliography container, which pandoc emits without one.
func addReferencesHeading(e, _ *pandoc.Elem) ([]*pandoc.Elem, error) {
	if e.Type == pandoc.TypeDiv && e.Identifier() == referencesDivID {
		heading := pandoc.Header(1, "references", pandoc.Str("References"))
		return []*pandoc.Elem{heading, e}, nil
	}
	return nil, nil
}
