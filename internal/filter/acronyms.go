// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pdiddy/paperprep/pkg/pandoc"
)

// acronymPattern matches one \newacronym definition line:
// \newacronym[options]{LABEL}{short form}{long form}. The short form is
// ignored; references always use the label itself.
var acronymPattern = regexp.MustCompile(`^\\newacronym(\[.*\])?\{([A-Za-z]+)\}\{.+\}\{([A-Za-z 0-9\-]+)\}`)

// LoadAcronyms parses an acronym definitions file into a label → long-form
// table. Lines that do not match the definition grammar are skipped.
func LoadAcronyms(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening acronyms file %s: %w", path, err)
	}
	defer f.Close()

	acronyms := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := acronymPattern.FindStringSubmatch(scanner.Text()); m != nil {
			acronyms[m[2]] = m[3]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading acronyms file %s: %w", path, err)
	}
	return acronyms, nil
}

// resolveAcronyms expands inline acronym references. The paper class marks
// them as spans with acronym-label and acronym-form attributes, the form
// combining {full, short, abbrv} with {singular, plural}.
//
// The first short use of a label emits "long form (LABEL)" and marks the
// label used; later short uses emit the bare label. Full uses always emit
// the parenthetical form, abbrv always the bare label. Unknown labels pass
// through untouched.
func (s *State) resolveAcronyms(e, _ *pandoc.Elem) ([]*pandoc.Elem, error) {
	if e.Type != pandoc.TypeSpan {
		return nil, nil
	}
	label, ok := e.Attribute("acronym-label")
	if !ok {
		return nil, nil
	}
	long, known := s.Acronyms[label]
	if !known {
		s.logger.Debug("unknown acronym label, leaving span unresolved", "label", label)
		return nil, nil
	}

	form, _ := e.Attribute("acronym-form")
	singular := strings.Contains(form, "singular")

	value := long
	switch {
	case s.used[label] && strings.Contains(form, "short"):
		value = label
		if !singular {
			value += "s"
		}
	case strings.Contains(form, "full") || strings.Contains(form, "short"):
		if strings.Contains(form, "short") {
			s.used[label] = true
		}
		if singular {
			value = long + " (" + label + ")"
		} else {
			value = long + "s (" + label + "s)"
		}
	case strings.Contains(form, "abbrv"):
		value = label
		if !singular {
			value += "s"
		}
	}

	return []*pandoc.Elem{pandoc.Span(pandoc.Str(value))}, nil
}
