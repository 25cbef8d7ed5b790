// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"fmt"
	"sort"
)

// Action is applied to every tagged node of a document, children before
// the node itself, in document order. parent is the nearest enclosing
// tagged node, or nil at the top level.
//
// Return (nil, nil) to keep the node (in-place mutation is fine). Return a
// non-nil slice to substitute: one element replaces the node, several are
// spliced into the enclosing sequence, an empty slice deletes the node.
// Replacement nodes are not walked again.
type Action func(e, parent *Elem) ([]*Elem, error)

// Walk applies action to every node under doc's blocks. Metadata is not
// walked. An error from the action aborts the walk immediately.
func Walk(doc *Doc, action Action) error {
	out := make([]*Elem, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		repl, err := walkElem(b, action, nil)
		if err != nil {
			return err
		}
		out = append(out, repl...)
	}
	doc.Blocks = out
	return nil
}

// walkElem walks e's content, then applies action to e, returning the
// node(s) that stand in e's place.
func walkElem(e *Elem, action Action, parent *Elem) ([]*Elem, error) {
	c, err := walkValue(e.C, action, e)
	if err != nil {
		return nil, err
	}
	e.C = c
	repl, err := action(e, parent)
	if err != nil {
		return nil, err
	}
	if repl == nil {
		return []*Elem{e}, nil
	}
	return repl, nil
}

func walkValue(v any, action Action, parent *Elem) (any, error) {
	switch val := v.(type) {
	case *Elem:
		repl, err := walkElem(val, action, parent)
		if err != nil {
			return nil, err
		}
		// A node outside a sequence has exactly one slot to fill.
		if len(repl) != 1 {
			return nil, fmt.Errorf("cannot replace %s node with %d nodes outside a sequence", val.Type, len(repl))
		}
		return repl[0], nil
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if child, ok := item.(*Elem); ok {
				repl, err := walkElem(child, action, parent)
				if err != nil {
					return nil, err
				}
				for _, r := range repl {
					out = append(out, r)
				}
				continue
			}
			w, err := walkValue(item, action, parent)
			if err != nil {
				return nil, err
			}
			out = append(out, w)
		}
		return out, nil
	case map[string]any:
		// Keys are visited in sorted order so that stateful actions see a
		// deterministic document order.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w, err := walkValue(val[k], action, parent)
			if err != nil {
				return nil, err
			}
			val[k] = w
		}
		return val, nil
	default:
		return v, nil
	}
}
