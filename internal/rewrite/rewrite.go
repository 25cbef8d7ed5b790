// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite turns the paper class's custom LaTeX macros into plain
// LaTeX that pandoc understands. It works line by line: an ordered table
// of regex substitutions, plus special handling for \author and \affil
// declarations, which are collected and re-emitted as a single combined
// byline right before \maketitle.
package rewrite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	authorPattern = regexp.MustCompile(`\\author\[(.*)\]\{(.*)\}`)
	affilPattern  = regexp.MustCompile(`\\affil\[(.*)\]\{(.*)\}`)
)

const titleMarker = `\maketitle`

// Rewriter accumulates author and affiliation declarations during a single
// forward scan of the source. It is single-use: create one per input file.
type Rewriter struct {
	authors      []string
	affiliations []string
}

// New returns a Rewriter ready to process one source file.
func New() *Rewriter {
	return &Rewriter{}
}

// Rewrite reads LaTeX source from r line by line, applies the substitution
// table, and writes the transformed source to w. Author and affiliation
// declarations produce no output of their own; their combined byline is
// emitted when the \maketitle marker is reached. Lines that match no rule
// pass through unchanged apart from surrounding whitespace being trimmed.
func (rw *Rewriter) Rewrite(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if m := authorPattern.FindStringSubmatch(line); m != nil {
			rw.authors = append(rw.authors, m[2]+"$^{"+m[1]+"}$")
			continue
		}
		if m := affilPattern.FindStringSubmatch(line); m != nil {
			rw.affiliations = append(rw.affiliations, "$^{"+m[1]+"}$"+m[2])
			continue
		}
		if strings.TrimSpace(line) == titleMarker {
			rw.writeByline(bw)
		}

		line = applyRules(line)
		if _, err := bw.WriteString(strings.TrimSpace(line) + "\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeByline emits the collected authors and affiliations as one
// \author{...} block: authors joined on a single line, then one
// affiliation per line.
func (rw *Rewriter) writeByline(w *bufio.Writer) {
	w.WriteString(`\author{` + strings.Join(rw.authors, ", ") + "\\\\\n")
	w.WriteString(strings.Join(rw.affiliations, "\\\\\n") + "}\n")
}

// RewriteFile rewrites the LaTeX source at inPath into outPath. A missing
// or unreadable input file is fatal and propagates as-is.
func RewriteFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening source %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", outPath, err)
	}

	if err := New().Rewrite(in, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output %s: %w", outPath, err)
	}
	return nil
}
