// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import "regexp"

// rule pairs a macro pattern with its replacement template. Templates use
// regexp.Expand syntax: ${1} references the capture, $$ is a literal $.
type rule struct {
	pattern  *regexp.Regexp
	template string
}

// rules is the ordered substitution table applied to every source line.
// Order matters: the composite \tcov/\icov forms must run before the bare
// \mat/\emat rules consume their inner groups, and the bare \cov family
// runs last so earlier rewrites are left alone.
var rules = []rule{
	{regexp.MustCompile(`\\begin\{figure\*\}`), `\begin{figure}`},
	{regexp.MustCompile(`\\end\{figure\*\}`), `\end{figure}`},
	{regexp.MustCompile(`\\tcov\{\\mat\{([^}]+)\}\}`), `$$\mathbf{\Sigma}_\mathbf{${1}}$$`},
	{regexp.MustCompile(`\\tcov\{\\emat\{([^}]+)\}\}`), `$$\mathbf{\Sigma}_{\widehat{\mathbf{${1}}}}$$`},
	{regexp.MustCompile(`\\tcov\{\\text\{([^}]+)\}\}`), `$$\mathbf{\Sigma}_\text{${1}}$$`},
	{regexp.MustCompile(`\\icov\{\\emat\{([^}]+)\}\}`), `\mathbf{\Sigma}^{-1}_{\widehat{\mathbf{${1}}}}`},
	{regexp.MustCompile(`\\ticov\{\\emat\{([^}]+)\}\}`), `$$\mathbf{\Sigma}^{-1}_{\widehat{\mathbf{${1}}}}$$`},
	{regexp.MustCompile(`\\mat\{([^}]+)\}`), `\mathbf{${1}}`},
	{regexp.MustCompile(`\\vec\{([^}]+)\}`), `\mathbf{${1}}`},
	{regexp.MustCompile(`\\tmat\{([^}]+)\}`), `$$\mathbf{${1}}$$`},
	{regexp.MustCompile(`\\tvec\{([^}]+)\}`), `$$\mathbf{${1}}$$`},
	{regexp.MustCompile(`\\emat\{([^}]+)\}`), `\widehat{\mathbf{${1}}}`},
	{regexp.MustCompile(`\\evec\{([^}]+)\}`), `\widehat{\mathbf{${1}}}`},
	{regexp.MustCompile(`\\temat\{([^}]+)\}`), `$$\widehat{\mathbf{${1}}}$$`},
	{regexp.MustCompile(`\\tevec\{([^}]+)\}`), `$$\widehat{\mathbf{${1}}}$$`},
	{regexp.MustCompile(`\\trans`), `^\mathsf{T}`},
	{regexp.MustCompile(`\\hermconj`), `^\mathsf{H}`},
	{regexp.MustCompile(`\\cov\{([^}]+)\}`), `\mathbf{\Sigma}_\mathbf{${1}}`},
	{regexp.MustCompile(`\\icov\{([^}]+)\}`), `\mathbf{\Sigma}^{-1}_\mathbf{${1}}`},
	{regexp.MustCompile(`\\tcov\{([^}]+)\}`), `$$\mathbf{\Sigma}_\mathbf{${1}}$$`},
	{regexp.MustCompile(`\\ticov\{([^}]+)\}`), `$$\mathbf{\Sigma}^{-1}_\mathbf{${1}}$$`},
	{regexp.MustCompile(`\\vspace\{2ex\}`), ``},
	{regexp.MustCompile(`\\centering`), ``},
}

// applyRules runs every substitution rule over the line, in table order.
func applyRules(line string) string {
	for _, r := range rules {
		line = r.pattern.ReplaceAllString(line, r.template)
	}
	return line
}
