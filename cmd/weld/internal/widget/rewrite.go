package widget

import "strings"

// Rewriter strips the parser's internal marker syntax from a property
// value before it is spliced into a setter call. It is a pure function of
// the expression and never touches the tree.
type Rewriter interface {
	Rewrite(expr string) string
}

// RewriterFunc adapts a plain function to the Rewriter interface.
type RewriterFunc func(string) string

func (f RewriterFunc) Rewrite(expr string) string { return f(expr) }

// StripMarkers is the default rewriter. The parser wraps sub-expressions
// it tracks for model updates in #[...] markers; the generated code wants
// the bare expression. Plain brackets (indexing, slicing, composite
// literals) nest inside markers, so each ] is paired with the kind of
// bracket that opened it.
func StripMarkers(expr string) string {
	if !strings.Contains(expr, "#[") {
		return expr
	}
	var out strings.Builder
	var marker []bool
	for i := 0; i < len(expr); i++ {
		if strings.HasPrefix(expr[i:], "#[") {
			marker = append(marker, true)
			i++
			continue
		}
		switch expr[i] {
		case '[':
			marker = append(marker, false)
		case ']':
			if n := len(marker); n > 0 {
				m := marker[n-1]
				marker = marker[:n-1]
				if m {
					continue
				}
			}
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}

var defaultRewriter Rewriter = RewriterFunc(StripMarkers)
