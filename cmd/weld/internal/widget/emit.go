package widget

import "strings"

// Naming helpers shared by the emitter and the capability synthesizer.

// exportName converts a DSL property or accessor key to the exported Go
// method fragment: "label" -> "Label", "border_width" -> "BorderWidth".
func exportName(key string) string {
	parts := strings.Split(key, "_")
	var out strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		out.WriteString(strings.ToUpper(p[:1]))
		out.WriteString(p[1:])
	}
	return out.String()
}

// splitType resolves a type reference against the toolkit ident.
// "gtk.Window" keeps its qualifier; "Window" resolves to the toolkit
// package.
func splitType(ref, toolkit string) (pkg, base string) {
	if i := strings.LastIndex(ref, "."); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return toolkit, ref
}

func qualifyType(ref, toolkit string) string {
	pkg, base := splitType(ref, toolkit)
	return pkg + "." + base
}

// genericArgs reduces a generic parameter list to its instantiation
// arguments: "[T any, U comparable]" -> "[T, U]".
func genericArgs(params string) string {
	s := strings.TrimSpace(params)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	var names []string
	depth := 0
	start := 0
	flush := func(end int) {
		seg := strings.TrimSpace(s[start:end])
		if seg == "" {
			return
		}
		if i := strings.IndexAny(seg, " \t"); i >= 0 {
			seg = seg[:i]
		}
		names = append(names, seg)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	if len(names) == 0 {
		return ""
	}
	return "[" + strings.Join(names, ", ") + "]"
}
