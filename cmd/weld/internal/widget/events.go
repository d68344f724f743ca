package widget

import (
	"fmt"
	"strings"
)

// eventWriter synthesizes the connection statements for event bindings.
// Primitive widgets connect toolkit signals; composed widgets subscribe
// to the child component's own message stream, which only supports
// message-feeding bindings.
type eventWriter struct {
	idents  Idents
	weakFor map[string]string
}

func newEventWriter(idents Idents) *eventWriter {
	return &eventWriter{idents: idents, weakFor: make(map[string]string)}
}

// bind produces the wiring statements for a single binding. More than
// one statement comes back only when the widget's weak handle has to be
// materialized first.
func (w *eventWriter) bind(widget string, save bool, event string, b Binding, kind Kind) ([]string, error) {
	switch kind {
	case KindPrimitive:
		return w.bindPrimitive(widget, save, event, b)
	case KindComposed:
		return w.bindComposed(widget, event, b)
	}
	return nil, fmt.Errorf("widget %q: unknown kind %d", widget, kind)
}

func (w *eventWriter) bindPrimitive(widget string, save bool, event string, b Binding) ([]string, error) {
	params := paramList(b.Params)
	names := strings.Join(b.Params, ", ")

	switch b.Return {
	case ReturnNone:
		return []string{fmt.Sprintf("%s.Connect(%q, func(%s) {\n\t%s\n})",
			widget, event, params, w.send(b))}, nil

	case ReturnValue:
		if b.Foreign != "" {
			return nil, &Diag{
				Code:   CodeUnsupportedEventShape,
				Widget: widget,
				Detail: fmt.Sprintf("event %q: return-carrying bindings must target the current widget", event),
			}
		}
		return []string{fmt.Sprintf("%s.Connect(%q, func(%s) bool {\n\t%s\n\treturn %s\n})",
			widget, event, params, w.send(b), b.ReturnExpr)}, nil

	case ReturnCall:
		if b.Foreign != "" {
			return nil, &Diag{
				Code:   CodeUnsupportedEventShape,
				Widget: widget,
				Detail: fmt.Sprintf("event %q: computed-return bindings must target the current widget", event),
			}
		}
		if !b.UsesModel {
			return []string{fmt.Sprintf("%s.Connect(%q, func(%s) bool {\n\treturn %s(%s)\n})",
				widget, event, params, b.Func, names)}, nil
		}

		var stmts []string
		weakIdent := CloneIdent
		if save {
			ident, ok := w.weakFor[widget]
			if !ok {
				ident = widget + "Weak"
				w.weakFor[widget] = ident
				stmts = append(stmts, fmt.Sprintf("%s := %s", ident, CloneIdent))
			}
			weakIdent = ident
		}
		args := SelfIdent
		if names != "" {
			args += ", " + names
		}
		// The weak handle is upgraded for the duration of each
		// invocation only; holding it strong across the closure's
		// lifetime would cycle the component with its own widget.
		stmts = append(stmts, fmt.Sprintf(
			"%s.Connect(%q, func(%s) bool {\n\t%s, ok := %s.Upgrade()\n\tif !ok {\n\t\treturn false\n\t}\n\treturn %s(%s)\n})",
			widget, event, params, SelfIdent, weakIdent, b.Func, args))
		return stmts, nil
	}
	return nil, fmt.Errorf("widget %q: unknown return mode %d", widget, b.Return)
}

func (w *eventWriter) bindComposed(widget, event string, b Binding) ([]string, error) {
	if b.Return != ReturnNone {
		return nil, errUnsupportedEventShape(widget, event)
	}
	return []string{fmt.Sprintf("%s.Observe(%s, %q, func(%s) {\n\t%s\n})",
		w.idents.Runtime, widget, event, paramList(b.Params), w.send(b))}, nil
}

// send renders the message-feeding statement for a binding: into the
// enclosing component's own sink, or forwarded into a foreign widget's.
func (w *eventWriter) send(b Binding) string {
	if b.Foreign != "" {
		return fmt.Sprintf("%s.Forward(%s, %s)", w.idents.Runtime, b.Foreign, b.Message)
	}
	return fmt.Sprintf("%s.Send(%s)", HandleIdent, b.Message)
}

func paramList(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return strings.Join(params, ", ") + " any"
}
