package widget

import (
	"errors"
	"fmt"
)

// Code identifies a class of tree error. All of them are fatal: the
// compiler aborts on the first one and produces no partial output.
type Code int

const (
	// CodeDuplicateSlot is reported when the same attachment point
	// (named or default) is declared on two widgets.
	CodeDuplicateSlot Code = iota + 1

	// CodeMissingDefaultSlot is reported when a named attachment point
	// exists without a default one anywhere in the tree.
	CodeMissingDefaultSlot

	// CodeUnsupportedEventShape is reported when a return-carrying
	// binding is declared on a composed widget.
	CodeUnsupportedEventShape

	// CodeMissingRoot is reported when the tree has no root widget.
	CodeMissingRoot
)

func (c Code) String() string {
	switch c {
	case CodeDuplicateSlot:
		return "DuplicateSlot"
	case CodeMissingDefaultSlot:
		return "MissingDefaultSlot"
	case CodeUnsupportedEventShape:
		return "UnsupportedEventShape"
	case CodeMissingRoot:
		return "MissingRoot"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Diag is a fatal compile diagnostic.
type Diag struct {
	Code   Code
	Widget string
	Detail string
}

func (d *Diag) Error() string {
	if d.Widget == "" {
		return fmt.Sprintf("%s: %s", d.Code, d.Detail)
	}
	return fmt.Sprintf("%s: widget %q: %s", d.Code, d.Widget, d.Detail)
}

// AsDiag unwraps a *Diag from an error chain.
func AsDiag(err error) (*Diag, bool) {
	var d *Diag
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

func errDuplicateSlot(widget string, named bool, slot string) error {
	attr := "default_slot"
	if named {
		attr = fmt.Sprintf("slot %q", slot)
	}
	return &Diag{
		Code:   CodeDuplicateSlot,
		Widget: widget,
		Detail: fmt.Sprintf("attachment point %s is already declared on another widget", attr),
	}
}

func errMissingDefaultSlot(slots []string) error {
	return &Diag{
		Code:   CodeMissingDefaultSlot,
		Detail: fmt.Sprintf("named attachment points %v declared without a default attachment point", slots),
	}
}

func errUnsupportedEventShape(widget, event string) error {
	return &Diag{
		Code:   CodeUnsupportedEventShape,
		Widget: widget,
		Detail: fmt.Sprintf("event %q: return-carrying bindings are not supported on composed widgets", event),
	}
}

func errMissingRoot(detail string) error {
	return &Diag{Code: CodeMissingRoot, Detail: detail}
}
