package widget

import "fmt"

// Context records the identity of the tree root: its name, the static
// type of its toolkit-facing root widget, and the accessor expression
// that reaches that root widget from the builder's local scope. The
// walker writes it exactly once, when it meets the single parentless
// node; the assembly and file-emission steps read it.
type Context struct {
	RootName string
	RootType string
	RootExpr string
	Generics string

	populated bool
}

func (c *Context) setRoot(name, typ, expr string) error {
	if c.populated {
		return fmt.Errorf("root widget already recorded as %q, cannot re-record as %q", c.RootName, name)
	}
	c.RootName = name
	c.RootType = typ
	c.RootExpr = expr
	c.populated = true
	return nil
}

func (c *Context) root() (name, typ, expr string, err error) {
	if !c.populated {
		return "", "", "", errMissingRoot("no widget in the tree is parentless")
	}
	return c.RootName, c.RootType, c.RootExpr, nil
}
