package widget

import (
	"fmt"
	"sort"
	"strings"
)

// synthesizeCapability emits the container capability methods for a
// component whose tree declared attachment points. With no attachment
// points it emits nothing. A named attachment point without a default
// one is a fatal diagnostic. The AddWidget dispatcher is only emitted
// when more than one attachment point exists; its branches cover the
// named slots in sorted order, with the default slot as the fallback.
func synthesizeCapability(reg *slotRegistry, component, generics string, idents Idents) (string, error) {
	if reg.len() == 0 {
		return "", nil
	}
	def, ok := reg.defaultEntry()
	if !ok {
		var names []string
		for _, e := range reg.all() {
			names = append(names, e.Slot)
		}
		return "", errMissingDefaultSlot(names)
	}

	recv := fmt.Sprintf("c *%s%s", component, genericArgs(generics))

	var b strings.Builder
	fmt.Fprintf(&b, "func (%s) Container() %s {\n\treturn c.%s\n}\n",
		recv, entryFieldType(def, idents), def.Widget)

	if reg.len() > 1 {
		named := make([]slotEntry, 0, reg.len()-1)
		for _, e := range reg.all() {
			if e.Named {
				named = append(named, e)
			}
		}
		sort.Slice(named, func(i, j int) bool { return named[i].Slot < named[j].Slot })

		fmt.Fprintf(&b, "\nfunc (%s) AddWidget(child %s.AnyComponent) %s.Container {\n",
			recv, idents.Runtime, idents.Toolkit)
		for _, e := range named {
			fmt.Fprintf(&b, "\tif child.Slot() == %q {\n", e.Slot)
			writeAttach(&b, e, idents, "\t\t")
			b.WriteString("\t}\n")
		}
		writeAttach(&b, def, idents, "\t")
		b.WriteString("}\n")
	}
	return b.String(), nil
}

// writeAttach emits the add-and-return body for one attachment point,
// using the toolkit add for primitive containers and the runtime add for
// composed ones.
func writeAttach(b *strings.Builder, e slotEntry, idents Idents, indent string) {
	switch e.Kind {
	case KindPrimitive:
		fmt.Fprintf(b, "%sc.%s.Add(child.Root())\n", indent, e.Widget)
		fmt.Fprintf(b, "%sreturn c.%s\n", indent, e.Widget)
	case KindComposed:
		fmt.Fprintf(b, "%s%s.Add(c.%s, child.Root())\n", indent, idents.Runtime, e.Widget)
		fmt.Fprintf(b, "%sreturn c.%s.Widget().Root()\n", indent, e.Widget)
	}
}

func entryFieldType(e slotEntry, idents Idents) string {
	switch e.Kind {
	case KindComposed:
		return fmt.Sprintf("*%s.Component[%s]", idents.Runtime, e.Type)
	default:
		return "*" + qualifyType(e.Type, idents.Toolkit)
	}
}
