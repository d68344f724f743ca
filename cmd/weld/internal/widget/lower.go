package widget

import (
	"fmt"
	"strings"
)

// Idents are the package identifiers the generated code references: the
// host toolkit binding and the reactive component runtime.
type Idents struct {
	Toolkit string
	Runtime string
}

func (i Idents) withDefaults() Idents {
	if i.Toolkit == "" {
		i.Toolkit = "gtk"
	}
	if i.Runtime == "" {
		i.Runtime = "relay"
	}
	return i
}

// Options configure one tree compilation.
type Options struct {
	// Component is the name of the component type the tree belongs to.
	Component string

	// Generics is the component's generic parameter list, including
	// brackets and constraints, or empty.
	Generics string

	Idents Idents

	// Rewriter strips parser marker syntax from property values.
	// Defaults to StripMarkers.
	Rewriter Rewriter
}

// Field is one generated component struct field.
type Field struct {
	Name string
	Type string
}

// Artifact is everything one tree compilation produces.
type Artifact struct {
	// Statements is the linear builder body: construction of the whole
	// tree, all event wiring, and the final binding of the component
	// state into its shared handle.
	Statements []string

	// Wiring repeats the event wiring statements on their own, in
	// emission order.
	Wiring []string

	// Names lists every widget name in walk order.
	Names []string

	// Fields are the component struct fields the caller must declare:
	// the root widget, every saved widget, every attachment point, and
	// every composed child.
	Fields []Field

	RootName string
	RootType string
	RootExpr string

	// Capability is the container capability method fragment, empty
	// when the tree declares no attachment points.
	Capability string
}

// Compile lowers a widget tree into the imperative builder statements for
// its component. Any tree error aborts the compilation with a *Diag; no
// partial output is returned.
func Compile(root *Node, opts Options) (*Artifact, error) {
	if root == nil {
		return nil, errMissingRoot("the tree is empty")
	}
	if opts.Component == "" {
		return nil, fmt.Errorf("component name is required")
	}
	idents := opts.Idents.withDefaults()
	rw := opts.Rewriter
	if rw == nil {
		rw = defaultRewriter
	}

	g := &generator{
		idents:     idents,
		rw:         rw,
		ctx:        &Context{Generics: opts.Generics},
		slots:      newSlotRegistry(),
		events:     newEventWriter(idents),
		fieldIndex: make(map[string]int),
	}
	if err := g.emit(root, nil); err != nil {
		return nil, err
	}

	rootName, rootType, rootExpr, err := g.ctx.root()
	if err != nil {
		return nil, err
	}
	if _, ok := g.fieldIndex[rootName]; !ok {
		// The root widget is always addressable on the component.
		g.fields = append([]Field{{Name: rootName, Type: g.rootFieldType}}, g.fields...)
	}

	capability, err := synthesizeCapability(g.slots, opts.Component, opts.Generics, idents)
	if err != nil {
		return nil, err
	}

	comp := opts.Component + genericArgs(opts.Generics)
	stmts := make([]string, 0, len(g.stmts)+3)
	stmts = append(stmts,
		fmt.Sprintf("%s := %s.NewRef[%s]()", SelfIdent, idents.Runtime, comp),
		fmt.Sprintf("%s := %s.Weak()", CloneIdent, SelfIdent),
	)
	stmts = append(stmts, g.stmts...)

	var bind strings.Builder
	fmt.Fprintf(&bind, "%s.Bind(&%s{\n", SelfIdent, comp)
	seen := map[string]bool{rootName: true}
	fmt.Fprintf(&bind, "\t%s: %s,\n", rootName, rootName)
	for _, f := range g.fields {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		fmt.Fprintf(&bind, "\t%s: %s,\n", f.Name, f.Name)
	}
	fmt.Fprintf(&bind, "\tmodel: %s,\n})", ModelIdent)
	stmts = append(stmts, bind.String())

	return &Artifact{
		Statements: stmts,
		Wiring:     g.wiring,
		Names:      g.names,
		Fields:     g.fields,
		RootName:   rootName,
		RootType:   rootType,
		RootExpr:   rootExpr,
		Capability: capability,
	}, nil
}

type generator struct {
	idents Idents
	rw     Rewriter
	ctx    *Context
	slots  *slotRegistry
	events *eventWriter

	stmts  []string
	wiring []string
	names  []string

	fields        []Field
	fieldIndex    map[string]int
	rootFieldType string
}

func (g *generator) say(format string, args ...any) {
	g.stmts = append(g.stmts, fmt.Sprintf(format, args...))
}

func (g *generator) emit(n *Node, parent *Node) error {
	switch n.Kind {
	case KindPrimitive:
		return g.primitive(n, parent)
	case KindComposed:
		return g.composed(n, parent)
	}
	return fmt.Errorf("widget %q: unknown kind %d", n.Name, n.Kind)
}

// primitive emits one toolkit widget: construct, decorate, recurse,
// insert, show, then the deferred visible property, child properties on
// the parent's container, and finally this widget's event wiring.
func (g *generator) primitive(n *Node, parent *Node) error {
	g.names = append(g.names, n.Name)
	qual := qualifyType(n.Type, g.idents.Toolkit)
	fieldType := "*" + qual
	if err := g.registerSlot(n, fieldType); err != nil {
		return err
	}
	if n.Save {
		g.addField(n.Name, fieldType)
	}

	pkg, base := splitType(n.Type, g.idents.Toolkit)
	if len(n.InitParams) == 0 {
		// Toolkit objects without a typed constructor: generic
		// construction by declared type, downcast to the static type.
		g.say("%s := %s.NewObject(%q).(*%s)", n.Name, pkg, base, qual)
	} else {
		g.say("%s := %s.New%s(%s)", n.Name, pkg, base, strings.Join(n.InitParams, ", "))
	}

	var visible *string
	for _, p := range n.Properties {
		v := g.rw.Rewrite(p.Value)
		if p.Key == "visible" {
			visible = &v
			continue
		}
		g.say("%s.Set%s(%s)", n.Name, exportName(p.Key), v)
	}

	wiring, err := g.collectEvents(n)
	if err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := g.emit(child, n); err != nil {
			return err
		}
	}

	switch {
	case parent == nil:
		if err := g.ctx.setRoot(n.Name, fieldType, n.Name); err != nil {
			return err
		}
		g.rootFieldType = fieldType
	case parent.Kind == KindPrimitive:
		g.say("%s.Add(%s)", parent.Name, n.Name)
	default:
		g.say("%s.Add(%s, %s)", g.idents.Runtime, parent.Name, n.Name)
	}

	g.say("%s.Show()", n.Name)
	// Some toolkits reset visibility set before realization, so the
	// visible property lands after Show.
	if visible != nil {
		g.say("%s.SetVisible(%s)", n.Name, *visible)
	}
	g.childProps(n, parent, n.Name)
	g.stmts = append(g.stmts, wiring...)
	return nil
}

// composed emits one nested component: mount it under the parent (or
// create it standalone at the root), decorate through its widget
// accessor, recurse, then child properties and event wiring. Composed
// widgets show themselves during their own construction.
func (g *generator) composed(n *Node, parent *Node) error {
	g.names = append(g.names, n.Name)
	compType := fmt.Sprintf("*%s.Component[%s]", g.idents.Runtime, n.Type)
	if err := g.registerSlot(n, compType); err != nil {
		return err
	}
	g.addField(n.Name, compType)

	wiring, err := g.collectEvents(n)
	if err != nil {
		return err
	}

	args := ""
	if len(n.InitParams) > 0 {
		args = ", " + strings.Join(n.InitParams, ", ")
	}
	rt := g.idents.Runtime
	switch {
	case parent == nil:
		g.say("%s := %s.NewComponent[%s](%s%s)", n.Name, rt, n.Type, HandleIdent, args)
		rootType := fmt.Sprintf("%s.RootOf[%s]", rt, n.Type)
		rootExpr := fmt.Sprintf("%s.Widget().Root()", n.Name)
		if err := g.ctx.setRoot(n.Name, rootType, rootExpr); err != nil {
			return err
		}
		g.rootFieldType = compType
	case parent.Kind == KindPrimitive:
		g.say("%s := %s.Mount[%s](%s, %s%s)", n.Name, rt, n.Type, parent.Name, HandleIdent, args)
	default:
		g.say("%s := %s.MountIn[%s](%s, %s%s)", n.Name, rt, n.Type, parent.Name, HandleIdent, args)
	}

	var visible *string
	for _, p := range n.Properties {
		v := g.rw.Rewrite(p.Value)
		if p.Key == "visible" {
			visible = &v
			continue
		}
		g.say("%s.Widget().Set%s(%s)", n.Name, exportName(p.Key), v)
	}
	if visible != nil {
		g.say("%s.Widget().SetVisible(%s)", n.Name, *visible)
	}

	for _, child := range n.Children {
		if err := g.emit(child, n); err != nil {
			return err
		}
	}

	g.childProps(n, parent, fmt.Sprintf("%s.Widget().Root()", n.Name))
	g.stmts = append(g.stmts, wiring...)
	return nil
}

// childProps emits set_child_<key> setters on the parent's container
// accessor: the parent itself for a primitive parent, its declared
// container for a composed one.
func (g *generator) childProps(n *Node, parent *Node, childRoot string) {
	if parent == nil {
		return
	}
	for _, p := range n.ChildProps {
		v := g.rw.Rewrite(p.Value)
		target := parent.Name
		if parent.Kind == KindComposed {
			target = fmt.Sprintf("%s.ContainerOf(%s.Widget())", g.idents.Runtime, parent.Name)
		}
		g.say("%s.SetChild%s(%s, %s)", target, exportName(p.Key), childRoot, v)
	}
}

// collectEvents synthesizes this widget's wiring statements. They are
// collected while the widget is visited but spliced at the end of its own
// statement block, after the widget is shown.
func (g *generator) collectEvents(n *Node) ([]string, error) {
	var out []string
	save := n.Save || n.Slot != nil
	for _, set := range n.Events {
		for _, b := range set.Bindings {
			stmts, err := g.events.bind(n.Name, save, set.Event, b, n.Kind)
			if err != nil {
				return nil, err
			}
			out = append(out, stmts...)
		}
	}
	for _, ce := range n.ChildEvents {
		accessor := fmt.Sprintf("%s.Get%s()", n.Name, exportName(ce.Child))
		if n.Kind == KindComposed {
			accessor = fmt.Sprintf("%s.Widget().Get%s()", n.Name, exportName(ce.Child))
		}
		stmts, err := g.events.bind(accessor, false, ce.Event, ce.Binding, KindPrimitive)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	g.wiring = append(g.wiring, out...)
	return out, nil
}

// registerSlot records an attachment point and forces a struct field for
// it: attachment points must be addressable from the capability
// implementation regardless of the widget's save flag.
func (g *generator) registerSlot(n *Node, fieldType string) error {
	if n.Slot == nil {
		return nil
	}
	named := *n.Slot != ""
	if err := g.slots.register(named, *n.Slot, n.Name, n.Type, n.Kind); err != nil {
		return err
	}
	g.addField(n.Name, fieldType)
	return nil
}

func (g *generator) addField(name, typ string) {
	if _, ok := g.fieldIndex[name]; ok {
		return
	}
	g.fieldIndex[name] = len(g.fields)
	g.fields = append(g.fields, Field{Name: name, Type: typ})
}
