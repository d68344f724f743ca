package widget

// AST for parsed widget trees. The tree is produced by the external DSL
// parser (serialized as a .weld.yml document, see decode.go) and is not
// modified during lowering.

// Kind discriminates the two widget varieties. Every operation that
// depends on the variety switches exhaustively on this value.
type Kind int

const (
	// KindPrimitive is a widget instantiated directly from the host
	// toolkit's native widget types.
	KindPrimitive Kind = iota

	// KindComposed is a widget instantiated as a nested reactive
	// component with its own model and message loop.
	KindComposed
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindComposed:
		return "composed"
	}
	return "unknown"
}

// Well-known local identifiers shared with the parser. Generated code uses
// these names for the enclosing component's message-loop handle, the
// wrapped component reference, the weak back-reference captured inside
// callbacks, and the model parameter.
const (
	HandleIdent = "__loop"
	SelfIdent   = "__self"
	CloneIdent  = "__weak"
	ModelIdent  = "__model"
)

// Property is one key/value pair of a widget's ordered property list.
// Values are raw expressions; they pass through the Rewriter before being
// spliced into setter calls.
type Property struct {
	Key   string
	Value string
}

// Node is a single widget in the tree.
type Node struct {
	// Name is the widget's identifier, unique within the tree. It becomes
	// the local variable name in the generated builder and, when the
	// widget is saved, the component struct field name.
	Name string

	// Type is the widget's type reference, e.g. "gtk.Label" for a
	// primitive widget or "TitleBar" for a composed one. Unqualified
	// primitive types are resolved against the configured toolkit ident.
	Type string

	Kind Kind

	// Save requests a component struct field for this widget even when
	// nothing else would force one.
	Save bool

	// InitParams are constructor arguments (primitive) or model
	// initializer arguments (composed), spliced in declaration order.
	InitParams []string

	// Properties are applied with set_<key> convention setters. The
	// "visible" property is special-cased: it is applied after the
	// widget is shown.
	Properties []Property

	// ChildProps are set_child_<key> setters interpreted by the parent
	// container.
	ChildProps []Property

	// Slot marks this widget as a container attachment point. Nil means
	// the widget is not an attachment point; a pointer to the empty
	// string is the default attachment point.
	Slot *string

	Children []*Node

	// Events maps event names to their bindings, in declaration order.
	Events []EventSet

	// ChildEvents are bindings on named sub-widgets of a composed
	// widget, reached through a Get<Child>() accessor.
	ChildEvents []ChildEvent
}

// EventSet is all bindings declared for one event name.
type EventSet struct {
	Event    string
	Bindings []Binding
}

// ChildEvent is one binding on a composed widget's named child.
type ChildEvent struct {
	Child   string
	Event   string
	Binding Binding
}

// ReturnMode selects what the generated callback returns to the toolkit.
type ReturnMode int

const (
	// ReturnNone feeds a message into a sink and returns nothing.
	ReturnNone ReturnMode = iota

	// ReturnValue feeds a message and additionally evaluates a fixed
	// expression as the toolkit-required callback return value.
	ReturnValue

	// ReturnCall invokes a user function to compute the return value,
	// optionally granting it access to the component through the weak
	// back-reference.
	ReturnCall
)

// Binding is one event binding on a widget.
type Binding struct {
	// Params are the trigger's bound parameter names, in order.
	Params []string

	// Foreign names another, already-declared widget whose message sink
	// receives the message. Empty means the enclosing component's own
	// sink.
	Foreign string

	// Message is the message expression fed into the sink. Unused for
	// ReturnCall bindings.
	Message string

	Return ReturnMode

	// ReturnExpr is the fixed return expression for ReturnValue.
	ReturnExpr string

	// Func is the return-computing function for ReturnCall.
	Func string

	// UsesModel grants Func read access to the component state. The
	// callback captures only the weak back-reference and upgrades it per
	// invocation.
	UsesModel bool
}
