package widget

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// decode.go reads the external parser's serialized widget tree
// (.weld.yml) into the AST. Decoding walks yaml.Node mappings directly
// so that property, child-property, and event declaration order is
// preserved exactly; plain map decoding would lose it.

// Document is one serialized widget tree plus its component metadata.
type Document struct {
	Package   string
	Component string
	Model     string
	Generics  string
	Widget    *Node
}

// DecodeDocument parses a .weld.yml document.
func DecodeDocument(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document must be a mapping", m.Line)
	}

	doc := &Document{}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		switch key.Value {
		case "package":
			doc.Package = val.Value
		case "component":
			doc.Component = val.Value
		case "model":
			doc.Model = val.Value
		case "generics":
			doc.Generics = val.Value
		case "widget":
			n, err := decodeNode(val)
			if err != nil {
				return nil, err
			}
			doc.Widget = n
		default:
			return nil, fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}
	if doc.Component == "" {
		return nil, fmt.Errorf("document is missing the component name")
	}
	return doc, nil
}

func decodeNode(v *yaml.Node) (*Node, error) {
	if v.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: widget must be a mapping", v.Line)
	}
	n := &Node{}
	for i := 0; i+1 < len(v.Content); i += 2 {
		key, val := v.Content[i], v.Content[i+1]
		switch key.Value {
		case "name":
			n.Name = val.Value
		case "type":
			n.Type = val.Value
		case "kind":
			switch val.Value {
			case "", "primitive":
				n.Kind = KindPrimitive
			case "composed":
				n.Kind = KindComposed
			default:
				return nil, fmt.Errorf("line %d: unknown widget kind %q", val.Line, val.Value)
			}
		case "save":
			if err := val.Decode(&n.Save); err != nil {
				return nil, fmt.Errorf("line %d: save: %w", val.Line, err)
			}
		case "init":
			params, err := decodeStrings(val)
			if err != nil {
				return nil, err
			}
			n.InitParams = params
		case "properties":
			props, err := decodeProps(val)
			if err != nil {
				return nil, err
			}
			n.Properties = props
		case "child_properties":
			props, err := decodeProps(val)
			if err != nil {
				return nil, err
			}
			n.ChildProps = props
		case "slot":
			s := val.Value
			n.Slot = &s
		case "default_slot":
			var b bool
			if err := val.Decode(&b); err != nil {
				return nil, fmt.Errorf("line %d: default_slot: %w", val.Line, err)
			}
			if b {
				empty := ""
				n.Slot = &empty
			}
		case "children":
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: children must be a sequence", val.Line)
			}
			for _, c := range val.Content {
				child, err := decodeNode(c)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, child)
			}
		case "events":
			sets, err := decodeEvents(val)
			if err != nil {
				return nil, err
			}
			n.Events = sets
		case "child_events":
			ces, err := decodeChildEvents(val)
			if err != nil {
				return nil, err
			}
			n.ChildEvents = ces
		default:
			return nil, fmt.Errorf("line %d: unknown widget key %q", key.Line, key.Value)
		}
	}
	if n.Name == "" {
		return nil, fmt.Errorf("line %d: widget is missing a name", v.Line)
	}
	if n.Type == "" {
		return nil, fmt.Errorf("widget %q is missing a type", n.Name)
	}
	return n, nil
}

func decodeProps(v *yaml.Node) ([]Property, error) {
	if v.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: properties must be a mapping", v.Line)
	}
	props := make([]Property, 0, len(v.Content)/2)
	for i := 0; i+1 < len(v.Content); i += 2 {
		props = append(props, Property{
			Key:   v.Content[i].Value,
			Value: v.Content[i+1].Value,
		})
	}
	return props, nil
}

func decodeStrings(v *yaml.Node) ([]string, error) {
	if v.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a sequence", v.Line)
	}
	out := make([]string, 0, len(v.Content))
	for _, c := range v.Content {
		out = append(out, c.Value)
	}
	return out, nil
}

func decodeEvents(v *yaml.Node) ([]EventSet, error) {
	if v.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: events must be a mapping", v.Line)
	}
	var sets []EventSet
	for i := 0; i+1 < len(v.Content); i += 2 {
		key, val := v.Content[i], v.Content[i+1]
		set := EventSet{Event: key.Value}
		switch val.Kind {
		case yaml.SequenceNode:
			for _, c := range val.Content {
				b, err := decodeBinding(c)
				if err != nil {
					return nil, err
				}
				set.Bindings = append(set.Bindings, b)
			}
		case yaml.MappingNode:
			b, err := decodeBinding(val)
			if err != nil {
				return nil, err
			}
			set.Bindings = append(set.Bindings, b)
		default:
			return nil, fmt.Errorf("line %d: event %q must map to a binding or a sequence of bindings", val.Line, key.Value)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func decodeChildEvents(v *yaml.Node) ([]ChildEvent, error) {
	if v.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: child_events must be a sequence", v.Line)
	}
	var ces []ChildEvent
	for _, c := range v.Content {
		if c.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: child event must be a mapping", c.Line)
		}
		ce := ChildEvent{}
		rest := &yaml.Node{Kind: yaml.MappingNode}
		for i := 0; i+1 < len(c.Content); i += 2 {
			key, val := c.Content[i], c.Content[i+1]
			switch key.Value {
			case "child":
				ce.Child = val.Value
			case "event":
				ce.Event = val.Value
			default:
				rest.Content = append(rest.Content, key, val)
			}
		}
		if ce.Child == "" || ce.Event == "" {
			return nil, fmt.Errorf("line %d: child event needs both child and event", c.Line)
		}
		b, err := decodeBinding(rest)
		if err != nil {
			return nil, err
		}
		ce.Binding = b
		ces = append(ces, ce)
	}
	return ces, nil
}

func decodeBinding(v *yaml.Node) (Binding, error) {
	b := Binding{}
	for i := 0; i+1 < len(v.Content); i += 2 {
		key, val := v.Content[i], v.Content[i+1]
		switch key.Value {
		case "params":
			params, err := decodeStrings(val)
			if err != nil {
				return b, err
			}
			b.Params = params
		case "message":
			b.Message = val.Value
		case "to":
			b.Foreign = val.Value
		case "return":
			b.Return = ReturnValue
			b.ReturnExpr = val.Value
		case "call":
			b.Return = ReturnCall
			b.Func = val.Value
		case "with_model":
			if err := val.Decode(&b.UsesModel); err != nil {
				return b, fmt.Errorf("line %d: with_model: %w", val.Line, err)
			}
		default:
			return b, fmt.Errorf("line %d: unknown binding key %q", key.Line, key.Value)
		}
	}
	if b.Return == ReturnCall && b.Func == "" {
		return b, fmt.Errorf("line %d: call binding needs a function", v.Line)
	}
	if b.Return != ReturnCall && b.Message == "" {
		return b, fmt.Errorf("line %d: binding needs a message", v.Line)
	}
	return b, nil
}
