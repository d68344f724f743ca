package widget

import (
	"strings"
	"testing"
)

func slottedTree(withDefault bool, named ...string) *Node {
	root := prim("win", "gtk.Window")
	box := prim("box", "gtk.Box")
	root.Children = []*Node{box}
	if withDefault {
		def := ""
		body := prim("body", "gtk.Box")
		body.Slot = &def
		box.Children = append(box.Children, body)
	}
	for i := range named {
		n := prim(named[i], "gtk.Frame")
		n.Slot = &named[i]
		box.Children = append(box.Children, n)
	}
	return root
}

func TestCapability_SingleDefaultSlot(t *testing.T) {
	art := mustCompile(t, slottedTree(true), Options{Component: "App"})
	if !strings.Contains(art.Capability, "func (c *App) Container() *gtk.Box {\n\treturn c.body\n}") {
		t.Errorf("container accessor missing:\n%s", art.Capability)
	}
	if strings.Contains(art.Capability, "AddWidget") {
		t.Errorf("single-slot capability must not emit a dispatcher:\n%s", art.Capability)
	}
}

func TestCapability_DispatcherOrderAndFallback(t *testing.T) {
	// Declared in reverse order on purpose: branch order follows sorted
	// slot names, not declaration order.
	art := mustCompile(t, slottedTree(true, "toolbar", "sidebar"), Options{Component: "App"})
	cap := art.Capability

	if !strings.Contains(cap, "func (c *App) AddWidget(child relay.AnyComponent) gtk.Container {") {
		t.Fatalf("dispatcher missing:\n%s", cap)
	}
	sidebar := strings.Index(cap, `child.Slot() == "sidebar"`)
	toolbar := strings.Index(cap, `child.Slot() == "toolbar"`)
	fallback := strings.LastIndex(cap, "c.body.Add(child.Root())")
	if sidebar < 0 || toolbar < 0 || fallback < 0 {
		t.Fatalf("dispatcher branches missing:\n%s", cap)
	}
	if sidebar > toolbar {
		t.Errorf("named branches must be sorted by slot name:\n%s", cap)
	}
	if fallback < toolbar {
		t.Errorf("default slot must be the fallback branch:\n%s", cap)
	}
	if strings.Contains(cap, `child.Slot() == ""`) {
		t.Errorf("default slot must not get a conditional branch:\n%s", cap)
	}
}

func TestCapability_NamedWithoutDefaultFails(t *testing.T) {
	_, err := Compile(slottedTree(false, "sidebar", "toolbar"), Options{Component: "App"})
	d, ok := AsDiag(err)
	if !ok || d.Code != CodeMissingDefaultSlot {
		t.Fatalf("expected MissingDefaultSlot, got %v", err)
	}

	// Same tree with the default restored compiles.
	if _, err := Compile(slottedTree(true, "sidebar", "toolbar"), Options{Component: "App"}); err != nil {
		t.Fatalf("tree with default slot must compile, got %v", err)
	}
}

func TestCapability_ComposedSlotUsesRuntimeAdd(t *testing.T) {
	root := prim("win", "gtk.Window")
	def := ""
	body := &Node{Name: "body", Type: "Workspace", Kind: KindComposed, Slot: &def}
	side := "side"
	frame := prim("frame", "gtk.Frame")
	frame.Slot = &side
	root.Children = []*Node{body, frame}

	art := mustCompile(t, root, Options{Component: "App"})
	cap := art.Capability
	if !strings.Contains(cap, "func (c *App) Container() *relay.Component[Workspace] {") {
		t.Errorf("composed default slot accessor wrong:\n%s", cap)
	}
	if !strings.Contains(cap, "relay.Add(c.body, child.Root())") {
		t.Errorf("composed fallback must add through the runtime:\n%s", cap)
	}
	if !strings.Contains(cap, "return c.body.Widget().Root()") {
		t.Errorf("composed fallback must return the component's root container:\n%s", cap)
	}
}

func TestCapability_GenericReceiver(t *testing.T) {
	art := mustCompile(t, slottedTree(true), Options{Component: "Browser", Generics: "[T any]"})
	if !strings.Contains(art.Capability, "func (c *Browser[T]) Container()") {
		t.Errorf("generic receiver missing:\n%s", art.Capability)
	}
}
