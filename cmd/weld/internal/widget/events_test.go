package widget

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testWriter() *eventWriter {
	return newEventWriter(Idents{}.withDefaults())
}

func TestBindPrimitiveShapes(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		want    []string
	}{
		{
			name:    "current widget without return",
			binding: Binding{Message: "Increment"},
			want:    []string{"btn.Connect(\"clicked\", func() {\n\t__loop.Send(Increment)\n})"},
		},
		{
			name:    "foreign widget without return",
			binding: Binding{Message: "Refresh", Foreign: "list"},
			want:    []string{"btn.Connect(\"clicked\", func() {\n\trelay.Forward(list, Refresh)\n})"},
		},
		{
			name:    "trigger parameters are bound in order",
			binding: Binding{Params: []string{"w", "ev"}, Message: "Moved(ev)"},
			want:    []string{"btn.Connect(\"clicked\", func(w, ev any) {\n\t__loop.Send(Moved(ev))\n})"},
		},
		{
			name:    "fixed return value",
			binding: Binding{Message: "Quit", Return: ReturnValue, ReturnExpr: "true"},
			want:    []string{"btn.Connect(\"clicked\", func() bool {\n\t__loop.Send(Quit)\n\treturn true\n})"},
		},
		{
			name:    "computed return without model access",
			binding: Binding{Params: []string{"ev"}, Return: ReturnCall, Func: "onKey"},
			want:    []string{"btn.Connect(\"clicked\", func(ev any) bool {\n\treturn onKey(ev)\n})"},
		},
		{
			name:    "computed return with model access upgrades the weak handle",
			binding: Binding{Params: []string{"ev"}, Return: ReturnCall, Func: "onKey", UsesModel: true},
			want: []string{
				"btn.Connect(\"clicked\", func(ev any) bool {\n\t__self, ok := __weak.Upgrade()\n\tif !ok {\n\t\treturn false\n\t}\n\treturn onKey(__self, ev)\n})",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testWriter().bind("btn", false, "clicked", tt.binding, KindPrimitive)
			if err != nil {
				t.Fatalf("bind() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("statements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindSavedWidgetMaterializesWeakHandleOnce(t *testing.T) {
	w := testWriter()
	b := Binding{Return: ReturnCall, Func: "check", UsesModel: true}

	first, err := w.bind("btn", true, "focus", b, KindPrimitive)
	if err != nil {
		t.Fatalf("first bind failed: %v", err)
	}
	if len(first) != 2 || first[0] != "btnWeak := __weak" {
		t.Fatalf("first binding must materialize the weak handle, got %v", first)
	}

	second, err := w.bind("btn", true, "blur", b, KindPrimitive)
	if err != nil {
		t.Fatalf("second bind failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("second binding must reuse the materialized handle, got %v", second)
	}
	if got := second[0]; !contains(got, "btnWeak.Upgrade()") {
		t.Errorf("second binding does not reuse btnWeak: %q", got)
	}
}

func TestBindComposedShapes(t *testing.T) {
	t.Run("message into own sink", func(t *testing.T) {
		got, err := testWriter().bind("panel", true, "Selected", Binding{Params: []string{"id"}, Message: "Open(id)"}, KindComposed)
		if err != nil {
			t.Fatalf("bind() failed: %v", err)
		}
		want := []string{"relay.Observe(panel, \"Selected\", func(id any) {\n\t__loop.Send(Open(id))\n})"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("statements mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("message into foreign sink", func(t *testing.T) {
		got, err := testWriter().bind("panel", true, "Closed", Binding{Message: "Dismiss", Foreign: "bar"}, KindComposed)
		if err != nil {
			t.Fatalf("bind() failed: %v", err)
		}
		if !contains(got[0], "relay.Forward(bar, Dismiss)") {
			t.Errorf("foreign forward missing: %q", got[0])
		}
	})

	for _, b := range []Binding{
		{Message: "X", Return: ReturnValue, ReturnExpr: "true"},
		{Return: ReturnCall, Func: "decide", UsesModel: true},
	} {
		_, err := testWriter().bind("panel", true, "Selected", b, KindComposed)
		d, ok := AsDiag(err)
		if !ok || d.Code != CodeUnsupportedEventShape {
			t.Errorf("binding %+v: expected UnsupportedEventShape, got %v", b, err)
		}
	}
}

func TestCompile_ComposedReturnBindingFails(t *testing.T) {
	root := prim("win", "gtk.Window")
	panel := &Node{
		Name: "panel", Type: "SidePanel", Kind: KindComposed,
		Events: []EventSet{{Event: "Selected", Bindings: []Binding{
			{Return: ReturnCall, Func: "decide", UsesModel: true},
		}}},
	}
	root.Children = []*Node{panel}

	_, err := Compile(root, Options{Component: "App"})
	d, ok := AsDiag(err)
	if !ok || d.Code != CodeUnsupportedEventShape {
		t.Fatalf("expected UnsupportedEventShape, got %v", err)
	}
}

func TestCompile_ChildEventsUseAccessor(t *testing.T) {
	root := prim("win", "gtk.Window")
	dialog := &Node{
		Name: "dialog", Type: "FileDialog", Kind: KindComposed,
		ChildEvents: []ChildEvent{{
			Child: "ok_button", Event: "clicked",
			Binding: Binding{Message: "Accept"},
		}},
	}
	root.Children = []*Node{dialog}

	art := mustCompile(t, root, Options{Component: "App"})
	want := "dialog.Widget().GetOkButton().Connect(\"clicked\", func() {\n\t__loop.Send(Accept)\n})"
	found := false
	for _, s := range art.Wiring {
		if s == want {
			found = true
		}
	}
	if !found {
		t.Errorf("child event statement missing, wiring = %v", art.Wiring)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
