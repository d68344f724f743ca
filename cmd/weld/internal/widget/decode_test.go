package widget

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeDocument(t *testing.T) {
	source := `
component: Counter
package: app
model: "*CounterModel"
widget:
  name: win
  type: gtk.Window
  properties:
    title: '"Counter"'
    border_width: "10"
    visible: "true"
  children:
    - name: vbox
      type: gtk.Box
      init: [gtk.OrientationVertical, "0"]
      default_slot: true
      children:
        - name: plus
          type: gtk.Button
          save: true
          properties:
            label: '"+"'
          events:
            clicked:
              - message: Increment
        - name: counter
          type: CounterLabel
          kind: composed
          init: ["0"]
          events:
            Changed:
              params: [value]
              message: Update(value)
  events:
    delete_event:
      - params: [w, ev]
        message: Quit
        return: "false"
`
	doc, err := DecodeDocument([]byte(source))
	if err != nil {
		t.Fatalf("DecodeDocument() failed: %v", err)
	}
	if doc.Component != "Counter" || doc.Package != "app" {
		t.Errorf("metadata = %q/%q", doc.Component, doc.Package)
	}

	win := doc.Widget
	if win.Name != "win" || win.Kind != KindPrimitive {
		t.Fatalf("root = %+v", win)
	}
	wantProps := []Property{
		{Key: "title", Value: `"Counter"`},
		{Key: "border_width", Value: "10"},
		{Key: "visible", Value: "true"},
	}
	if diff := cmp.Diff(wantProps, win.Properties); diff != "" {
		t.Errorf("property order not preserved (-want +got):\n%s", diff)
	}

	vbox := win.Children[0]
	if vbox.Slot == nil || *vbox.Slot != "" {
		t.Errorf("default_slot not decoded, slot = %v", vbox.Slot)
	}
	if diff := cmp.Diff([]string{"gtk.OrientationVertical", "0"}, vbox.InitParams); diff != "" {
		t.Errorf("init params (-want +got):\n%s", diff)
	}

	plus := vbox.Children[0]
	if !plus.Save {
		t.Error("save flag not decoded")
	}
	if len(plus.Events) != 1 || plus.Events[0].Event != "clicked" || plus.Events[0].Bindings[0].Message != "Increment" {
		t.Errorf("events = %+v", plus.Events)
	}

	counter := vbox.Children[1]
	if counter.Kind != KindComposed {
		t.Errorf("kind = %v, want composed", counter.Kind)
	}
	// A single mapping is accepted as a one-binding sequence.
	if len(counter.Events[0].Bindings) != 1 || counter.Events[0].Bindings[0].Params[0] != "value" {
		t.Errorf("composed event = %+v", counter.Events)
	}

	del := win.Events[0].Bindings[0]
	if del.Return != ReturnValue || del.ReturnExpr != "false" {
		t.Errorf("return binding = %+v", del)
	}
}

func TestDecodeDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{
			name:    "missing component",
			source:  "widget:\n  name: w\n  type: gtk.Window\n",
			wantErr: "component",
		},
		{
			name:    "unknown widget key",
			source:  "component: C\nwidget:\n  name: w\n  type: gtk.Window\n  colour: red\n",
			wantErr: `unknown widget key "colour"`,
		},
		{
			name:    "unknown kind",
			source:  "component: C\nwidget:\n  name: w\n  type: gtk.Window\n  kind: hybrid\n",
			wantErr: "unknown widget kind",
		},
		{
			name:    "widget without name",
			source:  "component: C\nwidget:\n  type: gtk.Window\n",
			wantErr: "missing a name",
		},
		{
			name:    "call binding without function",
			source:  "component: C\nwidget:\n  name: w\n  type: gtk.Window\n  events:\n    x:\n      - with_model: true\n",
			wantErr: "binding needs a message",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.source))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeChildEvents(t *testing.T) {
	source := `
component: C
widget:
  name: dlg
  type: FileDialog
  kind: composed
  child_events:
    - child: ok_button
      event: clicked
      message: Accept
`
	doc, err := DecodeDocument([]byte(source))
	if err != nil {
		t.Fatalf("DecodeDocument() failed: %v", err)
	}
	ce := doc.Widget.ChildEvents[0]
	if ce.Child != "ok_button" || ce.Event != "clicked" || ce.Binding.Message != "Accept" {
		t.Errorf("child event = %+v", ce)
	}
}
