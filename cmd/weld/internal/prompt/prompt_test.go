package prompt

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"answer", "my-app\n", "app", "my-app"},
		{"empty takes default", "\n", "app", "app"},
		{"whitespace takes default", "   \n", "app", "app"},
		{"eof takes default", "", "app", "app"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := NewWith(strings.NewReader(tt.input), &out)
			if got := p.Text("Project name", tt.def); got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"garbage means no", "maybe\n", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := NewWith(strings.NewReader(tt.input), &out)
			if got := p.Confirm("Initialize git?", tt.defaultYes); got != tt.want {
				t.Errorf("Confirm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	options := []string{"basic", "counter", "shell"}
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"by number", "2\n", 1},
		{"by name", "shell\n", 2},
		{"by unique prefix", "co\n", 1},
		{"empty takes default", "\n", 0},
		{"out of range takes default", "9\n", 0},
		{"unknown takes default", "blog\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := NewWith(strings.NewReader(tt.input), &out)
			if got := p.Select("Template:", options, 0); got != tt.want {
				t.Errorf("Select = %d, want %d", got, tt.want)
			}
			if !strings.Contains(out.String(), "1) basic") {
				t.Errorf("options not rendered:\n%s", out.String())
			}
		})
	}
}

func TestSelectAmbiguousPrefix(t *testing.T) {
	var out strings.Builder
	p := NewWith(strings.NewReader("b\n"), &out)
	options := []string{"basic", "blog"}
	if got := p.Select("Template:", options, 1); got != 1 {
		t.Errorf("ambiguous prefix should keep the default, got %d", got)
	}
	if !strings.Contains(out.String(), "Ambiguous") {
		t.Errorf("missing ambiguity notice:\n%s", out.String())
	}
}
