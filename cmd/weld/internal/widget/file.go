package widget

import (
	"fmt"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileOptions configure how compiled artifacts are wrapped into a
// complete Go source file.
type FileOptions struct {
	// Package is the fallback package clause when the document does not
	// name one.
	Package string

	ToolkitImport string
	ToolkitIdent  string
	RuntimeImport string
	RuntimeIdent  string

	// ExtraImports are added verbatim to the import block.
	ExtraImports []string

	Rewriter Rewriter
}

func (o FileOptions) withDefaults() FileOptions {
	if o.Package == "" {
		o.Package = "main"
	}
	if o.ToolkitIdent == "" {
		o.ToolkitIdent = "gtk"
	}
	if o.ToolkitImport == "" {
		o.ToolkitImport = "github.com/weld-dev/toolkit/gtk"
	}
	if o.RuntimeIdent == "" {
		o.RuntimeIdent = "relay"
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = "github.com/weld-dev/relay"
	}
	return o
}

// RenderFile compiles a decoded document and wraps the artifact into a
// gofmt-formatted Go source file: the component struct, its builder
// function, the Root accessor, and the capability methods when the tree
// declares attachment points.
func RenderFile(doc *Document, source string, opts FileOptions) (string, error) {
	opts = opts.withDefaults()
	idents := Idents{Toolkit: opts.ToolkitIdent, Runtime: opts.RuntimeIdent}

	art, err := Compile(doc.Widget, Options{
		Component: doc.Component,
		Generics:  doc.Generics,
		Idents:    idents,
		Rewriter:  opts.Rewriter,
	})
	if err != nil {
		return "", err
	}

	pkg := doc.Package
	if pkg == "" {
		pkg = opts.Package
	}
	model := doc.Model
	if model == "" {
		model = "*" + doc.Component + "Model"
	}
	args := genericArgs(doc.Generics)
	comp := doc.Component + args

	var b strings.Builder
	fmt.Fprintf(&b, "type %s%s struct {\n", doc.Component, doc.Generics)
	for _, f := range art.Fields {
		fmt.Fprintf(&b, "\t%s %s\n", f.Name, f.Type)
	}
	fmt.Fprintf(&b, "\tmodel %s\n}\n\n", model)

	fmt.Fprintf(&b, "func build%s%s(%s %s.Loop, %s %s) *%s.Ref[%s] {\n",
		doc.Component, doc.Generics, HandleIdent, opts.RuntimeIdent, ModelIdent, model,
		opts.RuntimeIdent, comp)
	for _, stmt := range art.Statements {
		writeIndented(&b, stmt)
	}
	fmt.Fprintf(&b, "\treturn %s\n}\n\n", SelfIdent)

	fmt.Fprintf(&b, "func (c *%s) Root() %s {\n\treturn c.%s\n}\n",
		comp, art.RootType, art.RootExpr)

	if art.Capability != "" {
		b.WriteString("\n")
		b.WriteString(art.Capability)
	}
	body := b.String()

	var out strings.Builder
	out.WriteString("// Code generated by weld. DO NOT EDIT.\n")
	if source != "" {
		fmt.Fprintf(&out, "// Source: %s\n", source)
	}
	fmt.Fprintf(&out, "\npackage %s\n\n", pkg)
	out.WriteString("import (\n")
	// A composed-only tree may never touch the toolkit directly;
	// gofmt does not strip unused imports.
	if strings.Contains(body, opts.ToolkitIdent+".") {
		writeImport(&out, opts.ToolkitIdent, opts.ToolkitImport)
	}
	writeImport(&out, opts.RuntimeIdent, opts.RuntimeImport)
	for _, imp := range opts.ExtraImports {
		fmt.Fprintf(&out, "\t%q\n", imp)
	}
	out.WriteString(")\n\n")
	out.WriteString(body)

	formatted, err := format.Source([]byte(out.String()))
	if err != nil {
		return "", fmt.Errorf("generated code does not format (malformed expression in the tree?): %w", err)
	}
	return string(formatted), nil
}

// ProcessWidgetFile compiles one .weld.yml file into its .weld.go
// sibling.
func ProcessWidgetFile(filename string, opts FileOptions) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	code, err := RenderFile(doc, filepath.Base(filename), opts)
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", filename, err)
	}
	if err := os.WriteFile(OutputPath(filename), []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// OutputPath maps a widget file to its generated sibling:
// app.weld.yml -> app.weld.go.
func OutputPath(filename string) string {
	base := strings.TrimSuffix(filename, ".yml")
	base = strings.TrimSuffix(base, ".yaml")
	base = strings.TrimSuffix(base, ".weld")
	return base + ".weld.go"
}

func writeImport(b *strings.Builder, ident, importPath string) {
	if path.Base(importPath) == ident {
		fmt.Fprintf(b, "\t%q\n", importPath)
		return
	}
	fmt.Fprintf(b, "\t%s %q\n", ident, importPath)
}

func writeIndented(b *strings.Builder, stmt string) {
	for _, line := range strings.Split(stmt, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}
}
