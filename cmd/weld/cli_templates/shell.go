package cli_templates

import (
	"fmt"
	"path/filepath"
)

func init() {
	Register("shell", &ShellTemplate{})
}

// ShellTemplate generates an application shell with a header bar and a
// content area exposed as a container slot, ready for child components.
type ShellTemplate struct{}

func (t *ShellTemplate) Name() string {
	return "shell"
}

func (t *ShellTemplate) Description() string {
	return "Application shell with header bar and content slot"
}

func (t *ShellTemplate) Generate(cfg *ProjectConfig) error {
	mainContent := fmt.Sprintf(`package main

import (
	"%s"
	"%s"
)

type Quit struct{}

// Update handles messages sent from the callbacks wired up in
// %s/shell.weld.yml.
func (c *Shell) Update(msg relay.Message) {
	switch msg.(type) {
	case Quit:
		relay.Quit()
	}
}

func main() {
	gtk.Init()
	relay.Run(buildShell, &ShellModel{})
	gtk.Main()
}
`, cfg.RuntimePath, cfg.ToolkitPath, cfg.WidgetsDir)

	if err := WriteFile(filepath.Join(cfg.Directory, "main.go"), mainContent); err != nil {
		return err
	}

	modelContent := `package main

// ShellModel holds the application state.
type ShellModel struct {
	Title string
}
`
	if err := WriteFile(filepath.Join(cfg.Directory, "model.go"), modelContent); err != nil {
		return err
	}

	// The content box carries default_slot, so the compiled component
	// implements the container surface and other components can be
	// mounted into it.
	widgetContent := fmt.Sprintf(`package: main
component: Shell
model: ShellModel
widget:
  name: win
  type: Window
  properties:
    title: '"%s"'
  events:
    delete_event:
      params: ["_"]
      message: Quit{}
      return: "false"
  children:
    - name: layout
      type: Box
      init: [gtk.OrientationVertical, "0"]
      children:
        - name: header
          type: HeaderBar
          properties:
            title: '"%s"'
            show_close_button: "true"
        - name: content
          type: Box
          save: true
          default_slot: true
          init: [gtk.OrientationVertical, "0"]
          child_properties:
            expand: "true"
`, cfg.Name, cfg.Name)

	return WriteFile(filepath.Join(cfg.Directory, cfg.WidgetsDir, "shell.weld.yml"), widgetContent)
}
