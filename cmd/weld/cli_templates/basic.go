package cli_templates

import (
	"fmt"
	"path/filepath"
)

func init() {
	Register("basic", &BasicTemplate{})
}

// BasicTemplate generates a minimal single-window application
type BasicTemplate struct{}

func (t *BasicTemplate) Name() string {
	return "basic"
}

func (t *BasicTemplate) Description() string {
	return "Minimal starter with a single window"
}

func (t *BasicTemplate) Generate(cfg *ProjectConfig) error {
	mainContent := fmt.Sprintf(`package main

import (
	"%s"
	"%s"
)

type Quit struct{}

// Update handles messages sent from the callbacks wired up in
// %s/app.weld.yml.
func (c *App) Update(msg relay.Message) {
	switch msg.(type) {
	case Quit:
		relay.Quit()
	}
}

func main() {
	gtk.Init()
	relay.Run(buildApp, &AppModel{})
	gtk.Main()
}
`, cfg.RuntimePath, cfg.ToolkitPath, cfg.WidgetsDir)

	if err := WriteFile(filepath.Join(cfg.Directory, "main.go"), mainContent); err != nil {
		return err
	}

	modelContent := `package main

// AppModel holds the application state.
type AppModel struct{}
`
	if err := WriteFile(filepath.Join(cfg.Directory, "model.go"), modelContent); err != nil {
		return err
	}

	widgetContent := fmt.Sprintf(`package: main
component: App
model: AppModel
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
    - name: greeting
      type: Label
      properties:
        text: '"Hello from %s!"'
`, cfg.Name, cfg.Name)

	return WriteFile(filepath.Join(cfg.Directory, cfg.WidgetsDir, "app.weld.yml"), widgetContent)
}
