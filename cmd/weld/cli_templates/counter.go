package cli_templates

import (
	"fmt"
	"path/filepath"
)

func init() {
	Register("counter", &CounterTemplate{})
}

// CounterTemplate generates the classic increment/decrement counter
type CounterTemplate struct{}

func (t *CounterTemplate) Name() string {
	return "counter"
}

func (t *CounterTemplate) Description() string {
	return "Interactive counter with message handling"
}

func (t *CounterTemplate) Generate(cfg *ProjectConfig) error {
	mainContent := fmt.Sprintf(`package main

import (
	"strconv"

	"%s"
	"%s"
)

type Increment struct{}
type Decrement struct{}
type Quit struct{}

// Update handles messages sent from the callbacks wired up in
// %s/app.weld.yml.
func (c *App) Update(msg relay.Message) {
	switch msg.(type) {
	case Increment:
		c.model.Count++
		c.counterLabel.SetText(strconv.Itoa(c.model.Count))
	case Decrement:
		c.model.Count--
		c.counterLabel.SetText(strconv.Itoa(c.model.Count))
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
type AppModel struct {
	Count int
}
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
    - name: vbox
      type: Box
      init: [gtk.OrientationVertical, "8"]
      children:
        - name: counterLabel
          type: Label
          save: true
          properties:
            text: '"0"'
        - name: plusButton
          type: Button
          properties:
            label: '"+"'
          events:
            clicked:
              message: Increment{}
        - name: minusButton
          type: Button
          properties:
            label: '"-"'
          events:
            clicked:
              message: Decrement{}
`, cfg.Name)

	return WriteFile(filepath.Join(cfg.Directory, cfg.WidgetsDir, "app.weld.yml"), widgetContent)
}
