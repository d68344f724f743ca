package cli_templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ProjectConfig holds the configuration for a new project
type ProjectConfig struct {
	Name         string
	Module       string
	Directory    string
	Template     string
	WidgetsDir   string
	ToolkitPath  string
	RuntimePath  string
	GitInit      bool
}

// TemplateGenerator is the interface for all template generators
type TemplateGenerator interface {
	Generate(config *ProjectConfig) error
	Name() string
	Description() string
}

// Registry holds all available templates
var Registry = make(map[string]TemplateGenerator)

// Register adds a template to the registry
func Register(name string, generator TemplateGenerator) {
	Registry[name] = generator
}

// Generate creates a project using the specified template
func Generate(config *ProjectConfig) error {
	generator, exists := Registry[config.Template]
	if !exists {
		return fmt.Errorf("unknown template: %s", config.Template)
	}

	if config.Directory == "" {
		config.Directory = config.Name
	}
	if config.Module == "" {
		config.Module = config.Name
	}
	if config.WidgetsDir == "" {
		config.WidgetsDir = "widgets"
	}
	if config.ToolkitPath == "" {
		config.ToolkitPath = "github.com/weld-dev/toolkit/gtk"
	}
	if config.RuntimePath == "" {
		config.RuntimePath = "github.com/weld-dev/relay"
	}

	if err := createBaseStructure(config); err != nil {
		return err
	}

	if err := generator.Generate(config); err != nil {
		return err
	}

	return createCommonFiles(config)
}

// createBaseStructure creates the directory layout shared by all templates
func createBaseStructure(config *ProjectConfig) error {
	dirs := []string{
		config.WidgetsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(config.Directory, dir), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// WriteFile is a helper to write content to a file
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// GetTemplateNames returns a sorted list of available template names
func GetTemplateNames() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTemplateDescriptions returns template names with descriptions
func GetTemplateDescriptions() []string {
	descriptions := make([]string, 0, len(Registry))
	for _, name := range GetTemplateNames() {
		descriptions = append(descriptions, fmt.Sprintf("%s - %s", name, Registry[name].Description()))
	}
	return descriptions
}
