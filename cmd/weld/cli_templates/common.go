package cli_templates

import (
	"fmt"
	"path/filepath"

	"github.com/weld-dev/weld/cmd/weld/internal/config"
)

// createCommonFiles creates files common to all templates
func createCommonFiles(cfg *ProjectConfig) error {
	if err := createGoMod(cfg); err != nil {
		return err
	}

	if err := WriteFile(filepath.Join(cfg.Directory, "README.md"), generateReadme(cfg)); err != nil {
		return err
	}

	if err := createGitignore(cfg); err != nil {
		return err
	}

	return createWeldConfig(cfg)
}

// createGoMod creates the go.mod file
func createGoMod(cfg *ProjectConfig) error {
	content := fmt.Sprintf(`module %s

go 1.23
`, cfg.Module)

	return WriteFile(filepath.Join(cfg.Directory, "go.mod"), content)
}

// createWeldConfig writes the weld.yml the gen command reads
func createWeldConfig(cfg *ProjectConfig) error {
	c := &config.Config{
		Toolkit: &config.BackendConfig{
			Import: cfg.ToolkitPath,
			Ident:  filepath.Base(cfg.ToolkitPath),
		},
		Runtime: &config.BackendConfig{
			Import: cfg.RuntimePath,
			Ident:  filepath.Base(cfg.RuntimePath),
		},
		WidgetsDir: cfg.WidgetsDir,
	}
	return config.Save(c, cfg.Directory)
}

// generateReadme generates README.md content
func generateReadme(cfg *ProjectConfig) string {
	return fmt.Sprintf(`# %s

A desktop application built with weld.

## Getting started

Compile the widget definitions, then build and run:

`+"```bash"+`
weld gen widgets
go mod tidy
go run .
`+"```"+`

Widget definitions live in %s/. Each .weld.yml file compiles to a
.weld.go file next to it; regenerate after editing, or use
`+"`weld gen widgets --watch`"+` to recompile on save.
`, cfg.Name, cfg.WidgetsDir)
}

// createGitignore creates the .gitignore file
func createGitignore(cfg *ProjectConfig) error {
	content := `# Binaries
` + cfg.Name + `
*.exe

# Editor files
.idea/
.vscode/
*.swp

# OS files
.DS_Store
`
	return WriteFile(filepath.Join(cfg.Directory, ".gitignore"), content)
}
