package main

import (
	"fmt"

	"github.com/weld-dev/weld/cmd/weld/cli_templates"
	"github.com/weld-dev/weld/cmd/weld/internal/prompt"
)

// runInteractiveCreate runs the plain-prompt project creation wizard
func runInteractiveCreate(projectName string) error {
	p := prompt.New()

	fmt.Println("\n🔧 Welcome to weld!")
	fmt.Println("===================")
	fmt.Printf("Creating project: %s\n\n", projectName)

	templates := cli_templates.GetTemplateDescriptions()
	templateIdx := p.Select("Select a project template:", templates, 0)
	selectedTemplate := cli_templates.GetTemplateNames()[templateIdx]

	module := p.Text("\nGo module path", projectName)
	widgetsDir := p.Text("Widgets directory", "widgets")
	gitInit := p.Confirm("Initialize git repository?", true)

	config := &cli_templates.ProjectConfig{
		Name:       projectName,
		Module:     module,
		Directory:  projectName,
		Template:   selectedTemplate,
		WidgetsDir: widgetsDir,
		GitInit:    gitInit,
	}

	fmt.Println("\n📋 Summary:")
	fmt.Printf("   Name:      %s\n", config.Name)
	fmt.Printf("   Module:    %s\n", config.Module)
	fmt.Printf("   Template:  %s\n", config.Template)

	if !p.Confirm("\nCreate project?", true) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := cli_templates.Generate(config); err != nil {
		return fmt.Errorf("failed to generate project: %w", err)
	}

	if config.GitInit {
		if err := initGitRepo(config.Directory); err != nil {
			fmt.Printf("⚠️  Failed to initialize git: %v\n", err)
		}
	}

	printNextSteps(config)
	return nil
}
