package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weld-dev/weld/cmd/weld/cli_templates"
	"github.com/weld-dev/weld/cmd/weld/internal/ui"
)

func newCreateCommand() *cobra.Command {
	var (
		template      string
		module        string
		interactive   bool
		noInteractive bool
		cwd           string
		gitInit       bool
	)

	cmd := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new weld project",
		Long: `Creates a new weld application project from a template.

Templates: ` + strings.Join(cli_templates.GetTemplateNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName := args[0]

			if cwd != "" {
				if err := os.Chdir(cwd); err != nil {
					return fmt.Errorf("failed to change directory: %w", err)
				}
			}

			isTerminal := false
			if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
				isTerminal = true
			}

			if interactive && !isTerminal {
				// Fall back to plain prompts when stdout is piped
				return runInteractiveCreate(projectName)
			}

			if interactive && isTerminal {
				config, err := ui.RunCreateTUI(projectName)
				if err != nil {
					return fmt.Errorf("wizard error: %w", err)
				}
				if config.GitInit {
					if err := initGitRepo(config.Directory); err != nil {
						fmt.Printf("⚠️  Failed to initialize git: %v\n", err)
					}
				}
				printNextSteps(config)
				return nil
			}

			if !noInteractive && isTerminal && !cmd.Flags().Changed("template") {
				// No template chosen on the command line: ask
				return runInteractiveCreate(projectName)
			}

			// Non-interactive mode - build config from flags
			config := &cli_templates.ProjectConfig{
				Name:      projectName,
				Module:    module,
				Directory: projectName,
				Template:  template,
				GitInit:   gitInit,
			}

			if err := cli_templates.Generate(config); err != nil {
				return fmt.Errorf("failed to generate project: %w", err)
			}

			if config.GitInit {
				if err := initGitRepo(projectName); err != nil {
					fmt.Printf("⚠️  Failed to initialize git: %v\n", err)
				}
			}

			printNextSteps(config)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "basic", "Template to use ("+strings.Join(cli_templates.GetTemplateNames(), ", ")+")")
	cmd.Flags().StringVarP(&module, "module", "m", "", "Go module path for the new project (default: project name)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Force the interactive wizard")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Force non-interactive mode")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Change working directory before generation")
	cmd.Flags().BoolVar(&gitInit, "git-init", true, "Initialize a git repository with an initial commit")

	return cmd
}

func printNextSteps(config *cli_templates.ProjectConfig) {
	fmt.Printf("\n✨ Project '%s' created successfully!\n", config.Name)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  cd %s\n", config.Directory)
	fmt.Printf("  weld gen widgets\n")
	fmt.Printf("  go mod tidy\n")
	fmt.Printf("  go run .\n")
}

// initGitRepo initializes a git repository with an initial commit
func initGitRepo(dir string) error {
	for _, args := range [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", "Initial commit"},
	} {
		c := exec.Command("git", args...)
		c.Dir = dir
		if out, err := c.CombinedOutput(); err != nil {
			return fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
		}
	}
	return nil
}
