// Package ui implements the full-screen project creation wizard.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weld-dev/weld/cmd/weld/cli_templates"
)

// Step represents the current step in the creation flow
type Step int

const (
	StepBasics Step = iota
	StepTemplate
	StepSummary
	StepGenerating
	StepComplete
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			MarginTop(1)
)

// Model represents the wizard state
type Model struct {
	step Step

	config cli_templates.ProjectConfig

	inputs       []textinput.Model
	currentInput int

	templates    []string
	selectedItem int

	spinner spinner.Model

	err      error
	quitting bool
}

type generateDoneMsg struct {
	err error
}

// NewModel builds the wizard pre-filled with the project name.
func NewModel(projectName string) Model {
	name := textinput.New()
	name.Placeholder = "my-app"
	name.SetValue(projectName)
	name.Focus()
	name.CharLimit = 64

	module := textinput.New()
	module.Placeholder = projectName
	module.CharLimit = 128

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = selectedStyle

	return Model{
		step: StepBasics,
		config: cli_templates.ProjectConfig{
			Name:     projectName,
			Template: "basic",
			GitInit:  true,
		},
		inputs:    []textinput.Model{name, module},
		templates: cli_templates.GetTemplateNames(),
		spinner:   s,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m.updateStep(msg)

	case generateDoneMsg:
		m.err = msg.err
		m.step = StepComplete
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case StepBasics:
		switch msg.String() {
		case "enter":
			if m.currentInput < len(m.inputs)-1 {
				m.inputs[m.currentInput].Blur()
				m.currentInput++
				m.inputs[m.currentInput].Focus()
				return m, textinput.Blink
			}
			m.config.Name = strings.TrimSpace(m.inputs[0].Value())
			m.config.Module = strings.TrimSpace(m.inputs[1].Value())
			if m.config.Name == "" {
				return m, nil
			}
			if m.config.Module == "" {
				m.config.Module = m.config.Name
			}
			m.config.Directory = m.config.Name
			m.step = StepTemplate
			return m, nil
		case "tab", "shift+tab":
			m.inputs[m.currentInput].Blur()
			m.currentInput = (m.currentInput + 1) % len(m.inputs)
			m.inputs[m.currentInput].Focus()
			return m, textinput.Blink
		}

		var cmd tea.Cmd
		m.inputs[m.currentInput], cmd = m.inputs[m.currentInput].Update(msg)
		return m, cmd

	case StepTemplate:
		switch msg.String() {
		case "up", "k":
			if m.selectedItem > 0 {
				m.selectedItem--
			}
		case "down", "j":
			if m.selectedItem < len(m.templates)-1 {
				m.selectedItem++
			}
		case "enter":
			m.config.Template = m.templates[m.selectedItem]
			m.step = StepSummary
		}
		return m, nil

	case StepSummary:
		switch msg.String() {
		case "enter", "y":
			m.step = StepGenerating
			cfg := m.config
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				return generateDoneMsg{err: cli_templates.Generate(&cfg)}
			})
		case "b":
			m.step = StepTemplate
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting && m.step != StepComplete {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🔧 weld create"))
	b.WriteString("\n")

	switch m.step {
	case StepBasics:
		b.WriteString(labelStyle.Render("Project name"))
		b.WriteString("\n" + m.inputs[0].View() + "\n\n")
		b.WriteString(labelStyle.Render("Module path"))
		b.WriteString("\n" + m.inputs[1].View() + "\n")
		b.WriteString(helpStyle.Render("enter: next • tab: switch field • esc: quit"))

	case StepTemplate:
		b.WriteString(labelStyle.Render("Select a template") + "\n\n")
		for i, name := range m.templates {
			desc := cli_templates.Registry[name].Description()
			line := fmt.Sprintf("  %s - %s", name, desc)
			if i == m.selectedItem {
				line = selectedStyle.Render(fmt.Sprintf("> %s - %s", name, desc))
			}
			b.WriteString(line + "\n")
		}
		b.WriteString(helpStyle.Render("↑/↓: move • enter: select • esc: quit"))

	case StepSummary:
		b.WriteString(labelStyle.Render("Summary") + "\n\n")
		b.WriteString(fmt.Sprintf("  Name:      %s\n", m.config.Name))
		b.WriteString(fmt.Sprintf("  Module:    %s\n", m.config.Module))
		b.WriteString(fmt.Sprintf("  Template:  %s\n", m.config.Template))
		b.WriteString(helpStyle.Render("enter: create • b: back • esc: quit"))

	case StepGenerating:
		b.WriteString(fmt.Sprintf("%s Creating %s...\n", m.spinner.View(), m.config.Name))

	case StepComplete:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", m.err)) + "\n")
		} else {
			b.WriteString(successStyle.Render(fmt.Sprintf("✓ Project %s created", m.config.Name)) + "\n")
		}
	}

	return b.String()
}

// RunCreateTUI runs the wizard and returns the resulting configuration.
func RunCreateTUI(projectName string) (*cli_templates.ProjectConfig, error) {
	p := tea.NewProgram(NewModel(projectName))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected wizard state")
	}
	if m.quitting && m.step != StepComplete {
		return nil, fmt.Errorf("cancelled")
	}
	if m.err != nil {
		return nil, m.err
	}
	return &m.config, nil
}
