package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fbkclanna/catalogctl/internal/catalog"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	hint      string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint) + "\n")
	}
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// promptInput runs a single validated text prompt.
func promptInput(title, hint, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		hint:      hint,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

// resolveConflicts walks the conflicting dependencies and lets the user
// promote one observed specifier per name. An empty answer keeps the
// conflict untouched.
func resolveConflicts(dec catalog.Decision) error {
	for _, name := range dec.ConflictingNames() {
		specs := dec.Conflicting[name]
		answer, err := promptInput(
			fmt.Sprintf("Pick a specifier for %s (empty to skip)", name),
			"observed: "+strings.Join(specs, ", "),
			specs[0],
			conflictValidator(specs),
		)
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			continue
		}
		if err := dec.Promote(name, answer); err != nil {
			return err
		}
	}
	return nil
}

// conflictValidator accepts the empty string (skip) or one of the
// specifiers observed in the workspace.
func conflictValidator(specs []string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		for _, spec := range specs {
			if s == spec {
				return nil
			}
		}
		return fmt.Errorf("%q is not one of the observed specifiers", s)
	}
}
