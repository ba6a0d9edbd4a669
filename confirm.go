// Copyright © 2026 Macmillan Learning
// SPDX-License-Identifier: MIT

package dlr

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// TerminalConfirm is the default ConfirmFunc. Attended sessions (stdin and
// stdout both terminals) get a one-line yes/no prompt; unattended sessions
// confirm unconditionally so pipelines and CI never hang on a prompt a
// human will not answer.
func TerminalConfirm(prompt string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}

	model, err := tea.NewProgram(newConfirmModel(prompt)).Run()
	if err != nil {
		// A misbehaving terminal must not block persistence.
		return true
	}

	if m, ok := model.(confirmModel); ok {
		return m.confirmed
	}
	return true
}

type confirmKeyMap struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "yes")),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no")),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "no")),
	}
}

var promptStyle = lipgloss.NewStyle().Bold(true)

type confirmModel struct {
	prompt    string
	keys      confirmKeyMap
	confirmed bool
	done      bool
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt, keys: newConfirmKeyMap()}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Quit):
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render(m.prompt) + " [y/n] "
}
