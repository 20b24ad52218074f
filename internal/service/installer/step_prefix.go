package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PrefixStep collects the command prefix
type PrefixStep struct {
	input textinput.Model
}

func NewPrefixStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 10
	ti.Placeholder = "."
	ti.EchoMode = textinput.EchoNormal

	return &PrefixStep{
		input: ti,
	}
}

func (s *PrefixStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PrefixStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Prefix = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *PrefixStep) View(state *InstallState) string {
	return "Choose a command prefix (leave empty for \".\"):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
