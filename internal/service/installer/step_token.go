package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// KookTokenStep collects the KOOK bot token
type KookTokenStep struct {
	input textinput.Model
}

func NewKookTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "1/MTIzNDU=/..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &KookTokenStep{
		input: ti,
	}
}

func (s *KookTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *KookTokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Token = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *KookTokenStep) View(state *InstallState) string {
	return "Enter your KOOK Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
