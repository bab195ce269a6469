package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	m "here.dev/pkg/here/internal/model"
)

// pickerKeyMap defines the key bindings of the candidate picker.
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c")),
}

// pickerModel is the Bubble Tea model behind the multi-candidate prompt.
type pickerModel struct {
	candidates []string
	cursor     int
	choice     string
	cancelled  bool
}

func newPickerModel(candidates []string) pickerModel {
	return pickerModel{candidates: candidates}
}

func (pm pickerModel) Init() tea.Cmd {
	return nil
}

func (pm pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return pm, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Up):
		if pm.cursor > 0 {
			pm.cursor--
		}

	case key.Matches(keyMsg, pickerKeys.Down):
		if pm.cursor < len(pm.candidates)-1 {
			pm.cursor++
		}

	case key.Matches(keyMsg, pickerKeys.Select):
		pm.choice = pm.candidates[pm.cursor]
		return pm, tea.Quit

	case key.Matches(keyMsg, pickerKeys.Cancel):
		pm.cancelled = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm pickerModel) View() string {
	var b strings.Builder

	b.WriteString(promptTitleStyle.Render("Select a path:"))
	b.WriteString("\n")

	for i, candidate := range pm.candidates {
		if i == pm.cursor {
			b.WriteString(selectedItemStyle.Render("> " + candidate))
		} else {
			b.WriteString(unselectedItemStyle.Render(candidate))
		}

		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/k up · ↓/j down · enter select · esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// pickPath runs the picker program and blocks until the user selects a
// candidate or cancels. There is deliberately no timeout.
func pickPath(ctx context.Context, candidates []string) (string, error) {
	program := tea.NewProgram(newPickerModel(candidates), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	pm, ok := final.(pickerModel)
	if !ok || pm.cancelled || pm.choice == "" {
		return "", m.ErrCancelled
	}

	return pm.choice, nil
}
