package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput as a single-line prompt that hands back
// its value on enter and clears itself.
type TextInput struct {
	Model textinput.Model
}

func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards msg to the wrapped input. On enter it returns the trimmed
// value with submitted == true and resets the input.
func (t TextInput) Update(msg tea.Msg) (ti TextInput, value string, submitted bool, cmd tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		value = strings.TrimSpace(t.Model.Value())
		t.Model.SetValue("")
		return t, value, true, nil
	}
	t.Model, cmd = t.Model.Update(msg)
	return t, "", false, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

func (t TextInput) Value() string {
	return t.Model.Value()
}
