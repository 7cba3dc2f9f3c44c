package components

import (
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toanvui/internal/ui/theme"
)

// InputKind restricts what a TextInput accepts and how it echoes.
type InputKind int

const (
	// PlainInput accepts any text.
	PlainInput InputKind = iota
	// NumberInput accepts digits and the characters of a typed number
	// ("-", ",", ".", "/").
	NumberInput
	// SecretInput accepts any text and echoes bullets.
	SecretInput
)

const numberChars = "0123456789-,./"

// TextInput wraps bubbles/textinput with app styling.
type TextInput struct {
	Model     textinput.Model
	Kind      InputKind
	MaxWidth  int
	submitted bool
	valid     bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, kind InputKind, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if kind == SecretInput {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Kind:     kind,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Rejected keys in NumberInput mode are dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Kind == NumberInput {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if utf8.RuneCountInString(key) == 1 && !strings.Contains(numberChars, key) {
				return t, nil
			}
		}
	}

	// Typing again clears the previous verdict.
	if _, ok := msg.(tea.KeyMsg); ok {
		t.submitted = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the value and any verdict.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
