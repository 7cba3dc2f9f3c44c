package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	if len([]rune(s)) == 1 {
		r := []rune(s)[0]
		return tea.KeyPressMsg{Code: r, Text: s}
	}
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{}
}

func typeInto(t TextInput, s string) TextInput {
	for _, r := range s {
		t, _ = t.Update(key(string(r)))
	}
	return t
}

func TestNumberInputFiltersLetters(t *testing.T) {
	in := NewTextInput("", NumberInput, 20)
	in = typeInto(in, "-1a,5b/2")
	if got := in.Value(); got != "-1,5/2" {
		t.Errorf("Value() = %q, want %q", got, "-1,5/2")
	}
}

func TestPlainInputKeepsLetters(t *testing.T) {
	in := NewTextInput("", PlainInput, 0)
	in = typeInto(in, "AIzaXyz")
	if got := in.Value(); got != "AIzaXyz" {
		t.Errorf("Value() = %q", got)
	}
}

func TestSecretInputMasksEcho(t *testing.T) {
	in := NewTextInput("", SecretInput, 0)
	in = typeInto(in, "332123")
	if in.Value() != "332123" {
		t.Fatalf("Value() = %q", in.Value())
	}
	if strings.Contains(in.View(), "332123") {
		t.Error("secret input must not echo the typed text")
	}
}

func TestTextInputReset(t *testing.T) {
	in := typeInto(NewTextInput("", PlainInput, 0), "abc")
	in.Submit(false)
	in.Reset()
	if in.Value() != "" {
		t.Errorf("Value() after Reset = %q", in.Value())
	}
	if strings.Contains(in.View(), "✗") {
		t.Error("verdict should be cleared by Reset")
	}
}

type pickedMsg int

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg(0) } }},
		{Label: "b", Disabled: true},
		{Label: "c", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg(2) } }},
	})

	m, _ = m.Update(key("down"))
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", m.Selected)
	}

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter should trigger the action")
	}
	if got := cmd(); got != pickedMsg(2) {
		t.Errorf("action msg = %v, want 2", got)
	}

	m, _ = m.Update(key("up"))
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenuFirstEnabledSelected(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "x", Disabled: true}, {Label: "y"}})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if !strings.Contains(m.View(), "▸ y") {
		t.Errorf("selected marker missing:\n%s", m.View())
	}
}

func TestButtonPress(t *testing.T) {
	pressed := false
	b := NewButton("OK", false, func() tea.Cmd { pressed = true; return nil })

	b.Update(key("enter"))
	if pressed {
		t.Fatal("inactive button must not fire")
	}

	b.Active = true
	b.Update(key("enter"))
	if !pressed {
		t.Error("active button should fire on enter")
	}
}
