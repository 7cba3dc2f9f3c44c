// Package reset is the password modal that discards the stored key.
package reset

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/resetgate"
	"github.com/abhisek/toanvui/internal/router"
	"github.com/abhisek/toanvui/internal/screen"
	"github.com/abhisek/toanvui/internal/ui/components"
	"github.com/abhisek/toanvui/internal/ui/layout"
	"github.com/abhisek/toanvui/internal/ui/theme"
)

// ResetScreen drives a resetgate.Gate from a password prompt.
type ResetScreen struct {
	gate    *resetgate.Gate
	input   components.TextInput
	cancel  components.Button
	confirm components.Button
	errMsg  string
	removed bool
}

var _ screen.Screen = (*ResetScreen)(nil)
var _ screen.KeyHintProvider = (*ResetScreen)(nil)

// New creates the modal. secret overrides resetgate.DefaultSecret when set.
func New(store *credential.Store, secret string) *ResetScreen {
	s := &ResetScreen{
		input: components.NewTextInput("Nhập mã bảo mật", components.SecretInput, 32),
	}
	s.gate = resetgate.New(store, resetgate.Options{
		Secret:       secret,
		OnKeyRemoved: func() { s.removed = true },
	})
	s.cancel = components.NewButton("Hủy", false, s.doCancel)
	s.confirm = components.NewButton("Xác nhận", true, s.doSubmit)
	return s
}

func (s *ResetScreen) Init() tea.Cmd {
	if err := s.gate.Open(context.Background()); err != nil {
		// Nothing stored: the host should already be on the setup flow.
		if errors.Is(err, resetgate.ErrNoCredential) {
			return keyRemoved
		}
		s.errMsg = err.Error()
		return nil
	}
	return s.input.Init()
}

func (s *ResetScreen) Title() string {
	return "Đổi Key"
}

func (s *ResetScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Chọn"},
		{Key: "Tab", Description: "Đổi nút"},
		{Key: "Esc", Description: "Hủy"},
	}
}

func (s *ResetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "esc":
		return s, s.doCancel()
	case "tab", "shift+tab":
		s.cancel.Active, s.confirm.Active = s.confirm.Active, s.cancel.Active
		return s, nil
	case "enter":
		var cmd tea.Cmd
		if s.cancel.Active {
			s.cancel, cmd = s.cancel.Update(msg)
		} else {
			s.confirm, cmd = s.confirm.Update(msg)
		}
		return s, cmd
	}

	s.errMsg = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ResetScreen) doCancel() tea.Cmd {
	s.gate.Cancel()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *ResetScreen) doSubmit() tea.Cmd {
	err := s.gate.Submit(context.Background(), s.input.Value())
	switch {
	case err == nil:
		if s.removed {
			return keyRemoved
		}
		return nil
	case resetgate.IsResetError(err):
		s.errMsg = err.Error()
	default:
		s.errMsg = fmt.Sprintf("Không xóa được API Key: %v", err)
	}
	return nil
}

func keyRemoved() tea.Msg {
	return screen.KeyRemovedMsg{}
}

func (s *ResetScreen) View(width, height int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, s.cancel.View(), "  ", s.confirm.View())

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render("🔐 Xác thực mã bảo mật"),
		"",
		theme.Hint.Render("Vui lòng liên hệ Admin để lấy mã bảo mật"),
		"",
		theme.Body.Render("Mã bảo mật:"),
		s.input.View(),
		layout.RenderError(s.errMsg),
		"",
		buttons,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Modal.Render(body))
}
