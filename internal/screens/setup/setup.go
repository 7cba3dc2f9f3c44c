// Package setup is the credential entry form shown when no key is stored.
package setup

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/logging"
	"github.com/abhisek/toanvui/internal/screen"
	"github.com/abhisek/toanvui/internal/ui/components"
	"github.com/abhisek/toanvui/internal/ui/layout"
	"github.com/abhisek/toanvui/internal/ui/theme"
)

// Placeholder is shown in the empty key field.
const Placeholder = "Dán API Key vào đây (VD: AIzaSy...)"

// SetupScreen collects and saves the Gemini API key.
type SetupScreen struct {
	store  *credential.Store
	input  components.TextInput
	save   components.Button
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen that saves into store.
func New(store *credential.Store) *SetupScreen {
	s := &SetupScreen{
		store: store,
		input: components.NewTextInput(Placeholder, components.PlainInput, 0),
	}
	s.save = components.NewButton("Lưu và Bắt đầu", true, s.submit)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	return "Cấu hình API Key"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Lưu và Bắt đầu"},
		{Key: "Ctrl+C", Description: "Thoát"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" {
			var cmd tea.Cmd
			s.save, cmd = s.save.Update(msg)
			return s, cmd
		}
		s.errMsg = ""
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit validates and stores the typed key. Validation failures stay on
// this screen as an inline message.
func (s *SetupScreen) submit() tea.Cmd {
	ctx := context.Background()
	cred, err := s.store.Set(ctx, s.input.Value())
	if err != nil {
		var verr *credential.ValidationError
		if errors.As(err, &verr) {
			s.errMsg = verr.Error()
		} else {
			logging.WithContext(ctx).WithError(err).Error("save credential")
			s.errMsg = fmt.Sprintf("Không lưu được API Key: %v", err)
		}
		s.input.Submit(false)
		return nil
	}

	s.errMsg = ""
	logging.WithContext(ctx).WithField("key", cred.Masked()).Info("credential saved")
	return func() tea.Msg {
		return screen.KeySetMsg{Credential: cred}
	}
}

func (s *SetupScreen) View(width, height int) string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("🔑 Cấu hình API Key"),
		"",
		theme.Body.Render("Key của bạn:"),
		s.input.View(),
		layout.RenderError(s.errMsg),
		"",
		s.save.View(),
		"",
		theme.Hint.Render("Lấy API Key miễn phí tại aistudio.google.com"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(min(width-4, 64)).Render(form))
}
