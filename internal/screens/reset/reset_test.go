package reset

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/resetgate"
	"github.com/abhisek/toanvui/internal/router"
	"github.com/abhisek/toanvui/internal/screen"
)

func newTestReset(t *testing.T) (*ResetScreen, *credential.Store) {
	t.Helper()
	store := credential.NewStore(credential.NewMemoryKV())
	if _, err := store.Set(context.Background(), "AIzaSyExampleKey1234"); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	s := New(store, "")
	s.Init()
	return s, store
}

func typeText(s *ResetScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func press(s *ResetScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestCorrectPasswordClearsKey(t *testing.T) {
	s, store := newTestReset(t)
	typeText(s, resetgate.DefaultSecret)

	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a command after the correct password")
	}
	if _, ok := cmd().(screen.KeyRemovedMsg); !ok {
		t.Fatalf("expected KeyRemovedMsg, got %T", cmd())
	}
	if store.Present(context.Background()) {
		t.Error("credential should be cleared")
	}
	if s.gate.State() != resetgate.CredentialCleared {
		t.Errorf("gate state = %v", s.gate.State())
	}
}

func TestWrongPasswordStaysOpen(t *testing.T) {
	s, store := newTestReset(t)
	typeText(s, "000000")

	if cmd := press(s, tea.KeyEnter); cmd != nil {
		t.Error("wrong password must not close the modal")
	}
	if s.errMsg != resetgate.ErrWrongPassword.Error() {
		t.Errorf("errMsg = %q", s.errMsg)
	}
	if !store.Present(context.Background()) {
		t.Error("credential must be kept")
	}
	if s.gate.State() != resetgate.PromptingPassword {
		t.Errorf("gate state = %v", s.gate.State())
	}
}

func TestEmptyPasswordShowsError(t *testing.T) {
	s, _ := newTestReset(t)

	press(s, tea.KeyEnter)
	if s.errMsg != resetgate.ErrEmptyPassword.Error() {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestTypingClearsError(t *testing.T) {
	s, _ := newTestReset(t)
	press(s, tea.KeyEnter)
	typeText(s, "1")
	if s.errMsg != "" {
		t.Errorf("error should clear on typing, got %q", s.errMsg)
	}
}

func TestEscCancels(t *testing.T) {
	s, store := newTestReset(t)
	typeText(s, "12")

	cmd := press(s, tea.KeyEscape)
	if cmd == nil {
		t.Fatal("esc should close the modal")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if s.gate.State() != resetgate.Idle {
		t.Errorf("gate state = %v, want idle", s.gate.State())
	}
	if !store.Present(context.Background()) {
		t.Error("cancel must keep the credential")
	}
}

func TestTabThenEnterCancels(t *testing.T) {
	s, _ := newTestReset(t)
	typeText(s, resetgate.DefaultSecret)

	press(s, tea.KeyTab)
	cmd := press(s, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("enter on the cancel button should close the modal")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestCustomSecret(t *testing.T) {
	store := credential.NewStore(credential.NewMemoryKV())
	store.Set(context.Background(), "AIzaSyExampleKey1234")
	s := New(store, "9999")
	s.Init()

	typeText(s, resetgate.DefaultSecret)
	if cmd := press(s, tea.KeyEnter); cmd != nil {
		t.Error("default secret must not work when overridden")
	}

	s.input.Reset()
	typeText(s, "9999")
	if cmd := press(s, tea.KeyEnter); cmd == nil {
		t.Error("custom secret should clear the key")
	}
}

func TestNoCredentialReportsRemoved(t *testing.T) {
	s := New(credential.NewStore(credential.NewMemoryKV()), "")
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a command when nothing is stored")
	}
	if _, ok := cmd().(screen.KeyRemovedMsg); !ok {
		t.Fatalf("expected KeyRemovedMsg, got %T", cmd())
	}
}
