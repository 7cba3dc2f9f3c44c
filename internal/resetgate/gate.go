// Package resetgate implements the password-confirmed flow that discards the
// stored credential.
//
// The shared secret is known to every client; it only keeps children from
// wiping the key by accident. Real access control would need a trusted
// server-side check.
package resetgate

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/toanvui/internal/logging"
)

// DefaultSecret is the confirmation code handed out by the admin.
const DefaultSecret = "332123"

// State is a step of the reset flow.
type State int

const (
	Idle State = iota
	PromptingPassword
	CredentialCleared
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PromptingPassword:
		return "prompting_password"
	case CredentialCleared:
		return "credential_cleared"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// CredentialStore is the part of credential.Store the gate needs.
type CredentialStore interface {
	Present(ctx context.Context) bool
	Clear(ctx context.Context) error
}

// Options configures a Gate.
type Options struct {
	// Secret overrides DefaultSecret when non-empty.
	Secret string

	// OnKeyRemoved is called once the credential has been cleared so the
	// host can route back to the setup flow.
	OnKeyRemoved func()
}

// Gate is the reset state machine. It is driven from a single UI goroutine
// and is not safe for concurrent use.
type Gate struct {
	store    CredentialStore
	secret   string
	onRemove func()

	state    State
	attempts int
}

// New creates a Gate in the Idle state.
func New(store CredentialStore, opts Options) *Gate {
	secret := opts.Secret
	if secret == "" {
		secret = DefaultSecret
	}
	return &Gate{
		store:    store,
		secret:   secret,
		onRemove: opts.OnKeyRemoved,
	}
}

// State returns the current state.
func (g *Gate) State() State { return g.state }

// Attempts returns the number of rejected passwords since the prompt opened.
func (g *Gate) Attempts() int { return g.attempts }

// Open moves Idle -> PromptingPassword. It requires a stored credential.
func (g *Gate) Open(ctx context.Context) error {
	if g.state == PromptingPassword {
		return nil
	}
	if !g.store.Present(ctx) {
		return ErrNoCredential
	}
	g.state = PromptingPassword
	g.attempts = 0
	return nil
}

// Submit checks password. A wrong or empty password keeps the prompt open;
// the correct one clears the credential and notifies the host.
func (g *Gate) Submit(ctx context.Context, password string) error {
	if g.state != PromptingPassword {
		return ErrNotPrompting
	}
	if password == "" {
		return ErrEmptyPassword
	}
	if password != g.secret {
		g.attempts++
		logging.WithContext(ctx).WithField("attempts", g.attempts).Warn("credential reset rejected")
		return ErrWrongPassword
	}

	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("reset credential: %w", err)
	}
	g.state = CredentialCleared
	logging.WithContext(ctx).Info("credential cleared")

	if g.onRemove != nil {
		g.onRemove()
	}
	return nil
}

// Cancel abandons the prompt and returns to Idle.
func (g *Gate) Cancel() {
	g.state = Idle
	g.attempts = 0
}

// IsResetError reports whether err is one of the inline prompt errors.
func IsResetError(err error) bool {
	var rerr *ResetError
	return errors.As(err, &rerr)
}
