package credential

import (
	"context"
	"fmt"
	"strings"
)

const (
	// Key is the settings slot the user-entered credential lives under.
	Key = "user_gemini_api_key"

	// Prefix is the literal every Gemini API key starts with.
	Prefix = "AIza"
)

// Credential is an opaque Gemini API key.
type Credential string

// String never prints the secret.
func (c Credential) String() string {
	return c.Masked()
}

// Masked returns a display form keeping the prefix and the last four characters.
func (c Credential) Masked() string {
	r := []rune(string(c))
	if len(r) <= len(Prefix)+4 {
		return strings.Repeat("•", len(r))
	}
	return string(r[:len(Prefix)]) + "…" + string(r[len(r)-4:])
}

// Validate trims candidate and checks it is a plausible Gemini key.
func Validate(candidate string) (Credential, error) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return "", ErrEmptyInput
	}
	if !strings.HasPrefix(trimmed, Prefix) {
		return "", ErrInvalidFormat
	}
	return Credential(trimmed), nil
}

// KV is a single-namespace string key-value store.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Store manages the user-entered credential in a KV slot.
type Store struct {
	kv KV
}

// NewStore returns a Store persisting to kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Get returns the stored credential, or false when none is set.
func (s *Store) Get(ctx context.Context) (Credential, bool, error) {
	v, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return "", false, fmt.Errorf("read credential: %w", err)
	}
	if !ok || v == "" {
		return "", false, nil
	}
	return Credential(v), true, nil
}

// Set validates candidate and persists the trimmed value. A rejected
// candidate leaves storage unchanged.
func (s *Store) Set(ctx context.Context, candidate string) (Credential, error) {
	c, err := Validate(candidate)
	if err != nil {
		return "", err
	}
	if err := s.kv.Set(ctx, Key, string(c)); err != nil {
		return "", fmt.Errorf("write credential: %w", err)
	}
	return c, nil
}

// Clear removes the stored credential.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Present reports whether a credential is stored. Read errors count as absent.
func (s *Store) Present(ctx context.Context) bool {
	_, ok, err := s.Get(ctx)
	return err == nil && ok
}
