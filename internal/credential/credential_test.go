package credential

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_RejectsWrongPrefix(t *testing.T) {
	candidates := []string{"abc", "aiza-lowercase", "sk-123", " XAIzaSy", "AIz"}
	for _, c := range candidates {
		t.Run(c, func(t *testing.T) {
			kv := NewMemoryKV()
			s := NewStore(kv)

			_, err := s.Set(context.Background(), c)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.Equal(t, 0, kv.Len(), "storage must stay unchanged")
		})
	}
}

func TestSet_RejectsEmpty(t *testing.T) {
	for _, c := range []string{"", "   ", "\t\n"} {
		s := NewStore(NewMemoryKV())
		_, err := s.Set(context.Background(), c)
		assert.ErrorIs(t, err, ErrEmptyInput, "candidate %q", c)
	}
}

func TestSet_TrimsAndPersists(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryKV())

	c, err := s.Set(ctx, "  AIzaSyExample123  ")
	require.NoError(t, err)
	assert.Equal(t, Credential("AIzaSyExample123"), c)

	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Credential("AIzaSyExample123"), got)
	assert.True(t, s.Present(ctx))
}

func TestClear_AlwaysAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryKV())

	// Clearing an empty store is fine.
	require.NoError(t, s.Clear(ctx))
	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Set(ctx, "AIzaSyExample123")
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	_, ok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, s.Present(ctx))
}

func TestValidationError_Messages(t *testing.T) {
	assert.Equal(t, "Vui lòng nhập API Key!", ErrEmptyInput.Error())
	assert.Contains(t, ErrInvalidFormat.Error(), `"AIza"`)

	var verr *ValidationError
	_, err := Validate("nope")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, InvalidFormat, verr.Kind)
}

func TestMasked(t *testing.T) {
	assert.Equal(t, "AIza…1234", Credential("AIzaSyABCDEF1234").Masked())
	assert.Equal(t, "••••", Credential("AIza").Masked())
	assert.NotContains(t, Credential("AIzaSySECRET9999").String(), "SECRET")

	c, err := Validate("AIzaxxxx€€")
	require.NoError(t, err)
	assert.Equal(t, "AIza…xx€€", c.Masked())
	assert.True(t, utf8.ValidString(c.Masked()))
	assert.Equal(t, "••••••", Credential("AIza€€").Masked())
}

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(context.Context, string, string) error         { return f.err }
func (f failingKV) Delete(context.Context, string) error              { return f.err }

func TestStore_PropagatesKVErrors(t *testing.T) {
	boom := errors.New("disk full")
	s := NewStore(failingKV{err: boom})
	ctx := context.Background()

	_, _, err := s.Get(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.Set(ctx, "AIzaSyExample123")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Clear(ctx), boom)
	assert.False(t, s.Present(ctx))
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryKV())
	src := Chain(StoredSource(s), StaticSource("AIzaFromEnv"))

	k, err := src.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AIzaFromEnv", k, "falls back to static when nothing is stored")

	_, err = s.Set(ctx, "AIzaFromUser")
	require.NoError(t, err)
	k, err = src.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AIzaFromUser", k)

	k, err = Chain(StaticSource(""), StaticSource("")).Credential(ctx)
	require.NoError(t, err)
	assert.Empty(t, k)
}
