package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "toanvui.log")

	closer, err := Setup("debug", path)
	require.NoError(t, err)
	t.Cleanup(func() { Setup("info", "") })

	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
	WithContext(context.Background()).Debug("hello file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup("loud", "")
	assert.Error(t, err)
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))

	ctx = WithRequestID(ctx)
	id := RequestID(ctx)
	require.NotEmpty(t, id)

	// An existing id is kept.
	assert.Equal(t, id, RequestID(WithRequestID(ctx)))

	entry := WithContext(ctx)
	assert.Equal(t, id, entry.Data["request_id"])
	assert.False(t, strings.Contains(id, " "))
}
