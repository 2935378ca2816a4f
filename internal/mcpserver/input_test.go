package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocInputResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte("<a/>"), 0o644))

	t.Run("path", func(t *testing.T) {
		data, name, err := docInput{Path: path}.resolve()
		require.NoError(t, err)
		assert.Equal(t, "<a/>", string(data))
		assert.Equal(t, path, name)
	})

	t.Run("content", func(t *testing.T) {
		data, name, err := docInput{Content: "<b/>"}.resolve()
		require.NoError(t, err)
		assert.Equal(t, "<b/>", string(data))
		assert.Equal(t, "inline", name)
	})

	t.Run("both", func(t *testing.T) {
		_, _, err := docInput{Path: path, Content: "<b/>"}.resolve()
		assert.ErrorContains(t, err, "not both")
	})

	t.Run("neither", func(t *testing.T) {
		_, _, err := docInput{}.resolve()
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := docInput{Path: filepath.Join(t.TempDir(), "nope.xml")}.resolve()
		assert.Error(t, err)
	})
}
