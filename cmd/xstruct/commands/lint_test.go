package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<TEI><div><pb ed="1900" n="1"/></div></TEI>`), 0o644))

	assert.NoError(t, HandleLint([]string{path}))
	assert.NoError(t, HandleLint([]string{"--json", path}))
}

func TestHandleLint_FindingsAreNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<book><pb/></book>`), 0o644))

	assert.NoError(t, HandleLint([]string{path}))
}

func TestHandleLint_Errors(t *testing.T) {
	assert.Error(t, HandleLint(nil))
	assert.Error(t, HandleLint([]string{filepath.Join(t.TempDir(), "missing.xml")}))
}
