package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvInt(t *testing.T) {
	t.Setenv("XSTRUCT_TEST_INT", "42")
	assert.Equal(t, 42, envInt("XSTRUCT_TEST_INT", 7, false))

	t.Setenv("XSTRUCT_TEST_INT", "not-a-number")
	assert.Equal(t, 7, envInt("XSTRUCT_TEST_INT", 7, false))

	t.Setenv("XSTRUCT_TEST_INT", "-3")
	assert.Equal(t, 7, envInt("XSTRUCT_TEST_INT", 7, false))

	t.Setenv("XSTRUCT_TEST_INT", "0")
	assert.Equal(t, 7, envInt("XSTRUCT_TEST_INT", 7, false))
	assert.Equal(t, 0, envInt("XSTRUCT_TEST_INT", 7, true))

	t.Setenv("XSTRUCT_TEST_INT", "")
	assert.Equal(t, 7, envInt("XSTRUCT_TEST_INT", 7, false))
}

func TestEnvBool(t *testing.T) {
	t.Setenv("XSTRUCT_TEST_BOOL", "true")
	assert.True(t, envBool("XSTRUCT_TEST_BOOL", false))

	t.Setenv("XSTRUCT_TEST_BOOL", "0")
	assert.False(t, envBool("XSTRUCT_TEST_BOOL", true))

	t.Setenv("XSTRUCT_TEST_BOOL", "maybe")
	assert.True(t, envBool("XSTRUCT_TEST_BOOL", true))

	t.Setenv("XSTRUCT_TEST_BOOL", "")
	assert.True(t, envBool("XSTRUCT_TEST_BOOL", true))
}

func TestLoadConfigDefaults(t *testing.T) {
	c := loadConfig()
	assert.Equal(t, 0, c.Workers)
	assert.Equal(t, 256, c.XMLMaxDepth)
	assert.Equal(t, 256, c.XMLMaxAttrs)
	assert.Equal(t, 10, c.ScanTop)
	assert.Equal(t, 100000, c.ScanMaxFiles)
	assert.False(t, c.ScanIncludePaths)
}
