package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	err := errors.New("reading /home/user/docs/secret.xml: permission denied")
	assert.Equal(t, "reading <path>: permission denied", sanitizeError(err))

	assert.Equal(t, "", sanitizeError(nil))
	assert.Equal(t, "plain message", sanitizeError(errors.New("plain message")))
}
