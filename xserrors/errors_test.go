package xserrors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "message only",
			err:  &ParseError{Message: "unexpected EOF"},
			want: "parse error: unexpected EOF",
		},
		{
			name: "with path and line",
			err:  &ParseError{Path: "a.xml", Line: 3, Message: "unexpected EOF"},
			want: "parse error in a.xml at line 3: unexpected EOF",
		},
		{
			name: "with line and column",
			err:  &ParseError{Path: "a.xml", Line: 3, Column: 7, Message: "bad token"},
			want: "parse error in a.xml at line 3, column 7: bad token",
		},
		{
			name: "with cause",
			err:  &ParseError{Message: "decode failed", Cause: errors.New("boom")},
			want: "parse error: decode failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestParseError_Is(t *testing.T) {
	err := NewParseError("a.xml", "bad")
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrIO))
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &ParseError{Message: "bad", Cause: cause}
	assert.ErrorIs(t, err, cause)
}

func TestIOError(t *testing.T) {
	err := NewIOError("missing.xml", "read", fs.ErrNotExist)
	assert.Equal(t, "read error for missing.xml: file does not exist", err.Error())
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Path: "config.yaml", Message: "invalid yaml"}
	assert.Equal(t, "configuration error in config.yaml: invalid yaml", err.Error())
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{Limit: "depth", Value: 256, Path: "deep.xml"}
	assert.Equal(t, "depth limit exceeded (max 256) in deep.xml", err.Error())
	assert.True(t, errors.Is(err, ErrResourceLimit))
}

func TestErrorsAs(t *testing.T) {
	var err error = &ParseError{Path: "a.xml", Line: 2, Message: "bad"}

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
}
