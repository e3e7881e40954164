package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrPathEscape, "path escapes base directory")
	assert.Equal(t, ErrPathEscape, err.Code)
	assert.Equal(t, "path escapes base directory", err.Message)
	assert.Equal(t, "[PATH_ESCAPE] path escapes base directory", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrFileWrite, "cannot write %q", "a/b.txt")
	assert.Equal(t, ErrFileWrite, err.Code)
	assert.Contains(t, err.Error(), `cannot write "a/b.txt"`)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrDirCreate, "mkdir failed")

	require.NotNil(t, err)
	assert.Equal(t, ErrDirCreate, err.Code)
	assert.Equal(t, inner, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "permission denied")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrDirCreate, "mkdir failed"))
	assert.Nil(t, Wrapf(nil, ErrDirCreate, "mkdir %s failed", "x"))
}

func TestIs(t *testing.T) {
	err := New(ErrPathEscape, "escape")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, stderrors.Is(wrapped, New(ErrPathEscape, "other message")))
	assert.False(t, stderrors.Is(wrapped, New(ErrFileWrite, "escape")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileWrite, "write failed").
		WithDetail("path", "c.txt").
		WithDetail("entry", 3)

	assert.Equal(t, "c.txt", err.Details["path"])
	assert.Equal(t, 3, err.Details["entry"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrManifestParse, GetCode(New(ErrManifestParse, "bad toml")))
	assert.Equal(t, ErrDirCreate, GetCode(fmt.Errorf("outer: %w", New(ErrDirCreate, "x"))))
	assert.Equal(t, ErrUnknown, GetCode(fmt.Errorf("plain")))
}

func TestHasCode(t *testing.T) {
	err := Wrap(fmt.Errorf("disk full"), ErrFileWrite, "write failed")
	assert.True(t, HasCode(err, ErrFileWrite))
	assert.False(t, HasCode(err, ErrDirCreate))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrFileWrite))
}
