package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogBuilderError_ErrorString_WithAndWithoutCause(t *testing.T) {
	plain := New(CategoryConfig, SeverityFatal, "missing title")
	assert.Equal(t, "config (fatal): missing title", plain.Error())

	cause := stderrors.New("boom")
	wrapped := Wrap(cause, CategoryGit, SeverityWarning, "history lookup failed")
	assert.Equal(t, "git (warning): history lookup failed: boom", wrapped.Error())
}

func TestBlogBuilderError_Unwrap_ExposesCause(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(cause, CategoryContent, SeverityError, "unreadable")
	require.True(t, stderrors.Is(err, cause))
}

func TestBlogBuilderError_WithContext_Accumulates(t *testing.T) {
	err := New(CategoryValidation, SeverityFatal, "bad field").
		WithContext("field", "paginate").
		WithContext("value", -1)

	require.Equal(t, "paginate", err.Context["field"])
	require.Equal(t, -1, err.Context["value"])
}

func TestExitCodeFor_ByCategory(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	cases := []struct {
		category ErrorCategory
		code     int
	}{
		{CategoryValidation, 2},
		{CategoryConfig, 7},
		{CategoryGit, 8},
		{CategoryStorage, 8},
		{CategoryContent, 11},
		{CategoryFileSystem, 11},
		{CategoryInternal, 10},
	}
	for _, tc := range cases {
		err := New(tc.category, SeverityFatal, "x")
		assert.Equal(t, tc.code, adapter.ExitCodeFor(err), string(tc.category))
	}

	assert.Equal(t, 0, adapter.ExitCodeFor(nil))
	assert.Equal(t, 1, adapter.ExitCodeFor(stderrors.New("plain")))
}

func TestFormatError_VerboseIncludesCategory(t *testing.T) {
	err := New(CategoryContent, SeverityFatal, "unreadable")

	terse := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, "content: unreadable", terse.FormatError(err))

	verbose := NewCLIErrorAdapter(true, nil)
	assert.Equal(t, "content (fatal): unreadable", verbose.FormatError(err))
}

func TestFormatError_ConfigCategoryIsTerse(t *testing.T) {
	err := ConfigNotFound("_config.yml")
	adapter := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, "configuration file not found", adapter.FormatError(err))
}
