package errors

// Convenience constructors for common error patterns.

func ConfigNotFound(path string) *BlogBuilderError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(reason string, cause error) *BlogBuilderError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("reason", reason)
}

func ValidationFailed(field, reason string) *BlogBuilderError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

func ContentUnreadable(path string, cause error) *BlogBuilderError {
	return Wrap(cause, CategoryContent, SeverityFatal, "content file unreadable").
		WithContext("path", path)
}

func FrontmatterInvalid(path string, cause error) *BlogBuilderError {
	return Wrap(cause, CategoryContent, SeverityFatal, "invalid frontmatter").
		WithContext("path", path)
}

func GitHistoryError(path string, cause error) *BlogBuilderError {
	return Wrap(cause, CategoryGit, SeverityWarning, "git history lookup failed").
		WithContext("path", path)
}

func CacheError(operation string, cause error) *BlogBuilderError {
	return Wrap(cause, CategoryStorage, SeverityWarning, "result cache operation failed").
		WithContext("operation", operation)
}

func InternalError(message string, cause error) *BlogBuilderError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
