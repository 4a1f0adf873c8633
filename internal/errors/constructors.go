package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *DocsLinkError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocsLinkError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file is invalid").
		WithContext("path", path)
}

func ConfigExists(path string) *DocsLinkError {
	return New(CategoryConfig, SeverityFatal, "configuration file already exists (use --force to overwrite)").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocsLinkError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// File errors

func FileReadError(path string, cause error) *DocsLinkError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to read file").
		WithContext("path", path)
}

func FileWriteError(path string, cause error) *DocsLinkError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write file").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *DocsLinkError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
