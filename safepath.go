package kvcolors

import (
	"github.com/meigma/kvcolors/core"
	"github.com/meigma/kvcolors/internal/safepath"
)

// ValidateOptions controls ValidatePath.
// Re-exported from core package.
type ValidateOptions = core.ValidateOptions

// FileOptions controls ValidateFilePath.
// Re-exported from core package.
type FileOptions = core.FileOptions

// PathValidator validates paths for security concerns.
// This interface is implemented by internal/safepath.
type PathValidator = core.PathValidator

var defaultValidator = safepath.NewValidator()

// ValidatePath expands ~ and environment references in path, resolves it to
// a canonical absolute path, and applies the checks in opts.
// Every failure matches ErrInvalidPath.
func ValidatePath(path string, opts ValidateOptions) (string, error) {
	return defaultValidator.ValidatePath(path, opts)
}

// ValidateFilePath is ValidatePath followed by a case-insensitive extension
// check against opts.AllowedExtensions.
func ValidateFilePath(path string, opts FileOptions) (string, error) {
	return defaultValidator.ValidateFilePath(path, opts)
}

// SafeJoin joins parts onto base and returns the resolved result, or
// ErrPathTraversal if it is not base or a descendant of base.
// An empty base fails with ErrEmptyPath; use "." for the working directory.
func SafeJoin(base string, parts ...string) (string, error) {
	return defaultValidator.SafeJoin(base, parts...)
}
