package kvcolors

import "github.com/meigma/kvcolors/core"

// Sentinel errors for common failure conditions.
// Re-exported from core package.
var (
	// ErrInvalidPath matches every path validation failure.
	ErrInvalidPath = core.ErrInvalidPath

	// ErrEmptyPath indicates an empty path string.
	ErrEmptyPath = core.ErrEmptyPath

	// ErrNullByte indicates an embedded NUL character.
	ErrNullByte = core.ErrNullByte

	// ErrUndefinedVariable indicates a $VAR reference to an unset variable.
	ErrUndefinedVariable = core.ErrUndefinedVariable

	// ErrUnresolvable indicates the path could not be made canonical.
	ErrUnresolvable = core.ErrUnresolvable

	// ErrRelativePath indicates a relative path where only absolute ones are accepted.
	ErrRelativePath = core.ErrRelativePath

	// ErrNotExist indicates a required path is missing.
	ErrNotExist = core.ErrNotExist

	// ErrNotAllowedDir indicates the path is outside every allowed directory.
	ErrNotAllowedDir = core.ErrNotAllowedDir

	// ErrExtensionNotAllowed indicates a file extension outside the allowed set.
	ErrExtensionNotAllowed = core.ErrExtensionNotAllowed

	// ErrPathTraversal indicates a joined path escaped its base directory.
	ErrPathTraversal = core.ErrPathTraversal

	// ErrInvalidMapping indicates a malformed key=variable mapping entry.
	ErrInvalidMapping = core.ErrInvalidMapping
)

// InvalidPathError reports why a path was rejected.
// Re-exported from core package.
type InvalidPathError = core.InvalidPathError
