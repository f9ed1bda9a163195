// Package core provides the shared types and interfaces for kvcolors.
//
// This package exists to break import cycles between the root kvcolors package
// and internal implementation packages. The kvcolors package re-exports all
// public types from this package, so external users should import kvcolors
// directly, not kvcolors/core.
package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidPath is matched by every path validation failure.
var ErrInvalidPath = errors.New("kvcolors: invalid path")

// Reasons a path can be rejected. An *InvalidPathError unwraps to exactly one.
var (
	// ErrEmptyPath indicates an empty path string.
	ErrEmptyPath = errors.New("path is empty")

	// ErrNullByte indicates an embedded NUL character.
	ErrNullByte = errors.New("path contains null byte")

	// ErrUndefinedVariable indicates a $VAR reference to an unset variable.
	ErrUndefinedVariable = errors.New("undefined environment variable")

	// ErrUnresolvable indicates the path could not be made canonical,
	// for example because of a symlink cycle.
	ErrUnresolvable = errors.New("path cannot be resolved")

	// ErrRelativePath indicates a relative path where only absolute ones are accepted.
	ErrRelativePath = errors.New("relative path not allowed")

	// ErrNotExist indicates a required path is missing.
	ErrNotExist = errors.New("path does not exist")

	// ErrNotAllowedDir indicates the path is outside every allowed directory.
	ErrNotAllowedDir = errors.New("path not within allowed directories")

	// ErrExtensionNotAllowed indicates a file extension outside the allowed set.
	ErrExtensionNotAllowed = errors.New("file extension not allowed")

	// ErrPathTraversal indicates a joined path escaped its base directory.
	ErrPathTraversal = errors.New("path traversal detected")
)

// Sentinel errors for the theming flow.
var (
	// ErrInvalidMapping indicates a malformed key=variable mapping entry.
	ErrInvalidMapping = errors.New("kvcolors: invalid mapping")
)

// InvalidPathError reports why a path was rejected.
//
// errors.Is matches ErrInvalidPath, the Reason sentinel and, when set, Err.
type InvalidPathError struct {
	Op     string // "validate" or "join"
	Path   string // input as supplied by the caller
	Reason error  // one of the reason sentinels
	Detail string // optional extra context
	Err    error  // underlying cause, if any
}

func (e *InvalidPathError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q: %v", e.Op, e.Path, e.Reason)
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns ErrInvalidPath, the reason and the underlying cause.
func (e *InvalidPathError) Unwrap() []error {
	errs := []error{ErrInvalidPath}
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ValidateOptions controls ValidatePath. The zero value applies no directory
// restriction, does not require existence, and accepts relative paths.
type ValidateOptions struct {
	// AllowedDirs, when non-empty, restricts results to these directories
	// (after expansion and resolution) and their descendants.
	AllowedDirs []string

	// MustExist rejects paths that are missing at validation time.
	MustExist bool

	// RejectRelative rejects paths that are still relative after expansion.
	RejectRelative bool
}

// FileOptions controls ValidateFilePath.
type FileOptions struct {
	// AllowedExtensions, when non-empty, lists accepted suffixes such as ".scss".
	// Matching is case-insensitive. Include "" to accept files with no suffix.
	AllowedExtensions []string

	// MustExist rejects paths that are missing at validation time.
	MustExist bool
}

// PathValidator turns untrusted path strings into canonical absolute paths.
// This interface is implemented by internal/safepath.
type PathValidator interface {
	// ValidatePath expands, resolves and checks a path.
	ValidatePath(path string, opts ValidateOptions) (string, error)

	// ValidateFilePath is ValidatePath plus an extension check.
	ValidateFilePath(path string, opts FileOptions) (string, error)

	// SafeJoin joins parts onto base and rejects results that escape base.
	SafeJoin(base string, parts ...string) (string, error)
}

// Palette maps SCSS variable names (without the leading $) to #RRGGBB colors.
type Palette map[string]string

// Lookup returns the color for a variable name.
func (p Palette) Lookup(name string) (string, bool) {
	c, ok := p[name]
	return c, ok
}

// Names returns the variable names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mapping binds a Kvantum config key to a palette variable.
type Mapping struct {
	Key      string // e.g. "window.color"
	Variable string // e.g. "background"
}

// String returns the mapping in key=variable form.
func (m Mapping) String() string {
	return m.Key + "=" + m.Variable
}
