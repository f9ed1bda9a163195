// Package safepath turns untrusted path strings into canonical absolute paths
// or rejects them.
//
// Validation is best-effort: a path that passed MustExist or a containment
// check may change on disk before the caller uses it. Treat success as "valid
// at check time" only.
//
// A symlink whose target names a directory such as "$HOME" literally yields a
// result containing that text. Validating such a result again expands it.
package safepath

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/meigma/kvcolors/core"
)

const (
	opValidate = "validate"
	opJoin     = "join"
)

// Compile-time interface implementation check.
var _ core.PathValidator = (*Validator)(nil)

// Validator implements core.PathValidator. It holds no state.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePath expands and resolves path, then applies the checks in opts.
// It returns the canonical absolute path and never touches the filesystem
// beyond Lstat, Readlink and Stat.
func (v *Validator) ValidatePath(path string, opts core.ValidateOptions) (string, error) {
	resolved, err := canonicalize(opValidate, path, opts.RejectRelative)
	if err != nil {
		return "", err
	}

	if opts.MustExist {
		if _, err := os.Stat(resolved); err != nil {
			return "", invalid(opValidate, path, core.ErrNotExist, resolved, err)
		}
	}

	if err := checkAllowed(path, resolved, opts.AllowedDirs); err != nil {
		return "", err
	}
	return resolved, nil
}

// checkAllowed rejects an already resolved path that lies outside every
// usable entry of dirs. An empty dirs allows everything. Entries that are
// empty or cannot be canonicalized are skipped.
func checkAllowed(path, resolved string, dirs []string) error {
	if len(dirs) == 0 {
		return nil
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		allowed, err := canonicalize(opValidate, dir, false)
		if err != nil {
			continue
		}
		if isWithinDir(resolved, allowed) {
			return nil
		}
	}
	return invalid(opValidate, path, core.ErrNotAllowedDir,
		fmt.Sprintf("%s not in %v", resolved, dirs), nil)
}

// ValidateFilePath validates path like ValidatePath and then checks its
// extension against opts.AllowedExtensions.
func (v *Validator) ValidateFilePath(path string, opts core.FileOptions) (string, error) {
	resolved, err := v.ValidatePath(path, core.ValidateOptions{MustExist: opts.MustExist})
	if err != nil {
		return "", err
	}
	if len(opts.AllowedExtensions) == 0 {
		return resolved, nil
	}

	ext := strings.ToLower(fileExt(resolved))
	ok := slices.ContainsFunc(opts.AllowedExtensions, func(allowed string) bool {
		return strings.ToLower(allowed) == ext
	})
	if !ok {
		return "", invalid(opValidate, path, core.ErrExtensionNotAllowed,
			fmt.Sprintf("%q, allowed %v", ext, opts.AllowedExtensions), nil)
	}
	return resolved, nil
}

// SafeJoin resolves base, appends parts as plain segments and resolves the
// result once. Absolute parts do not reset the base. The result must be base
// itself or a descendant of it.
//
// An empty base is rejected with ErrEmptyPath rather than taken to mean the
// working directory. Pass "." for that.
func (v *Validator) SafeJoin(base string, parts ...string) (string, error) {
	root, err := canonicalize(opJoin, base, false)
	if err != nil {
		return "", err
	}

	sep := string(filepath.Separator)
	joined := root
	for _, part := range parts {
		if containsNull(part) {
			return "", invalid(opJoin, part, core.ErrNullByte, "", nil)
		}
		joined += sep + part
	}

	resolved, err := resolve(joined)
	if err != nil {
		return "", invalid(opJoin, joined, core.ErrUnresolvable, "", err)
	}
	if !isWithinDir(resolved, root) {
		return "", invalid(opJoin, strings.Join(parts, sep), core.ErrPathTraversal,
			fmt.Sprintf("%s is outside %s", resolved, root), nil)
	}
	return resolved, nil
}

// canonicalize runs the checks shared by every operation: non-empty input,
// no NUL, expansion, and resolution.
func canonicalize(op, path string, rejectRelative bool) (string, error) {
	if path == "" {
		return "", invalid(op, path, core.ErrEmptyPath, "", nil)
	}
	if containsNull(path) {
		return "", invalid(op, path, core.ErrNullByte, "", nil)
	}

	expanded, err := expand(path)
	if err != nil {
		return "", invalid(op, path, expandReason(err), "", err)
	}
	if rejectRelative && !filepath.IsAbs(expanded) {
		return "", invalid(op, path, core.ErrRelativePath, "", nil)
	}

	resolved, err := resolve(expanded)
	if err != nil {
		return "", invalid(op, path, core.ErrUnresolvable, "", err)
	}
	if containsNull(resolved) {
		return "", invalid(op, path, core.ErrNullByte, "", nil)
	}
	return resolved, nil
}

func invalid(op, path string, reason error, detail string, err error) error {
	return &core.InvalidPathError{Op: op, Path: path, Reason: reason, Detail: detail, Err: err}
}

func containsNull(path string) bool {
	return strings.IndexByte(path, 0) >= 0
}

// isWithinDir reports whether path equals dir or lies beneath it.
// Both must be clean absolute paths. Comparison is by path components,
// so /tmp/extractmore is not within /tmp/extract.
func isWithinDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// fileExt returns the suffix of the final path element including the dot.
// Names starting with a dot and names ending with a dot have no suffix.
func fileExt(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}
