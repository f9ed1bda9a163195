package safepath

import "github.com/meigma/kvcolors/core"

// Confined wraps a Validator and additionally confines every result to a
// fixed set of directories.
type Confined struct {
	*Validator
	dirs []string
}

// Compile-time interface implementation check.
var _ core.PathValidator = (*Confined)(nil)

// NewConfined creates a validator whose results must lie within dirs.
// With no dirs it behaves like a plain Validator.
func NewConfined(dirs ...string) *Confined {
	return &Confined{Validator: NewValidator(), dirs: dirs}
}

// ValidatePath validates path with opts.AllowedDirs narrowed to the confined
// directories when opts does not name any itself.
func (c *Confined) ValidatePath(path string, opts core.ValidateOptions) (string, error) {
	if len(opts.AllowedDirs) == 0 {
		opts.AllowedDirs = c.dirs
	}
	return c.Validator.ValidatePath(path, opts)
}

// ValidateFilePath validates path as a file and then checks that the
// resolved result lies within the confined directories.
func (c *Confined) ValidateFilePath(path string, opts core.FileOptions) (string, error) {
	resolved, err := c.Validator.ValidateFilePath(path, opts)
	if err != nil {
		return "", err
	}
	if err := checkAllowed(path, resolved, c.dirs); err != nil {
		return "", err
	}
	return resolved, nil
}
