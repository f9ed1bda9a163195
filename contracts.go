package kvcolors

import "github.com/meigma/kvcolors/core"

type pathValidator interface {
	ValidatePath(path string, opts core.ValidateOptions) (string, error)
	ValidateFilePath(path string, opts core.FileOptions) (string, error)
	SafeJoin(base string, parts ...string) (string, error)
}
