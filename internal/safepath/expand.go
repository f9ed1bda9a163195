package safepath

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"regexp"
	"strings"

	"github.com/meigma/kvcolors/core"
)

// envRef matches $name and ${name}. Anything else containing $ is literal.
var envRef = regexp.MustCompile(`\$(\w+|\{[^}]*\})`)

var (
	errNoHome    = errors.New("cannot determine home directory")
	errUndefined = errors.New("undefined variable")
)

// expand replaces a leading ~ or ~user with the matching home directory and
// then substitutes environment variable references.
func expand(path string) (string, error) {
	path, err := expandHome(path)
	if err != nil {
		return "", err
	}
	return expandEnv(path)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	i := strings.IndexFunc(path, isSeparator)
	if i < 0 {
		i = len(path)
	}
	name := path[1:i]

	var home string
	if name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", errNoHome, err)
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return "", fmt.Errorf("%w for %q: %w", errNoHome, name, err)
		}
		home = u.HomeDir
	}
	if home == "" {
		return "", errNoHome
	}

	out := strings.TrimRightFunc(home, isSeparator) + path[i:]
	if out == "" {
		out = home[:1]
	}
	return out, nil
}

func expandEnv(path string) (string, error) {
	if !strings.Contains(path, "$") {
		return path, nil
	}

	var missing []string
	out := envRef.ReplaceAllStringFunc(path, func(ref string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(ref[1:], "{"), "}")
		val, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return val
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", errUndefined, strings.Join(missing, ", "))
	}
	// Expansion is a single pass. A value that leaves a new reference behind
	// would expand differently when the result is validated again.
	if ref := envRef.FindString(out); ref != "" {
		return "", fmt.Errorf("%w: %s left after expansion", errUndefined, ref)
	}
	return out, nil
}

// expandReason maps an expansion failure onto its reason sentinel.
func expandReason(err error) error {
	if errors.Is(err, errUndefined) {
		return core.ErrUndefinedVariable
	}
	return core.ErrUnresolvable
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}
