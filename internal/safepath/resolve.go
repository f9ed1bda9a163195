package safepath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// maxSymlinks bounds the number of links followed while resolving one path.
const maxSymlinks = 255

var errSymlinkLoop = errors.New("too many levels of symbolic links")

// resolve returns the canonical absolute form of path.
//
// Relative paths are anchored at the working directory. The path is walked
// one element at a time: symlinks are followed, ".." removes the last
// element of the already-resolved prefix, and elements that do not exist
// are appended as-is. Nothing is created or modified.
func resolve(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		path = wd + string(filepath.Separator) + path
	}

	vol := filepath.VolumeName(path)
	resolved := vol + string(filepath.Separator)
	rest := path[len(vol):]
	links := 0

	for rest != "" {
		var name string
		name, rest = nextElem(rest)

		switch name {
		case "", ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, name)
		fi, err := os.Lstat(next)
		if err != nil || fi.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		links++
		if links > maxSymlinks {
			return "", fmt.Errorf("%s: %w", next, errSymlinkLoop)
		}
		target, err := os.Readlink(next)
		if err != nil {
			return "", fmt.Errorf("read link: %w", err)
		}
		if filepath.IsAbs(target) {
			tvol := filepath.VolumeName(target)
			resolved = tvol + string(filepath.Separator)
			target = target[len(tvol):]
		}
		rest = target + string(filepath.Separator) + rest
	}

	return resolved, nil
}

// nextElem splits off the first path element.
func nextElem(path string) (elem, rest string) {
	for i := 0; i < len(path); i++ {
		if os.IsPathSeparator(path[i]) {
			return path[:i], path[i+1:]
		}
	}
	return path, ""
}
