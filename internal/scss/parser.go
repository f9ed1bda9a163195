// Package scss extracts color variables from generated SCSS fragments.
package scss

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/meigma/kvcolors/core"
)

// colorVar matches "$name: #RRGGBB;" at the start of a line.
var colorVar = regexp.MustCompile(`^\$(\w+):\s*(#[0-9A-Fa-f]{6});`)

// maxLineSize bounds a single line. Minified stylesheets put everything on
// one line, so this is well above bufio's 64 KiB default.
const maxLineSize = 16 << 20

// Parse reads color definitions from r. Lines that do not define a six-digit
// hex color are ignored. A later definition of the same name wins.
// Lines longer than 16 MiB fail with bufio.ErrTooLong.
func Parse(r io.Reader) (core.Palette, error) {
	palette := make(core.Palette)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		m := colorVar.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		palette[m[1]] = m[2]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	return palette, nil
}

// ParseFile opens path and parses it. The path must already be validated.
func ParseFile(path string) (core.Palette, error) {
	//nolint:gosec // G304: caller validates path
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stylesheet: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
