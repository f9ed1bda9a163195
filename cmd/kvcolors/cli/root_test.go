package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meigma/kvcolors"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	traversal := &kvcolors.InvalidPathError{Op: "join", Path: "../x", Reason: kvcolors.ErrPathTraversal}
	missing := &kvcolors.InvalidPathError{Op: "validate", Path: "/a.scss", Reason: kvcolors.ErrNotExist}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"traversal", fmt.Errorf("config: %w", traversal), "Error: path traversal detected (security violation): config: join \"../x\": path traversal detected"},
		{"invalid path", fmt.Errorf("stylesheet: %w", missing), "Error: invalid path: stylesheet: validate \"/a.scss\": path does not exist"},
		{"mapping", fmt.Errorf("%w: \"x\"", kvcolors.ErrInvalidMapping), "Error: invalid mapping in config: kvcolors: invalid mapping: \"x\""},
		{"other", errors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatError(tt.err))
		})
	}
}

func TestPrintPalette(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printPalette(&buf, kvcolors.Palette{"primary": "#84D2E9", "background": "#0F1416"}, false)
	assert.Equal(t, "background  #0F1416\nprimary     #84D2E9\n", buf.String())
}

func TestPrintMappings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printMappings(&buf, []kvcolors.Mapping{{Key: "window.color", Variable: "background"}})
	assert.Equal(t, "KEY           VARIABLE\nwindow.color  background\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printSummary(&buf, &kvcolors.Result{
		ConfigPath:   "/cfg/MaterialAdw.kvconfig",
		Written:      true,
		BytesWritten: 2048,
		Report: kvcolors.Report{
			Updated:  []string{"a", "b"},
			Appended: []string{"c"},
		},
	})
	assert.Contains(t, buf.String(), "/cfg/MaterialAdw.kvconfig (2.0 kB)")
	assert.Contains(t, buf.String(), "2 updated, 1 appended, 0 skipped")

	buf.Reset()
	printSummary(&buf, &kvcolors.Result{ConfigPath: "/cfg/x.kvconfig"})
	assert.Contains(t, buf.String(), "dry run, nothing written")
}
