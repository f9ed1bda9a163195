// Package kvcolors syncs a generated Material color palette into a Kvantum
// theme configuration, and exposes the path validation used to harden every
// file path it touches.
//
// # Basic Usage
//
// Create a syncer and apply the palette:
//
//	s, err := kvcolors.NewSyncer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := s.Apply(
//	    "~/.local/state/quickshell/user/generated/material_colors.scss",
//	    "~/.config/Kvantum/MaterialAdw/MaterialAdw.kvconfig",
//	)
//
// # Path Validation
//
// ValidatePath, ValidateFilePath and SafeJoin expand ~ and $VAR references,
// resolve symlinks and dot segments, and reject paths that escape allowed
// directories:
//
//	p, err := kvcolors.ValidatePath(input, kvcolors.ValidateOptions{
//	    AllowedDirs: []string{"~/.config"},
//	    MustExist:   true,
//	})
//	if errors.Is(err, kvcolors.ErrInvalidPath) {
//	    // reject input
//	}
//
// A successful validation means the path was acceptable when it was checked.
// The filesystem can change before the caller opens it.
package kvcolors
