// SPDX-License-Identifier: Apache-2.0

package samples

import (
	"errors"
	"io"
	"os"

	"github.com/gisgenomics/sampleconf/internal/sheet"
)

// StdoutTarget is the output name that selects standard output.
const StdoutTarget = "-"

// ErrTargetExists is wrapped by the IOError returned for an existing output
// that may not be overwritten.
var ErrTargetExists = errors.New("refusing to overwrite existing file")

// CheckTarget fails when target names an existing file and force is unset.
func CheckTarget(target string, force bool) error {
	if target == StdoutTarget || force {
		return nil
	}
	if _, err := os.Stat(target); err == nil {
		return &sheet.IOError{Op: "write", Path: target, Err: ErrTargetExists}
	}
	return nil
}

// Write stores data at target, or writes it to stdout when target is
// StdoutTarget. Without force an existing target is left untouched.
func Write(target string, data []byte, stdout io.Writer, force bool) error {
	if target == StdoutTarget {
		if _, err := stdout.Write(data); err != nil {
			return &sheet.IOError{Op: "write", Path: "stdout", Err: err}
		}
		return nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			err = ErrTargetExists
		}
		return &sheet.IOError{Op: "write", Path: target, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return &sheet.IOError{Op: "write", Path: target, Err: err}
	}
	if err := f.Close(); err != nil {
		return &sheet.IOError{Op: "close", Path: target, Err: err}
	}
	return nil
}
