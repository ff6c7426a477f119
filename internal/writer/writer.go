// Package writer commits the rewritten configuration to disk. Output is
// written through a staged temporary file, so the destination either receives
// the complete new content or keeps its previous state.
package writer

import (
	"os"

	"github.com/creachadair/atomicfile"

	"github.com/petrosquatr/vlan-replacer/internal/errors"
)

// WriteFile writes data to path with the given mode. The write is atomic:
// a failure at any point leaves path untouched.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	out, err := atomicfile.New(path, mode)
	if err != nil {
		return errors.NewFileNotWritableError(path, err)
	}
	defer out.Cancel()

	if _, err := out.Write(data); err != nil {
		return errors.NewFileNotWritableError(path, err)
	}
	if err := out.Close(); err != nil {
		return errors.NewFileNotWritableError(path, err)
	}
	return nil
}
