// Package renamer performs the filesystem side of a batch rename.
package renamer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"changejane/internal/substitute"
)

// RenameErrorType represents the type of rename error.
type RenameErrorType string

const (
	// SourceNotFound indicates the file to rename does not exist.
	SourceNotFound RenameErrorType = "SOURCE_NOT_FOUND"
	// DestinationExists indicates the platform refused to replace the destination.
	DestinationExists RenameErrorType = "DESTINATION_EXISTS"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied RenameErrorType = "PERMISSION_DENIED"
	// RenameFailed covers any other failure reported by the operating system.
	RenameFailed RenameErrorType = "RENAME_FAILED"
)

// RenameError represents an error that occurred while renaming one file.
type RenameError struct {
	Type RenameErrorType
	Old  string
	New  string
	Err  error
}

func (e *RenameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q -> %q (%v)", e.Type, e.Old, e.New, e.Err)
	}
	return fmt.Sprintf("%s: %q -> %q", e.Type, e.Old, e.New)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// Rename moves pair.Old to pair.New using the operating system's rename.
// Relative names resolve against the working directory. Whether an existing
// destination is replaced is left to the platform. Renames across
// filesystems fall back to copying the file and removing the original.
// A pair whose names are equal only needs its source to exist; os.Rename
// would reject it when the source is a directory.
func Rename(pair substitute.Pair) error {
	if pair.Unchanged() {
		if _, err := os.Lstat(pair.Old); err != nil {
			return classify(pair, err)
		}
		return nil
	}

	err := os.Rename(pair.Old, pair.New)
	if err == nil {
		return nil
	}
	if isCrossDevice(err) {
		if err := copyAndDelete(pair.Old, pair.New); err != nil {
			return classify(pair, err)
		}
		return nil
	}
	return classify(pair, err)
}

// classify wraps an OS error in a RenameError of the matching type.
func classify(pair substitute.Pair, err error) error {
	if _, ok := err.(*RenameError); ok {
		return err
	}
	errType := RenameFailed
	switch {
	case os.IsNotExist(err):
		errType = SourceNotFound
	case os.IsPermission(err):
		errType = PermissionDenied
	case os.IsExist(err):
		errType = DestinationExists
	}
	return &RenameError{
		Type: errType,
		Old:  pair.Old,
		New:  pair.New,
		Err:  err,
	}
}

// copyAndDelete copies src to dst and removes src.
// Used when os.Rename cannot move a file across devices.
func copyAndDelete(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &RenameError{
			Type: RenameFailed,
			Old:  src,
			New:  dst,
			Err:  errors.New("cannot move directory across devices"),
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".changejane-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	// dst is untouched until the copy is complete.
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	// Like mv, a source that cannot be removed is reported but both copies are kept.
	return os.Remove(src)
}
