//go:build windows

package renamer

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isCrossDevice reports whether err is a MoveFileEx failure across volumes.
func isCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}
