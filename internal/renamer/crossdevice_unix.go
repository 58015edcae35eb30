//go:build unix

package renamer

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isCrossDevice reports whether err is the kernel refusing a rename across mounts.
func isCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
