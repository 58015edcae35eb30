// Package listfile reads the list of filenames to rename.
package listfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ListErrorType represents the type of list file error.
type ListErrorType string

const (
	// FileNotFound indicates the list file does not exist.
	FileNotFound ListErrorType = "FILE_NOT_FOUND"
	// PermissionDenied indicates the list file could not be opened for reading.
	PermissionDenied ListErrorType = "PERMISSION_DENIED"
	// ReadFailed indicates the list file was opened but could not be read.
	ReadFailed ListErrorType = "READ_FAILED"
)

// maxLineSize bounds a single line of the list file.
const maxLineSize = 1024 * 1024

// ListError represents a failure to access or read the list file.
type ListError struct {
	Type ListErrorType
	Path string
	Err  error
}

func (e *ListError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("list file not found: %s", e.Path)
	case PermissionDenied:
		return fmt.Sprintf("permission denied opening list file: %s", e.Path)
	default:
		return fmt.Sprintf("failed to read list file %s: %v", e.Path, e.Err)
	}
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// Read returns the lines of the list file in order, each with surrounding
// whitespace removed. Blank lines are kept as empty strings. A trailing
// newline at the end of the file does not produce an extra entry. Lines may
// end in "\n", "\r\n" or a lone "\r".
func Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ListError{Type: FileNotFound, Path: path, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ListError{Type: PermissionDenied, Path: path, Err: err}
		}
		return nil, &ListError{Type: ReadFailed, Path: path, Err: err}
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, &ListError{Type: ReadFailed, Path: path, Err: err}
	}

	return lines, nil
}

// scanLines is a bufio.SplitFunc that treats "\n", "\r\n" and "\r" as
// line terminators.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be followed by "\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
