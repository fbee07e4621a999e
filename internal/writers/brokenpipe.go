package writers

import (
	"errors"
	"io/fs"
	"syscall"
)

// IsBrokenPipe reports whether err is the result of the consumer closing
// the pipe (e.g. piping into head). Treated as a clean exit, not a failure.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.EPIPE) {
		return true
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr.Err, syscall.EPIPE)
	}
	return false
}
