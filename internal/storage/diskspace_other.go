//go:build !unix

package storage

import "errors"

// freeDiskBytes is unsupported here; the caller fails open on error.
func freeDiskBytes(string) (uint64, error) {
	return 0, errors.New("disk space check not supported on this platform")
}
