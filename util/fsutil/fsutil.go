// Package fsutil contains small filesystem helpers.
package fsutil

import (
	"fmt"
	"os"
)

// EnsureDir ensures a directory exists, creating it (and any missing
// parents) if necessary.
func EnsureDir(p string) error {
	s, err := os.Stat(p)
	if os.IsNotExist(err) {
		return os.MkdirAll(p, 0775)
	}
	if err != nil {
		return err
	}
	if !s.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", p)
	}
	return nil
}

// Exists returns whether the given file or directory exists.
func Exists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
