//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points the stdout and stderr descriptors at path, so library
// and runtime output (panics included) land in the file too.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return fmt.Errorf("dup2 onto %s: %w", std.Name(), err)
		}
	}
	return nil
}
