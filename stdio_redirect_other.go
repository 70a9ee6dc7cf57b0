//go:build !unix

package main

import "os"

// On non-unix platforms only the Go-level handles are swapped; runtime panic
// output still goes to the original stderr.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
