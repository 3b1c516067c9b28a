package bake

import (
	"fmt"
	"os"
	"path/filepath"
)

// Die prints a diagnostic prefixed with the program name to stderr and
// terminates the process with a failure exit code. It is the fatal-on-error
// convenience layer for build scripts that do not want to thread errors.
func Die(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", filepath.Base(os.Args[0]), err)
	os.Exit(1)
}

// Must returns v, calling Die when err is non-nil. Typical use:
//
//	p := bake.Must(r.Start(ctx, cmd))
func Must[T any](v T, err error) T {
	if err != nil {
		Die(err)
	}
	return v
}

// MustStatus returns the termination status, calling Die when err is non-nil.
// A non-zero status is a normal outcome and is returned for the caller to
// branch on, not treated as fatal.
func MustStatus(status int, err error) int {
	if err != nil {
		Die(err)
	}
	return status
}
