//go:build !windows

package abi

import "golang.org/x/sys/unix"

// FreestandingRegionHint returns the host page size. The generator does
// not call it and nothing in the emitted assembly depends on it;
// freestanding code addresses memory directly regardless of what the
// compiler ran on.
func FreestandingRegionHint() int {
	return unix.Getpagesize()
}
