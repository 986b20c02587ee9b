//go:build windows

package abi

// FreestandingRegionHint mirrors its unix sibling. x/sys/windows has no
// Getpagesize equivalent (Windows exposes it only via GetSystemInfo's
// dwPageSize field, which is both heavier to call and constant in
// practice on x86-64); the architecture's page size is fixed at 4096, so
// that constant is used directly rather than taking on a GetSystemInfo
// call for a value that never varies on this target.
func FreestandingRegionHint() int {
	return 4096
}
