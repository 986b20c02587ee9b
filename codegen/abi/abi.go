/*
File   : stolac/codegen/abi/abi.go
Package: abi

ABI describes the two calling conventions the code generator supports
(spec.md §4.5 "ABI-selected at build time"): Windows x64 and System V
AMD64. Selecting the wrong one for a target silently corrupts every call
site, so Select is the single place that decision is made — the rest of
codegen only ever asks an ABI value for its registers and shadow space,
never branches on a target string directly.
*/
package abi

// Target names the two supported operating system targets.
type Target string

const (
	Windows Target = "windows"
	Linux   Target = "linux"
)

// ABI holds everything the call-site and prologue/epilogue emitters need
// to know about a calling convention.
type ABI struct {
	Target Target

	// ArgRegisters are the integer argument registers in order, per
	// spec.md §4.5: Windows uses (rcx, rdx, r8, r9), System V uses
	// (rdi, rsi, rdx, rcx).
	ArgRegisters []string

	// ShadowSpace is the scratch area (in bytes) a caller must reserve
	// above rsp before every call under this ABI. Windows x64 requires
	// 32 bytes; System V requires none.
	ShadowSpace int

	// CalleeSaved lists the registers the first-fit local allocator may
	// assign locals to (spec.md §4.5 "r12, r13, r14, r15, rbx") — this
	// set happens to be identical under both ABIs, since it is a
	// property of the x86-64 architecture, not the calling convention,
	// but it is carried on ABI so callers never need a second lookup.
	CalleeSaved []string
}

// Select returns the ABI for target. Any value other than "windows"
// defaults to the System V convention, matching every other Linux/BSD/
// macOS x86-64 target the compiler might reasonably be pointed at.
func Select(target Target) ABI {
	if target == Windows {
		return ABI{
			Target:       Windows,
			ArgRegisters: []string{"rcx", "rdx", "r8", "r9"},
			ShadowSpace:  32,
			CalleeSaved:  []string{"r12", "r13", "r14", "r15", "rbx"},
		}
	}
	return ABI{
		Target:       Linux,
		ArgRegisters: []string{"rdi", "rsi", "rdx", "rcx"},
		ShadowSpace:  0,
		CalleeSaved:  []string{"r12", "r13", "r14", "r15", "rbx"},
	}
}

// ArgRegister returns the i'th integer argument register, or "" if i is
// beyond the ABI's fixed register-passed argument count (spec.md never
// specifies stack-passed arguments beyond the fourth; every runtime
// entry point and FFI call site is arity ≤ 4).
func (a ABI) ArgRegister(i int) string {
	if i < 0 || i >= len(a.ArgRegisters) {
		return ""
	}
	return a.ArgRegisters[i]
}
