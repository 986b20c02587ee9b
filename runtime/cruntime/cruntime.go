/*
File   : stolac/runtime/cruntime/cruntime.go
Package: cruntime

Package cruntime embeds the C runtime source the compiler ships
alongside every emitted assembly file (spec.md §1 "linked against a C
runtime shipped alongside the compiler"). The Go compiler never compiles
this source itself, and cmd/stolac does not write it out; Source/Header
hold a single embedded, versioned copy, whose entry-point names this
package's tests check against what the compiler's .extern declarations
expect.
*/
package cruntime

import _ "embed"

//go:embed runtime.c
var Source string

//go:embed runtime.h
var Header string
