package abi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stola-lang/stolac/codegen/abi"
)

func TestSelect_Windows(t *testing.T) {
	a := abi.Select(abi.Windows)
	assert.Equal(t, []string{"rcx", "rdx", "r8", "r9"}, a.ArgRegisters)
	assert.Equal(t, 32, a.ShadowSpace)
}

func TestSelect_Linux(t *testing.T) {
	a := abi.Select(abi.Linux)
	assert.Equal(t, []string{"rdi", "rsi", "rdx", "rcx"}, a.ArgRegisters)
	assert.Equal(t, 0, a.ShadowSpace)
}

func TestSelect_UnknownDefaultsToSystemV(t *testing.T) {
	a := abi.Select(abi.Target("darwin"))
	assert.Equal(t, []string{"rdi", "rsi", "rdx", "rcx"}, a.ArgRegisters)
}

func TestArgRegister_OutOfRangeReturnsEmpty(t *testing.T) {
	a := abi.Select(abi.Linux)
	assert.Equal(t, "rdi", a.ArgRegister(0))
	assert.Equal(t, "", a.ArgRegister(4))
	assert.Equal(t, "", a.ArgRegister(-1))
}

func TestFreestandingRegionHint_IsPositive(t *testing.T) {
	assert.Greater(t, abi.FreestandingRegionHint(), 0)
}
