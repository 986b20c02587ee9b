package codegen

import "fmt"

// localVar describes where one local variable lives: either a
// callee-saved register (first-fit, up to len(ABI.CalleeSaved) locals)
// or a slot in the per-frame 512-byte spill area addressed relative to
// rbp, per spec.md §4.5's first-fit callee-saved allocator.
type localVar struct {
	name        string
	inReg       bool
	reg         string
	spillOffset int // only meaningful when !inReg; bytes below rbp
}

// operand returns the assembly operand text referencing this local.
func (lv *localVar) operand() string {
	if lv.inReg {
		return lv.reg
	}
	return fmt.Sprintf("[rbp - %d]", lv.spillOffset)
}

// funcCtx is the per-function state threaded through codegen while one
// function or method body is being emitted: its local-variable
// allocator, the shared epilogue label every `return` jumps to, and the
// callee-saved registers actually pressed into service (so the prologue
// and epilogue save/restore exactly the ones used, no more).
type funcCtx struct {
	name         string
	epilogue     string
	locals       map[string]*localVar
	order        []string // insertion order, for deterministic prologue emission
	regPool      []string // remaining unassigned callee-saved registers
	usedRegs     []string // assigned registers, in assignment order
	spillInUse   bool
	interrupt    bool

	breakLabels    []string // stack of enclosing loops' break targets
	continueLabels []string // stack of enclosing loops' continue targets
}

func (g *Generator) newFuncCtx(name string, interrupt bool) *funcCtx {
	pool := make([]string, len(g.ABI.CalleeSaved))
	copy(pool, g.ABI.CalleeSaved)
	return &funcCtx{
		name:      name,
		epilogue:  g.labels.New("epilogue_" + name + "_"),
		locals:    make(map[string]*localVar),
		regPool:   pool,
		interrupt: interrupt,
	}
}

// allocLocal returns the slot for name, assigning one on first use:
// first-fit into a free callee-saved register, falling back to a
// deterministic hashed offset into the spill area once the register
// pool is exhausted. Two different names that collide on the same spill
// offset silently alias one slot — an accepted limitation of the hashed
// scheme, not a bug to be fixed here.
func (fc *funcCtx) allocLocal(name string) *localVar {
	if lv, ok := fc.locals[name]; ok {
		return lv
	}
	var lv *localVar
	if len(fc.regPool) > 0 {
		reg := fc.regPool[0]
		fc.regPool = fc.regPool[1:]
		fc.usedRegs = append(fc.usedRegs, reg)
		lv = &localVar{name: name, inReg: true, reg: reg}
	} else {
		fc.spillInUse = true
		lv = &localVar{name: name, spillOffset: spillOffsetFor(name)}
	}
	fc.locals[name] = lv
	fc.order = append(fc.order, name)
	return lv
}

func (fc *funcCtx) lookupLocal(name string) (*localVar, bool) {
	lv, ok := fc.locals[name]
	return lv, ok
}

// spillOffsetFor implements the documented collision-prone hash scheme:
// ((hash(name) mod 64) + 1) * 8, giving offsets in [8, 512].
func spillOffsetFor(name string) int {
	return ((int(hashName(name) % 64)) + 1) * 8
}

// hashName is an FNV-1a 64-bit hash, kept local to codegen rather than
// imported from runtime since the two packages hash for unrelated
// purposes (dict slot placement vs. deterministic spill offsets) and
// sharing the function would couple them for no benefit.
func hashName(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

const spillAreaSize = 512
