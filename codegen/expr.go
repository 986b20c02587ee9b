package codegen

import (
	"fmt"

	"github.com/stola-lang/stolac/ast"
	"github.com/stola-lang/stolac/token"
)

// genExpr emits code for any expression, leaving its result in rax. It is
// the single entry point generateFunction/control-flow codegen calls;
// every other gen* method in this package is a helper it dispatches to.
func (g *Generator) genExpr(expr ast.Expression, fc *funcCtx) {
	switch n := expr.(type) {
	case *ast.NumberLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.StringLiteral, *ast.Identifier:
		g.genLiteral(expr, fc)
	case *ast.BinaryOp:
		g.genBinaryOp(n, fc)
	case *ast.UnaryOp:
		g.genUnaryOp(n, fc)
	case *ast.CallExpr:
		g.genCallExpr(n, fc)
	case *ast.ArrayLiteral:
		g.genArrayLiteral(n, fc)
	case *ast.DictLiteral:
		g.genDictLiteral(n, fc)
	case *ast.MemberAccess:
		g.genMemberAccess(n, fc)
	case *ast.NewExpr:
		g.genNewExpr(n, fc)
	case *ast.ThisExpr:
		g.genThisExpr(fc)
	case *ast.StructInitExpr:
		g.errorf("[Line %d] internal error: struct-init expression reached codegen", n.Position().Line)
	default:
		g.errorf("[Line %d] internal error: genExpr called with unhandled node %T", expr.Position().Line, expr)
	}
}

// normalizeOp folds the word-form spelling of a binary operator onto its
// punctuation Kind, so every switch downstream only needs to handle one
// spelling per operator (spec.md §4.1: word and punctuation forms of the
// same operator are interchangeable at the token level).
func normalizeOp(k token.Kind) token.Kind {
	switch k {
	case token.PLUS_WORD:
		return token.PLUS
	case token.MINUS_WORD:
		return token.MINUS
	case token.TIMES_WORD:
		return token.STAR
	case token.DIVIDED_BY:
		return token.SLASH
	case token.MODULO_WORD:
		return token.PERCENT
	case token.POWER_WORD:
		return token.POWER_OP
	case token.EQUALS_WORD:
		return token.EQ
	case token.NOT_EQUALS:
		return token.NE
	case token.LESS_THAN:
		return token.LT
	case token.LESS_EQUALS:
		return token.LE
	case token.GREATER_THAN:
		return token.GT
	case token.GREATER_EQUALS:
		return token.GE
	default:
		return k
	}
}

var binaryRuntimeFunc = map[token.Kind]string{
	token.PLUS:    "stola_add",
	token.MINUS:   "stola_sub",
	token.STAR:    "stola_mul",
	token.SLASH:   "stola_div",
	token.PERCENT: "stola_mod",
	token.LT:      "stola_lt",
	token.GT:      "stola_gt",
	token.LE:      "stola_le",
	token.GE:      "stola_ge",
	token.EQ:      "stola_eq",
	token.AND_KW:  "stola_and",
	token.OR_KW:   "stola_or",
}

func (g *Generator) genBinaryOp(n *ast.BinaryOp, fc *funcCtx) {
	op := normalizeOp(n.Op)

	// != has no runtime entry point of its own: it is `not (a == b)`,
	// generated as eq followed by a negation (stola_not in hosted mode, a
	// flip of the 0/1 result in freestanding mode).
	if op == token.NE {
		g.genBinaryOp(&ast.BinaryOp{Op: token.EQ, Left: n.Left, Right: n.Right}, fc)
		if g.Mode == Freestanding {
			g.emit("xor rax, 1")
			return
		}
		g.emit("mov %s, rax", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_not")
		return
	}

	if g.Mode == Freestanding {
		g.genBinaryOpFreestanding(op, n, fc)
		return
	}

	runtimeFn, ok := binaryRuntimeFunc[op]
	if !ok {
		g.errorf("[Line %d] internal error: unhandled binary operator %q", n.Position().Line, n.Op)
		return
	}
	g.genExpr(n.Left, fc)
	g.emit("push rax")
	g.genExpr(n.Right, fc)
	g.emit("mov %s, rax", g.ABI.ArgRegister(1))
	g.emit("pop %s", g.ABI.ArgRegister(0))
	g.emitCallAndUse(runtimeFn)
}

// genBinaryOpFreestanding compiles straight to native integer
// instructions: no runtime, no Value boxing, per spec.md §1's
// freestanding mode.
func (g *Generator) genBinaryOpFreestanding(op token.Kind, n *ast.BinaryOp, fc *funcCtx) {
	g.genExpr(n.Left, fc)
	g.emit("push rax")
	g.genExpr(n.Right, fc)
	g.emit("mov rbx, rax") // right operand; rbx is free here, not yet assigned as a local register at this point in prologue-less leaf expressions
	g.emit("pop rax")      // left operand

	switch op {
	case token.PLUS:
		g.emit("add rax, rbx")
	case token.MINUS:
		g.emit("sub rax, rbx")
	case token.STAR:
		g.emit("imul rax, rbx")
	case token.SLASH:
		g.emit("cqo")
		g.emit("idiv rbx")
	case token.PERCENT:
		g.emit("cqo")
		g.emit("idiv rbx")
		g.emit("mov rax, rdx")
	case token.LT, token.GT, token.LE, token.GE, token.EQ:
		g.emit("cmp rax, rbx")
		g.emit(setccFor(op))
		g.emit("movzx rax, al")
	case token.AND_KW:
		g.emit("test rax, rax")
		g.emit("setnz al")
		g.emit("test rbx, rbx")
		g.emit("setnz bl")
		g.emit("and al, bl")
		g.emit("movzx rax, al")
	case token.OR_KW:
		g.emit("test rax, rax")
		g.emit("setnz al")
		g.emit("test rbx, rbx")
		g.emit("setnz bl")
		g.emit("or al, bl")
		g.emit("movzx rax, al")
	default:
		g.errorf("[Line %d] internal error: unhandled freestanding binary operator %q", n.Position().Line, n.Op)
	}
}

func setccFor(op token.Kind) string {
	switch op {
	case token.LT:
		return "setl al"
	case token.GT:
		return "setg al"
	case token.LE:
		return "setle al"
	case token.GE:
		return "setge al"
	case token.EQ:
		return "sete al"
	default:
		return "sete al"
	}
}

func (g *Generator) genUnaryOp(n *ast.UnaryOp, fc *funcCtx) {
	g.genExpr(n.Right, fc)
	if g.Mode == Freestanding {
		switch n.Op {
		case token.MINUS:
			g.emit("neg rax")
		case token.NOT_KW:
			g.emit("test rax, rax")
			g.emit("setz al")
			g.emit("movzx rax, al")
		default:
			g.errorf("[Line %d] internal error: unhandled freestanding unary operator %q", n.Position().Line, n.Op)
		}
		return
	}
	g.emit("mov %s, rax", g.ABI.ArgRegister(0))
	switch n.Op {
	case token.MINUS:
		g.emitCallAndUse("stola_neg")
	case token.NOT_KW:
		g.emitCallAndUse("stola_not")
	default:
		g.errorf("[Line %d] internal error: unhandled unary operator %q", n.Position().Line, n.Op)
	}
}

// genCallExpr handles ordinary function calls (the callee is a plain
// identifier naming a user function or a closed-list builtin). Method
// calls (`obj.method(args)`) are routed through genMemberAccess's call
// path instead, since they need `this` threaded through invoke_method.
func (g *Generator) genCallExpr(n *ast.CallExpr, fc *funcCtx) {
	callee, ok := n.Callee.(*ast.Identifier)
	if !ok {
		if ma, isMember := n.Callee.(*ast.MemberAccess); isMember {
			g.genMethodCall(ma, n.Args, fc)
			return
		}
		g.errorf("[Line %d] internal error: call target is neither an identifier nor a member access", n.Position().Line)
		return
	}

	if name, isBuiltin := g.builtinRuntimeName(callee.Name); isBuiltin {
		g.genArgsIntoRegisters(n.Args, fc)
		g.emitCallAndUse(name)
		return
	}

	if g.cFunctions[callee.Name] {
		g.genCCallExpr(callee.Name, n.Args, fc)
		return
	}

	g.genArgsIntoRegisters(n.Args, fc)
	g.emitCall(callee.Name)
}

// genArgsIntoRegisters evaluates each argument (left to right) and moves
// its result into the corresponding ABI argument register. Values are
// spilled to the stack between evaluations exactly like binary-operator
// operands, then popped into place once every argument has a home
// register, so a later argument's evaluation can't clobber an earlier
// one still sitting in an argument register.
func (g *Generator) genArgsIntoRegisters(args []ast.Expression, fc *funcCtx) {
	n := len(args)
	if n > 4 {
		g.errorf("call has %d arguments; only 4 are supported by the native calling convention", n)
		n = 4
	}
	for _, arg := range args[:n] {
		g.genExpr(arg, fc)
		g.emit("push rax")
	}
	for i := n - 1; i >= 0; i-- {
		g.emit("pop %s", g.ABI.ArgRegister(i))
	}
}

func (g *Generator) genArrayLiteral(n *ast.ArrayLiteral, fc *funcCtx) {
	g.emitCallAndUse("stola_new_array")
	for _, el := range n.Elements {
		g.emit("push rax") // keep the array alive across pushing the element
		g.genExpr(el, fc)
		g.emit("mov %s, rax", g.ABI.ArgRegister(1)) // value
		g.emit("pop %s", g.ABI.ArgRegister(0))      // array
		g.emit("push %s", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_push")
		g.emit("pop rax") // restore array as the running result
	}
}

func (g *Generator) genDictLiteral(n *ast.DictLiteral, fc *funcCtx) {
	g.emitCallAndUse("stola_new_dict")
	for i := range n.Keys {
		g.emit("push rax")
		g.genExpr(n.Keys[i], fc)
		g.emit("push rax")
		g.genExpr(n.Values[i], fc)
		g.emit("mov %s, rax", g.ABI.ArgRegister(2))
		g.emit("pop %s", g.ABI.ArgRegister(1))
		g.emit("pop %s", g.ABI.ArgRegister(0))
		g.emit("push %s", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_dict_set")
		g.emit("pop rax")
	}
}

func (g *Generator) genMemberAccess(n *ast.MemberAccess, fc *funcCtx) {
	g.genExpr(n.Object, fc)
	if n.IsComputed {
		g.emit("push rax")
		g.genExpr(n.Property, fc)
		g.emit("mov %s, rax", g.ABI.ArgRegister(1))
		g.emit("pop %s", g.ABI.ArgRegister(0))
		g.emitCallAndUse("stola_array_get")
		return
	}
	prop, ok := n.Property.(*ast.Identifier)
	if !ok {
		g.errorf("[Line %d] internal error: non-computed member access without an identifier property", n.Position().Line)
		return
	}
	label := g.strs.Label(prop.Name)
	g.emit("mov %s, rax", g.ABI.ArgRegister(0))
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(1), label)
	g.emitCallAndUse("stola_struct_get")
}

// genMethodCall compiles `obj.method(args)`: obj is evaluated as `this`,
// then invoke_method(this, method_name_cstr, a1, a2) is called per
// spec.md §4.5. The closed call signature caps methods at two
// non-this arguments.
func (g *Generator) genMethodCall(ma *ast.MemberAccess, args []ast.Expression, fc *funcCtx) {
	methodName, ok := ma.Property.(*ast.Identifier)
	if !ok {
		g.errorf("[Line %d] internal error: method call without an identifier method name", ma.Position().Line)
		return
	}
	if len(args) > 2 {
		g.errorf("[Line %d] method calls support at most 2 arguments, got %d", ma.Position().Line, len(args))
	}
	g.genExpr(ma.Object, fc)
	g.emit("push rax") // this

	evaluated := 0
	for _, a := range args {
		if evaluated >= 2 {
			break
		}
		g.genExpr(a, fc)
		g.emit("push rax")
		evaluated++
	}
	for i := evaluated - 1; i >= 0; i-- {
		g.emit("pop %s", g.ABI.ArgRegister(2+i))
	}
	for evaluated < 2 {
		g.emit("mov %s, 0", g.ABI.ArgRegister(2+evaluated))
		evaluated++
	}
	label := g.strs.Label(methodName.Name)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(1), label)
	g.emit("pop %s", g.ABI.ArgRegister(0)) // this
	g.emitCallAndUse("stola_invoke_method")
}

func (g *Generator) genNewExpr(n *ast.NewExpr, fc *funcCtx) {
	label := g.strs.Label(n.ClassName)
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(0), label)
	g.emitCallAndUse("stola_new_struct")
	g.emit("push rax") // the new struct, both as the result and as `this` for init

	evaluated := 0
	for _, a := range n.Args {
		if evaluated >= 2 {
			break
		}
		g.genExpr(a, fc)
		g.emit("push rax")
		evaluated++
	}
	for i := evaluated - 1; i >= 0; i-- {
		g.emit("pop %s", g.ABI.ArgRegister(2+i))
	}
	for evaluated < 2 {
		g.emit("mov %s, 0", g.ABI.ArgRegister(2+evaluated))
		evaluated++
	}
	initLabel := g.strs.Label("init")
	g.emit("lea %s, [rip + %s]", g.ABI.ArgRegister(1), initLabel)
	g.emit("mov %s, [rsp]", g.ABI.ArgRegister(0)) // this, without popping the struct off the stack yet
	g.emitCallAndUse("stola_invoke_method")
	g.emit("pop rax") // discard init's return value; new's result is the struct itself
}

func (g *Generator) genThisExpr(fc *funcCtx) {
	if lv, ok := fc.lookupLocal("this"); ok {
		g.emit("mov rax, %s", lv.operand())
		return
	}
	g.errorf("internal error: this referenced outside a method context")
}

// builtinRuntimeName reports the runtime entry point for a closed-list
// builtin function name (spec.md §6), or false if name is not one of
// them (a user function call instead).
func (g *Generator) builtinRuntimeName(name string) (string, bool) {
	if isHostedBuiltin(name) {
		return fmt.Sprintf("stola_%s", canonicalBuiltinName(name)), true
	}
	return "", false
}
