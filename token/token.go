/*
File   : stolac/token/token.go
Package: token

Package token defines the lexical token model shared by the lexer and the
parser: token kinds, the keyword table, and the multi-word operator forms
the lexer stitches together from bare identifiers ("less than", "divided
by", ...).

A Token is a small, owned value: by the time the lexer produces one, its
Literal has already been copied out of the source buffer, so the AST and
parser never need to keep the original source text alive.
*/
package token

import "fmt"

// Kind identifies the lexical category of a Token. It is a string type
// (rather than an int) so tokens print legibly in error messages and test
// failures without a lookup table.
type Kind string

// Position locates a token (or, later, an AST node) in the original
// source text. Lines and columns are 1-indexed. Offset is the 0-indexed
// byte offset of the token's first byte, used by the parser to slice out
// raw (non-tokenized) source spans such as `asm { ... }` bodies.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders a Position as "line:column", used in diagnostic prefixes.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p sorts strictly before o in source order. Used by
// the lexer tests asserting that token positions form a non-decreasing
// sequence.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

const (
	// Special
	EOF   Kind = "EOF"
	ERROR Kind = "ERROR"
	ILLEGAL Kind = "ILLEGAL"

	NEWLINE Kind = "NEWLINE"

	// Literals and identifiers
	IDENTIFIER Kind = "IDENTIFIER"
	NUMBER     Kind = "NUMBER"
	STRING     Kind = "STRING"

	// Keywords — control flow
	IF       Kind = "if"
	ELIF     Kind = "elif"
	ELSE     Kind = "else"
	WHILE    Kind = "while"
	FOR      Kind = "for"
	LOOP     Kind = "loop"
	MATCH    Kind = "match"
	CASE     Kind = "case"
	DEFAULT  Kind = "default"
	END      Kind = "end"
	RETURN   Kind = "return"
	BREAK    Kind = "break"
	CONTINUE Kind = "continue"
	IN       Kind = "in"
	FROM     Kind = "from"
	TO       Kind = "to"
	STEP     Kind = "step"

	// Keywords — declarations
	FUNCTION      Kind = "function"
	STRUCT        Kind = "struct"
	CLASS         Kind = "class"
	THIS          Kind = "this"
	NEW           Kind = "new"
	IMPORT        Kind = "import"
	IMPORT_NATIVE Kind = "import_native"
	C_FUNCTION    Kind = "c_function"
	INTERRUPT     Kind = "interrupt"
	ASM           Kind = "asm"

	// Keywords — exceptions
	TRY   Kind = "try"
	CATCH Kind = "catch"
	THROW Kind = "throw"

	// Keywords — literals
	TRUE_KW  Kind = "true"
	FALSE_KW Kind = "false"
	NULL_KW  Kind = "null"

	// Keywords — logical, word-form operators
	AND_KW Kind = "and"
	OR_KW  Kind = "or"
	NOT_KW Kind = "not"
	AT_KW  Kind = "at"

	// Word-form arithmetic/comparison operators (multi-word lexing, §4.1)
	PLUS_WORD     Kind = "plus"
	MINUS_WORD    Kind = "minus"
	TIMES_WORD    Kind = "times"
	MODULO_WORD   Kind = "modulo"
	POWER_WORD    Kind = "power"
	EQUALS_WORD   Kind = "equals"
	LESS_THAN     Kind = "less than"
	LESS_EQUALS   Kind = "less or equals"
	GREATER_THAN  Kind = "greater than"
	GREATER_EQUALS Kind = "greater or equals"
	NOT_EQUALS    Kind = "not equals"
	DIVIDED_BY    Kind = "divided by"

	// Punctuation operators
	PLUS     Kind = "+"
	MINUS    Kind = "-"
	STAR     Kind = "*"
	SLASH    Kind = "/"
	PERCENT  Kind = "%"
	POWER_OP Kind = "**"
	LT       Kind = "<"
	GT       Kind = ">"
	LE       Kind = "<="
	GE       Kind = ">="
	EQ       Kind = "=="
	NE       Kind = "!="
	ASSIGN   Kind = "="
	ARROW    Kind = "->"

	// Delimiters
	LPAREN   Kind = "("
	RPAREN   Kind = ")"
	LBRACE   Kind = "{"
	RBRACE   Kind = "}"
	LBRACKET Kind = "["
	RBRACKET Kind = "]"
	COMMA    Kind = ","
	DOT      Kind = "."
	COLON    Kind = ":"
)

// keywords maps the literal spelling of a reserved word to its Kind. The
// lexer consults this table after scanning a full identifier run; anything
// absent from the table is an ordinary IDENTIFIER.
var keywords = map[string]Kind{
	"if": IF, "elif": ELIF, "else": ELSE, "while": WHILE, "for": FOR,
	"loop": LOOP, "match": MATCH, "case": CASE, "default": DEFAULT,
	"end": END, "return": RETURN, "break": BREAK, "continue": CONTINUE,
	"in": IN, "from": FROM, "to": TO, "step": STEP,
	"function": FUNCTION, "struct": STRUCT, "class": CLASS, "this": THIS,
	"new": NEW, "import": IMPORT, "import_native": IMPORT_NATIVE,
	"c_function": C_FUNCTION, "interrupt": INTERRUPT, "asm": ASM,
	"try": TRY, "catch": CATCH, "throw": THROW,
	"true": TRUE_KW, "false": FALSE_KW, "null": NULL_KW,
	"and": AND_KW, "or": OR_KW, "not": NOT_KW, "at": AT_KW,
	"plus": PLUS_WORD, "minus": MINUS_WORD, "times": TIMES_WORD,
	"modulo": MODULO_WORD, "power": POWER_WORD, "equals": EQUALS_WORD,
}

// LookupIdent classifies an identifier-shaped run of characters as either a
// keyword Kind or a plain IDENTIFIER.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENTIFIER
}

// Token is a single lexical unit: its kind, its literal text as it
// appeared in the source (word-form multi-token operators are joined with
// a single space, e.g. "less than"), and its source position.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position
}

// New builds a Token without position information; used by tests that
// only care about the token stream's shape.
func New(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

// NewAt builds a fully-positioned Token, as produced by the lexer.
func NewAt(kind Kind, literal string, pos Position) Token {
	return Token{Kind: kind, Literal: literal, Pos: pos}
}

// String renders a token as "literal:kind", mirroring the compact debug
// format used across the pipeline's error messages.
func (t Token) String() string {
	return fmt.Sprintf("%s:%s", t.Literal, t.Kind)
}
