/*
File   : stolac/lexer/lexer.go
Package: lexer

Package lexer turns Stola source text into a stream of token.Token values.
It is a classic single-pass character scanner: no backtracking across
tokens, only the small bounded look-ahead needed to stitch word-form
operators ("less than", "divided by", ...) together from bare identifiers.

The lexer never aborts on malformed input. An unrecognized byte becomes an
ERROR token; it is the parser's job to turn that into a diagnostic.
*/
package lexer

import (
	"strings"

	"github.com/stola-lang/stolac/token"
)

// Lexer scans a borrowed source buffer one byte at a time, tracking
// position for diagnostics. It has no heap state beyond the indices below,
// so it is cheap to construct per import-resolved module.
type Lexer struct {
	src      string
	pos      int // index of ch
	readPos  int // index of the next byte to read
	ch       byte
	line     int
	column   int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{src: src, line: 1, column: 0}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	if l.readPos >= len(l.src) {
		l.ch = 0
	} else {
		l.ch = l.src[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

func (l *Lexer) peekByte() byte {
	if l.readPos >= len(l.src) {
		return 0
	}
	return l.src[l.readPos]
}

func (l *Lexer) pos2() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

// Source returns the full borrowed source buffer. Used by the parser to
// slice out raw, non-tokenized spans (asm blocks) by token offset.
func (l *Lexer) Source() string { return l.src }

func (l *Lexer) tok(kind token.Kind, literal string) token.Token {
	return token.NewAt(kind, literal, l.pos2())
}

// skipWhitespaceAndComments consumes spaces, tabs, CRs, and both comment
// forms. Newlines are NOT skipped here: they are significant statement
// terminators and are emitted as NEWLINE tokens by NextToken.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.advance()
		case '/':
			if l.peekByte() == '/' {
				for l.ch != '\n' && l.ch != 0 {
					l.advance()
				}
				continue
			}
			if l.peekByte() == '*' {
				l.advance()
				l.advance()
				for !(l.ch == '*' && l.peekByte() == '/') && l.ch != 0 {
					if l.ch == '\n' {
						l.line++
						l.column = 0
					}
					l.advance()
				}
				if l.ch != 0 {
					l.advance()
					l.advance()
				}
				continue
			}
			return
		default:
			return
		}
	}
}

func isLetter(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// readIdentifier consumes a run of [A-Za-z0-9_] starting at the current
// letter byte.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.advance()
	}
	return l.src[start:l.pos]
}

// readNumber consumes a run of [0-9.]. Per spec, multiple dots (1.2.3) are
// accepted silently here; typing is resolved later, not during lexing.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) || l.ch == '.' {
		l.advance()
	}
	return l.src[start:l.pos]
}

// readString consumes a quoted string literal, unescaping the backslash
// forms \n \t \\ \" \' (the lexer's conventional answer to the source
// grammar's escape-processing TODO). Bytes with no escape meaning are
// passed through unchanged so round-tripping stays byte-for-byte.
func (l *Lexer) readString(quote byte) string {
	var sb strings.Builder
	l.advance() // consume opening quote
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.advance()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			case 0:
				continue
			default:
				sb.WriteByte('\\')
				sb.WriteByte(l.ch)
			}
			l.advance()
			continue
		}
		sb.WriteByte(l.ch)
		l.advance()
	}
	if l.ch == quote {
		l.advance() // consume closing quote
	}
	return sb.String()
}

// tryWordOperator tries to match a multi-word operator starting from an already
// bare-identifier-lexed leading word (e.g. "less"). It peeks ahead past
// intervening spaces for the remaining words; on a failed match the lexer
// state is rewound to just after the first word, exactly as spec.md §4.1
// requires.
func (l *Lexer) tryWordOperator(first string, pos token.Position) (token.Token, bool) {
	combos := map[string][]struct {
		words []string
		kind  token.Kind
	}{
		"less":    {{[]string{"than"}, token.LESS_THAN}, {[]string{"or", "equals"}, token.LESS_EQUALS}},
		"greater": {{[]string{"than"}, token.GREATER_THAN}, {[]string{"or", "equals"}, token.GREATER_EQUALS}},
		"divided": {{[]string{"by"}, token.DIVIDED_BY}},
		"not":     {{[]string{"equals"}, token.NOT_EQUALS}},
	}
	candidates, ok := combos[first]
	if !ok {
		return token.Token{}, false
	}
	for _, c := range candidates {
		save := *l
		matched := true
		literal := first
		for _, w := range c.words {
			l.skipSpacesOnly()
			if !isLetter(l.ch) {
				matched = false
				break
			}
			word := l.readIdentifier()
			if word != w {
				matched = false
				break
			}
			literal += " " + word
		}
		if matched {
			return l.tok(c.kind, literal), true
		}
		*l = save
	}
	return token.Token{}, false
}

// skipSpacesOnly advances over plain spaces/tabs without touching
// comments or newlines, used while probing for the remainder of a
// word-form operator.
func (l *Lexer) skipSpacesOnly() {
	for l.ch == ' ' || l.ch == '\t' {
		l.advance()
	}
}

// NextToken scans and returns the next token from the source stream.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.pos2()

	switch {
	case l.ch == 0:
		return l.tok(token.EOF, "")
	case l.ch == '\n':
		l.advance()
		l.line++
		l.column = 0
		return token.NewAt(token.NEWLINE, "\\n", pos)
	case l.ch == '\'' || l.ch == '"':
		quote := l.ch
		s := l.readString(quote)
		return token.NewAt(token.STRING, s, pos)
	case isDigit(l.ch):
		n := l.readNumber()
		return token.NewAt(token.NUMBER, n, pos)
	case isLetter(l.ch):
		ident := l.readIdentifier()
		if tok, ok := l.tryWordOperator(ident, pos); ok {
			return tok
		}
		return token.NewAt(token.LookupIdent(ident), ident, pos)
	}

	ch := l.ch
	two := func(next byte, k2 token.Kind, k1 token.Kind) token.Token {
		if next != 0 && l.peekByte() == next {
			l.advance()
			l.advance()
			return token.NewAt(k2, string(ch)+string(next), pos)
		}
		l.advance()
		return token.NewAt(k1, string(ch), pos)
	}

	switch ch {
	case '+':
		l.advance()
		return token.NewAt(token.PLUS, "+", pos)
	case '-':
		if l.peekByte() == '>' {
			l.advance()
			l.advance()
			return token.NewAt(token.ARROW, "->", pos)
		}
		l.advance()
		return token.NewAt(token.MINUS, "-", pos)
	case '*':
		return two('*', token.POWER_OP, token.STAR)
	case '/':
		l.advance()
		return token.NewAt(token.SLASH, "/", pos)
	case '%':
		l.advance()
		return token.NewAt(token.PERCENT, "%", pos)
	case '<':
		return two('=', token.LE, token.LT)
	case '>':
		return two('=', token.GE, token.GT)
	case '=':
		return two('=', token.EQ, token.ASSIGN)
	case '!':
		if l.peekByte() == '=' {
			l.advance()
			l.advance()
			return token.NewAt(token.NE, "!=", pos)
		}
		l.advance()
		return token.NewAt(token.ERROR, "!", pos)
	case '(':
		l.advance()
		return token.NewAt(token.LPAREN, "(", pos)
	case ')':
		l.advance()
		return token.NewAt(token.RPAREN, ")", pos)
	case '{':
		l.advance()
		return token.NewAt(token.LBRACE, "{", pos)
	case '}':
		l.advance()
		return token.NewAt(token.RBRACE, "}", pos)
	case '[':
		l.advance()
		return token.NewAt(token.LBRACKET, "[", pos)
	case ']':
		l.advance()
		return token.NewAt(token.RBRACKET, "]", pos)
	case ',':
		l.advance()
		return token.NewAt(token.COMMA, ",", pos)
	case '.':
		l.advance()
		return token.NewAt(token.DOT, ".", pos)
	case ':':
		l.advance()
		return token.NewAt(token.COLON, ":", pos)
	}

	l.advance()
	return token.NewAt(token.ERROR, string(ch), pos)
}

// Tokenize drains the lexer to EOF and returns the full token slice,
// inclusive of the terminating EOF token. Convenience used by tests and
// by the REPL's single-line echo mode.
func Tokenize(src string) []token.Token {
	l := New(src)
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}
