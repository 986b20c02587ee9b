/*
File   : stolac/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stola-lang/stolac/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexer_PunctuationAndNumbers(t *testing.T) {
	toks := Tokenize("1 + 2 * 3")
	assert.Equal(t, []token.Kind{
		token.NUMBER, token.PLUS, token.NUMBER, token.STAR, token.NUMBER, token.EOF,
	}, kinds(toks))
}

func TestLexer_WordFormOperators(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"a less than b", token.LESS_THAN},
		{"a less or equals b", token.LESS_EQUALS},
		{"a greater than b", token.GREATER_THAN},
		{"a greater or equals b", token.GREATER_EQUALS},
		{"a divided by b", token.DIVIDED_BY},
		{"a not equals b", token.NOT_EQUALS},
	}
	for _, c := range cases {
		toks := Tokenize(c.src)
		assert.Equal(t, []token.Kind{token.IDENTIFIER, c.kind, token.IDENTIFIER, token.EOF}, kinds(toks))
	}
}

func TestLexer_WordFormRewindsOnFailedMatch(t *testing.T) {
	// "less" not followed by "than"/"or equals" must rewind to a bare identifier.
	toks := Tokenize("less 5")
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.NUMBER, token.EOF}, kinds(toks))
	assert.Equal(t, "less", toks[0].Literal)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := Tokenize("function foo end")
	assert.Equal(t, []token.Kind{token.FUNCTION, token.IDENTIFIER, token.END, token.EOF}, kinds(toks))
}

func TestLexer_StringEscapes(t *testing.T) {
	toks := Tokenize(`"a\nb\tc\\d\"e"`)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\\d\"e", toks[0].Literal)
}

func TestLexer_StringRoundTripsNonEscapeBytes(t *testing.T) {
	toks := Tokenize(`'hello, world!'`)
	assert.Equal(t, "hello, world!", toks[0].Literal)
}

func TestLexer_NewlinesAreTokens(t *testing.T) {
	toks := Tokenize("a\nb")
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.NEWLINE, token.IDENTIFIER, token.EOF}, kinds(toks))
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	toks := Tokenize("a // comment\nb /* block\ncomment */ c")
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.NEWLINE, token.IDENTIFIER, token.IDENTIFIER, token.EOF,
	}, kinds(toks))
}

func TestLexer_UnrecognizedByteIsError(t *testing.T) {
	toks := Tokenize("a ? b")
	assert.Equal(t, token.ERROR, toks[1].Kind)
}

func TestLexer_MultipleDotsAcceptedSilently(t *testing.T) {
	toks := Tokenize("1.2.3")
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, "1.2.3", toks[0].Literal)
}

func TestLexer_PositionsAreNonDecreasing(t *testing.T) {
	toks := Tokenize("a = 1\nb = 2")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Pos, toks[i].Pos
		assert.False(t, cur.Less(prev), "position went backwards at token %d", i)
	}
}

func TestLexer_MultiCharOperators(t *testing.T) {
	toks := Tokenize("<= >= == != -> **")
	assert.Equal(t, []token.Kind{
		token.LE, token.GE, token.EQ, token.NE, token.ARROW, token.POWER_OP, token.EOF,
	}, kinds(toks))
}
