package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// capture runs lang over input and returns the Captures of the first match
// of its single handled pattern.
func capture(t *testing.T, expr, input string) Captures {
	t.Helper()
	var got *Captures
	lang := testLanguage{
		name: "captures",
		init: func(cx *LexerContext) error {
			return cx.RegisterHandled(expr, func(c Captures, src string, tc *TokenContext) {
				if got == nil {
					got = &c
				}
				tc.Token(Invalid, c.Text(0))
			})
		},
	}
	mustLexer(t, lang).Lex(input)
	require.NotNil(t, got, "pattern %q never matched %q", expr, input)
	return *got
}

func TestCaptures_PositionalGroups(t *testing.T) {
	c := capture(t, `([a-z]+)(\()`, "call(")

	require.Equal(t, 3, c.Len())
	require.Equal(t, "call(", c.Text(0))
	require.Equal(t, "call", c.Text(1))
	require.Equal(t, "(", c.Text(2))

	start, end, ok := c.Span(2)
	require.True(t, ok)
	require.Equal(t, 4, start)
	require.Equal(t, 5, end)
}

func TestCaptures_SpansCountCharacters(t *testing.T) {
	c := capture(t, `(\S+)(\()`, "ñämé(")

	start, end, ok := c.Span(1)
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 4, end)
	require.Equal(t, "ñämé", c.Text(1))
}

func TestCaptures_OffsetsAreAbsolute(t *testing.T) {
	c := capture(t, `(b)`, "aab")

	start, end, ok := c.Span(1)
	require.True(t, ok)
	require.Equal(t, 2, start)
	require.Equal(t, 3, end)
}

func TestCaptures_NamedGroups(t *testing.T) {
	c := capture(t, `(?P<name>[a-z]+)(?P<paren>\()`, "run(")

	require.Equal(t, "run", c.Named("name"))
	require.Equal(t, "(", c.Named("paren"))
	require.Equal(t, "", c.Named("missing"))

	start, end, ok := c.NamedSpan("paren")
	require.True(t, ok)
	require.Equal(t, 3, start)
	require.Equal(t, 4, end)

	_, _, ok = c.NamedSpan("missing")
	require.False(t, ok)
}

func TestCaptures_NonParticipatingGroup(t *testing.T) {
	c := capture(t, `(a)|(b)`, "b")

	_, _, ok := c.Span(1)
	require.False(t, ok)
	require.Equal(t, "", c.Text(1))
	require.Equal(t, "b", c.Text(2))
}

func TestCaptures_OutOfRange(t *testing.T) {
	c := capture(t, `a`, "a")

	_, _, ok := c.Span(5)
	require.False(t, ok)
	_, _, ok = c.Span(-1)
	require.False(t, ok)
	require.Equal(t, "", c.Text(5))
}
