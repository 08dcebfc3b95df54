package languages

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/highlighter/highlight"
)

// tok is shorthand for building expected tokens.
func tok(s highlight.Scope, v string) highlight.Token {
	return highlight.Token{Scope: s, Value: v}
}

func lex(t *testing.T, lang highlight.Language, src string) []highlight.Token {
	t.Helper()
	tokens, err := highlight.Highlight(lang, src)
	require.NoError(t, err)
	require.Equal(t, src, highlight.Join(tokens), "tokens must reproduce the input")
	return tokens
}

func TestExample(t *testing.T) {
	got := lex(t, Example{}, "var i = 0;")

	require.Equal(t, []highlight.Token{
		tok(highlight.StorageType, "var"),
		tok(highlight.None, " "),
		tok(highlight.None, "i"),
		tok(highlight.None, " "),
		tok(highlight.None, "="),
		tok(highlight.None, " "),
		tok(highlight.ConstantNumber, "0"),
		tok(highlight.None, ";"),
	}, got)
}

func TestExample_Booleans(t *testing.T) {
	got := lex(t, Example{}, "return true")

	require.Equal(t, []highlight.Token{
		tok(highlight.KeywordControl, "return"),
		tok(highlight.None, " "),
		tok(highlight.ConstantLanguage, "true"),
	}, got)
}

func TestBrainheck(t *testing.T) {
	got := lex(t, Brainheck{}, "++[>+<-] add.")

	require.Equal(t, []highlight.Token{
		tok(highlight.KeywordOperator, "++[>+<-]"),
		tok(highlight.Comment, " add"),
		tok(highlight.KeywordOperator, "."),
	}, got)
}

func TestBQL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []highlight.Token
	}{
		{
			name:  "simple comparison",
			input: "status = open",
			want: []highlight.Token{
				tok(highlight.VariableOther, "status"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOperator, "="),
				tok(highlight.None, " "),
				tok(highlight.StringOther, "open"),
			},
		},
		{
			name:  "in list",
			input: "priority in (P0, P1)",
			want: []highlight.Token{
				tok(highlight.VariableOther, "priority"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOperator, "in"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOther, "("),
				tok(highlight.StringOther, "P0"),
				tok(highlight.KeywordOther, ","),
				tok(highlight.None, " "),
				tok(highlight.StringOther, "P1"),
				tok(highlight.KeywordOther, ")"),
			},
		},
		{
			name:  "not in",
			input: "type not in (bug)",
			want: []highlight.Token{
				tok(highlight.VariableOther, "type"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOperator, "not in"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOther, "("),
				tok(highlight.StringOther, "bug"),
				tok(highlight.KeywordOther, ")"),
			},
		},
		{
			name:  "keywords and literals",
			input: "ready = true AND updated > -7d",
			want: []highlight.Token{
				tok(highlight.VariableOther, "ready"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOperator, "="),
				tok(highlight.None, " "),
				tok(highlight.ConstantLanguage, "true"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOperator, "AND"),
				tok(highlight.None, " "),
				tok(highlight.VariableOther, "updated"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOperator, ">"),
				tok(highlight.None, " "),
				tok(highlight.ConstantNumber, "-7d"),
			},
		},
		{
			name:  "order by",
			input: "order by created desc",
			want: []highlight.Token{
				tok(highlight.KeywordOther, "order"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOther, "by"),
				tok(highlight.None, " "),
				tok(highlight.VariableOther, "created"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOther, "desc"),
			},
		},
		{
			name:  "unterminated string",
			input: `title ~ "bug`,
			want: []highlight.Token{
				tok(highlight.VariableOther, "title"),
				tok(highlight.None, " "),
				tok(highlight.KeywordOperator, "~"),
				tok(highlight.None, " "),
				tok(highlight.StringQuoted, `"bug`),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, lex(t, BQL{}, tt.input))
		})
	}
}

func TestGo(t *testing.T) {
	got := lex(t, Go{}, `func main() { fmt.Println("hi", len(x)) // done`)

	require.Equal(t, []highlight.Token{
		tok(highlight.StorageType, "func"),
		tok(highlight.None, " "),
		tok(highlight.NameFunction, "main"),
		tok(highlight.KeywordOther, "("),
		tok(highlight.None, ")"),
		tok(highlight.None, " "),
		tok(highlight.None, "{"),
		tok(highlight.None, " "),
		tok(highlight.VariableOther, "fmt"),
		tok(highlight.None, "."),
		tok(highlight.NameFunction, "Println"),
		tok(highlight.KeywordOther, "("),
		tok(highlight.StringQuoted, `"hi"`),
		tok(highlight.None, ","),
		tok(highlight.None, " "),
		tok(highlight.SupportFunction, "len"),
		tok(highlight.KeywordOther, "("),
		tok(highlight.VariableOther, "x"),
		tok(highlight.None, ")"),
		tok(highlight.None, ")"),
		tok(highlight.None, " "),
		tok(highlight.Comment, "// done"),
	}, got)
}

func TestGo_KeywordsBeatCalls(t *testing.T) {
	got := lex(t, Go{}, "if (ok) {\n\treturn nil\n}")

	require.Equal(t, tok(highlight.KeywordControl, "if"), got[0])
	require.Contains(t, got, tok(highlight.KeywordControl, "return"))
	require.Contains(t, got, tok(highlight.ConstantLanguage, "nil"))
	require.NotContains(t, got, tok(highlight.NameFunction, "if"))
}

func TestGo_Literals(t *testing.T) {
	got := lex(t, Go{}, "x := 0x1F + 2.5e3 + 'a' + `raw`")

	require.Contains(t, got, tok(highlight.ConstantNumber, "0x1F"))
	require.Contains(t, got, tok(highlight.ConstantNumber, "2.5e3"))
	require.Contains(t, got, tok(highlight.ConstantChar, "'a'"))
	require.Contains(t, got, tok(highlight.StringOther, "`raw`"))
	require.Contains(t, got, tok(highlight.KeywordOperator, ":="))
}

func TestGo_BlockComment(t *testing.T) {
	got := lex(t, Go{}, "/* a\nb */x")

	require.Equal(t, []highlight.Token{
		tok(highlight.Comment, "/* a\nb */"),
		tok(highlight.VariableOther, "x"),
	}, got)
}
