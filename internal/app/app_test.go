package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/highlighter/highlight"
	"github.com/zjrosen/highlighter/internal/config"
	"github.com/zjrosen/highlighter/internal/testutil"
	"github.com/zjrosen/highlighter/languages"
	"github.com/zjrosen/highlighter/target"
)

// newTestService builds a Service over a table holding a "Counting" language
// (alias "cnt") with one keyword rule expr, plus Go and Brainheck.
func newTestService(t *testing.T, cfg config.Config, expr string) (*Service, *testutil.Builder) {
	t.Helper()
	counting := testutil.NewBuilder(t, "Counting").
		WithAliases("cnt").
		WithPlain(highlight.KeywordControl, expr)
	table, err := languages.NewTable(
		counting.Build,
		func() highlight.Language { return languages.Go{} },
		func() highlight.Language { return languages.Brainheck{} },
	)
	require.NoError(t, err)

	svc, err := New(cfg, table)
	require.NoError(t, err)
	return svc, counting
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Target = "pdf"

	_, err := New(cfg, languages.Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestService_TokensCachesLexer(t *testing.T) {
	svc, counting := newTestService(t, config.Defaults(), `\bif\b`)

	first, err := svc.Tokens(context.Background(), "cnt", "if x")
	require.NoError(t, err)
	second, err := svc.Tokens(context.Background(), "COUNTING", "if y")
	require.NoError(t, err)

	require.Equal(t, highlight.Token{Scope: highlight.KeywordControl, Value: "if"}, first[0])
	require.Equal(t, "if y", highlight.Join(second))
	require.Equal(t, 1, counting.Inits(), "aliases share one cached lexer")
}

func TestService_TokensWithCacheDisabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.Cache.Enabled = false
	svc, counting := newTestService(t, cfg, `\bif\b`)

	for i := 0; i < 3; i++ {
		_, err := svc.Tokens(context.Background(), "cnt", "if")
		require.NoError(t, err)
	}
	require.Equal(t, 3, counting.Inits())
}

func TestService_TokensMatchFreshHighlight(t *testing.T) {
	svc, _ := newTestService(t, config.Defaults(), `\bif\b`)
	src := "package main\n\nfunc main() { fmt.Println(\"hi\") }\n"

	cached, err := svc.Tokens(context.Background(), "golang", src)
	require.NoError(t, err)
	fresh, err := highlight.Highlight(languages.Go{}, src)
	require.NoError(t, err)

	require.Equal(t, fresh, cached)
}

func TestService_TokensUnknownLanguage(t *testing.T) {
	svc, _ := newTestService(t, config.Defaults(), `\bif\b`)

	_, err := svc.Tokens(context.Background(), "cobol", "MOVE")
	require.Error(t, err)
	require.True(t, errors.Is(err, languages.ErrUnknownLanguage))
}

func TestService_TokensPatternError(t *testing.T) {
	svc, counting := newTestService(t, config.Defaults(), `(unclosed`)

	_, err := svc.Tokens(context.Background(), "cnt", "x")
	require.Error(t, err)
	var perr *highlight.PatternError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "(unclosed", perr.Pattern)

	_, err = svc.Tokens(context.Background(), "cnt", "x")
	require.Error(t, err)
	require.Equal(t, 2, counting.Inits(), "failed builds are not cached")
}

func TestService_RenderHTML(t *testing.T) {
	cfg := config.Defaults()
	cfg.HTML.Prefix = "<div>"
	cfg.HTML.Suffix = "</div>"
	cfg.HTML.ClassPrefix = "hl-"
	svc, _ := newTestService(t, cfg, `\bif\b`)

	out, err := svc.Render(context.Background(), "cnt", "if <")
	require.NoError(t, err)
	require.Equal(t,
		`<div><span class="hl-keyword-control">if</span><span class="hl-none"> </span><span class="hl-none">&lt;</span></div>`,
		out,
	)
}

func TestService_RenderANSI(t *testing.T) {
	cfg := config.Defaults()
	cfg.Target = config.TargetANSI
	cfg.Theme.Colors = map[string]string{"keyword-control": "#FF0000"}
	svc, _ := newTestService(t, cfg, `\bif\b`)

	out, err := svc.Render(context.Background(), "cnt", "if x\nif y")
	require.NoError(t, err)
	require.Equal(t, "if x\nif y", ansi.Strip(out))
	require.IsType(t, target.ANSI{}, svc.Target())
}

func TestService_RenderJSON(t *testing.T) {
	cfg := config.Defaults()
	cfg.Target = config.TargetJSON
	svc, _ := newTestService(t, cfg, `\bif\b`)

	out, err := svc.Render(context.Background(), "cnt", "if")
	require.NoError(t, err)

	var tokens []highlight.Token
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	require.Equal(t, []highlight.Token{{Scope: highlight.KeywordControl, Value: "if"}}, tokens)
}

func TestService_RegexSyntaxOption(t *testing.T) {
	cfg := config.Defaults()
	cfg.Regex.Syntax = "ecmascript"
	svc, _ := newTestService(t, cfg, `\bif\b`)

	tokens, err := svc.Tokens(context.Background(), "cnt", "if")
	require.NoError(t, err)
	require.Equal(t, highlight.KeywordControl, tokens[0].Scope)
}

func TestByName(t *testing.T) {
	cfg := config.Defaults()

	tests := []struct {
		name string
		want target.Target
	}{
		{"", target.NewHTML()},
		{"html", target.NewHTML()},
		{"JSON", target.JSON{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.name, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ByName("pdf", cfg)
	require.Error(t, err)

	cfg.Theme.Colors = map[string]string{"nope": "#FFFFFF"}
	_, err = ByName("ansi", cfg)
	require.Error(t, err)
}

func TestService_ResolveLanguage(t *testing.T) {
	cfg := config.Defaults()
	cfg.Language = "bf"
	svc, _ := newTestService(t, cfg, `\bif\b`)

	tests := []struct {
		name     string
		explicit string
		path     string
		want     string
		wantErr  bool
	}{
		{"explicit wins over extension", "golang", "prog.bf", "go", false},
		{"explicit alias is canonicalized", "CNT", "", "Counting", false},
		{"extension alias", "", "src/main.go", "go", false},
		{"extension is case insensitive", "", "MAIN.GO", "go", false},
		{"unknown extension falls back to config", "", "notes.txt", "brainheck", false},
		{"stdin falls back to config", "", "", "brainheck", false},
		{"unknown explicit", "cobol", "main.go", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ResolveLanguage(tt.explicit, tt.path)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, languages.ErrUnknownLanguage))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ResolveLanguageWithoutDefault(t *testing.T) {
	svc, _ := newTestService(t, config.Defaults(), `\bif\b`)

	_, err := svc.ResolveLanguage("", "notes.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no language for notes.txt")

	_, err = svc.ResolveLanguage("", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no language given")
}
