// Package testutil provides builders for test languages and lexers.
package testutil

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/highlighter/highlight"
)

// rule is one registration replayed by a built language.
type rule struct {
	scope   highlight.Scope
	expr    string
	handler highlight.TokenHandler
}

// Builder accumulates rules and produces a Language that registers them in
// order.
type Builder struct {
	t       *testing.T
	name    string
	aliases []string
	rules   []rule
	inits   *atomic.Int32
}

// NewBuilder creates a builder for a language called name.
func NewBuilder(t *testing.T, name string) *Builder {
	t.Helper()
	return &Builder{t: t, name: name, inits: &atomic.Int32{}}
}

// WithAliases adds extra names the language answers to.
func (b *Builder) WithAliases(aliases ...string) *Builder {
	b.aliases = append(b.aliases, aliases...)
	return b
}

// WithPlain adds a rule that emits one token of scope per match.
func (b *Builder) WithPlain(scope highlight.Scope, expr string) *Builder {
	b.rules = append(b.rules, rule{scope: scope, expr: expr})
	return b
}

// WithHandled adds a rule whose matches are turned into tokens by h.
func (b *Builder) WithHandled(expr string, h highlight.TokenHandler) *Builder {
	b.rules = append(b.rules, rule{expr: expr, handler: h})
	return b
}

// Build returns the language. Its Init replays the rules in the order they
// were added.
func (b *Builder) Build() highlight.Language {
	rules := make([]rule, len(b.rules))
	copy(rules, b.rules)
	names := append([]string{b.name}, b.aliases...)
	return &Language{name: b.name, names: names, rules: rules, inits: b.inits}
}

// MustLexer builds the language and a Lexer for it, failing the test on error.
func (b *Builder) MustLexer(opts ...highlight.Option) *highlight.Lexer {
	b.t.Helper()
	lexer, err := highlight.NewLexer(b.Build(), opts...)
	require.NoError(b.t, err)
	return lexer
}

// Inits reports how many times a language from this builder was initialized.
func (b *Builder) Inits() int {
	return int(b.inits.Load())
}

// Language is a highlight.Language assembled by a Builder.
type Language struct {
	name  string
	names []string
	rules []rule
	inits *atomic.Int32
}

func (l *Language) Name() string { return l.name }

func (l *Language) Names() []string { return l.names }

func (l *Language) Init(cx *highlight.LexerContext) error {
	l.inits.Add(1)
	for _, r := range l.rules {
		var err error
		if r.handler != nil {
			err = cx.RegisterHandled(r.expr, r.handler)
		} else {
			err = cx.RegisterPlain(r.scope, r.expr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
