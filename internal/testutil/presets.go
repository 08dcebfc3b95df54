package testutil

import "github.com/zjrosen/highlighter/highlight"

// WithScenarioRules adds the rules of the small C-like language used across
// tests: keywords, numbers, identifiers and whitespace.
func (b *Builder) WithScenarioRules() *Builder {
	return b.
		WithPlain(highlight.KeywordControl, `\b(if|else|while)\b`).
		WithPlain(highlight.ConstantNumber, `[0-9]+`).
		WithPlain(highlight.VariableOther, `[A-Za-z_][A-Za-z0-9_]*`).
		WithPlain(highlight.None, `\s+`)
}

// Tok is shorthand for building expected tokens.
func Tok(scope highlight.Scope, value string) highlight.Token {
	return highlight.Token{Scope: scope, Value: value}
}
