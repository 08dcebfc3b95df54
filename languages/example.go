package languages

import "github.com/zjrosen/highlighter/highlight"

// Example is a minimal language showing how to write an extension: a few
// keyword groups, numbers and boolean constants.
type Example struct{}

func (Example) Name() string { return "my-language" }

func (Example) Init(cx *highlight.LexerContext) error {
	rules := []struct {
		scope highlight.Scope
		expr  string
	}{
		{highlight.KeywordControl, `\b(if|else|while|continue|break|return)\b`},
		{highlight.StorageType, `\b(var|function)\b`},
		{highlight.ConstantNumber, `\b([0-9][0-9_]*)\b`},
		{highlight.ConstantLanguage, `\b(true|false)\b`},
	}
	for _, r := range rules {
		if err := cx.RegisterPlain(r.scope, r.expr); err != nil {
			return err
		}
	}
	return nil
}
