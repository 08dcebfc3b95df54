package languages

import "github.com/zjrosen/highlighter/highlight"

// Go highlights Go source. Calls and declarations of functions are found with
// handled patterns that split "name(" into the name and the parenthesis.
type Go struct{}

func (Go) Name() string { return "go" }

func (Go) Names() []string { return []string{"go", "golang"} }

func (Go) Init(cx *highlight.LexerContext) error {
	plain := []struct {
		scope highlight.Scope
		expr  string
	}{
		{highlight.Comment, `//[^\n]*`},
		{highlight.Comment, `/\*[\s\S]*?\*/`},
		{highlight.StringQuoted, `"(\\.|[^"\\\n])*"`},
		{highlight.StringOther, "`[^`]*`"},
		{highlight.ConstantChar, `'(\\.|[^'\\\n])+'`},
		{highlight.KeywordControl, `\b(break|case|continue|default|defer|else|fallthrough|for|go|goto|if|range|return|select|switch)\b`},
		{highlight.StorageType, `\b(chan|const|func|import|interface|map|package|struct|type|var)\b`},
		{highlight.ConstantLanguage, `\b(true|false|nil|iota)\b`},
		{highlight.SupportType, `\b(any|bool|byte|comparable|complex64|complex128|error|float32|float64|int|int8|int16|int32|int64|rune|string|uint|uint8|uint16|uint32|uint64|uintptr)\b`},
	}
	for _, r := range plain {
		if err := cx.RegisterPlain(r.scope, r.expr); err != nil {
			return err
		}
	}

	if err := cx.RegisterHandled(`\b(append|cap|clear|close|complex|copy|delete|imag|len|make|max|min|new|panic|print|println|real|recover)(\s*)(\()`, call(highlight.SupportFunction)); err != nil {
		return err
	}
	if err := cx.RegisterHandled(`\b([A-Za-z_][A-Za-z0-9_]*)(\s*)(\()`, call(highlight.NameFunction)); err != nil {
		return err
	}

	rest := []struct {
		scope highlight.Scope
		expr  string
	}{
		{highlight.ConstantNumber, `\b(0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|[0-9][0-9_]*(\.[0-9_]+)?([eE][+-]?[0-9]+)?i?)\b`},
		{highlight.KeywordOperator, `<-|\.\.\.|[-+*/%&|^!<>=:]+`},
		{highlight.VariableOther, `[A-Za-z_][A-Za-z0-9_]*`},
	}
	for _, r := range rest {
		if err := cx.RegisterPlain(r.scope, r.expr); err != nil {
			return err
		}
	}
	return nil
}

// call emits the function name with scope, the spacing before the
// parenthesis, and the parenthesis.
func call(scope highlight.Scope) highlight.TokenHandler {
	return func(c highlight.Captures, _ string, tc *highlight.TokenContext) {
		tc.Token(scope, c.Text(1))
		tc.Token(highlight.None, c.Text(2))
		tc.Token(highlight.KeywordOther, c.Text(3))
	}
}
