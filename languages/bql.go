package languages

import "github.com/zjrosen/highlighter/highlight"

// BQL highlights Beads Query Language filters such as
//
//	status = open and priority in (P0, P1) order by created desc
//
// Field names are told apart from values by what follows them: an identifier
// directly followed by a comparison operator is a field, any other bare
// identifier is a value.
type BQL struct{}

func (BQL) Name() string { return "bql" }

func (BQL) Init(cx *highlight.LexerContext) error {
	// Strings may be unterminated while a query is being typed.
	if err := cx.RegisterPlain(highlight.StringQuoted, `"[^"]*"?|'[^']*'?`); err != nil {
		return err
	}
	if err := cx.RegisterHandled(`(?i)\b(order)(\s+)(by)(\s+)([a-z_][a-z0-9_-]*)`, bqlOrderBy); err != nil {
		return err
	}
	if err := cx.RegisterPlain(highlight.KeywordOperator, `(?i)\b(and|or|not|in)\b`); err != nil {
		return err
	}
	if err := cx.RegisterPlain(highlight.KeywordOther, `(?i)\b(order|by|asc|desc|expand|depth)\b`); err != nil {
		return err
	}
	if err := cx.RegisterPlain(highlight.ConstantLanguage, `(?i)\b(true|false)\b`); err != nil {
		return err
	}
	if err := cx.RegisterHandled(`(?i)([a-z_][a-z0-9_-]*)(\s*)(!=|!~|<=|>=|=|<|>|~|\bnot\s+in\b|\bin\b)`, bqlComparison); err != nil {
		return err
	}
	// Numbers, including relative dates like -7d, -24h and -3m.
	if err := cx.RegisterPlain(highlight.ConstantNumber, `-?[0-9]+[dDhHmM]?\b`); err != nil {
		return err
	}
	if err := cx.RegisterPlain(highlight.KeywordOperator, `!=|!~|<=|>=|[=<>~*]`); err != nil {
		return err
	}
	if err := cx.RegisterPlain(highlight.KeywordOther, `[(),]`); err != nil {
		return err
	}
	return cx.RegisterPlain(highlight.StringOther, `[A-Za-z_][A-Za-z0-9_-]*`)
}

func bqlComparison(c highlight.Captures, _ string, tc *highlight.TokenContext) {
	tc.Token(highlight.VariableOther, c.Text(1))
	tc.Token(highlight.None, c.Text(2))
	tc.Token(highlight.KeywordOperator, c.Text(3))
}

func bqlOrderBy(c highlight.Captures, _ string, tc *highlight.TokenContext) {
	tc.Token(highlight.KeywordOther, c.Text(1))
	tc.Token(highlight.None, c.Text(2))
	tc.Token(highlight.KeywordOther, c.Text(3))
	tc.Token(highlight.None, c.Text(4))
	tc.Token(highlight.VariableOther, c.Text(5))
}
