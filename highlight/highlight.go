package highlight

// Highlight builds a Lexer for lang and scans src with it. The only possible
// error is a pattern of lang failing to compile; scanning itself cannot fail.
//
// Callers highlighting many inputs in the same language should build the
// Lexer once with NewLexer and reuse it.
func Highlight(lang Language, src string, opts ...Option) ([]Token, error) {
	lexer, err := NewLexer(lang, opts...)
	if err != nil {
		return nil, err
	}
	return lexer.Lex(src), nil
}

// Join concatenates the values of tokens, reproducing the scanned input.
func Join(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Value)
	}
	buf := make([]byte, 0, n)
	for _, t := range tokens {
		buf = append(buf, t.Value...)
	}
	return string(buf)
}
