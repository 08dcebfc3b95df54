package highlight

// Token is a classified piece of the input.
type Token struct {
	Scope Scope  `json:"scope"`
	Value string `json:"value"`
}

// TokenContext collects the tokens produced by a single scan.
type TokenContext struct {
	tokens []Token
}

// Token appends a token. Empty values are dropped so every emitted token
// covers at least one character.
func (tc *TokenContext) Token(scope Scope, value string) {
	if value == "" {
		return
	}
	tc.tokens = append(tc.tokens, Token{Scope: scope, Value: value})
}

// Len returns the number of tokens collected so far.
func (tc *TokenContext) Len() int {
	return len(tc.tokens)
}

// Tokens returns a copy of the collected tokens in emission order.
func (tc *TokenContext) Tokens() []Token {
	out := make([]Token, len(tc.tokens))
	copy(out, tc.tokens)
	return out
}
