// Package highlight implements the pattern-priority scanning engine used to
// split source text into classified tokens for syntax highlighting.
//
// A Language registers an ordered list of regular expressions on a
// LexerContext. A Lexer built from it scans input left to right: at every
// position the first pattern (in registration order) that matches exactly at
// that position wins, and characters no pattern claims become single None
// tokens. Concatenating the values of the returned tokens always reproduces
// the input.
package highlight

import "fmt"

// Scope classifies the lexical role of a token.
type Scope int

const (
	Comment Scope = iota
	ConstantNumber
	ConstantChar
	ConstantLanguage
	ConstantOther
	NameFunction
	NameType
	NameTag
	NameSection
	Invalid
	Deprecated
	StorageType
	StorageModifier
	StringQuoted
	StringEvaluated
	StringRegex
	StringOther
	SupportFunction
	SupportType
	SupportConstant
	SupportVar
	SupportOther
	VariableParameter
	VariableLanguage
	VariableOther
	KeywordControl
	KeywordOperator
	KeywordOther

	// None marks a character no pattern matched.
	None
)

// scopeNames holds the canonical identifiers. Renderers and stylesheets depend
// on these strings, so existing entries must never change.
var scopeNames = [...]string{
	Comment:           "comment",
	ConstantNumber:    "constant-number",
	ConstantChar:      "constant-char",
	ConstantLanguage:  "constant-language",
	ConstantOther:     "constant-other",
	NameFunction:      "name-function",
	NameType:          "name-type",
	NameTag:           "name-tag",
	NameSection:       "name-section",
	Invalid:           "invalid",
	Deprecated:        "deprecated",
	StorageType:       "storage-type",
	StorageModifier:   "storage-modifier",
	StringQuoted:      "string-quoted",
	StringEvaluated:   "string-evaluated",
	StringRegex:       "string-regex",
	StringOther:       "string-other",
	SupportFunction:   "support-function",
	SupportType:       "support-type",
	SupportConstant:   "support-constant",
	SupportVar:        "support-var",
	SupportOther:      "support-other",
	VariableParameter: "variable-parameter",
	VariableLanguage:  "variable-language",
	VariableOther:     "variable-other",
	KeywordControl:    "keyword-control",
	KeywordOperator:   "keyword-operator",
	KeywordOther:      "keyword-other",
	None:              "none",
}

var scopesByName = func() map[string]Scope {
	m := make(map[string]Scope, len(scopeNames))
	for s, name := range scopeNames {
		m[name] = Scope(s)
	}
	return m
}()

// String returns the canonical identifier of the scope, e.g. "keyword-control".
func (s Scope) String() string {
	if s < 0 || int(s) >= len(scopeNames) {
		return fmt.Sprintf("scope(%d)", int(s))
	}
	return scopeNames[s]
}

// Valid reports whether s is one of the declared scopes.
func (s Scope) Valid() bool {
	return s >= 0 && int(s) < len(scopeNames)
}

// Scopes returns every scope in declaration order.
func Scopes() []Scope {
	out := make([]Scope, len(scopeNames))
	for i := range scopeNames {
		out[i] = Scope(i)
	}
	return out
}

// ParseScope returns the scope whose canonical identifier is name.
func ParseScope(name string) (Scope, error) {
	if s, ok := scopesByName[name]; ok {
		return s, nil
	}
	return None, fmt.Errorf("unknown scope %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid scope %d", int(s))
	}
	return []byte(scopeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
