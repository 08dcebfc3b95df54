package highlight

// Language configures a LexerContext with the patterns of one language.
// Implementations hold no scan state; Init may be called once per Lexer built.
type Language interface {
	// Name returns the primary identifier of the language.
	Name() string

	// Init registers the language's patterns. Registration order is matching
	// precedence, so keywords must come before the identifier rule that would
	// otherwise shadow them.
	Init(cx *LexerContext) error
}

// Aliased is implemented by languages known under more than one name,
// e.g. "js", "javascript" and "ecmascript".
type Aliased interface {
	Names() []string
}

// Names returns every name of lang. Languages that do not implement Aliased,
// or return no aliases, are known only by Name.
func Names(lang Language) []string {
	if a, ok := lang.(Aliased); ok {
		if names := a.Names(); len(names) > 0 {
			return names
		}
	}
	return []string{lang.Name()}
}
