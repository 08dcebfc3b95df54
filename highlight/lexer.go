package highlight

import (
	"fmt"
	"unicode/utf8"

	"github.com/zjrosen/highlighter/internal/log"
)

// Lexer scans input with the patterns of one language. It is immutable once
// built and safe for concurrent use.
type Lexer struct {
	language string
	patterns []pattern
}

// NewLexer builds a Lexer for lang. It fails with a *PatternError (wrapped)
// if any of the language's patterns does not compile.
func NewLexer(lang Language, opts ...Option) (*Lexer, error) {
	cx := NewLexerContext(opts...)
	if err := lang.Init(cx); err != nil {
		log.ErrorErr(log.CatLexer, "language init failed", err, "language", lang.Name())
		return nil, fmt.Errorf("initializing language %s: %w", lang.Name(), err)
	}

	patterns := make([]pattern, len(cx.patterns))
	copy(patterns, cx.patterns)

	log.Debug(log.CatLexer, "lexer built",
		"language", lang.Name(),
		"patterns", len(patterns),
		"syntax", cx.syntax)

	return &Lexer{language: lang.Name(), patterns: patterns}, nil
}

// Language returns the name of the language the lexer was built from.
func (l *Lexer) Language() string {
	return l.language
}

// Patterns returns the number of patterns the lexer tries at each position.
func (l *Lexer) Patterns() int {
	return len(l.patterns)
}

// Lex splits src into tokens.
//
// At each position the patterns are tried in registration order and the first
// one matching exactly at that position, with a non-empty match, wins. If none
// does, the character at the position becomes a None token of its own.
// Positions count characters; a byte that is not valid UTF-8 counts as one
// character and is carried through unchanged.
func (l *Lexer) Lex(src string) []Token {
	runes, offsets := decode(src)
	tc := &TokenContext{}

	i := 0
	for i < len(runes) {
		next, ok := l.matchAt(src, runes, offsets, i, tc)
		if ok {
			i = next
			continue
		}
		tc.Token(None, src[offsets[i]:offsets[i+1]])
		i++
	}

	return tc.tokens
}

// matchAt applies the first pattern matching at position i and returns the
// position after the match.
func (l *Lexer) matchAt(src string, runes []rune, offsets []int, i int, tc *TokenContext) (int, bool) {
	for _, p := range l.patterns {
		m, err := p.matcher().FindRunesMatchStartingAt(runes, i)
		if err != nil {
			log.ErrorErr(log.CatLexer, "pattern match failed", err,
				"language", l.language,
				"pattern", p.matcher().String(),
				"pos", i)
			continue
		}
		if m == nil || m.Index != i || m.Length == 0 {
			continue
		}

		end := m.Index + m.Length
		switch p := p.(type) {
		case plainPattern:
			tc.Token(p.scope, src[offsets[i]:offsets[end]])
		case handledPattern:
			p.handler(newCaptures(src, offsets, m), src, tc)
		}
		return end, true
	}
	return i, false
}

// decode splits src into characters and records the byte offset each one
// starts at, plus len(src) as a final entry. Invalid bytes decode to
// utf8.RuneError but keep their own offsets, so slicing src by offsets
// returns the original bytes.
func decode(src string) ([]rune, []int) {
	runes := make([]rune, 0, len(src))
	offsets := make([]int, 0, len(src)+1)
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += size
	}
	offsets = append(offsets, len(src))
	return runes, offsets
}
