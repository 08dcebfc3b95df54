package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Syntax selects the regular expression dialect patterns are written in.
type Syntax int

const (
	// SyntaxRE2 accepts the syntax of Go's regexp package and RE2. As in RE2,
	// \w, \d and \b are ASCII-only; use SyntaxDotNet or explicit classes
	// such as \p{L} for letters outside ASCII.
	SyntaxRE2 Syntax = iota
	// SyntaxECMAScript follows JavaScript regular expression behavior.
	SyntaxECMAScript
	// SyntaxDotNet is the full .NET-style syntax with lookaround and backreferences.
	SyntaxDotNet
)

func (s Syntax) String() string {
	switch s {
	case SyntaxRE2:
		return "re2"
	case SyntaxECMAScript:
		return "ecmascript"
	case SyntaxDotNet:
		return "dotnet"
	default:
		return "unknown"
	}
}

// ParseSyntax parses a dialect name as written in configuration files.
func ParseSyntax(name string) (Syntax, error) {
	switch strings.ToLower(name) {
	case "", "re2":
		return SyntaxRE2, nil
	case "ecmascript", "js":
		return SyntaxECMAScript, nil
	case "dotnet", "net", "perl":
		return SyntaxDotNet, nil
	default:
		return SyntaxRE2, fmt.Errorf("unknown regex syntax %q (must be \"re2\", \"ecmascript\", or \"dotnet\")", name)
	}
}

func (s Syntax) regexOptions() regexp2.RegexOptions {
	switch s {
	case SyntaxECMAScript:
		return regexp2.ECMAScript
	case SyntaxDotNet:
		return regexp2.None
	default:
		return regexp2.RE2
	}
}

// Option configures a LexerContext.
type Option func(*LexerContext)

// WithSyntax sets the dialect used to compile patterns. Defaults to SyntaxRE2.
func WithSyntax(s Syntax) Option {
	return func(cx *LexerContext) {
		cx.syntax = s
	}
}

// pattern is either a plainPattern or a handledPattern.
type pattern interface {
	matcher() *regexp2.Regexp
}

// plainPattern emits one token of its scope covering the whole match.
type plainPattern struct {
	scope Scope
	re    *regexp2.Regexp
}

func (p plainPattern) matcher() *regexp2.Regexp { return p.re }

// handledPattern passes its match to a TokenHandler.
type handledPattern struct {
	re      *regexp2.Regexp
	handler TokenHandler
}

func (p handledPattern) matcher() *regexp2.Regexp { return p.re }

var errNilHandler = errors.New("nil token handler")

// LexerContext collects the ordered patterns of a language.
type LexerContext struct {
	syntax   Syntax
	patterns []pattern
}

// NewLexerContext returns an empty context. Languages normally receive one
// from NewLexer; constructing it directly is useful when testing Init.
func NewLexerContext(opts ...Option) *LexerContext {
	cx := &LexerContext{syntax: SyntaxRE2}
	for _, opt := range opts {
		opt(cx)
	}
	return cx
}

// RegisterPlain appends a pattern that emits a single token of scope for
// every match.
func (cx *LexerContext) RegisterPlain(scope Scope, expr string) error {
	re, err := cx.compile(expr)
	if err != nil {
		return err
	}
	cx.patterns = append(cx.patterns, plainPattern{scope: scope, re: re})
	return nil
}

// RegisterHandled appends a pattern whose matches are turned into tokens by
// handler.
func (cx *LexerContext) RegisterHandled(expr string, handler TokenHandler) error {
	if handler == nil {
		return &PatternError{Pattern: expr, Err: errNilHandler}
	}
	re, err := cx.compile(expr)
	if err != nil {
		return err
	}
	cx.patterns = append(cx.patterns, handledPattern{re: re, handler: handler})
	return nil
}

// Len returns the number of registered patterns.
func (cx *LexerContext) Len() int {
	return len(cx.patterns)
}

// compile checks expr as written, then compiles the form used for scanning,
// which is anchored with \G so the engine never searches past the cursor.
// A trailing free-spacing comment, as in "(?x) if # keyword", swallows the
// closing parenthesis of the wrapper, so a newline is tried before it. If
// neither anchored form compiles, the pattern is used as written and the
// scan loop's index check keeps matches at the cursor.
func (cx *LexerContext) compile(expr string) (*regexp2.Regexp, error) {
	opts := cx.syntax.regexOptions()
	raw, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, &PatternError{Pattern: expr, Err: err}
	}
	for _, closing := range []string{")", "\n)"} {
		if re, err := regexp2.Compile(`\G(?:`+expr+closing, opts); err == nil {
			return re, nil
		}
	}
	return raw, nil
}
