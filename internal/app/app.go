// Package app wires configuration, the language table, the lexer cache and
// the render targets into the highlight service used by the CLI.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/highlighter/highlight"
	"github.com/zjrosen/highlighter/internal/cachemanager"
	"github.com/zjrosen/highlighter/internal/config"
	"github.com/zjrosen/highlighter/internal/log"
	"github.com/zjrosen/highlighter/languages"
	"github.com/zjrosen/highlighter/target"
)

// Service highlights source text with languages from a table and renders the
// result with the configured target. Built lexers are cached per language.
type Service struct {
	cfg    config.Config
	table  *languages.Table
	syntax highlight.Syntax
	target target.Target
	lexers *cachemanager.ReadThroughCache[string, *highlight.Lexer, highlight.Language]
}

// New validates cfg and builds a Service over table.
func New(cfg config.Config, table *languages.Table) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	syntax, err := cfg.Syntax()
	if err != nil {
		return nil, err
	}

	switch cfg.Theme.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}

	tgt, err := ByName(cfg.Target, cfg)
	if err != nil {
		return nil, err
	}

	s := &Service{
		cfg:    cfg,
		table:  table,
		syntax: syntax,
		target: tgt,
	}
	s.lexers = cachemanager.NewReadThroughCache[string, *highlight.Lexer, highlight.Language](
		cachemanager.NewInMemoryCacheManager[string, *highlight.Lexer]("lexers", cfg.Cache.TTL, cachemanager.DefaultCleanupInterval),
		s.buildLexer,
		!cfg.Cache.Enabled,
	)
	return s, nil
}

// ByName returns the render target called name, configured from cfg.
func ByName(name string, cfg config.Config) (target.Target, error) {
	switch strings.ToLower(name) {
	case "", config.TargetHTML:
		return target.NewHTML().
			WithPrefix(cfg.HTML.Prefix).
			WithSuffix(cfg.HTML.Suffix).
			WithClassPrefix(cfg.HTML.ClassPrefix), nil
	case config.TargetANSI:
		theme, err := target.DefaultTheme().WithOverrides(cfg.Theme.Colors)
		if err != nil {
			return nil, err
		}
		return target.NewANSI(theme), nil
	case config.TargetJSON:
		return target.JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown target %q", name)
	}
}

// Target returns the configured render target.
func (s *Service) Target() target.Target {
	return s.target
}

// Tokens scans src with the language registered under lang.
func (s *Service) Tokens(ctx context.Context, lang, src string) ([]highlight.Token, error) {
	language, ok := s.table.Lookup(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %q", languages.ErrUnknownLanguage, lang)
	}

	lexer, err := s.lexers.GetWithRefresh(ctx, strings.ToLower(language.Name()), language, s.cfg.Cache.TTL)
	if err != nil {
		return nil, err
	}
	return lexer.Lex(src), nil
}

// Render scans src and builds it with the configured target.
func (s *Service) Render(ctx context.Context, lang, src string) (string, error) {
	tokens, err := s.Tokens(ctx, lang, src)
	if err != nil {
		return "", err
	}
	log.Debug(log.CatRender, "rendering", "language", lang, "tokens", len(tokens), "target", s.cfg.Target)
	return s.target.Build(tokens), nil
}

// ResolveLanguage picks the language for a request: the explicit name if
// given, else the file extension of path when it is a registered alias, else
// the configured default. The result is the language's canonical name.
func (s *Service) ResolveLanguage(explicit, path string) (string, error) {
	if explicit != "" {
		lang, ok := s.table.Lookup(explicit)
		if !ok {
			return "", fmt.Errorf("%w: %q", languages.ErrUnknownLanguage, explicit)
		}
		return lang.Name(), nil
	}

	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if lang, ok := s.table.Lookup(ext); ok {
			return lang.Name(), nil
		}
	}

	if s.cfg.Language != "" {
		lang, ok := s.table.Lookup(s.cfg.Language)
		if !ok {
			return "", fmt.Errorf("language: %w: %q", languages.ErrUnknownLanguage, s.cfg.Language)
		}
		return lang.Name(), nil
	}

	if path == "" {
		return "", fmt.Errorf("no language given: use --lang or set language in the config")
	}
	return "", fmt.Errorf("no language for %s: use --lang or set language in the config", path)
}

func (s *Service) buildLexer(_ context.Context, lang highlight.Language) (*highlight.Lexer, error) {
	lexer, err := highlight.NewLexer(lang, highlight.WithSyntax(s.syntax))
	if err != nil {
		log.ErrorErr(log.CatRender, "building lexer failed", err, "language", lang.Name())
		return nil, err
	}
	return lexer, nil
}
