// Package languages bundles language definitions and the name lookup used to
// pick one by string, e.g. from a command-line flag or a file extension.
package languages

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zjrosen/highlighter/highlight"
)

// ErrUnknownLanguage is returned when no language is registered under a name.
var ErrUnknownLanguage = errors.New("unknown language")

// Constructor returns a ready-to-use Language.
type Constructor func() highlight.Language

// Info describes a registered language.
type Info struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// Table maps language names and aliases to constructors. Lookups are
// case-insensitive. A Table is immutable after NewTable returns.
type Table struct {
	byName map[string]Constructor
	infos  []Info
}

// NewTable builds a table from ctors. Each constructor is called once to read
// its names; two languages claiming the same name is an error.
func NewTable(ctors ...Constructor) (*Table, error) {
	t := &Table{byName: make(map[string]Constructor)}
	owner := make(map[string]string)

	for _, ctor := range ctors {
		lang := ctor()
		names := highlight.Names(lang)
		for _, name := range names {
			key := strings.ToLower(name)
			if key == "" {
				return nil, fmt.Errorf("language %s: empty alias", lang.Name())
			}
			if prev, dup := owner[key]; dup {
				return nil, fmt.Errorf("language %s: alias %q already registered by %s", lang.Name(), name, prev)
			}
			owner[key] = lang.Name()
			t.byName[key] = ctor
		}
		t.infos = append(t.infos, Info{Name: lang.Name(), Aliases: names})
	}

	sort.Slice(t.infos, func(i, j int) bool {
		return strings.ToLower(t.infos[i].Name) < strings.ToLower(t.infos[j].Name)
	})
	return t, nil
}

// Lookup returns the language registered under name.
func (t *Table) Lookup(name string) (highlight.Language, bool) {
	ctor, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Languages lists the registered languages sorted by name.
func (t *Table) Languages() []Info {
	out := make([]Info, len(t.infos))
	copy(out, t.infos)
	return out
}

// Highlight scans src with the language registered under name.
func (t *Table) Highlight(name, src string, opts ...highlight.Option) ([]highlight.Token, error) {
	lang, ok := t.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return highlight.Highlight(lang, src, opts...)
}

var defaultTable = mustTable(
	func() highlight.Language { return BQL{} },
	func() highlight.Language { return Brainheck{} },
	func() highlight.Language { return Example{} },
	func() highlight.Language { return Go{} },
)

// Default returns the table of bundled languages.
func Default() *Table {
	return defaultTable
}

func mustTable(ctors ...Constructor) *Table {
	t, err := NewTable(ctors...)
	if err != nil {
		panic(err)
	}
	return t
}
