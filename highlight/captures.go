package highlight

import "github.com/dlclark/regexp2"

// TokenHandler turns one match into zero or more tokens. It receives the
// capture groups of the match, the full input, and the scan's TokenContext.
// A handler sees nothing beyond its own match and must not rescan the input.
type TokenHandler func(c Captures, src string, tc *TokenContext)

type span struct {
	start, end int
	ok         bool
}

// Captures describes the groups of a match. Positions are character (code
// point) offsets into the input, not byte offsets.
type Captures struct {
	src     string
	offsets []int
	groups  []span
	names   map[string]int
}

func newCaptures(src string, offsets []int, m *regexp2.Match) Captures {
	groups := m.Groups()
	c := Captures{
		src:     src,
		offsets: offsets,
		groups:  make([]span, len(groups)),
		names:   make(map[string]int, len(groups)),
	}
	for i, g := range groups {
		c.names[g.Name] = i
		if len(g.Captures) == 0 {
			continue
		}
		c.groups[i] = span{start: g.Index, end: g.Index + g.Length, ok: true}
	}
	return c
}

// Len returns the number of groups, including group 0 (the whole match).
func (c Captures) Len() int {
	return len(c.groups)
}

// Span returns the character offsets of group i. ok is false when the group
// does not exist or did not participate in the match.
func (c Captures) Span(i int) (start, end int, ok bool) {
	if i < 0 || i >= len(c.groups) || !c.groups[i].ok {
		return 0, 0, false
	}
	g := c.groups[i]
	return g.start, g.end, true
}

// Text returns the text of group i, or "" if it did not participate.
func (c Captures) Text(i int) string {
	start, end, ok := c.Span(i)
	if !ok {
		return ""
	}
	return c.src[c.offsets[start]:c.offsets[end]]
}

// NamedSpan is Span for a named group.
func (c Captures) NamedSpan(name string) (start, end int, ok bool) {
	i, found := c.names[name]
	if !found {
		return 0, 0, false
	}
	return c.Span(i)
}

// Named returns the text of a named group, or "" if it did not participate.
func (c Captures) Named(name string) string {
	i, found := c.names[name]
	if !found {
		return ""
	}
	return c.Text(i)
}
