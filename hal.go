package linkheader

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAttr is returned by HALLink.Attribute for names outside
	// the recognized RFC 5988 set.
	ErrUnknownAttr = errors.New("unknown link attribute")
	// ErrDuplicateRel is returned when a second link with an
	// already-present relation type is inserted into a HALLinks.
	ErrDuplicateRel = errors.New("duplicate relation type")
	// ErrMissingRel is returned when a link without a rel attribute is
	// converted to the relation-keyed form.
	ErrMissingRel = errors.New("missing rel attribute")
)

// Recognized target attributes (RFC 5988 Section 5.4); the value says
// whether the attribute may appear more than once.
var recognizedAttrs = map[string]bool{
	"rel":    false,
	"anchor": false,
	"rev":    false,
	"media":  false,
	"title":  false,
	"type":   false,
	"href":   false,

	"hreflang": true,
	"title*":   true,
}

// A HALLink is one link under the HAL convention: a target plus a bag
// of named attribute values. Values are kept in encounter order, and a
// name may hold several values (hreflang, title*, or any repeated
// attribute). Unknown attribute names are stored and serialized, but
// typed access through Attribute rejects them.
type HALLink struct {
	names []string
	attrs map[string][]string
}

// NewHALLink returns a HALLink for target with the given relation type.
// An empty rel is tolerated here, but conversions that key by relation
// will fail on it.
func NewHALLink(target, rel string) *HALLink {
	l := &HALLink{attrs: make(map[string][]string)}
	l.put("href", target)
	if rel != "" {
		l.put("rel", rel)
	}
	return l
}

func (l *HALLink) put(name, value string) {
	if _, ok := l.attrs[name]; !ok {
		l.names = append(l.names, name)
	}
	l.attrs[name] = append(l.attrs[name], value)
}

// Target returns the link target.
func (l *HALLink) Target() string {
	return l.first("href")
}

// Rel returns the relation type, or "" when the link has none.
func (l *HALLink) Rel() string {
	return l.first("rel")
}

func (l *HALLink) first(name string) string {
	if vs := l.attrs[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Attribute returns the value stored under name. The name is
// normalized (lowercased, underscores to hyphens, content-type aliased
// to type) and must be one of the recognized RFC 5988 attributes;
// anything else yields ErrUnknownAttr. An absent attribute yields nil.
// A multi-valued attribute, or one that holds more than one value,
// yields a []string; otherwise the sole value is returned as a string.
func (l *HALLink) Attribute(name string) (interface{}, error) {
	name = normalizeAttr(name)
	multi, ok := recognizedAttrs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttr, name)
	}
	vs := l.attrs[name]
	switch {
	case len(vs) == 0:
		return nil, nil
	case multi || len(vs) > 1:
		return append([]string(nil), vs...), nil
	default:
		return vs[0], nil
	}
}

// SetAttribute stores value under the normalized form of name,
// replacing any earlier values. Unlike Attribute, it accepts names
// outside the recognized set: they are kept and serialized.
func (l *HALLink) SetAttribute(name, value string) {
	name = normalizeAttr(name)
	if _, ok := l.attrs[name]; !ok {
		l.names = append(l.names, name)
	}
	l.attrs[name] = []string{value}
}

// AddAttribute is like SetAttribute but appends to any earlier values,
// for multi-valued attributes such as hreflang.
func (l *HALLink) AddAttribute(name, value string) {
	l.put(normalizeAttr(name), value)
}

// Mapping returns the link's attributes as a JSON-friendly map: the
// inner object of a HAL "_links" member. The rel attribute is excluded
// (it becomes the key of the enclosing mapping), href is included.
// Values collapse the same way Attribute does: a string for a sole
// single-valued entry, a []string otherwise.
func (l *HALLink) Mapping() map[string]interface{} {
	m := make(map[string]interface{}, len(l.attrs))
	for name, vs := range l.attrs {
		if name == "rel" || len(vs) == 0 {
			continue
		}
		if recognizedAttrs[name] || len(vs) > 1 {
			m[name] = append([]string(nil), vs...)
		} else {
			m[name] = vs[0]
		}
	}
	return m
}

// String formats the link for use in a Link header: the target first,
// then every attribute except href in encounter order, one pair per
// stored value.
func (l *HALLink) String() string {
	b := &strings.Builder{}
	b.WriteString("<")
	b.WriteString(l.Target())
	b.WriteString(">")
	for _, name := range l.names {
		if name == "href" {
			continue
		}
		for _, v := range l.attrs[name] {
			b.WriteString("; ")
			writeAttr(b, name, v)
		}
	}
	return b.String()
}

// HALLinks is a set of links keyed by relation type, holding at most
// one link per relation as in the simple (non-array) HAL form.
// Iteration order is insertion order.
type HALLinks struct {
	rels  []string
	links map[string]*HALLink
}

// NewHALLinks builds a HALLinks from the given links. Every link must
// carry a rel, and no two links may share one; on error no partial set
// is constructed.
func NewHALLinks(links ...*HALLink) (*HALLinks, error) {
	seen := make(map[string]bool, len(links))
	for _, l := range links {
		rel := l.Rel()
		if rel == "" {
			return nil, fmt.Errorf("%w: link <%s>", ErrMissingRel, l.Target())
		}
		if seen[rel] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRel, rel)
		}
		seen[rel] = true
	}
	ls := &HALLinks{links: make(map[string]*HALLink, len(links))}
	for _, l := range links {
		ls.rels = append(ls.rels, l.Rel())
		ls.links[l.Rel()] = l
	}
	return ls, nil
}

// Add inserts one link. Inserting a second link with an
// already-present relation is a caller contract violation and fails
// with ErrDuplicateRel.
func (ls *HALLinks) Add(l *HALLink) error {
	rel := l.Rel()
	if rel == "" {
		return fmt.Errorf("%w: link <%s>", ErrMissingRel, l.Target())
	}
	if _, ok := ls.links[rel]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRel, rel)
	}
	if ls.links == nil {
		ls.links = make(map[string]*HALLink)
	}
	ls.rels = append(ls.rels, rel)
	ls.links[rel] = l
	return nil
}

// Rel returns the link for the given relation type, if any.
func (ls *HALLinks) Rel(rel string) (*HALLink, bool) {
	l, ok := ls.links[rel]
	return l, ok
}

// Len returns the number of links in the set.
func (ls *HALLinks) Len() int {
	return len(ls.rels)
}

// All returns the links in insertion order.
func (ls *HALLinks) All() []*HALLink {
	out := make([]*HALLink, 0, len(ls.rels))
	for _, rel := range ls.rels {
		out = append(out, ls.links[rel])
	}
	return out
}

// String formats the whole set as a Link header value, in insertion
// order.
func (ls *HALLinks) String() string {
	b := &strings.Builder{}
	for i, l := range ls.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// Mapping returns the relation-keyed shape of a HAL "_links" object:
// each relation maps to its link's attributes, href included and rel
// lifted out as the key.
func (ls *HALLinks) Mapping() map[string]map[string]interface{} {
	m := make(map[string]map[string]interface{}, len(ls.rels))
	for rel, l := range ls.links {
		m[rel] = l.Mapping()
	}
	return m
}

// MarshalJSON encodes the set as its Mapping.
func (ls *HALLinks) MarshalJSON() ([]byte, error) {
	return json.Marshal(ls.Mapping())
}

// HAL converts the parsed wire-faithful form into the relation-keyed
// HAL form. Attribute names are normalized on the way in; a link
// without a rel attribute fails with ErrMissingRel.
func (ls Links) HAL() (*HALLinks, error) {
	out := make([]*HALLink, 0, len(ls))
	for _, l := range ls {
		hl := &HALLink{attrs: make(map[string][]string)}
		hl.put("href", l.Target)
		for _, a := range l.Attrs {
			hl.put(normalizeAttr(a.Name), a.Value)
		}
		out = append(out, hl)
	}
	return NewHALLinks(out...)
}

// ParseHAL parses a Link header value directly into the relation-keyed
// HAL form. Parsing is strict: trailing unparsable input, a missing
// rel, and duplicate relation types are all errors.
func ParseHAL(header string) (*HALLinks, error) {
	links, err := Parse(header)
	if err != nil {
		return nil, err
	}
	return links.HAL()
}
