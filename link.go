package linkheader

import (
	"encoding/json"
	"fmt"
	"strings"
)

// An Attr is one attribute of a link, as it appeared on the wire.
type Attr struct {
	Name  string
	Value string
}

// A Link represents one link of a Link header. Target is kept as an
// opaque string: no URI parsing or normalization is attempted. Attrs
// preserves the order in which attributes were encountered, and
// duplicate names are legal and retained.
type Link struct {
	Target string
	Attrs  []Attr
}

// NewLink returns a Link for target with the given attributes, in the
// given order.
func NewLink(target string, attrs ...Attr) Link {
	return Link{Target: target, Attrs: attrs}
}

// Get returns the value of the first attribute named name, if any.
func (l Link) Get(name string) (string, bool) {
	for _, a := range l.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Rel returns the value of the first 'rel' attribute, or "".
func (l Link) Rel() string {
	rel, _ := l.Get("rel")
	return rel
}

// Add appends an attribute, keeping any earlier attributes of the same
// name.
func (l *Link) Add(name, value string) {
	l.Attrs = append(l.Attrs, Attr{Name: name, Value: value})
}

// Set appends an attribute under the normalized form of name:
// lowercased, underscores mapped to hyphens, and 'content-type'
// aliased to 'type'.
func (l *Link) Set(name, value string) {
	l.Add(normalizeAttr(name), value)
}

func normalizeAttr(name string) string {
	name = strings.ReplaceAll(strings.ToLower(name), "_", "-")
	if name == "content-type" {
		name = "type"
	}
	return name
}

// String formats the link for use in a Link header.
func (l Link) String() string {
	b := &strings.Builder{}
	writeLink(b, l)
	return b.String()
}

// MarshalJSON encodes the link as ["target", [["name", "value"], ...]],
// the nested-list shape that survives any JSON encoder without losing
// attribute order or duplicates.
func (l Link) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, len(l.Attrs))
	for i, a := range l.Attrs {
		pairs[i] = [2]string{a.Name, a.Value}
	}
	return json.Marshal([2]interface{}{l.Target, pairs})
}

// UnmarshalJSON decodes the shape produced by MarshalJSON.
func (l *Link) UnmarshalJSON(data []byte) error {
	var shape [2]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}
	var target string
	if err := json.Unmarshal(shape[0], &target); err != nil {
		return fmt.Errorf("link target: %w", err)
	}
	var pairs [][]string
	if shape[1] != nil {
		if err := json.Unmarshal(shape[1], &pairs); err != nil {
			return fmt.Errorf("link attributes: %w", err)
		}
	}
	attrs := make([]Attr, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return fmt.Errorf("link attribute %d: want a [name, value] pair, got %d elements", i, len(p))
		}
		attrs[i] = Attr{Name: p[0], Value: p[1]}
	}
	*l = Link{Target: target, Attrs: attrs}
	return nil
}

// Links is an ordered sequence of links, as parsed from a Link header.
// Iteration order is insertion order; links sharing a relation type are
// all retained.
type Links []Link

// Rel returns all links whose first 'rel' attribute equals rel, in
// order.
func (ls Links) Rel(rel string) Links {
	var out Links
	for _, l := range ls {
		if l.Rel() == rel {
			out = append(out, l)
		}
	}
	return out
}

// String formats the whole sequence as a Link header value.
func (ls Links) String() string {
	b := &strings.Builder{}
	for i, l := range ls {
		if i > 0 {
			b.WriteString(", ")
		}
		writeLink(b, l)
	}
	return b.String()
}
