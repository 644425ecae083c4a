package linkheader

import "fmt"

// A SyntaxError reports input that could not be consumed as a further
// link. Rest holds the unmatched remainder of the header value.
type SyntaxError struct {
	Rest string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed link header near %q", e.Rest)
}

// Parse parses a Link header value into an ordered Links slice. It is
// strict: if input remains after the last parsable link, Parse returns
// a *SyntaxError carrying the remainder. Use ParseLenient to tolerate
// malformed real-world headers instead.
func Parse(header string) (Links, error) {
	links, rest := parse(header)
	if rest != "" {
		return nil, &SyntaxError{Rest: rest}
	}
	return links, nil
}

// ParseLenient is like Parse but silently drops any trailing input that
// cannot be parsed as a further link.
func ParseLenient(header string) Links {
	links, _ := parse(header)
	return links
}

// parse consumes as many href+attribute groups as the grammar admits
// and reports the unconsumed remainder. A group is only emitted whole:
// an href that fails to match leaves the cursor untouched, so no
// partial entities escape.
func parse(header string) (Links, string) {
	s := &scanner{rest: header}
	var links Links
	for {
		target, ok := s.href()
		if !ok {
			break
		}
		link := Link{Target: target}
		for {
			name, value, ok := s.attr()
			if !ok {
				break
			}
			link.Add(name, value)
			if !s.semi() {
				break
			}
		}
		links = append(links, link)
		s.comma()
	}
	return links, s.rest
}
