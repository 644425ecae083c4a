package linkheader

import "net/http"

// ParseHeader parses every Link field value in h, concatenating the
// results in field order. Parsing is strict; on error the links parsed
// so far are discarded.
func ParseHeader(h http.Header) (Links, error) {
	var links Links
	for _, v := range h["Link"] {
		ls, err := Parse(v)
		if err != nil {
			return nil, err
		}
		links = append(links, ls...)
	}
	return links, nil
}

// SetHeader replaces the Link header in h with the formatted links.
// A nil or empty Links removes the header. See also AddHeader.
func (ls Links) SetHeader(h http.Header) {
	if len(ls) == 0 {
		h.Del("Link")
		return
	}
	h.Set("Link", ls.String())
}

// AddHeader is like SetHeader but appends instead of replacing.
func (ls Links) AddHeader(h http.Header) {
	if len(ls) == 0 {
		return
	}
	h.Add("Link", ls.String())
}
