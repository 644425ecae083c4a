package linkheader

import "strings"

// Token characters per RFC 2616: any byte that is not a separator and
// not whitespace. Note that, unlike RFC 7230 tchar, this admits bytes
// such as '/' and '\', which do occur in media types and URIs placed
// into unquoted attribute values in the wild.
var isTokenByte [256]bool

func init() {
	for i := 0; i < 256; i++ {
		isTokenByte[i] = true
	}
	for _, c := range "()<>@,;:\"[]?={} \t\r\n\v\f" {
		isTokenByte[c] = false
	}
}

func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isTokenByte[s[i]] {
			return false
		}
	}
	return s != ""
}

// A scanner is a cursor over the unconsumed tail of a header value.
// Each grammar rule advances the cursor past its match and returns the
// captured parts; on failure the cursor stays where it was.
type scanner struct {
	rest string
}

func skipSpace(v string) string {
	for v != "" && (v[0] == ' ' || v[0] == '\t') {
		v = v[1:]
	}
	return v
}

func scanToken(v string) (tok, rest string) {
	i := 0
	for ; i < len(v); i++ {
		if !isTokenByte[v[i]] {
			break
		}
	}
	return v[:i], v[i:]
}

// scanQuoted consumes a double-quoted string starting at v[0] == '"'.
// A backslash escapes the byte after it; the closing quote must not be
// escaped. The returned value still carries its escapes.
func scanQuoted(v string) (raw, rest string, ok bool) {
	for i := 1; i < len(v); i++ {
		switch v[i] {
		case '\\':
			i++
		case '"':
			return v[1:i], v[i+1:], true
		}
	}
	return "", "", false
}

// href matches one href-clause: an optional leading comma, then the
// <>-delimited target, then an optional trailing semicolon. Leading and
// trailing whitespace around each piece is consumed, and whitespace
// between the target and '>' is trimmed off the target.
func (s *scanner) href() (target string, ok bool) {
	v := skipSpace(s.rest)
	if v != "" && v[0] == ',' {
		v = skipSpace(v[1:])
	}
	if v == "" || v[0] != '<' {
		return "", false
	}
	v = skipSpace(v[1:])
	i := strings.IndexByte(v, '>')
	if i < 0 {
		return "", false
	}
	target = strings.TrimRight(v[:i], " \t")
	v = skipSpace(v[i+1:])
	if v != "" && v[0] == ';' {
		v = skipSpace(v[1:])
	}
	s.rest = v
	return target, true
}

// attr matches one name=value pair. The value is either a token or a
// quoted string; quoted-string escapes of '"' are undone here, on
// ingestion, so entities always hold the literal text.
func (s *scanner) attr() (name, value string, ok bool) {
	name, v := scanToken(s.rest)
	if name == "" {
		return "", "", false
	}
	v = skipSpace(v)
	if v == "" || v[0] != '=' {
		return "", "", false
	}
	v = skipSpace(v[1:])
	if v != "" && v[0] == '"' {
		var raw string
		raw, v, ok = scanQuoted(v)
		if !ok {
			return "", "", false
		}
		value = strings.ReplaceAll(raw, `\"`, `"`)
	} else {
		value, v = scanToken(v)
		if value == "" {
			return "", "", false
		}
	}
	s.rest = skipSpace(v)
	return name, value, true
}

func (s *scanner) semi() bool {
	if s.rest == "" || s.rest[0] != ';' {
		return false
	}
	s.rest = skipSpace(s.rest[1:])
	return true
}

func (s *scanner) comma() bool {
	if s.rest == "" || s.rest[0] != ',' {
		return false
	}
	s.rest = skipSpace(s.rest[1:])
	return true
}
