package linkheader

import "strings"

// writeAttr writes one name=value pair. The value goes out bare when it
// is a valid token, or when the name ends in '*' (star parameters carry
// RFC 8187-style encoded text and are never quoted). Anything else is
// quoted, with embedded '"' escaped as '\"'. The token-or-quoted choice
// is derived from the value here, not remembered from parse time.
func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString("=")
	if isToken(value) || strings.HasSuffix(name, "*") {
		b.WriteString(value)
		return
	}
	b.WriteString(`"`)
	b.WriteString(strings.ReplaceAll(value, `"`, `\"`))
	b.WriteString(`"`)
}

func writeLink(b *strings.Builder, l Link) {
	b.WriteString("<")
	b.WriteString(l.Target)
	b.WriteString(">")
	for _, a := range l.Attrs {
		b.WriteString("; ")
		writeAttr(b, a.Name, a.Value)
	}
}
