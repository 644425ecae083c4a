package linkheader

import "math/rand"

const (
	loalpha = "abcdefghijklmnopqrstuvwxyz"
	hialpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digit   = "0123456789"
	alnum   = loalpha + hialpha + digit

	// Token bytes, minus '*' so that generated names never trigger the
	// star-parameter rule with a non-token value.
	nameChars = alnum + "!#$%&'+-.^_`|~"
	// Bytes legal in a quoted-string value. A backslash is left out:
	// the grammar escapes only '"', so a literal backslash directly
	// before a quote has no wire representation.
	textChars = alnum + " \t!\"#$%&'()+,-./:;<=>?@[]^_`{|}~"
	urlChars  = alnum + ":/?#[]@!$&'()*+,;=-._~%"
)

func randString(r *rand.Rand, alphabet string, min, max int) string {
	b := make([]byte, min+r.Intn(max-min+1))
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func randLinks(seed int) Links {
	r := rand.New(rand.NewSource(int64(seed)))
	links := make(Links, 1+r.Intn(3))
	for i := range links {
		link := Link{Target: randString(r, urlChars, 1, 20)}
		for j := r.Intn(4); j > 0; j-- {
			name := randString(r, nameChars, 1, 8)
			var value string
			if r.Intn(2) == 0 {
				value = randString(r, nameChars, 1, 10)
			} else {
				value = randString(r, textChars, 0, 10)
			}
			link.Add(name, value)
		}
		links[i] = link
	}
	return links
}

// randHeaderJunk produces byte soup biased towards the grammar's
// punctuation, to push the parser through its states.
func randHeaderJunk(seed int) string {
	r := rand.New(rand.NewSource(int64(seed)))
	const chars = "\x00 \t,;=<>\"\\*'abcdefg"
	b := make([]byte, r.Intn(64))
	for i := range b {
		b[i] = chars[r.Intn(len(chars))]
	}
	return string(b)
}
