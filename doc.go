/*
Package linkheader parses and generates the HTTP Link header (RFC 5988).

Parse and ParseLenient turn a raw header value into an ordered Links
slice that is faithful to the wire form: attribute order is preserved,
duplicate attribute names are retained, and quoted-string escapes are
undone on ingestion. Formatting with String is the inverse, except that
the choice between token and quoted-string form is re-derived from the
value each time, so round-trips are semantic rather than byte-exact.

ParseHAL and the HALLinks type offer the same grammar under the HAL
convention instead: links are keyed by relation type, at most one link
per relation, and attributes are accessed by name against the fixed set
of RFC 5988 target attributes.

Both forms convert to JSON-friendly structures with the standard
encoder: a Links value marshals to nested arrays, a HALLinks value to
the relation-keyed object used for a HAL "_links" member.
*/
package linkheader
