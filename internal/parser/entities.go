package parser

import (
	"html"
	"strings"
)

// decodeEntities replaces named and numeric HTML character references with
// their literal characters. It performs exactly one decoding pass, so
// already-decoded text comes back unchanged and "&amp;quot;" yields
// "&quot;" rather than a double-decoded quote. Malformed numeric
// references are left as-is.
func decodeEntities(s string) string {
	if s == "" || !strings.ContainsRune(s, '&') {
		return s
	}
	return html.UnescapeString(s)
}

// cleanText decodes entities and normalizes whitespace in extracted text.
func cleanText(s string) string {
	return strings.TrimSpace(NormalizeWhitespace(decodeEntities(s)))
}
