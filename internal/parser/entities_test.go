package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"named ampersand", "salt &amp; pepper", "salt & pepper"},
		{"named quote", "&quot;secret&quot; sauce", `"secret" sauce`},
		{"decimal apostrophe", "grandma&#039;s pie", "grandma's pie"},
		{"hex reference", "caf&#xe9;", "café"},
		{"non-breaking space", "1&nbsp;cup", "1\u00a0cup"},
		{"single pass only", "&amp;quot;", "&quot;"},
		{"malformed numeric kept", "broken &#xzz; ref", "broken &#xzz; ref"},
		{"no entities", "plain text", "plain text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeEntities(tt.in))
		})
	}
}

func TestDecodeEntitiesIdempotentOnDecodedText(t *testing.T) {
	decoded := decodeEntities("grandma&#039;s salt &amp; pepper")
	assert.Equal(t, decoded, decodeEntities(decoded))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "salt & pepper", cleanText("  salt   &amp;\n\tpepper  "))
	assert.Equal(t, "", cleanText("   \n\t "))
}
