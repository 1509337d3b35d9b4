package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		encoded string
	}{
		{
			name:    "message url",
			url:     "https://discord.com/channels/111/222/333",
			encoded: "https://discord[D]com/channels/111/222/333",
		},
		{
			name:    "canary url",
			url:     "https://canary.discord.com/channels/111/222/333",
			encoded: "https://canary[D]discord[D]com/channels/111/222/333",
		},
		{
			name:    "no periods",
			url:     "plain-identifier",
			encoded: "plain-identifier",
		},
		{
			name:    "empty",
			url:     "",
			encoded: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := EncodeKey(tt.url)
			assert.Equal(t, tt.encoded, key)
			assert.NotContains(t, key, ".")
			assert.Equal(t, tt.url, DecodeKey(key))
		})
	}
}

func TestEncodeKeyInjective(t *testing.T) {
	urls := []string{
		"https://discord.com/channels/1/2/3",
		"https://discord.com/channels/1/2/30",
		"https://discord.com/channels/1/20/3",
		"https://discordapp.com/channels/1/2/3",
	}
	seen := make(map[string]string, len(urls))
	for _, url := range urls {
		key := EncodeKey(url)
		previous, dup := seen[key]
		assert.False(t, dup, "urls %q and %q encode to the same key", previous, url)
		seen[key] = url
	}
}
