package db

import "strings"

// KeySentinel stands in for periods inside suggestion keys. Message URLs
// contain periods ("discord.com") and mongo forbids them in field-path
// segments, so every store access encodes the URL on the way in and decodes
// it on the way out. The token never occurs in a real message URL, which is
// what keeps the mapping injective; CreateSuggestion rejects input that
// already carries it.
const KeySentinel = "[D]"

// EncodeKey converts a message URL into a field-path-safe suggestion key.
func EncodeKey(id string) string {
	return strings.ReplaceAll(id, ".", KeySentinel)
}

// DecodeKey restores the original message URL from a suggestion key.
func DecodeKey(key string) string {
	return strings.ReplaceAll(key, KeySentinel, ".")
}
