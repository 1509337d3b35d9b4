package suggestion

import (
	"fmt"
	"regexp"
)

var messageURLPattern = regexp.MustCompile(`^https://(?:ptb\.|canary\.)?discord(?:app)?\.com/channels/(\d+)/(\d+)/(\d+)/?$`)

// MessageURL builds the canonical locator for a message. It doubles as the
// suggestion's external identifier, so it must be byte-identical every time
// it is rebuilt for the same message.
func MessageURL(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// ParseMessageURL extracts the channel and message ids (the last two path
// segments) from a message link.
func ParseMessageURL(url string) (channelID, messageID string, err error) {
	matches := messageURLPattern.FindStringSubmatch(url)
	if matches == nil {
		return "", "", ErrInvalidMessageURL
	}
	return matches[2], matches[3], nil
}
