package suggestion

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/KingsMMA/SuggestionBot/model"
)

const (
	colorOpen     = 0x0E78F2
	colorAccepted = 0x57F287
	colorDenied   = 0xED4245
)

// Component custom ids. The router matches on the prefix before the ':'.
const (
	ComponentPrefix  = "suggestion"
	customIDUpvote   = "suggestion:upvote"
	customIDCount    = "suggestion:count"
	customIDDownvote = "suggestion:downvote"
)

// EmbedRenderer is the discordgo implementation of Renderer.
type EmbedRenderer struct{}

// Open renders a votable suggestion: author snapshot, content, and the three
// vote buttons. The middle counter shows the net score and is never pressable.
func (EmbedRenderer) Open(author model.Author, content string, up, down int) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	return suggestionMessage(author, content, "", up, down, colorOpen, false)
}

// Resolved renders the frozen outcome message: same shape as Open plus the
// resolution reason, with every button disabled.
func (EmbedRenderer) Resolved(author model.Author, content, reason string, up, down, color int) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	return suggestionMessage(author, content, reason, up, down, color, true)
}

func suggestionMessage(author model.Author, content, reason string, up, down, color int, resolved bool) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    "Suggestion | " + author.Name,
			IconURL: author.AvatarURL,
		},
		Description: content,
		Color:       color,
	}
	if reason != "" {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Reason", Value: reason},
		}
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: customIDUpvote,
					Style:    discordgo.SuccessButton,
					Label:    strconv.Itoa(up),
					Emoji:    &discordgo.ComponentEmoji{Name: "👍"},
					Disabled: resolved,
				},
				discordgo.Button{
					CustomID: customIDCount,
					Style:    discordgo.PrimaryButton,
					Label:    strconv.Itoa(up - down),
					Emoji:    &discordgo.ComponentEmoji{Name: "#️⃣"},
					Disabled: true,
				},
				discordgo.Button{
					CustomID: customIDDownvote,
					Style:    discordgo.DangerButton,
					Label:    strconv.Itoa(down),
					Emoji:    &discordgo.ComponentEmoji{Name: "👎"},
					Disabled: resolved,
				},
			},
		},
	}

	return []*discordgo.MessageEmbed{embed}, components
}
