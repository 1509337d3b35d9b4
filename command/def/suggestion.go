package def

import "github.com/bwmarrin/discordgo"

var adminOnly = int64(discordgo.PermissionAdministrator)

var textChannels = []discordgo.ChannelType{discordgo.ChannelTypeGuildText}

// SuggestionCommand manages the server's suggestion workflow.
var SuggestionCommand = &discordgo.ApplicationCommand{
	Name:                     "suggestion",
	Description:              "Manage the server's suggestions.",
	DefaultMemberPermissions: &adminOnly,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "set-channel",
			Description: "Set the channels used by the suggestion system.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "suggestions",
					Description:  "The channel where suggestions will be sent.",
					ChannelTypes: textChannels,
					Required:     true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "accepted",
					Description:  "The channel where accepted suggestions will be sent.",
					ChannelTypes: textChannels,
					Required:     true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "denied",
					Description:  "The channel where denied suggestions will be sent.",
					ChannelTypes: textChannels,
					Required:     true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "accept",
			Description: "Accept a suggestion.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message-url",
					Description: "The message URL of the suggestion to accept.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "The reason for accepting the suggestion.",
					Required:    false,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "deny",
			Description: "Deny a suggestion.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message-url",
					Description: "The message URL of the suggestion to deny.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "The reason for denying the suggestion.",
					Required:    false,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "remove",
			Description: "Remove a suggestion without accepting or denying it.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message-url",
					Description: "The message URL of the suggestion to remove.",
					Required:    true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "list",
			Description: "List all suggestions.",
		},
	},
}
