package suggestion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KingsMMA/SuggestionBot/model"
	"github.com/KingsMMA/SuggestionBot/vote"
)

const handlerTimeout = 15 * time.Second

// Handlers is the discordgo glue around the Controller: it parses command
// options, invokes the lifecycle flow and sends the interaction reply.
type Handlers struct {
	ctrl *Controller
	log  *zap.Logger
}

// NewHandlers wires the interaction handlers.
func NewHandlers(ctrl *Controller, log *zap.Logger) *Handlers {
	return &Handlers{ctrl: ctrl, log: log}
}

// OnMessageCreate watches for member posts in the configured suggestions
// channel and turns them into suggestions.
func (h *Handlers) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	author := model.Author{
		Name:      m.Author.Username,
		AvatarURL: m.Author.AvatarURL(""),
	}
	if err := h.ctrl.CreateFromPost(ctx, s, m.GuildID, m.ChannelID, m.ID, author, m.Content); err != nil {
		h.log.Error("failed to create suggestion from post",
			zap.String("guild", m.GuildID),
			zap.String("channel", m.ChannelID),
			zap.Error(err))
	}
}

// HandleCommand dispatches the /suggestion subcommands.
func (h *Handlers) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := subOptions(sub)

	switch sub.Name {
	case "set-channel":
		suggestions := opts["suggestions"].ChannelValue(nil).ID
		accepted := opts["accepted"].ChannelValue(nil).ID
		denied := opts["denied"].ChannelValue(nil).ID
		err := h.ctrl.SetChannels(ctx, s, i.GuildID, suggestions, accepted, denied)
		if err != nil {
			h.replyError(s, i, err)
			return
		}
		h.reply(s, i, fmt.Sprintf(
			"The following channels will now be used:\n**Suggestions: **<#%s>\n**Accepted: **<#%s>\n**Denied: **<#%s>",
			suggestions, accepted, denied))
	case "accept":
		err := h.ctrl.Accept(ctx, s, i.GuildID, stringOption(opts, "message-url"), stringOption(opts, "reason"))
		if err != nil {
			h.replyError(s, i, err)
			return
		}
		h.reply(s, i, "The suggestion has been accepted.")
	case "deny":
		err := h.ctrl.Deny(ctx, s, i.GuildID, stringOption(opts, "message-url"), stringOption(opts, "reason"))
		if err != nil {
			h.replyError(s, i, err)
			return
		}
		h.reply(s, i, "The suggestion has been denied.")
	case "remove":
		err := h.ctrl.Remove(ctx, s, i.GuildID, stringOption(opts, "message-url"))
		if err != nil {
			h.replyError(s, i, err)
			return
		}
		h.reply(s, i, "The suggestion has been removed.")
	case "list":
		entries, err := h.ctrl.List(ctx, i.GuildID)
		if err != nil {
			h.replyError(s, i, err)
			return
		}
		h.replyList(s, i, entries)
	}
}

// HandleComponent handles presses on the suggestion vote buttons.
func (h *Handlers) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var dir vote.Direction
	switch i.MessageComponentData().CustomID {
	case customIDUpvote:
		dir = vote.Up
	case customIDDownvote:
		dir = vote.Down
	default:
		return
	}
	if i.Member == nil || i.Member.User == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	record, err := h.ctrl.ToggleVote(ctx, i.GuildID, i.ChannelID, i.Message.ID, i.Member.User.ID, dir)
	if err != nil {
		h.replyError(s, i, err)
		return
	}

	embeds, components := h.ctrl.render.Open(record.Author, record.Content,
		len(record.Upvotes), len(record.Downvotes))
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
		},
	})
	if err != nil {
		h.log.Error("failed to update suggestion message",
			zap.String("message", i.Message.ID), zap.Error(err))
	}
}

func (h *Handlers) reply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		h.log.Error("failed to send interaction reply", zap.Error(err))
	}
}

func (h *Handlers) replyError(s *discordgo.Session, i *discordgo.InteractionCreate, cause error) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.userMessage(cause),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.log.Error("failed to send error reply", zap.Error(err))
	}
}

func (h *Handlers) replyList(s *discordgo.Session, i *discordgo.InteractionCreate, entries []ListEntry) {
	lines := make([]string, len(entries))
	for idx, entry := range entries {
		lines[idx] = fmt.Sprintf("**%s**\n**Author:** %s\n**Content:** %s\n**Net Vote:** %d",
			entry.URL, entry.Author.Name, entry.Content, entry.Score)
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "Suggestions",
				Description: strings.Join(lines, "\n\n"),
				Color:       colorOpen,
			}},
		},
	})
	if err != nil {
		h.log.Error("failed to send suggestion list", zap.Error(err))
	}
}

// userMessage maps an error to the text shown to the member. Anything outside
// the known taxonomy is logged and replaced with a generic message.
func (h *Handlers) userMessage(err error) string {
	for _, known := range []error{
		ErrNoSuggestions,
		ErrSuggestionNotFound,
		ErrRemoveNotFound,
		ErrNoChannels,
		ErrChannelUnavailable,
		ErrMessageUnavailable,
		ErrOutcomeUnavailable,
		ErrInvalidChannelType,
		ErrInvalidMessageURL,
		ErrStrayMessage,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	h.log.Error("suggestion operation failed", zap.Error(err))
	return "Something went wrong. Please try again later."
}

func subOptions(sub *discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		opts[opt.Name] = opt
	}
	return opts
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}
