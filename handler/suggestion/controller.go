package suggestion

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KingsMMA/SuggestionBot/db"
	"github.com/KingsMMA/SuggestionBot/model"
	"github.com/KingsMMA/SuggestionBot/vote"
)

// threadArchiveMinutes is the discussion thread auto-archive duration (3 days).
const threadArchiveMinutes = 4320

// Store is the persistence surface the controller needs. Implemented by
// db.GuildStore.
type Store interface {
	SetChannels(ctx context.Context, guildID, suggestions, accepted, denied string) error
	Channels(ctx context.Context, guildID string) (model.GuildChannels, error)
	CreateSuggestion(ctx context.Context, guildID, messageURL string, author model.Author, content string) error
	Suggestions(ctx context.Context, guildID string) (map[string]model.SuggestionRecord, error)
	ReplaceSuggestion(ctx context.Context, guildID, messageURL string, record model.SuggestionRecord) error
	DeleteSuggestion(ctx context.Context, guildID, messageURL string) error
}

// Renderer produces the outward message representation of a suggestion.
// Implemented by EmbedRenderer.
type Renderer interface {
	Open(author model.Author, content string, up, down int) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent)
	Resolved(author model.Author, content, reason string, up, down, color int) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent)
}

// Session is the slice of the Discord API the controller calls. Satisfied by
// *discordgo.Session.
type Session interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	MessageThreadStartComplex(channelID, messageID string, data *discordgo.ThreadStart, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// ListEntry is one open suggestion as returned by List.
type ListEntry struct {
	URL     string
	Author  model.Author
	Content string
	Score   int
}

// Controller drives a suggestion through its lifecycle: creation, vote
// toggles, and resolution. Collaborators are injected; the controller holds
// no package state.
type Controller struct {
	store  Store
	render Renderer
	log    *zap.Logger
}

// NewController wires a controller from its collaborators.
func NewController(store Store, render Renderer, log *zap.Logger) *Controller {
	return &Controller{store: store, render: render, log: log}
}

func (c *Controller) opLog(op, guildID string) *zap.Logger {
	return c.log.With(
		zap.String("op", op),
		zap.String("op_id", uuid.NewString()),
		zap.String("guild", guildID))
}

// CreateFromPost converts a member's post in the configured suggestions
// channel into a votable suggestion: it posts the rendered embed, deletes the
// original message, opens a discussion thread and persists the record keyed
// by the rendered message's URL. Posts in other channels are ignored.
func (c *Controller) CreateFromPost(ctx context.Context, s Session, guildID, channelID, sourceMessageID string, author model.Author, content string) error {
	channels, err := c.store.Channels(ctx, guildID)
	if err != nil {
		return fmt.Errorf("fetch channels: %w", err)
	}
	if channels.Suggestions == "" || channelID != channels.Suggestions {
		return nil
	}

	log := c.opLog("create", guildID)

	embeds, components := c.render.Open(author, content, 0, 0)
	sent, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     embeds,
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("post suggestion embed: %w", err)
	}

	// The rendering already succeeded, so neither of these is fatal.
	if err := s.ChannelMessageDelete(channelID, sourceMessageID); err != nil {
		log.Warn("failed to delete source message",
			zap.String("message", sourceMessageID), zap.Error(err))
	}
	if _, err := s.MessageThreadStartComplex(channelID, sent.ID, &discordgo.ThreadStart{
		Name:                "Suggestion | " + author.Name,
		AutoArchiveDuration: threadArchiveMinutes,
	}); err != nil {
		log.Warn("failed to start discussion thread",
			zap.String("message", sent.ID), zap.Error(err))
	}

	url := MessageURL(guildID, channelID, sent.ID)
	if strings.Contains(url, db.KeySentinel) {
		return ErrInvalidMessageURL
	}
	if err := c.store.CreateSuggestion(ctx, guildID, url, author, content); err != nil {
		return fmt.Errorf("persist suggestion: %w", err)
	}
	log.Info("suggestion created", zap.String("message", sent.ID))
	return nil
}

// ToggleVote applies one button press to the suggestion rendered at the given
// message and persists the whole record. The updated record is returned so
// the caller can re-render the message in place. Concurrent toggles on the
// same suggestion are last-write-wins.
func (c *Controller) ToggleVote(ctx context.Context, guildID, channelID, messageID, memberID string, dir vote.Direction) (model.SuggestionRecord, error) {
	url := MessageURL(guildID, channelID, messageID)

	suggestions, err := c.store.Suggestions(ctx, guildID)
	if err != nil {
		return model.SuggestionRecord{}, fmt.Errorf("fetch suggestions: %w", err)
	}
	record, ok := suggestions[db.EncodeKey(url)]
	if !ok {
		return model.SuggestionRecord{}, ErrSuggestionNotFound
	}

	ballot := vote.Ballot{Upvotes: record.Upvotes, Downvotes: record.Downvotes}.Toggle(memberID, dir)
	record.Upvotes = ballot.Upvotes
	record.Downvotes = ballot.Downvotes

	if err := c.store.ReplaceSuggestion(ctx, guildID, url, record); err != nil {
		return model.SuggestionRecord{}, fmt.Errorf("persist vote: %w", err)
	}
	c.opLog("vote", guildID).Info("vote toggled",
		zap.String("message", messageID),
		zap.String("member", memberID),
		zap.String("direction", string(dir)),
		zap.Int("score", ballot.Score()))
	return record, nil
}

// Accept resolves a suggestion as accepted, relocating it to the accepted
// channel with the supplied reason and frozen vote counters.
func (c *Controller) Accept(ctx context.Context, s Session, guildID, messageURL, reason string) error {
	return c.resolve(ctx, s, guildID, messageURL, reason, true)
}

// Deny resolves a suggestion as denied, relocating it to the denied channel
// with the supplied reason and frozen vote counters.
func (c *Controller) Deny(ctx context.Context, s Session, guildID, messageURL, reason string) error {
	return c.resolve(ctx, s, guildID, messageURL, reason, false)
}

// resolve runs the accept/deny sequence. The store record is removed last, so
// a failure anywhere earlier leaves the suggestion resolvable by retry rather
// than silently lost.
func (c *Controller) resolve(ctx context.Context, s Session, guildID, messageURL, reason string, accepted bool) error {
	record, err := c.lookup(ctx, guildID, messageURL)
	if err != nil {
		return err
	}

	channels, err := c.store.Channels(ctx, guildID)
	if err != nil {
		return fmt.Errorf("fetch channels: %w", err)
	}
	target, color := channels.Denied, colorDenied
	if accepted {
		target, color = channels.Accepted, colorAccepted
	}
	if target == "" {
		return ErrNoChannels
	}
	if _, err := s.Channel(target); err != nil {
		return ErrOutcomeUnavailable
	}

	channelID, messageID, err := ParseMessageURL(messageURL)
	if err != nil {
		return err
	}
	if _, err := s.Channel(channelID); err != nil {
		return ErrChannelUnavailable
	}
	// Deleting the rendered message before posting the outcome prevents a
	// duplicate outcome post when the reference is broken.
	if err := s.ChannelMessageDelete(channelID, messageID); err != nil {
		return ErrMessageUnavailable
	}

	if reason == "" {
		reason = "No reason provided."
	}
	embeds, components := c.render.Resolved(record.Author, record.Content, reason,
		len(record.Upvotes), len(record.Downvotes), color)
	if _, err := s.ChannelMessageSendComplex(target, &discordgo.MessageSend{
		Embeds:     embeds,
		Components: components,
	}); err != nil {
		return fmt.Errorf("post outcome message: %w", err)
	}

	if err := c.store.DeleteSuggestion(ctx, guildID, messageURL); err != nil {
		return fmt.Errorf("delete suggestion record: %w", err)
	}
	c.opLog("resolve", guildID).Info("suggestion resolved",
		zap.String("message", messageID),
		zap.Bool("accepted", accepted))
	return nil
}

// Remove discards a suggestion without an outcome post. The record is deleted
// first; a rendered message that then cannot be deleted is an acceptable
// residue and is reported as safe to remove manually.
func (c *Controller) Remove(ctx context.Context, s Session, guildID, messageURL string) error {
	if _, err := c.lookup(ctx, guildID, messageURL); err != nil {
		if errors.Is(err, ErrSuggestionNotFound) {
			return ErrRemoveNotFound
		}
		return err
	}

	if err := c.store.DeleteSuggestion(ctx, guildID, messageURL); err != nil {
		return fmt.Errorf("delete suggestion record: %w", err)
	}

	channelID, messageID, err := ParseMessageURL(messageURL)
	if err != nil {
		return ErrStrayMessage
	}
	if err := s.ChannelMessageDelete(channelID, messageID); err != nil {
		c.opLog("remove", guildID).Warn("failed to delete rendered message",
			zap.String("message", messageID), zap.Error(err))
		return ErrStrayMessage
	}
	c.opLog("remove", guildID).Info("suggestion removed", zap.String("message", messageID))
	return nil
}

// List returns every open suggestion ordered by descending net score, ties
// broken by ascending post time, then by locator.
func (c *Controller) List(ctx context.Context, guildID string) ([]ListEntry, error) {
	suggestions, err := c.store.Suggestions(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("fetch suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, ErrNoSuggestions
	}

	type keyed struct {
		entry  ListEntry
		record model.SuggestionRecord
	}
	entries := make([]keyed, 0, len(suggestions))
	for key, record := range suggestions {
		ballot := vote.Ballot{Upvotes: record.Upvotes, Downvotes: record.Downvotes}
		entries = append(entries, keyed{
			entry: ListEntry{
				URL:     db.DecodeKey(key),
				Author:  record.Author,
				Content: record.Content,
				Score:   ballot.Score(),
			},
			record: record,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].entry.Score != entries[j].entry.Score {
			return entries[i].entry.Score > entries[j].entry.Score
		}
		if !entries[i].record.Posted.Equal(entries[j].record.Posted) {
			return entries[i].record.Posted.Before(entries[j].record.Posted)
		}
		return entries[i].entry.URL < entries[j].entry.URL
	})

	result := make([]ListEntry, len(entries))
	for i, e := range entries {
		result[i] = e.entry
	}
	return result, nil
}

// SetChannels validates and stores the guild's channel routing as one unit.
func (c *Controller) SetChannels(ctx context.Context, s Session, guildID, suggestions, accepted, denied string) error {
	for _, id := range []string{suggestions, accepted, denied} {
		channel, err := s.Channel(id)
		if err != nil {
			return ErrInvalidChannelType
		}
		if channel.Type != discordgo.ChannelTypeGuildText || channel.GuildID != guildID {
			return ErrInvalidChannelType
		}
	}
	if err := c.store.SetChannels(ctx, guildID, suggestions, accepted, denied); err != nil {
		return fmt.Errorf("persist channels: %w", err)
	}
	return nil
}

func (c *Controller) lookup(ctx context.Context, guildID, messageURL string) (model.SuggestionRecord, error) {
	suggestions, err := c.store.Suggestions(ctx, guildID)
	if err != nil {
		return model.SuggestionRecord{}, fmt.Errorf("fetch suggestions: %w", err)
	}
	record, ok := suggestions[db.EncodeKey(messageURL)]
	if !ok {
		return model.SuggestionRecord{}, ErrSuggestionNotFound
	}
	return record, nil
}
