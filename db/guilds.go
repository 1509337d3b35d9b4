package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/KingsMMA/SuggestionBot/model"
)

// ErrNoGuild is returned when an update expected an existing guild document
// and found none.
var ErrNoGuild = errors.New("guild document not found")

func guildFilter(guildID string) bson.M {
	return bson.M{"guild_id": guildID}
}

func suggestionField(messageURL string) string {
	return "suggestions." + EncodeKey(messageURL)
}

// SetChannels replaces the guild's channel routing as one atomic update,
// creating the guild document if it does not exist yet.
func (s *GuildStore) SetChannels(ctx context.Context, guildID, suggestions, accepted, denied string) error {
	update := bson.M{"$set": bson.M{
		"channels.suggestions": suggestions,
		"channels.accepted":    accepted,
		"channels.denied":      denied,
	}}
	_, err := s.guilds.UpdateOne(ctx, guildFilter(guildID), update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set guild channels: %w", err)
	}
	s.log.Info("guild channels updated",
		zap.String("guild", guildID),
		zap.String("suggestions", suggestions),
		zap.String("accepted", accepted),
		zap.String("denied", denied))
	return nil
}

// Channels returns the guild's channel routing. A guild that was never
// configured yields a zero value, not an error.
func (s *GuildStore) Channels(ctx context.Context, guildID string) (model.GuildChannels, error) {
	var doc model.GuildDocument
	err := s.guilds.FindOne(ctx, guildFilter(guildID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.GuildChannels{}, nil
	}
	if err != nil {
		return model.GuildChannels{}, fmt.Errorf("fetch guild channels: %w", err)
	}
	return doc.Channels, nil
}

// CreateSuggestion inserts a fresh record with empty vote sets, keyed by the
// encoded message URL, creating the guild document if needed.
func (s *GuildStore) CreateSuggestion(ctx context.Context, guildID, messageURL string, author model.Author, content string) error {
	record := model.SuggestionRecord{
		Posted:    time.Now().UTC(),
		Author:    author,
		Content:   content,
		Upvotes:   []string{},
		Downvotes: []string{},
	}
	update := bson.M{"$set": bson.M{suggestionField(messageURL): record}}
	_, err := s.guilds.UpdateOne(ctx, guildFilter(guildID), update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("create suggestion: %w", err)
	}
	return nil
}

// Suggestions returns every open suggestion for the guild, keyed by encoded
// message URL. A guild with none yields an empty map.
func (s *GuildStore) Suggestions(ctx context.Context, guildID string) (map[string]model.SuggestionRecord, error) {
	var doc model.GuildDocument
	err := s.guilds.FindOne(ctx, guildFilter(guildID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return map[string]model.SuggestionRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch suggestions: %w", err)
	}
	if doc.Suggestions == nil {
		return map[string]model.SuggestionRecord{}, nil
	}
	return doc.Suggestions, nil
}

// ReplaceSuggestion overwrites the whole record in one update so the vote
// engine's output is the single source of truth for both vote sets. The last
// concurrent replace wins.
func (s *GuildStore) ReplaceSuggestion(ctx context.Context, guildID, messageURL string, record model.SuggestionRecord) error {
	update := bson.M{"$set": bson.M{suggestionField(messageURL): record}}
	result, err := s.guilds.UpdateOne(ctx, guildFilter(guildID), update)
	if err != nil {
		return fmt.Errorf("replace suggestion: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNoGuild
	}
	return nil
}

// DeleteSuggestion removes the record. Deleting a key that is already gone
// is a no-op, so duplicate resolution attempts are harmless at this level.
func (s *GuildStore) DeleteSuggestion(ctx context.Context, guildID, messageURL string) error {
	update := bson.M{"$unset": bson.M{suggestionField(messageURL): ""}}
	_, err := s.guilds.UpdateOne(ctx, guildFilter(guildID), update)
	if err != nil {
		return fmt.Errorf("delete suggestion: %w", err)
	}
	return nil
}
