package model

import "time"

// Author is a snapshot of the suggesting member, captured at post time.
// It is never re-resolved against Discord afterwards.
type Author struct {
	Name      string `bson:"name"`
	AvatarURL string `bson:"avatar_url,omitempty"`
}

// SuggestionRecord is one posted suggestion and its current vote state.
// A member id appears in at most one of Upvotes/Downvotes.
type SuggestionRecord struct {
	Posted    time.Time `bson:"posted"`
	Author    Author    `bson:"author"`
	Content   string    `bson:"content"`
	Upvotes   []string  `bson:"upvotes"`
	Downvotes []string  `bson:"downvotes"`
}

// GuildChannels routes the suggestion workflow for one guild.
type GuildChannels struct {
	Suggestions string `bson:"suggestions,omitempty"`
	Accepted    string `bson:"accepted,omitempty"`
	Denied      string `bson:"denied,omitempty"`
}

// GuildDocument is the aggregate root stored in the guilds collection,
// one document per guild. Suggestion keys are encoded message URLs
// (see db.EncodeKey).
type GuildDocument struct {
	GuildID     string                      `bson:"guild_id"`
	Channels    GuildChannels               `bson:"channels,omitempty"`
	Suggestions map[string]SuggestionRecord `bson:"suggestions,omitempty"`
}
