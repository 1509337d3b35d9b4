package handler

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// InteractionHandler handles a single inbound interaction.
type InteractionHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

// Router dispatches interactions to registered handlers. Components are
// routed on the custom id prefix before the first ':', so a button with
// custom id "suggestion:upvote" is routed on "suggestion". The router is
// constructed in main and handed to the packages that register on it; there
// is no ambient registry.
type Router struct {
	commands   map[string]InteractionHandler
	components map[string]InteractionHandler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		commands:   make(map[string]InteractionHandler),
		components: make(map[string]InteractionHandler),
	}
}

// Command registers a handler for a slash command.
func (r *Router) Command(name string, h InteractionHandler) {
	r.commands[name] = h
}

// Component registers a handler for a message component custom id prefix.
func (r *Router) Component(prefix string, h InteractionHandler) {
	r.components[prefix] = h
}

// HandleInteraction is the session's InteractionCreate handler.
func (r *Router) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := r.commands[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	case discordgo.InteractionMessageComponent:
		prefix, _, _ := strings.Cut(i.MessageComponentData().CustomID, ":")
		if h, ok := r.components[prefix]; ok {
			h(s, i)
		}
	}
}
