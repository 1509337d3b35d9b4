package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KingsMMA/SuggestionBot/command/def"
)

// Register creates the application commands. With an empty guild list the
// commands are registered globally; otherwise once per allowed guild.
func Register(s *discordgo.Session, guildIDs []string) error {
	commands := []*discordgo.ApplicationCommand{def.SuggestionCommand}

	if len(guildIDs) == 0 {
		guildIDs = []string{""}
	}
	for _, guildID := range guildIDs {
		for _, cmd := range commands {
			if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
				return fmt.Errorf("create command %q: %w", cmd.Name, err)
			}
		}
	}
	return nil
}
