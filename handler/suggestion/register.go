package suggestion

import (
	"github.com/KingsMMA/SuggestionBot/command/def"
	"github.com/KingsMMA/SuggestionBot/handler"
)

// Register wires the suggestion handlers into the router.
func Register(r *handler.Router, h *Handlers) {
	r.Command(def.SuggestionCommand.Name, h.HandleCommand)
	r.Component(ComponentPrefix, h.HandleComponent)
}
