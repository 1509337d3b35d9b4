package suggestion

import "errors"

// User-visible failures. The text is sent verbatim as the interaction reply;
// internal causes are logged, never shown.
var (
	ErrNoSuggestions      = errors.New("No suggestions have been posted in this server.")
	ErrSuggestionNotFound = errors.New("This suggestion does not exist.")
	ErrRemoveNotFound     = errors.New("This suggestion does not exist. If there is a message for it, you may safely delete it.")
	ErrNoChannels         = errors.New("No suggestion channel has been set.")
	ErrChannelUnavailable = errors.New("Unable to fetch the channel this suggestion was sent in.")
	ErrMessageUnavailable = errors.New("Unable to fetch the suggestion message.")
	ErrOutcomeUnavailable = errors.New("Unable to fetch the outcome channel.")
	ErrInvalidChannelType = errors.New("Invalid channel type given.")
	ErrInvalidMessageURL  = errors.New("Invalid message URL given.")
	ErrStrayMessage       = errors.New("The suggestion has been removed, but its message could not be deleted. You may safely delete it manually.")
)
