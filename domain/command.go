package domain

// Command is one unit of work routed to a chat's session worker.
// Routing happens at the transport boundary; workers only switch on
// the concrete type.
type Command interface {
	Chat() ChatID
}

// PostMessageCommand is any plain message: recorded into history and
// then considered as a duel turn or a mention of the assistant.
type PostMessageCommand struct {
	Message IncomingMessage
}

func (c PostMessageCommand) Chat() ChatID { return c.Message.Chat }

// StartDuelCommand opens a duel session, or rejects when one is already
// running.
type StartDuelCommand struct {
	Message IncomingMessage
}

func (c StartDuelCommand) Chat() ChatID { return c.Message.Chat }

// SummarizeCommand asks the backend for a short summary of the chat's
// recent history.
type SummarizeCommand struct {
	Message IncomingMessage
}

func (c SummarizeCommand) Chat() ChatID { return c.Message.Chat }

// SearchCommand is the exact substring search over the manifesto.
type SearchCommand struct {
	Message IncomingMessage
	Keyword string
}

func (c SearchCommand) Chat() ChatID { return c.Message.Chat }

// FindCommand is the ranked full-text search over the manifesto.
// RawQuery still contains the flags the query parser understands.
type FindCommand struct {
	Message  IncomingMessage
	RawQuery string
}

func (c FindCommand) Chat() ChatID { return c.Message.Chat }
