package telegram

import (
	"regexp"
	"strings"

	"manifesto-bot/domain"
)

// Each command accepts a Latin and a localized spelling, optionally
// suffixed with @botname the way group chats disambiguate commands.
var (
	duelPattern      = regexp.MustCompile(`^/(?:duel|دوئل)(?:@\S+)?\s*$`)
	summaryPattern   = regexp.MustCompile(`^/(?:summarize|summary|خلاصه)(?:@\S+)?\s*$`)
	searchPattern    = regexp.MustCompile(`^/(?:search|بگرد)(?:@\S+)?\s+(.+)$`)
	findPattern      = regexp.MustCompile(`^/(?:find|پیداکن)(?:@\S+)?\s+(.+)$`)
	commandLikeStart = regexp.MustCompile(`^/`)
)

// Router classifies inbound messages into commands. Plain text becomes
// a PostMessageCommand; unknown slash commands are dropped so they
// never pollute history or the duel.
type Router struct{}

func NewRouter() Router {
	return Router{}
}

func (Router) Route(msg domain.IncomingMessage) (domain.Command, bool) {
	text := strings.TrimSpace(msg.Text)

	switch {
	case duelPattern.MatchString(text):
		return domain.StartDuelCommand{Message: msg}, true
	case summaryPattern.MatchString(text):
		return domain.SummarizeCommand{Message: msg}, true
	case searchPattern.MatchString(text):
		groups := searchPattern.FindStringSubmatch(text)
		return domain.SearchCommand{Message: msg, Keyword: strings.TrimSpace(groups[1])}, true
	case findPattern.MatchString(text):
		return domain.FindCommand{Message: msg, RawQuery: text}, true
	case commandLikeStart.MatchString(text):
		// Some other bot's command, or a typo. Not ours to answer.
		return nil, false
	default:
		return domain.PostMessageCommand{Message: msg}, true
	}
}
