package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"manifesto-bot/chunk"
	"manifesto-bot/contract"
	"manifesto-bot/domain"
	"manifesto-bot/domain/corpus"
	"manifesto-bot/domain/search"
	"manifesto-bot/prompt"
)

// User-visible copy. Short and friendly on failure; internal error
// detail never leaks into the chat.
const (
	msgDuelStarted        = "⚔️ The duel is on!\n%s fired the opening shot and I am the judge. Who has the guts to step up? Drop your best line in the chat to enter."
	msgDuelRunning        = "%s, you walked in late! The duel is already running — pull the trigger and drop your line."
	msgDuelFailed         = "Oops, the duel misfired. Try again."
	msgDuelOver           = "🎉 The duel is over! The judge will remember who survived."
	msgLeaderboardHeader  = "🏆 Nonsense leaderboard:"
	msgNoVerdict          = "(no verdict yet)"
	msgNothingToSummarize = "There is no conversation to summarize yet."
	msgSummaryFailed      = "Unfortunately something went wrong while summarizing."
	msgGenerationFailed   = "My magazine is empty. Apologies, I cannot share my genius right now."
	msgSearchFound        = "✅ %d results for “%s”:"
	msgSearchChunked      = "✅ %d results for “%s” — too long for one message, sending in several:"
	msgSearchNone         = "❌ No results for “%s” in the manifesto."
	msgFindHeader         = "🔎 %d ranked matches for “%s”:"
	msgFindNone           = "❌ Nothing in the manifesto comes close to “%s”."
	msgFindFailed         = "The index tripped over its own feet. Try again."
)

// Finder is the ranked lookup backing /find.
type Finder interface {
	Find(ctx context.Context, terms string, limit int) ([]string, error)
}

// Censor masks blacklisted words in outbound text. A nil Censor
// disables outbound moderation.
type Censor interface {
	Censor(text string) (string, []string)
}

// Limits are the per-session operational bounds.
type Limits struct {
	MaxMessageLen   int
	PlayerLimit     int
	FindLimit       int
	GenerateTimeout time.Duration
}

// SessionDeps are the collaborators shared by all session workers.
// Everything here is either immutable (manifesto, composer, bot info)
// or internally synchronized (history store, transport, generator).
type SessionDeps struct {
	History   *domain.HistoryStore
	Manifesto *corpus.Manifesto
	Index     Finder
	Composer  *prompt.Composer
	Generator contract.Generator
	Transport contract.Transport
	Censor    Censor
	Bot       domain.BotInfo
	Log       *slog.Logger
}

// SessionWorker processes one chat's commands serially. The single
// loop is the concurrency discipline for the duel: between reading a
// turn and checking the player threshold nothing else can touch the
// session, so registration only happens after a successful generation
// and the termination check always runs against a consistent snapshot.
type SessionWorker struct {
	session  *domain.ChatSession
	commands <-chan domain.Command
	deps     SessionDeps
	limits   Limits
	log      *slog.Logger
}

func NewSessionWorker(session *domain.ChatSession, commands <-chan domain.Command, deps SessionDeps, limits Limits) *SessionWorker {
	return &SessionWorker{
		session:  session,
		commands: commands,
		deps:     deps,
		limits:   limits,
		log:      deps.Log.With("chat", int64(session.ID)),
	}
}

func (w *SessionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping session worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				return nil
			}
			w.handle(ctx, cmd)
		}
	}
}

func (w *SessionWorker) handle(ctx context.Context, cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.StartDuelCommand:
		w.handleStartDuel(ctx, c.Message)
	case domain.PostMessageCommand:
		w.handlePost(ctx, c.Message)
	case domain.SummarizeCommand:
		w.handleSummarize(ctx, c.Message)
	case domain.SearchCommand:
		w.handleSearch(ctx, c.Message, c.Keyword)
	case domain.FindCommand:
		w.handleFind(ctx, c.Message, c.RawQuery)
	}
}

func (w *SessionWorker) handleStartDuel(ctx context.Context, msg domain.IncomingMessage) {
	w.typing(ctx, msg.Chat)

	if !w.session.Duel.Start(msg.Sender, msg.SenderName) {
		// Idempotent rejection: no state change on a second /duel.
		w.send(ctx, msg.Chat, fmt.Sprintf(msgDuelRunning, msg.SenderName), contract.SendOptions{ReplyTo: msg.MessageID})
		return
	}

	w.log.Info("Duel started", "user", int64(msg.Sender), "message", msg.ID)
	w.send(ctx, msg.Chat, fmt.Sprintf(msgDuelStarted, msg.SenderName), contract.SendOptions{ReplyTo: msg.MessageID})
}

// handlePost records the utterance and then decides what the message
// is: a duel turn, a mention of the assistant, or just context.
func (w *SessionWorker) handlePost(ctx context.Context, msg domain.IncomingMessage) {
	w.deps.History.Record(msg.Chat, domain.Utterance{SpeakerName: msg.SenderName, Text: msg.Text})

	// "@" excludes a message from the duel so mentions and commands
	// aimed at other bots are never scored.
	if w.session.Duel.Active() && !strings.Contains(msg.Text, "@") {
		w.handleDuelTurn(ctx, msg)
		return
	}

	if strings.Contains(msg.Text, w.deps.Bot.Mention()) {
		w.handleMention(ctx, msg)
	}
}

func (w *SessionWorker) handleDuelTurn(ctx context.Context, msg domain.IncomingMessage) {
	w.typing(ctx, msg.Chat)

	verdict, err := w.generate(ctx, w.deps.Composer.Judge(msg.Text))
	if err != nil {
		// The session stays untouched: no player, no score.
		w.log.Error("Duel judging failed", "error", err, "message", msg.ID)
		w.send(ctx, msg.Chat, msgDuelFailed, contract.SendOptions{ReplyTo: msg.MessageID})
		return
	}

	duel := w.session.Duel
	duel.RecordScore(msg.Sender, msg.SenderName, verdict)

	w.deliver(ctx, msg.Chat, verdict, msg.MessageID)
	w.deliver(ctx, msg.Chat, w.leaderboard(duel), 0)

	if duel.PlayerCount() >= w.limits.PlayerLimit {
		w.send(ctx, msg.Chat, msgDuelOver, contract.SendOptions{})
		duel.Reset()
		w.log.Info("Duel completed", "players", w.limits.PlayerLimit)
	}
}

// leaderboard renders one paragraph per player. Verdicts are free
// generated text, so the board can outgrow the transport limit; the
// paragraph boundaries let deliver cut it between players.
func (w *SessionWorker) leaderboard(duel *domain.GameSession) string {
	rows := lo.Map(duel.Standings(), func(s domain.Standing, _ int) string {
		if !s.Scored {
			return s.Name + ": " + msgNoVerdict
		}
		return s.Name + ": " + s.Score
	})
	return msgLeaderboardHeader + "\n\n" + strings.Join(rows, "\n\n")
}

func (w *SessionWorker) handleMention(ctx context.Context, msg domain.IncomingMessage) {
	query := strings.TrimSpace(strings.ReplaceAll(msg.Text, w.deps.Bot.Mention(), ""))
	if query == "" {
		// A bare mention is not a question.
		return
	}

	w.log.Info("Prompt request received", "message", msg.ID, "query_len", len(query))
	w.typing(ctx, msg.Chat)

	composed := w.deps.Composer.Reply(query, msg.ReplyTo, w.deps.History.Get(msg.Chat))
	response, err := w.generate(ctx, composed)
	if err != nil {
		w.log.Error("Generation failed", "error", err, "message", msg.ID)
		w.send(ctx, msg.Chat, msgGenerationFailed, contract.SendOptions{ReplyTo: msg.MessageID})
		return
	}

	w.deliver(ctx, msg.Chat, response, msg.MessageID)
}

func (w *SessionWorker) handleSummarize(ctx context.Context, msg domain.IncomingMessage) {
	w.typing(ctx, msg.Chat)

	transcript := w.deps.History.Transcript(msg.Chat)
	if transcript == "" {
		w.send(ctx, msg.Chat, msgNothingToSummarize, contract.SendOptions{})
		return
	}

	summary, err := w.generate(ctx, w.deps.Composer.Summary(transcript))
	if err != nil {
		w.log.Error("Summarizing failed", "error", err, "message", msg.ID)
		w.send(ctx, msg.Chat, msgSummaryFailed, contract.SendOptions{})
		return
	}

	// Summaries are plain messages, not replies.
	w.deliver(ctx, msg.Chat, summary, 0)
}

func (w *SessionWorker) handleSearch(ctx context.Context, msg domain.IncomingMessage, keyword string) {
	w.log.Info("Search requested", "keyword", keyword)

	results := w.deps.Manifesto.Search(keyword)
	if len(results) == 0 {
		w.send(ctx, msg.Chat, fmt.Sprintf(msgSearchNone, keyword), contract.SendOptions{ReplyTo: msg.MessageID})
		return
	}

	full := fmt.Sprintf(msgSearchFound, len(results), keyword) + "\n\n" + strings.Join(results, chunk.Separator)
	if len(full) <= w.limits.MaxMessageLen {
		w.send(ctx, msg.Chat, full, contract.SendOptions{ReplyTo: msg.MessageID})
		return
	}

	w.send(ctx, msg.Chat, fmt.Sprintf(msgSearchChunked, len(results), keyword), contract.SendOptions{ReplyTo: msg.MessageID})
	for _, page := range chunk.Pack(results, w.limits.MaxMessageLen) {
		w.send(ctx, msg.Chat, page, contract.SendOptions{})
	}
}

func (w *SessionWorker) handleFind(ctx context.Context, msg domain.IncomingMessage, raw string) {
	query := search.Parse(raw, w.limits.FindLimit)
	if query.Terms == "" {
		return
	}
	w.log.Info("Ranked search requested", "terms", query.Terms, "limit", query.Limit)

	results, err := w.deps.Index.Find(ctx, query.Terms, query.Limit)
	if err != nil {
		w.log.Error("Ranked search failed", "error", err)
		w.send(ctx, msg.Chat, msgFindFailed, contract.SendOptions{ReplyTo: msg.MessageID})
		return
	}
	if len(results) == 0 {
		w.send(ctx, msg.Chat, fmt.Sprintf(msgFindNone, query.Terms), contract.SendOptions{ReplyTo: msg.MessageID})
		return
	}

	w.send(ctx, msg.Chat, fmt.Sprintf(msgFindHeader, len(results), query.Terms), contract.SendOptions{ReplyTo: msg.MessageID})
	for _, page := range chunk.Pack(results, w.limits.MaxMessageLen) {
		w.send(ctx, msg.Chat, page, contract.SendOptions{})
	}
}

// deliver censors and chunks outbound text. Chunking applies to every
// outbound text, not only search results; long generative answers are
// paginated the same way.
func (w *SessionWorker) deliver(ctx context.Context, chat domain.ChatID, text string, replyTo int) {
	if w.deps.Censor != nil {
		censored, found := w.deps.Censor.Censor(text)
		if len(found) > 0 {
			w.log.Debug("Outbound text censored", "matches", len(found))
		}
		text = censored
	}

	for i, segment := range chunk.Split(text, w.limits.MaxMessageLen) {
		opts := contract.SendOptions{}
		if i == 0 {
			opts.ReplyTo = replyTo
		}
		w.send(ctx, chat, segment, opts)
	}
}

func (w *SessionWorker) generate(ctx context.Context, composed string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, w.limits.GenerateTimeout)
	defer cancel()
	return w.deps.Generator.Generate(genCtx, composed)
}

func (w *SessionWorker) typing(ctx context.Context, chat domain.ChatID) {
	if err := w.deps.Transport.SendTyping(ctx, chat); err != nil {
		w.log.Warn("Typing indicator failed", "error", err)
	}
}

func (w *SessionWorker) send(ctx context.Context, chat domain.ChatID, text string, opts contract.SendOptions) {
	if err := w.deps.Transport.Send(ctx, chat, text, opts); err != nil {
		w.log.Error("Send failed", "error", err)
	}
}
