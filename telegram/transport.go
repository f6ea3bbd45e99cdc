// Package telegram adapts the chat platform client to the transport
// contract. Everything here is a thin I/O wrapper; no assistant logic.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"manifesto-bot/contract"
	"manifesto-bot/domain"
)

const pollTimeoutSeconds = 30

type Transport struct {
	api *tgbotapi.BotAPI
	log *slog.Logger
}

func New(token string, log *slog.Logger) (*Transport, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}
	return &Transport{api: api, log: log}, nil
}

// Bot identifies the assistant's own account, resolved once at login.
func (t *Transport) Bot() domain.BotInfo {
	return domain.BotInfo{
		ID:          domain.UserID(t.api.Self.ID),
		Username:    t.api.Self.UserName,
		DisplayName: t.api.Self.FirstName,
	}
}

func (t *Transport) Send(ctx context.Context, chat domain.ChatID, text string, opts contract.SendOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(int64(chat), text)
	if opts.ReplyTo != 0 {
		msg.ReplyToMessageID = opts.ReplyTo
	}
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}

func (t *Transport) SendTyping(ctx context.Context, chat domain.ChatID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	action := tgbotapi.NewChatAction(int64(chat), tgbotapi.ChatTyping)
	if _, err := t.api.Request(action); err != nil {
		return fmt.Errorf("sending typing action: %w", err)
	}
	return nil
}

// Updates converts the long-polling stream into incoming messages.
// Non-text updates are dropped at this boundary. The channel closes
// when ctx is canceled.
func (t *Transport) Updates(ctx context.Context) <-chan domain.IncomingMessage {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeoutSeconds
	updates := t.api.GetUpdatesChan(cfg)

	out := make(chan domain.IncomingMessage)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				t.api.StopReceivingUpdates()
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				msg, ok := fromUpdate(update)
				if !ok {
					continue
				}
				select {
				case <-ctx.Done():
					t.api.StopReceivingUpdates()
					return
				case out <- msg:
				}
			}
		}
	}()
	return out
}

func fromUpdate(update tgbotapi.Update) (domain.IncomingMessage, bool) {
	m := update.Message
	if m == nil || m.From == nil || m.Text == "" {
		return domain.IncomingMessage{}, false
	}

	msg := domain.IncomingMessage{
		ID:         uuid.New(),
		Chat:       domain.ChatID(m.Chat.ID),
		Sender:     domain.UserID(m.From.ID),
		SenderName: displayName(m.From),
		MessageID:  m.MessageID,
		Text:       m.Text,
		At:         m.Time(),
	}
	if replied := m.ReplyToMessage; replied != nil && replied.Text != "" && replied.From != nil {
		msg.ReplyTo = &domain.ReplyContext{
			SenderName: displayName(replied.From),
			Text:       replied.Text,
		}
	}
	return msg, true
}

func displayName(u *tgbotapi.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return "User"
}
