//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"manifesto-bot/domain"
)

// SendOptions tunes one outbound message.
type SendOptions struct {
	// ReplyTo makes the message a reply to the given platform message
	// id. Zero sends a plain message.
	ReplyTo int
}

// Transport is the chat platform seen from the inside: deliver text,
// show a typing indicator. Receiving is a separate stream owned by the
// adapter.
type Transport interface {
	Send(ctx context.Context, chat domain.ChatID, text string, opts SendOptions) error
	SendTyping(ctx context.Context, chat domain.ChatID) error
}

// Generator is the generative backend: one prompt in, one text out.
// Fallible; callers bound it with a context deadline.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CommandRouter classifies an inbound message into a routable command.
// The second return is false for messages the assistant ignores
// entirely (unknown commands).
type CommandRouter interface {
	Route(msg domain.IncomingMessage) (domain.Command, bool)
}

// Dispatcher hands a command to the session that owns its chat.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd domain.Command)
}

// Worker doesn't protect itself; supervision does.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the
// worker for logging and supervision, avoiding manual naming in the
// Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
