package workers

import (
	"context"
	"log/slog"

	"manifesto-bot/contract"
	"manifesto-bot/domain"
)

// SourceWorker drains the transport's update stream, classifies each
// message through the router, and hands the resulting command to the
// dispatcher. A closed update stream ends the worker cleanly.
type SourceWorker struct {
	updates    <-chan domain.IncomingMessage
	router     contract.CommandRouter
	dispatcher contract.Dispatcher
	log        *slog.Logger
}

func NewSourceWorker(updates <-chan domain.IncomingMessage, router contract.CommandRouter,
	dispatcher contract.Dispatcher, log *slog.Logger) *SourceWorker {
	return &SourceWorker{
		updates:    updates,
		router:     router,
		dispatcher: dispatcher,
		log:        log,
	}
}

func (w *SourceWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping source worker")
			return ctx.Err()
		case msg, ok := <-w.updates:
			if !ok {
				w.log.Debug("Update stream closed")
				return nil
			}

			cmd, ok := w.router.Route(msg)
			if !ok {
				w.log.Debug("Ignoring message", "chat", int64(msg.Chat), "message", msg.ID)
				continue
			}
			w.dispatcher.Dispatch(ctx, cmd)
		}
	}
}
