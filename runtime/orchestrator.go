package runtime

import (
	"context"
	"log/slog"
	"time"

	"manifesto-bot/contract"
	"manifesto-bot/domain"
	"manifesto-bot/runtime/workers"
)

// MessageSource is the receiving half of the transport: a stream of
// inbound messages that closes when ctx is canceled.
type MessageSource interface {
	Updates(ctx context.Context) <-chan domain.IncomingMessage
}

// Orchestrator wires the transport stream to per-chat session workers.
// It owns the session registry and the history store instead of
// keeping process-global maps, so tests run against isolated
// instances.
//
// One worker per chat is the concurrency model: commands for a chat
// are handled strictly one at a time, while different chats progress
// independently.
type Orchestrator struct {
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   *SessionRegistry
	source     MessageSource
	router     contract.CommandRouter
	deps       workers.SessionDeps
	limits     workers.Limits
	heartbeat  time.Duration
	cancel     context.CancelFunc
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, registry *SessionRegistry,
	source MessageSource, router contract.CommandRouter,
	deps workers.SessionDeps, limits workers.Limits, heartbeat time.Duration) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		source:     source,
		router:     router,
		deps:       deps,
		limits:     limits,
		heartbeat:  heartbeat,
	}
}

// Dispatch routes a command to the session owning its chat, creating
// the session and starting its worker on first sight. A full command
// buffer drops the command rather than blocking the source stream.
func (o *Orchestrator) Dispatch(ctx context.Context, cmd domain.Command) {
	session, commands, created := o.registry.GetOrCreate(cmd.Chat())
	if created {
		o.supervisor.Start(ctx, workers.NewSessionWorker(session, commands, o.deps, o.limits))
		o.log.Info("Session created", "chat", int64(cmd.Chat()))
	}

	select {
	case commands <- cmd:
	default:
		o.log.Warn("Session command buffer full, dropping command", "chat", int64(cmd.Chat()))
	}
}

// Start builds the permanent workers and runs the supervisor. Blocks
// until shutdown; session workers are started lazily by Dispatch as
// chats appear.
func (o *Orchestrator) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	updates := o.source.Updates(runCtx)
	o.supervisor.Add(
		workers.NewSourceWorker(updates, o.router, o, o.log),
		workers.NewHeartbeatWorker(o.log, o.heartbeat, o.registry),
	)

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(runCtx)
	return nil
}

// Stop initiates a graceful shutdown: the run context is canceled,
// workers drain, and Start returns.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	if o.cancel != nil {
		o.cancel()
	}
}
