package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"manifesto-bot/domain"
	"manifesto-bot/mocks"
	"manifesto-bot/runtime/workers"
)

func newTestOrchestrator(supervisor *mocks.MockISupervisor, buffer int) (*Orchestrator, *SessionRegistry) {
	registry := NewSessionRegistry(buffer)
	deps := workers.SessionDeps{Log: slog.New(slog.DiscardHandler)}
	limits := workers.Limits{MaxMessageLen: 4096, PlayerLimit: 5, FindLimit: 5, GenerateTimeout: time.Second}
	o := NewOrchestrator(slog.New(slog.DiscardHandler), supervisor, registry, nil, nil, deps, limits, time.Minute)
	return o, registry
}

func TestDispatch_starts_one_worker_per_chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	supervisor.EXPECT().Start(gomock.Any(), gomock.Any()).Times(2)

	o, registry := newTestOrchestrator(supervisor, 8)
	ctx := context.Background()

	post := func(chat int64) domain.Command {
		return domain.PostMessageCommand{Message: domain.IncomingMessage{Chat: domain.ChatID(chat), Text: "hi"}}
	}

	o.Dispatch(ctx, post(1))
	o.Dispatch(ctx, post(1))
	o.Dispatch(ctx, post(2))

	assert.Equal(t, 2, registry.Count())
}

func TestDispatch_enqueues_the_command_for_the_session(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	supervisor.EXPECT().Start(gomock.Any(), gomock.Any())

	o, registry := newTestOrchestrator(supervisor, 8)
	cmd := domain.StartDuelCommand{Message: domain.IncomingMessage{Chat: domain.ChatID(1), Text: "/duel"}}

	o.Dispatch(context.Background(), cmd)

	_, commands, created := registry.GetOrCreate(domain.ChatID(1))
	require.False(t, created)
	select {
	case got := <-commands:
		assert.Equal(t, cmd, got)
	default:
		t.Fatal("command was not enqueued")
	}
}

type stubSource struct {
	updates chan domain.IncomingMessage
}

func (s stubSource) Updates(context.Context) <-chan domain.IncomingMessage {
	return s.updates
}

func TestStop_drains_the_workers_and_unblocks_Start(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	registry := NewSessionRegistry(8)
	o := NewOrchestrator(logger, workers.NewSupervisor(logger), registry,
		stubSource{updates: make(chan domain.IncomingMessage)}, nil,
		workers.SessionDeps{Log: logger},
		workers.Limits{MaxMessageLen: 4096, PlayerLimit: 5, FindLimit: 5, GenerateTimeout: time.Second},
		time.Minute)

	done := make(chan struct{})
	go func() {
		require.NoError(t, o.Start(context.Background()))
		close(done)
	}()

	// Give Start a moment to register its workers.
	time.Sleep(20 * time.Millisecond)
	o.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}

func TestDispatch_drops_commands_when_the_buffer_is_full(t *testing.T) {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	supervisor.EXPECT().Start(gomock.Any(), gomock.Any())

	o, registry := newTestOrchestrator(supervisor, 1)
	ctx := context.Background()
	cmd := domain.PostMessageCommand{Message: domain.IncomingMessage{Chat: domain.ChatID(1), Text: "hi"}}

	o.Dispatch(ctx, cmd)
	o.Dispatch(ctx, cmd) // buffer of one is full, must not block

	_, commands, _ := registry.GetOrCreate(domain.ChatID(1))
	assert.Len(t, commands, 1)
}
