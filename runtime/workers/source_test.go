package workers

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
)

func TestSourceWorker_routes_and_dispatches_every_update(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := mocks.NewMockCommandRouter(ctrl)
	dispatcher := mocks.NewMockDispatcher(ctrl)

	msg := domain.IncomingMessage{Chat: domain.ChatID(7), Text: "hello"}
	cmd := domain.PostMessageCommand{Message: msg}
	router.EXPECT().Route(msg).Return(cmd, true)
	dispatcher.EXPECT().Dispatch(gomock.Any(), cmd)

	updates := make(chan domain.IncomingMessage, 1)
	updates <- msg
	close(updates)

	w := NewSourceWorker(updates, router, dispatcher, slog.New(slog.DiscardHandler))
	require.NoError(t, w.Run(context.Background()))
}

func TestSourceWorker_skips_unroutable_messages(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := mocks.NewMockCommandRouter(ctrl)
	dispatcher := mocks.NewMockDispatcher(ctrl)

	msg := domain.IncomingMessage{Chat: domain.ChatID(7), Text: "/foreign"}
	router.EXPECT().Route(msg).Return(nil, false)
	// No Dispatch expectation: dropped messages never reach it.

	updates := make(chan domain.IncomingMessage, 1)
	updates <- msg
	close(updates)

	w := NewSourceWorker(updates, router, dispatcher, slog.New(slog.DiscardHandler))
	require.NoError(t, w.Run(context.Background()))
}

func TestSourceWorker_stops_on_context_cancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewSourceWorker(make(chan domain.IncomingMessage),
		mocks.NewMockCommandRouter(ctrl), mocks.NewMockDispatcher(ctrl), slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
