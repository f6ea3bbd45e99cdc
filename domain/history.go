package domain

import (
	"strings"
	"sync"

	"github.com/samber/lo"
)

// History is the bounded FIFO of one chat's recent utterances.
// Oldest entries are evicted first once the limit is exceeded.
type History struct {
	limit      int
	utterances []Utterance
}

// NewHistory creates an empty history holding at most limit utterances.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Record appends an utterance, evicting the oldest one when full.
func (h *History) Record(u Utterance) {
	h.utterances = append(h.utterances, u)
	if len(h.utterances) > h.limit {
		h.utterances = h.utterances[1:]
	}
}

// Utterances returns the recorded utterances in chronological order.
// The result is a copy; callers cannot mutate the history through it.
func (h *History) Utterances() []Utterance {
	out := make([]Utterance, len(h.utterances))
	copy(out, h.utterances)
	return out
}

// Transcript joins the history as "speaker: text" lines for prompts.
func (h *History) Transcript() string {
	lines := lo.Map(h.utterances, func(u Utterance, _ int) string {
		return u.Line()
	})
	return strings.Join(lines, "\n")
}

// Empty reports whether nothing has been recorded yet.
func (h *History) Empty() bool {
	return len(h.utterances) == 0
}

// HistoryStore keeps one History per chat, created lazily on first
// write. Absent chats behave as empty history, never as an error.
//
// The store is owned by the orchestrator and injected where needed, so
// tests run against isolated instances instead of process globals.
type HistoryStore struct {
	mu    sync.RWMutex
	limit int
	chats map[ChatID]*History
}

func NewHistoryStore(limit int) *HistoryStore {
	return &HistoryStore{
		limit: limit,
		chats: make(map[ChatID]*History),
	}
}

// Record appends to the chat's history, creating it on first use.
func (s *HistoryStore) Record(chat ChatID, u Utterance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.chats[chat]
	if !ok {
		h = NewHistory(s.limit)
		s.chats[chat] = h
	}
	h.Record(u)
}

// Get returns the chat's utterances in chronological order, empty for
// chats that were never seen.
func (s *HistoryStore) Get(chat ChatID) []Utterance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.chats[chat]
	if !ok {
		return nil
	}
	return h.Utterances()
}

// Transcript joins the chat's history for prompt assembly.
func (s *HistoryStore) Transcript(chat ChatID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.chats[chat]
	if !ok {
		return ""
	}
	return h.Transcript()
}
