package runtime

import (
	"sync"

	"manifesto-bot/domain"
)

type chatEntry struct {
	session  *domain.ChatSession
	commands chan domain.Command
}

// SessionRegistry owns the per-chat sessions and their command
// channels. Sessions are created lazily on first dispatch and live for
// the process lifetime; there is no eviction and session state does
// not survive a restart.
type SessionRegistry struct {
	mu      sync.RWMutex
	buffer  int
	entries map[domain.ChatID]*chatEntry
}

func NewSessionRegistry(buffer int) *SessionRegistry {
	return &SessionRegistry{
		buffer:  buffer,
		entries: make(map[domain.ChatID]*chatEntry),
	}
}

// GetOrCreate returns the chat's session and command channel, creating
// both on first sight. The created flag tells the caller to start a
// worker for the new session.
func (r *SessionRegistry) GetOrCreate(chat domain.ChatID) (*domain.ChatSession, chan domain.Command, bool) {
	r.mu.RLock()
	entry, ok := r.entries[chat]
	r.mu.RUnlock()
	if ok {
		return entry.session, entry.commands, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check: another dispatch may have won the race.
	if entry, ok := r.entries[chat]; ok {
		return entry.session, entry.commands, false
	}
	entry = &chatEntry{
		session:  domain.NewChatSession(chat),
		commands: make(chan domain.Command, r.buffer),
	}
	r.entries[chat] = entry
	return entry.session, entry.commands, true
}

// Count is the number of chats seen so far.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
