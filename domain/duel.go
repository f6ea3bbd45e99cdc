package domain

// GameSession is the duel state for one chat: idle until started,
// collecting judged turns while active, reset once enough distinct
// players took part.
//
// Scores are the backend's free-text verdicts on purpose. The judging
// is qualitative; nothing downstream parses a number out of them.
type GameSession struct {
	active bool
	order  []UserID // registration order, drives leaderboard rendering
	names  map[UserID]string
	scores map[UserID]string
}

// Standing is one leaderboard row.
type Standing struct {
	Name   string
	Score  string
	Scored bool
}

func NewGameSession() *GameSession {
	return &GameSession{
		names:  make(map[UserID]string),
		scores: make(map[UserID]string),
	}
}

// Active reports whether the duel is accepting turns.
func (s *GameSession) Active() bool {
	return s.active
}

// Start activates the session and registers the initiator as the first
// player. Returns false without touching any state when a duel is
// already running; the second /duel is rejected, not merged.
func (s *GameSession) Start(id UserID, name string) bool {
	if s.active {
		return false
	}
	s.active = true
	s.register(id, name)
	return true
}

// RecordScore registers the player if needed and stores the judged
// verdict as their latest score. Callers must only invoke this after a
// successful generation, so a failed backend call never leaves a
// half-registered player behind.
func (s *GameSession) RecordScore(id UserID, name, verdict string) {
	s.register(id, name)
	s.scores[id] = verdict
}

func (s *GameSession) register(id UserID, name string) {
	if _, ok := s.names[id]; ok {
		return
	}
	s.names[id] = name
	s.order = append(s.order, id)
}

// PlayerCount is the number of distinct registered players. The duel
// termination threshold keys off this, never off the turn count: a
// player submitting many turns counts once.
func (s *GameSession) PlayerCount() int {
	return len(s.order)
}

// Standings lists every registered player in registration order with
// their latest verdict, if any.
func (s *GameSession) Standings() []Standing {
	out := make([]Standing, 0, len(s.order))
	for _, id := range s.order {
		verdict, scored := s.scores[id]
		out = append(out, Standing{
			Name:   s.names[id],
			Score:  verdict,
			Scored: scored,
		})
	}
	return out
}

// Reset returns the session to a fresh inactive state.
func (s *GameSession) Reset() {
	s.active = false
	s.order = nil
	s.names = make(map[UserID]string)
	s.scores = make(map[UserID]string)
}

// ChatSession is the per-chat mutable state handed to that chat's
// worker. All access is serialized by the worker's command loop.
type ChatSession struct {
	ID   ChatID
	Duel *GameSession
}

func NewChatSession(id ChatID) *ChatSession {
	return &ChatSession{ID: id, Duel: NewGameSession()}
}
