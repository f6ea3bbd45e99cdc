package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSession_start_registers_the_initiator(t *testing.T) {
	s := NewGameSession()

	require.True(t, s.Start(UserID(1), "alice"))

	assert.True(t, s.Active())
	assert.Equal(t, 1, s.PlayerCount())

	standings := s.Standings()
	require.Len(t, standings, 1)
	assert.Equal(t, "alice", standings[0].Name)
	assert.False(t, standings[0].Scored)
}

func TestGameSession_second_start_is_rejected_without_side_effects(t *testing.T) {
	s := NewGameSession()
	require.True(t, s.Start(UserID(1), "alice"))

	assert.False(t, s.Start(UserID(2), "bob"))

	assert.True(t, s.Active())
	assert.Equal(t, 1, s.PlayerCount(), "the rejected starter must not be registered")
}

func TestGameSession_player_count_is_distinct_players_not_turns(t *testing.T) {
	s := NewGameSession()
	s.Start(UserID(1), "alice")

	for i := 0; i < 10; i++ {
		s.RecordScore(UserID(1), "alice", fmt.Sprintf("verdict %d", i))
	}

	assert.Equal(t, 1, s.PlayerCount())

	standings := s.Standings()
	require.Len(t, standings, 1)
	assert.Equal(t, "verdict 9", standings[0].Score, "a repeat turn replaces the player's score")
}

func TestGameSession_standings_follow_registration_order(t *testing.T) {
	s := NewGameSession()
	s.Start(UserID(3), "carol")
	s.RecordScore(UserID(1), "alice", "a solid 7")
	s.RecordScore(UserID(2), "bob", "barely a 3")

	standings := s.Standings()
	require.Len(t, standings, 3)
	assert.Equal(t, "carol", standings[0].Name)
	assert.Equal(t, "alice", standings[1].Name)
	assert.Equal(t, "bob", standings[2].Name)

	assert.False(t, standings[0].Scored, "the initiator has not submitted a turn yet")
	assert.True(t, standings[1].Scored)
	assert.True(t, standings[2].Scored)
}

func TestGameSession_reset_returns_to_a_fresh_state(t *testing.T) {
	s := NewGameSession()
	s.Start(UserID(1), "alice")
	s.RecordScore(UserID(2), "bob", "an easy 9")

	s.Reset()

	assert.False(t, s.Active())
	assert.Equal(t, 0, s.PlayerCount())
	assert.Empty(t, s.Standings())
	assert.True(t, s.Start(UserID(2), "bob"), "a new duel can start after reset")
}
