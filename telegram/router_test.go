package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manifesto-bot/domain"
)

func TestRoute(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name string
		text string
		want any
	}{
		{
			name: "duel command",
			text: "/duel",
			want: domain.StartDuelCommand{},
		},
		{
			name: "duel localized spelling",
			text: "/دوئل",
			want: domain.StartDuelCommand{},
		},
		{
			name: "duel with botname suffix",
			text: "/duel@manifesto_bot",
			want: domain.StartDuelCommand{},
		},
		{
			name: "summarize command",
			text: "/summarize",
			want: domain.SummarizeCommand{},
		},
		{
			name: "summary short form",
			text: "/summary",
			want: domain.SummarizeCommand{},
		},
		{
			name: "summary localized spelling",
			text: "/خلاصه",
			want: domain.SummarizeCommand{},
		},
		{
			name: "search command",
			text: "/search liberty",
			want: domain.SearchCommand{},
		},
		{
			name: "search localized spelling",
			text: "/بگرد آزادی",
			want: domain.SearchCommand{},
		},
		{
			name: "find command",
			text: "/find liberty --limit 2",
			want: domain.FindCommand{},
		},
		{
			name: "plain text",
			text: "good morning everyone",
			want: domain.PostMessageCommand{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := router.Route(domain.IncomingMessage{Chat: domain.ChatID(7), Text: tt.text})
			require.True(t, ok)
			assert.IsType(t, tt.want, cmd)
			assert.Equal(t, domain.ChatID(7), cmd.Chat())
		})
	}
}

func TestRoute_extracts_the_search_keyword(t *testing.T) {
	router := NewRouter()

	cmd, ok := router.Route(domain.IncomingMessage{Text: "/search  creative nonsense "})
	require.True(t, ok)

	search, isSearch := cmd.(domain.SearchCommand)
	require.True(t, isSearch)
	assert.Equal(t, "creative nonsense", search.Keyword)
}

func TestRoute_keeps_the_raw_find_query_for_flag_parsing(t *testing.T) {
	router := NewRouter()

	cmd, ok := router.Route(domain.IncomingMessage{Text: "/find invoice --limit 3"})
	require.True(t, ok)

	find, isFind := cmd.(domain.FindCommand)
	require.True(t, isFind)
	assert.Equal(t, "/find invoice --limit 3", find.RawQuery)
}

func TestRoute_drops_unknown_and_bare_commands(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name string
		text string
	}{
		{name: "foreign command", text: "/start"},
		{name: "typo", text: "/duell now"},
		{name: "search without a keyword", text: "/search"},
		{name: "find without terms", text: "/find"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := router.Route(domain.IncomingMessage{Text: tt.text})
			assert.False(t, ok)
			assert.Nil(t, cmd)
		})
	}
}
