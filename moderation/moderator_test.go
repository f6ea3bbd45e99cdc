package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModerator(t *testing.T, words ...string) *Moderator {
	t.Helper()
	m, err := NewModerator(words, '*')
	require.NoError(t, err)
	return m
}

func TestCensor(t *testing.T) {
	m := newTestModerator(t, "badger", "weasel")

	tests := []struct {
		name      string
		input     string
		want      string
		wantFound []string
	}{
		{
			name:      "plain word is starred out",
			input:     "The badger is here",
			want:      "The ****** is here",
			wantFound: []string{"badger"},
		},
		{
			name:      "uppercase still matches",
			input:     "BADGER crossing",
			want:      "****** crossing",
			wantFound: []string{"badger"},
		},
		{
			name:      "leet spelling is folded back and starred whole",
			input:     "Look at B.4.d.g.€r !",
			want:      "Look at ********** !",
			wantFound: []string{"badger"},
		},
		{
			name:      "spacing inside the word does not hide it",
			input:     "bad ger",
			want:      "*******",
			wantFound: []string{"badger"},
		},
		{
			name:      "multiple dictionary words in one text",
			input:     "badger meets weasel",
			want:      "****** meets ******",
			wantFound: []string{"badger", "weasel"},
		},
		{
			name:      "clean text passes through untouched",
			input:     "nothing to see here",
			want:      "nothing to see here",
			wantFound: nil,
		},
		{
			name:      "empty text",
			input:     "",
			want:      "",
			wantFound: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := m.Censor(tt.input)
			assert.Equal(t, tt.want, got)
			assert.ElementsMatch(t, tt.wantFound, found)
		})
	}
}
