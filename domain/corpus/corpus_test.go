package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_splits_on_blank_lines(t *testing.T) {
	m := New("first paragraph\nstill the first\n\nsecond paragraph\n\n\nthird")

	require.Equal(t, 3, m.Len())
	assert.Equal(t, "first paragraph\nstill the first", m.Paragraphs()[0])
	assert.Equal(t, "second paragraph", m.Paragraphs()[1])
	assert.Equal(t, "third", m.Paragraphs()[2])
}

func TestNew_drops_whitespace_only_fragments(t *testing.T) {
	m := New("alpha\n\n   \n\nomega\n\n")

	require.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"alpha", "omega"}, m.Paragraphs())
}

func TestNew_keeps_the_raw_text_verbatim(t *testing.T) {
	raw := "  alpha\n\nomega  "
	assert.Equal(t, raw, New(raw).Raw())
}

func TestSearch_is_case_insensitive_substring_match(t *testing.T) {
	m := New("the abc of nonsense\n\nnothing here\n\nX marks the spot")

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{
			name:    "lowercase keyword matches uppercase text",
			keyword: "x",
			want:    []string{"X marks the spot"},
		},
		{
			name:    "uppercase keyword matches lowercase text",
			keyword: "ABC",
			want:    []string{"the abc of nonsense"},
		},
		{
			name:    "substring inside a word counts",
			keyword: "thing",
			want:    []string{"nothing here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Search(tt.keyword))
		})
	}

	assert.Empty(t, m.Search("missing"), "no hit yields an empty result, not an error")
}

func TestSearch_preserves_paragraph_order(t *testing.T) {
	m := New("alpha one\n\nbeta\n\nalpha two")

	assert.Equal(t, []string{"alpha one", "alpha two"}, m.Search("alpha"))
}
