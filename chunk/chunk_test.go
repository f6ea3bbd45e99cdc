package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_fits_everything_in_one_segment_when_short(t *testing.T) {
	got := Pack([]string{"alpha", "beta"}, 100)

	require.Len(t, got, 1)
	assert.Equal(t, "alpha"+Separator+"beta", got[0])
}

func TestPack_flushes_before_exceeding_the_limit(t *testing.T) {
	a := strings.Repeat("a", 40)
	b := strings.Repeat("b", 40)
	c := strings.Repeat("c", 40)

	got := Pack([]string{a, b, c}, 100)

	require.Len(t, got, 2)
	assert.Equal(t, a+Separator+b, got[0])
	assert.Equal(t, c, got[1])
	for _, seg := range got {
		assert.LessOrEqual(t, len(seg), 100)
	}
}

func TestPack_emits_an_oversized_paragraph_whole(t *testing.T) {
	huge := strings.Repeat("x", 250)

	got := Pack([]string{"before", huge, "after"}, 100)

	require.Len(t, got, 3)
	assert.Equal(t, "before", got[0])
	assert.Equal(t, huge, got[1], "a paragraph is never cut mid-text")
	assert.Equal(t, "after", got[2])
}

func TestPack_rejoining_segments_reproduces_the_paragraph_sequence(t *testing.T) {
	paragraphs := []string{"one", "two", "three", "four", "five"}

	got := Pack(paragraphs, 15)

	rejoined := strings.Join(got, Separator)
	assert.Equal(t, strings.Join(paragraphs, Separator), rejoined)
}

func TestSplit_returns_nil_for_blank_text(t *testing.T) {
	assert.Nil(t, Split("", 100))
	assert.Nil(t, Split("   \n\t", 100))
}

func TestSplit_returns_fitting_text_untouched(t *testing.T) {
	text := "short\n\nanswer"

	got := Split(text, 100)

	require.Len(t, got, 1)
	assert.Equal(t, text, got[0], "text under the limit keeps its original formatting")
}

func TestSplit_cuts_long_text_on_blank_lines(t *testing.T) {
	first := strings.Repeat("a", 60)
	second := strings.Repeat("b", 60)
	text := first + "\n\n" + second

	got := Split(text, 100)

	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, second, got[1])
}
