// Package corpus holds the manifesto: the static reference text the
// assistant is grounded in, segmented into paragraphs at load time and
// immutable for the process lifetime.
package corpus

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Paragraphs are split on blank-line boundaries, matching how the text
// was authored and how search results are paginated.
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

type Manifesto struct {
	raw        string
	paragraphs []string
}

// New segments the raw text into its ordered paragraph sequence.
// Whitespace-only fragments are dropped; the raw text is kept verbatim
// for prompt assembly.
func New(raw string) *Manifesto {
	parts := paragraphBreak.Split(raw, -1)
	paragraphs := lo.FilterMap(parts, func(p string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(p)
		return trimmed, trimmed != ""
	})
	return &Manifesto{raw: raw, paragraphs: paragraphs}
}

// Raw returns the full manifesto text as loaded.
func (m *Manifesto) Raw() string {
	return m.raw
}

// Paragraphs returns the ordered paragraph sequence.
func (m *Manifesto) Paragraphs() []string {
	return m.paragraphs
}

// Len is the number of paragraphs.
func (m *Manifesto) Len() int {
	return len(m.paragraphs)
}

// Search returns the paragraphs whose lowercase form contains the
// lowercase keyword, preserving original order. No ranking: this is
// the exact-match lookup, the ranked variant lives in the index
// package. An empty result is a valid outcome, not an error.
func (m *Manifesto) Search(keyword string) []string {
	needle := strings.ToLower(keyword)
	return lo.Filter(m.paragraphs, func(p string, _ int) bool {
		return strings.Contains(strings.ToLower(p), needle)
	})
}
