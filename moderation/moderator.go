// Package moderation masks blacklisted words in outbound text. The
// persona is deliberately rude, so the filter is opt-in: operators of
// public rooms configure a dictionary, everyone else runs without it.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// mapping tracks, for every rune of the normalized text, the index of
// the rune it came from in the original. Needed to star out the right
// span even when punctuation or leet spelling was stripped in between.
type mapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized
// dictionary words.
func NewModerator(words []string, replacement rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		if p := normalize(w).normalized; len(p) > 0 {
			patterns = append(patterns, p)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every dictionary match with the replacement rune,
// preserving spacing and untouched characters. It also returns the
// matched patterns, normalized, for logging.
func (m *Moderator) Censor(text string) (string, []string) {
	norm := normalize(text)
	if len(norm.normalized) == 0 {
		return text, nil
	}

	spans := m.matcher.MultiPatternSearch(norm.normalized, false)
	if len(spans) == 0 {
		return text, nil
	}

	runes := []rune(text)
	var found []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(norm.origIdx) {
			continue
		}
		found = append(found, string(span.Word))

		// Star out the original span, leet noise included.
		for i := norm.origIdx[start]; i <= norm.origIdx[end-1]; i++ {
			runes[i] = m.replacement
		}
	}
	return string(runes), found
}

// normalize lowercases, folds common leet substitutions back to
// letters, and drops punctuation, spacing, and symbols, keeping the
// original index of every surviving rune.
func normalize(input string) mapping {
	orig := []rune(input)
	out := mapping{
		normalized: make([]rune, 0, len(orig)),
		origIdx:    make([]int, 0, len(orig)),
	}
	for i, r := range orig {
		folded := foldLeet(r)
		if unicode.IsPunct(folded) || unicode.IsSpace(folded) || unicode.IsSymbol(folded) {
			continue
		}
		out.normalized = append(out.normalized, unicode.ToLower(folded))
		out.origIdx = append(out.origIdx, i)
	}
	return out
}

func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
