// Package chunk splits long outbound text into transport-size-safe
// segments along paragraph boundaries.
package chunk

import (
	"regexp"
	"strings"
)

// Separator is reinserted between paragraphs packed into one segment.
const Separator = "\n\n---\n\n"

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Pack greedily fills segments with consecutive paragraphs, flushing
// the current segment whenever adding the next paragraph plus the
// separator would exceed maxLen. Paragraph order is preserved, so
// rejoining the segments reproduces the original sequence.
//
// A single paragraph longer than maxLen is emitted as its own
// oversized segment; this algorithm never splits inside a paragraph.
func Pack(paragraphs []string, maxLen int) []string {
	var segments []string
	var current strings.Builder

	for _, p := range paragraphs {
		if current.Len() == 0 {
			current.WriteString(p)
			continue
		}
		if current.Len()+len(Separator)+len(p) > maxLen {
			segments = append(segments, current.String())
			current.Reset()
			current.WriteString(p)
			continue
		}
		current.WriteString(Separator)
		current.WriteString(p)
	}

	if current.Len() > 0 {
		segments = append(segments, current.String())
	}
	return segments
}

// Split applies Pack to free-form text. Text that already fits is
// returned as a single segment, untouched; longer text is cut on its
// blank-line boundaries first.
func Split(text string, maxLen int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= maxLen {
		return []string{text}
	}

	parts := paragraphBreak.Split(text, -1)
	var paragraphs []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return Pack(paragraphs, maxLen)
}
