// Package search decouples raw /find input from the index engine:
// users type command-line style flags, the engine wants terms and a
// result budget.
package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters of a ranked search.
type Query struct {
	RawInput string // the original message text
	Terms    string // what actually goes to the index
	Limit    int    // number of results to return
}

// Parse extracts search terms and flags from a raw command string.
// Example: /find invoice season --limit 3
// The leading command token and anything starting with "/" is ignored;
// unknown flags are skipped together with their value.
func Parse(input string, defaultLimit int) *Query {
	query := &Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	var terms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") {
			// A trailing flag without a value is dropped, not searched.
			if i+1 >= len(parts) {
				continue
			}
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]
			if key == "limit" {
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // the value was consumed
			continue
		}

		if !strings.HasPrefix(part, "/") {
			terms = append(terms, part)
		}
	}

	query.Terms = strings.Join(terms, " ")
	return query
}
