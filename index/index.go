// Package index provides the ranked manifesto lookup backing /find.
// The exact substring /search lives on the corpus itself; this index
// answers fuzzier queries with relevance ordering.
package index

import (
	"context"
	"fmt"
	"strconv"

	"github.com/blugelabs/bluge"

	"manifesto-bot/domain/corpus"
)

// ParagraphIndex is an in-memory full-text index over the manifesto
// paragraphs. The corpus never changes after load, so the index is
// built once and holds a single long-lived reader.
type ParagraphIndex struct {
	writer     *bluge.Writer
	reader     *bluge.Reader
	paragraphs []string
}

// New indexes every paragraph of the manifesto. Document ids are the
// paragraph positions, so hits resolve back to the original text.
func New(m *corpus.Manifesto) (*ParagraphIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening in-memory index: %w", err)
	}

	batch := bluge.NewBatch()
	for i, p := range m.Paragraphs() {
		doc := bluge.NewDocument(strconv.Itoa(i))
		doc.AddField(bluge.NewTextField("text", p))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("indexing manifesto: %w", err)
	}

	reader, err := writer.Reader()
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("opening index reader: %w", err)
	}

	return &ParagraphIndex{
		writer:     writer,
		reader:     reader,
		paragraphs: m.Paragraphs(),
	}, nil
}

// Find returns up to limit paragraphs matching the terms, best first.
// No match is an empty result, not an error.
func (x *ParagraphIndex) Find(ctx context.Context, terms string, limit int) ([]string, error) {
	query := bluge.NewMatchQuery(terms).SetField("text")
	request := bluge.NewTopNSearch(limit, query)

	iterator, err := x.reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	var results []string
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("iterating matches: %w", err)
		}
		if match == nil {
			return results, nil
		}

		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field != "_id" {
				return true
			}
			if i, convErr := strconv.Atoi(string(value)); convErr == nil && i < len(x.paragraphs) {
				results = append(results, x.paragraphs[i])
			}
			return false
		})
		if err != nil {
			return nil, fmt.Errorf("resolving match: %w", err)
		}
	}
}

// Close releases the reader and writer.
func (x *ParagraphIndex) Close() error {
	if err := x.reader.Close(); err != nil {
		_ = x.writer.Close()
		return err
	}
	return x.writer.Close()
}
