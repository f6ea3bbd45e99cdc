// Package runtime handles session wiring, command propagation, and
// supervision. It orchestrates the system without containing domain
// rules.
package runtime

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"manifesto-bot/domain/corpus"
	"manifesto-bot/errors"
)

// LoadManifesto reads the knowledge corpus and segments it into
// paragraphs. A missing or empty file is a fatal startup precondition,
// reported to the caller, never retried.
func LoadManifesto(path string) (*corpus.Manifesto, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifesto %q: %w", path, err)
	}

	m := corpus.New(string(raw))
	if m.Len() == 0 {
		return nil, fmt.Errorf("%q: %w", path, errors.ErrEmptyManifesto)
	}
	return m, nil
}

// DictionaryData carries loaded censored words plus metadata for
// logging.
type DictionaryData struct {
	Words     []string
	Languages []string
}

// DictionaryLoader reads censored-word dictionaries, one .txt file per
// language, from any filesystem.
type DictionaryLoader struct {
	fsys fs.FS
}

func NewDictionaryLoader(fsys fs.FS) *DictionaryLoader {
	return &DictionaryLoader{fsys: fsys}
}

// LoadAll parses every .txt file under path into a unique word list.
func (l *DictionaryLoader) LoadAll(path string) (*DictionaryData, error) {
	entries, err := fs.ReadDir(l.fsys, path)
	if err != nil {
		return nil, err
	}

	var languages []string
	unique := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			return nil, errors.ErrOnlyPlainFiles
		}
		if !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fsys, path+"/"+entry.Name())
		if err != nil {
			return nil, err
		}

		// A scanner handles both \n and \r\n line endings.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				unique[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(unique) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	return &DictionaryData{Words: words, Languages: languages}, nil
}
