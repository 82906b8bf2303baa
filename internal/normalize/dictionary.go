package normalize

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	sastrawi "github.com/RadhiFadlillah/go-sastrawi"
)

// extraRootWords are administrative roots missing from the Sastrawi word list.
var extraRootWords = []string{"beritahu"}

// Dictionary is a set of known root words.
// It is filled at construction time and only read afterwards.
type Dictionary struct {
	words sastrawi.Dictionary
}

// NewDictionary creates a dictionary containing the given words (lowercased, trimmed).
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: sastrawi.NewDictionary()}
	d.Add(words...)
	return d
}

// DefaultDictionary returns the Sastrawi root word list.
func DefaultDictionary() *Dictionary {
	d := &Dictionary{words: sastrawi.DefaultDictionary()}
	d.Add(extraRootWords...)
	return d
}

// Add inserts words into the dictionary. Blank entries are ignored.
func (d *Dictionary) Add(words ...string) {
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		d.words.Add(word)
	}
}

// Load reads one word per line. Lines starting with '#' are comments.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}
	return nil
}

// LoadFile adds the words of a dictionary file.
func (d *Dictionary) LoadFile(path string) error {
	file, err := os.Open(path) // #nosec G304 -- path comes from application config
	if err != nil {
		return fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return d.Load(file)
}

// Contains reports whether word is a known root.
func (d *Dictionary) Contains(word string) bool {
	return d.words.Contains(word)
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return d.words.Count()
}
