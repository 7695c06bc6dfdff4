// Package suggest serves prefix completions from a patricia trie,
// ordered by corpus frequency. It shares the dictionary loading path
// with the correction engine.
package suggest

import (
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Completion is one ranked prefix match.
type Completion struct {
	Word  string
	Count uint64
}

// Completer answers prefix queries over an in-memory vocabulary.
// Populate it fully before serving concurrent reads; Complete does
// not lock.
type Completer struct {
	trie      *patricia.Trie
	wordCount int
	maxCount  uint64
}

func NewCompleter() *Completer {
	return &Completer{trie: patricia.NewTrie()}
}

// AddEntry inserts a word with its frequency. Re-adding a word
// replaces the stored frequency. The signature matches the dictionary
// loader's sink so both engines can share one load pass.
func (c *Completer) AddEntry(word string, count uint64) bool {
	word = strings.ToLower(word)
	if !c.trie.Insert(patricia.Prefix(word), count) {
		c.trie.Set(patricia.Prefix(word), count)
	} else {
		c.wordCount++
	}
	if count > c.maxCount {
		c.maxCount = count
	}
	return true
}

// WordCount reports how many distinct words are indexed.
func (c *Completer) WordCount() int { return c.wordCount }

// MaxCount reports the highest frequency seen so far.
func (c *Completer) MaxCount() uint64 { return c.maxCount }

// Complete returns up to limit words starting with prefix, most
// frequent first. The prefix itself is never returned, and the
// caller's capitalization pattern is re-applied to every result.
func (c *Completer) Complete(prefix string, limit int) []Completion {
	if prefix == "" || limit == 0 {
		return nil
	}
	lowerPrefix := strings.ToLower(prefix)
	capitals := capitalPositions(prefix)

	var results []Completion
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}
		count, ok := item.(uint64)
		if !ok {
			log.Errorf("Unknown trie item type %T for word %s", item, p)
			return nil
		}
		results = append(results, Completion{Word: applyCapitals(word, capitals), Count: count})
		return nil
	})
	if err != nil {
		log.Errorf("Failed to visit trie subtree for %q: %v", lowerPrefix, err)
		return nil
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Word < results[j].Word
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func capitalPositions(prefix string) []bool {
	runes := []rune(prefix)
	capitals := make([]bool, len(runes))
	for i, r := range runes {
		capitals[i] = unicode.IsUpper(r)
	}
	return capitals
}

func applyCapitals(word string, capitals []bool) string {
	runes := []rune(word)
	changed := false
	for i := 0; i < len(runes) && i < len(capitals); i++ {
		if capitals[i] {
			runes[i] = unicode.ToUpper(runes[i])
			changed = true
		}
	}
	if !changed {
		return word
	}
	return string(runes)
}
