/*
Package spell is the correction core: a symmetric-delete index over a
term/frequency dictionary with bounded edit-distance verification.

Every term added to the dictionary precomputes the set of strings
reachable by deleting up to the configured number of characters from
its prefix. A lookup generates the same deletes for the query and
probes the shared index, so candidate retrieval is a handful of map
hits instead of a dictionary scan; true Damerau-Levenshtein distance
is then verified per candidate with an early-abort band.

A Corrector follows a single-writer-then-many-readers discipline:
AddEntry must not run concurrently with anything else, but once the
dictionary is loaded any number of goroutines may call Lookup. The
type itself carries no locks.
*/
package spell

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrDistanceTooLarge is returned by Lookup when the requested edit
// distance exceeds the maximum the index was built for.
var ErrDistanceTooLarge = errors.New("distance too large")

// Corrector holds the term store and the delete-variant index. Both
// grow monotonically: terms accumulate counts but are never removed.
type Corrector struct {
	maxDictionaryEditDistance int
	prefixLength              int
	countThreshold            uint64
	ranker                    Ranker

	words          map[string]uint64
	belowThreshold map[string]uint64
	deletes        map[string][]string
	maxLength      int
}

// New creates a Corrector. Without options it indexes for edit
// distance 2 with prefix length 7 and a count threshold of 1.
func New(opts ...Option) *Corrector {
	c := &Corrector{
		maxDictionaryEditDistance: DefaultMaxEditDistance,
		prefixLength:              DefaultPrefixLength,
		countThreshold:            DefaultCountThreshold,
		words:                     make(map[string]uint64),
		belowThreshold:            make(map[string]uint64),
		deletes:                   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.prefixLength <= c.maxDictionaryEditDistance {
		c.prefixLength = c.maxDictionaryEditDistance + 1
	}
	return c
}

// SetRanker replaces the ranking hook. Each Corrector carries its own
// ranker, so instances with different hooks coexist independently.
func (c *Corrector) SetRanker(r Ranker) {
	c.ranker = r
}

// AddEntry records count occurrences of term and reports whether the
// term is newly known. Counts accumulate with saturating addition and
// never wrap. A term below the count threshold stays in a staging
// area; once its accumulated count reaches the threshold it is
// promoted and its delete variants are generated, exactly once.
func (c *Corrector) AddEntry(term string, count uint64) bool {
	if count == 0 && c.countThreshold > 0 {
		return false
	}

	if c.countThreshold > 1 {
		if staged, ok := c.belowThreshold[term]; ok {
			count = saturatingAdd(staged, count)
			if count < c.countThreshold {
				c.belowThreshold[term] = count
				return false
			}
			delete(c.belowThreshold, term)
		} else if current, ok := c.words[term]; ok {
			c.words[term] = saturatingAdd(current, count)
			return false
		} else if count < c.countThreshold {
			c.belowThreshold[term] = count
			return false
		}
	} else if current, ok := c.words[term]; ok {
		c.words[term] = saturatingAdd(current, count)
		return false
	}

	c.words[term] = count
	if n := utf8.RuneCountInString(term); n > c.maxLength {
		c.maxLength = n
	}
	for variant := range c.deletePrefixVariants(term) {
		// bucket order is term insertion order, the stable tie-break
		c.deletes[variant] = append(c.deletes[variant], term)
	}
	return true
}

// Count returns the accumulated count for a known term, or 0.
func (c *Corrector) Count(term string) uint64 {
	return c.words[term]
}

// WordCount returns the number of known terms.
func (c *Corrector) WordCount() int {
	return len(c.words)
}

// DeleteCount returns the number of delete-variant buckets.
func (c *Corrector) DeleteCount() int {
	return len(c.deletes)
}

// MaxLength returns the longest known term length in runes.
func (c *Corrector) MaxLength() int {
	return c.maxLength
}

// Lookup finds known terms within a bounded edit distance of phrase,
// ranked by distance, count and discovery order according to
// verbosity. The ranking hook, if installed, transforms the list on
// every return path before the caller sees it.
func (c *Corrector) Lookup(phrase string, verbosity Verbosity, opts ...LookupOption) ([]Suggestion, error) {
	cfg := lookupConfig{maxEditDistance: c.maxDictionaryEditDistance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxEditDistance > c.maxDictionaryEditDistance {
		return nil, ErrDistanceTooLarge
	}

	original := phrase
	if cfg.transferCasing {
		phrase = strings.ToLower(phrase)
	}

	var suggestions []Suggestion
	finish := func() []Suggestion {
		if cfg.includeUnknown && len(suggestions) == 0 {
			suggestions = append(suggestions, Suggestion{Term: phrase, Distance: cfg.maxEditDistance + 1})
		}
		if c.ranker != nil {
			suggestions = c.ranker(phrase, suggestions, verbosity)
		}
		if cfg.transferCasing {
			for i := range suggestions {
				suggestions[i].Term = transferCasing(original, suggestions[i].Term)
			}
		}
		return suggestions
	}

	phraseRunes := []rune(phrase)
	phraseLen := len(phraseRunes)

	// phrase is too long to be within the bound of any known term
	if phraseLen-cfg.maxEditDistance > c.maxLength {
		return finish(), nil
	}

	if cfg.ignoreToken != nil && cfg.ignoreToken.MatchString(phrase) {
		suggestions = append(suggestions, Suggestion{Term: phrase})
		return finish(), nil
	}

	if count, ok := c.words[phrase]; ok {
		suggestions = append(suggestions, Suggestion{Term: phrase, Count: count})
		// nothing can beat distance 0 unless the caller wants all matches
		if verbosity != All {
			return finish(), nil
		}
	}

	if cfg.maxEditDistance == 0 {
		return finish(), nil
	}

	consideredDeletes := make(map[string]struct{})
	consideredSuggestions := map[string]struct{}{phrase: {}}

	// shrinks towards the best distance found so far for Top/Closest
	maxEditDistance2 := cfg.maxEditDistance

	phrasePrefixLen := phraseLen
	var candidates []string
	if phrasePrefixLen > c.prefixLength {
		phrasePrefixLen = c.prefixLength
		candidates = append(candidates, string(phraseRunes[:phrasePrefixLen]))
	} else {
		candidates = append(candidates, phrase)
	}

	for pointer := 0; pointer < len(candidates); pointer++ {
		candidate := candidates[pointer]
		candidateRunes := []rune(candidate)
		candidateLen := len(candidateRunes)
		lengthDiff := phrasePrefixLen - candidateLen

		// candidates are ordered by delete distance, so once the diff
		// exceeds the bound no closer suggestion can follow
		if lengthDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		for _, suggestion := range c.deletes[candidate] {
			if suggestion == phrase {
				continue
			}
			suggestionRunes := []rune(suggestion)
			suggestionLen := len(suggestionRunes)
			if abs(suggestionLen-phraseLen) > maxEditDistance2 ||
				suggestionLen < candidateLen ||
				(suggestionLen == candidateLen && suggestion != candidate) {
				continue
			}
			suggestionPrefixLen := minInt(suggestionLen, c.prefixLength)
			if suggestionPrefixLen > phrasePrefixLen && suggestionPrefixLen-candidateLen > maxEditDistance2 {
				continue
			}

			var distance int
			if candidateLen == 0 {
				// no chars in common; distance is the longer length
				distance = maxInt(phraseLen, suggestionLen)
				if distance > maxEditDistance2 || !markConsidered(consideredSuggestions, suggestion) {
					continue
				}
			} else if suggestionLen == 1 {
				if strings.ContainsRune(phrase, suggestionRunes[0]) {
					distance = phraseLen - 1
				} else {
					distance = phraseLen
				}
				if distance > maxEditDistance2 || !markConsidered(consideredSuggestions, suggestion) {
					continue
				}
			} else {
				if c.prefixLength-cfg.maxEditDistance == candidateLen &&
					suffixMismatch(phraseRunes, suggestionRunes, c.prefixLength) {
					continue
				}
				if (verbosity != All && !deleteInSuggestionPrefix(candidateRunes, suggestionRunes, c.prefixLength)) ||
					!markConsidered(consideredSuggestions, suggestion) {
					continue
				}
				distance = Distance(phrase, suggestion, maxEditDistance2)
				if distance < 0 {
					continue
				}
			}

			if distance <= maxEditDistance2 {
				item := Suggestion{Term: suggestion, Distance: distance, Count: c.words[suggestion]}
				if len(suggestions) > 0 {
					switch verbosity {
					case Closest:
						// a strictly closer match invalidates everything found so far
						if distance < maxEditDistance2 {
							suggestions = suggestions[:0]
						}
					case Top:
						if distance < maxEditDistance2 || item.Count > suggestions[0].Count {
							maxEditDistance2 = distance
							suggestions[0] = item
						}
						continue
					}
				}
				if verbosity != All {
					maxEditDistance2 = distance
				}
				suggestions = append(suggestions, item)
			}
		}

		// expand the candidate by one more deletion, staying inside the
		// prefix bound
		if lengthDiff < cfg.maxEditDistance && candidateLen <= c.prefixLength {
			if verbosity != All && lengthDiff >= maxEditDistance2 {
				continue
			}
			for i := 0; i < candidateLen; i++ {
				variant := deleteRune(candidateRunes, i)
				if _, seen := consideredDeletes[variant]; !seen {
					consideredDeletes[variant] = struct{}{}
					candidates = append(candidates, variant)
				}
			}
		}
	}

	if len(suggestions) > 1 {
		sortSuggestions(suggestions)
	}
	return finish(), nil
}

// sortSuggestions orders by distance ascending, then count
// descending. The sort is stable so full ties keep discovery order.
func sortSuggestions(suggestions []Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Count > suggestions[j].Count
	})
}

// deletePrefixVariants generates the distinct delete variants of a
// term's bounded prefix, including the prefix itself, up to the
// configured dictionary edit distance.
func (c *Corrector) deletePrefixVariants(term string) map[string]struct{} {
	variants := make(map[string]struct{})
	runes := []rune(term)
	if len(runes) <= c.maxDictionaryEditDistance {
		variants[""] = struct{}{}
	}
	if len(runes) > c.prefixLength {
		runes = runes[:c.prefixLength]
	}
	variants[string(runes)] = struct{}{}
	c.expandDeletes(runes, 0, variants)
	return variants
}

// expandDeletes recursively derives k-deletion strings from the
// (k-1)-deletion results, deduplicating as it goes.
func (c *Corrector) expandDeletes(word []rune, depth int, out map[string]struct{}) {
	depth++
	if len(word) < 2 {
		return
	}
	for i := 0; i < len(word); i++ {
		variant := deleteRune(word, i)
		if _, seen := out[variant]; !seen {
			out[variant] = struct{}{}
			if depth < c.maxDictionaryEditDistance {
				c.expandDeletes([]rune(variant), depth, out)
			}
		}
	}
}

// deleteInSuggestionPrefix reports whether every character of the
// delete occurs, in order, within the suggestion's prefix. Cheap
// pre-check that pays off for Top and Closest lookups.
func deleteInSuggestionPrefix(del, suggestion []rune, prefixLength int) bool {
	if len(del) == 0 {
		return true
	}
	n := len(suggestion)
	if prefixLength < n {
		n = prefixLength
	}
	j := 0
	for _, ch := range del {
		for j < n && ch != suggestion[j] {
			j++
		}
		if j == n {
			return false
		}
	}
	return true
}

// suffixMismatch rules out pairs whose characters beyond the indexed
// prefix cannot be reconciled by a single substitution or adjacent
// transposition. Only meaningful when the candidate was shortened all
// the way to prefixLength - maxEditDistance.
func suffixMismatch(phrase, suggestion []rune, prefixLength int) bool {
	phraseLen := len(phrase)
	suggestionLen := len(suggestion)
	m := minInt(phraseLen, suggestionLen) - prefixLength
	if m > 1 && string(phrase[phraseLen+1-m:]) != string(suggestion[suggestionLen+1-m:]) {
		return true
	}
	if m > 0 && phrase[phraseLen-m] != suggestion[suggestionLen-m] &&
		(phrase[phraseLen-m-1] != suggestion[suggestionLen-m] ||
			phrase[phraseLen-m] != suggestion[suggestionLen-m-1]) {
		return true
	}
	return false
}

func markConsidered(set map[string]struct{}, s string) bool {
	if _, ok := set[s]; ok {
		return false
	}
	set[s] = struct{}{}
	return true
}

func deleteRune(word []rune, i int) string {
	variant := make([]rune, 0, len(word)-1)
	variant = append(variant, word[:i]...)
	variant = append(variant, word[i+1:]...)
	return string(variant)
}

// saturatingAdd clamps at MaxUint64 instead of wrapping.
func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
