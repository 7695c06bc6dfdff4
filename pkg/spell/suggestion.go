package spell

import "fmt"

// Suggestion is a single correction candidate produced by Lookup.
// Count is the dictionary frequency of the term, Distance the verified
// edit distance from the looked-up phrase.
type Suggestion struct {
	Term     string
	Distance int
	Count    uint64
}

// String implements the stringer interface for debug output.
func (s Suggestion) String() string {
	return fmt.Sprintf("{%s, %d, %d}", s.Term, s.Distance, s.Count)
}

// Ranker reorders, filters or replaces the suggestions the engine
// produced for a phrase. The returned slice is handed to the caller
// as-is, on every return path of Lookup, including singleton and empty
// results. A nil Ranker means identity.
type Ranker func(phrase string, suggestions []Suggestion, verbosity Verbosity) []Suggestion

// Matcher is the ignore-token predicate accepted by Lookup.
// *regexp.Regexp satisfies it. The engine treats it as opaque: any
// phrase for which MatchString reports true is returned verbatim
// without a dictionary search.
type Matcher interface {
	MatchString(s string) bool
}
