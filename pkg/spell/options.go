package spell

const (
	// DefaultMaxEditDistance is the largest edit distance the index
	// supports unless configured otherwise.
	DefaultMaxEditDistance = 2
	// DefaultPrefixLength bounds how many leading characters of a term
	// generate delete variants. Longer prefixes improve recall at the
	// cost of index size.
	DefaultPrefixLength = 7
	// DefaultCountThreshold is the minimum accumulated count for a term
	// to be considered a known word.
	DefaultCountThreshold = 1
)

// Option configures a Corrector at construction time.
type Option func(*Corrector)

// WithMaxEditDistance sets the maximum edit distance the delete index
// is built for. Lookups may never request more than this.
func WithMaxEditDistance(n int) Option {
	return func(c *Corrector) {
		if n >= 0 {
			c.maxDictionaryEditDistance = n
		}
	}
}

// WithPrefixLength sets the delete-variant generation bound.
func WithPrefixLength(n int) Option {
	return func(c *Corrector) {
		if n > 0 {
			c.prefixLength = n
		}
	}
}

// WithCountThreshold sets the minimum count for a term to count as a
// known word. Terms below it accumulate in a staging area and are
// promoted once their total reaches the threshold.
func WithCountThreshold(n uint64) Option {
	return func(c *Corrector) {
		c.countThreshold = n
	}
}

// WithRanker installs the ranking hook invoked on every Lookup return
// path.
func WithRanker(r Ranker) Option {
	return func(c *Corrector) {
		c.ranker = r
	}
}

type lookupConfig struct {
	maxEditDistance int
	includeUnknown  bool
	ignoreToken     Matcher
	transferCasing  bool
}

// LookupOption configures a single Lookup call.
type LookupOption func(*lookupConfig)

// EditDistance bounds the lookup at n edits. Must not exceed the
// corrector's configured maximum.
func EditDistance(n int) LookupOption {
	return func(cfg *lookupConfig) {
		if n >= 0 {
			cfg.maxEditDistance = n
		}
	}
}

// IncludeUnknown makes Lookup return the phrase itself, with distance
// maxEditDistance+1 and count 0, when nothing in the dictionary
// matched.
func IncludeUnknown() LookupOption {
	return func(cfg *lookupConfig) {
		cfg.includeUnknown = true
	}
}

// IgnoreToken installs a matcher for phrases that should bypass the
// dictionary entirely, e.g. a compiled pattern for numerals.
func IgnoreToken(m Matcher) LookupOption {
	return func(cfg *lookupConfig) {
		cfg.ignoreToken = m
	}
}

// TransferCasing rewrites returned terms to mirror the casing of the
// looked-up phrase. Presentation only, applied after ranking.
func TransferCasing() LookupOption {
	return func(cfg *lookupConfig) {
		cfg.transferCasing = true
	}
}
