package spell

// Verbosity controls how many suggestions a lookup returns.
type Verbosity int

const (
	// Top returns the single best suggestion: smallest edit distance,
	// ties broken by highest count, then by discovery order.
	Top Verbosity = iota
	// Closest returns every suggestion at the smallest edit distance
	// found, ordered by count descending.
	Closest
	// All returns every suggestion within the edit distance bound,
	// ordered by distance ascending, then count descending. No early
	// termination, so this is the slowest mode.
	All
)

// String returns the lowercase name of the verbosity level.
func (v Verbosity) String() string {
	switch v {
	case Top:
		return "top"
	case Closest:
		return "closest"
	case All:
		return "all"
	}
	return "unknown"
}

// ParseVerbosity maps a name to a Verbosity. Unknown names fall back
// to Top.
func ParseVerbosity(name string) Verbosity {
	switch name {
	case "closest":
		return Closest
	case "all":
		return All
	}
	return Top
}
