// ABOUTME: String similarity scoring and Exact/Near/NoMatch banding
// ABOUTME: Normalized edit-distance ratios in the range 0-100

package catalog

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
)

// Metric selects the edit distance used for similarity scores
type Metric string

const (
	// MetricIndel counts a substitution as a deletion plus an insertion
	MetricIndel Metric = "indel"
	// MetricLevenshtein counts a substitution as a single edit
	MetricLevenshtein Metric = "levenshtein"
	// MetricJaroWinkler favours names sharing a prefix
	MetricJaroWinkler Metric = "jaro-winkler"
)

// DefaultThreshold is the score a field must exceed to count as a near match.
// Low enough for case, punctuation and whitespace drift, high enough to keep
// two letters swapped in a short title apart.
const DefaultThreshold = 80

// ParseMetric validates a metric name from configuration
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case MetricIndel, "":
		return MetricIndel, nil
	case MetricLevenshtein:
		return MetricLevenshtein, nil
	case MetricJaroWinkler:
		return MetricJaroWinkler, nil
	}

	return "", fmt.Errorf("unknown similarity metric: %q", name)
}

// Similarity returns the indel similarity ratio of a and b, 100 meaning identical.
// Characters are compared as runes, not bytes.
func Similarity(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}

	// Indel distance is total - 2*LCS, so the kept characters are 2*LCS
	return ratio(2*edlib.LCS(a, b), total)
}

// levenshteinSimilarity scores per rune with unit substitution cost
func levenshteinSimilarity(a, b string) int {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 100
	}

	distance := levenshtein.ComputeDistance(a, b)

	return ratio(longest-distance, longest)
}

// jaroWinklerSimilarity scores per rune with edlib's Jaro-Winkler
func jaroWinklerSimilarity(a, b string) int {
	if a == b {
		return 100
	}

	sim, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0
	}

	return int(math.Round(100 * float64(sim)))
}

func ratio(same, total int) int {
	return int(math.Round(100 * float64(same) / float64(total)))
}

// Matcher classifies identity tuples into match bands
type Matcher struct {
	Threshold int    // Fields must score strictly above this to be near
	Metric    Metric // Edit distance used for scoring
}

// DefaultMatcher returns the indel matcher with the default threshold
func DefaultMatcher() Matcher {
	return Matcher{Threshold: DefaultThreshold, Metric: MetricIndel}
}

// Score returns the similarity of a and b using the configured metric
func (m Matcher) Score(a, b string) int {
	switch m.Metric {
	case MetricLevenshtein:
		return levenshteinSimilarity(a, b)
	case MetricJaroWinkler:
		return jaroWinklerSimilarity(a, b)
	}

	return Similarity(a, b)
}

// Classify compares each pair of fields and returns the band for the whole tuple
func (m Matcher) Classify(fields ...[2]string) Match {
	exact := true

	for _, f := range fields {
		if f[0] != f[1] {
			exact = false
			break
		}
	}

	if exact {
		return Exact
	}

	for _, f := range fields {
		if m.Score(f[0], f[1]) <= m.Threshold {
			return NoMatch
		}
	}

	return Near
}
