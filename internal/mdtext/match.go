package mdtext

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SimilarityRatio returns a normalized sequence-similarity ratio in
// [0, 1] between two strings, computed over their runes with the
// longest-matching-block algorithm. Identical strings score 1.0 and
// the measure is symmetric, which is all MarkComplete's 0.8 threshold
// relies on.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
