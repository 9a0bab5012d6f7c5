package match

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// TextSimilarity returns a normalized similarity ratio in [0,1] between
// two strings: 1 - levenshtein(a,b) / max(len(a), len(b), 1) over the
// normalized forms. Normalization case-folds, collapses whitespace and
// drops trailing parenthesized or bracketed decorations, so
// "Yesterday (Remastered)" compares equal to "Yesterday"; a leading
// parenthesized phrase is part of the title and is kept. Equal strings
// score 1.0, completely disjoint strings of comparable length score
// 0.0. The function is pure, symmetric and deterministic.
func TextSimilarity(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)

	if a == b {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(a, b)

	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest < 1 {
		longest = 1
	}

	return 1.0 - float64(dist)/float64(longest)
}

// DurationDelta returns the absolute difference in seconds between two
// durations. Interpretation of unknown (zero) durations is the ranker's
// concern, not this function's.
func DurationDelta(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// normalize lowercases s, drops everything from the first "(" or "["
// onward, and collapses runs of whitespace to single spaces. Uploads
// decorate titles with suffixes like "(Official Video)" or
// "[Remastered]" that would otherwise dominate the edit distance.
// Stripping only happens when something precedes the bracket: titles
// that open with a parenthesized phrase ("(Don't Fear) The Reaper")
// are compared whole rather than reduced to nothing.
func normalize(s string) string {
	s = strings.ToLower(s)
	if i := strings.IndexAny(s, "(["); i != -1 {
		if head := strings.TrimSpace(s[:i]); head != "" {
			s = head
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
