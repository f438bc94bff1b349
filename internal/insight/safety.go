package insight

import "strings"

// bannedTerms is the fixed list of substrings that may never appear in
// insight copy. Matching is case-insensitive against the title,
// recommendation, and because fields. The list is clinical and diagnostic
// vocabulary plus the two conventional glucose cutoff numerals; the engine
// coaches behavior, it does not give medical advice.
var bannedTerms = []string{
	"diagnos",
	"diabet",
	"insulin",
	"medication",
	"prescri",
	"dose",
	"hypoglyc",
	"hyperglyc",
	"a1c",
	"clinical",
	"disease",
	"treatment",
	"140",
	"180",
}

// IsSafe reports whether an insight's user-facing copy is free of banned
// terms. The check covers title, recommendation, and because; presentation
// metadata and the micro step inherit their text from the same templates.
func IsSafe(in Insight) bool {
	haystack := strings.ToLower(in.Title + "\n" + in.Recommendation + "\n" + in.Because)
	for _, term := range bannedTerms {
		if strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// FilterUnsafe removes every candidate whose copy contains a banned term.
// A match in any field discards the whole candidate; partial redaction is
// not allowed. This filter runs unconditionally, after every recommender
// and before ranking, capping, or returning.
func FilterUnsafe(candidates []Insight) []Insight {
	out := candidates[:0:0]
	for _, in := range candidates {
		if IsSafe(in) {
			out = append(out, in)
		}
	}
	return out
}
