package score

import "sort"

// Display caps for keyword lists in a MatchReport.
const (
	maxMatchedKeywords = 25
	maxMissingKeywords = 20
)

// sortKeywords orders phrases longest-first (longer phrases are more
// specific and more useful to show), ties broken lexically for
// deterministic output.
func sortKeywords(ss []string) {
	sort.Slice(ss, func(i, j int) bool {
		if len(ss[i]) != len(ss[j]) {
			return len(ss[i]) > len(ss[j])
		}
		return ss[i] < ss[j]
	})
}

// capList truncates a list to its display cap.
func capList(ss []string, limit int) []string {
	if len(ss) > limit {
		return ss[:limit]
	}
	return ss
}

// ensureNonEmpty guarantees at least one entry via a fallback string.
func ensureNonEmpty(ss []string, fallback string) []string {
	if len(ss) == 0 {
		return []string{fallback}
	}
	return ss
}

// isNumeric reports whether s consists solely of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
