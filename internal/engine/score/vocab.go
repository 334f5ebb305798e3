package score

import (
	"math"
	"strings"
)

// n-gram span of the shared vocabulary: unigrams through trigrams, so
// phrases like "machine learning" and "spring boot developer" count as
// single matchable terms.
const (
	minGram = 1
	maxGram = 3
)

// tokenize splits normalized text into vocabulary tokens: stop words and
// single-character fragments are dropped, trailing dots are stripped
// (end-of-sentence artifacts), while "c++", "c#" and "node.js" survive
// intact.
func tokenize(norm string) []string {
	if norm == "" {
		return nil
	}
	fields := strings.Split(norm, " ")
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimRight(f, ".")
		if len(f) < 2 || stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// termCounts builds the n-gram frequency vector for a token sequence.
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int)
	for n := minGram; n <= maxGram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+n], " ")]++
		}
	}
	return counts
}

// cosine computes cosine similarity between two term-count vectors over
// their shared vocabulary. A zero-magnitude vector yields 0.
func cosine(a, b map[string]int) float64 {
	var dot, magA, magB float64
	for term, ca := range a {
		magA += float64(ca * ca)
		if cb, ok := b[term]; ok {
			dot += float64(ca * cb)
		}
	}
	for _, cb := range b {
		magB += float64(cb * cb)
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
